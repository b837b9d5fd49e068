package youtube

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

var (
	videoIDRe   = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)
	// pathVideoRe pulls the video ID out of youtu.be, /shorts/ and /embed/ paths.
	pathVideoRe = regexp.MustCompile(`(?:youtu\.be/|/shorts/|/embed/)([A-Za-z0-9_-]{11})`)
	// pathChannelRe pulls the channel ID out of /channel/ URLs.
	pathChannelRe = regexp.MustCompile(`/channel/(UC[A-Za-z0-9_-]{22})`)
)

// ResolveVideoID normalizes a raw form input into a bare video ID. It
// accepts an 11-character ID as-is, or extracts one from watch, shorts,
// embed and youtu.be URLs. Anything else passes through untouched and
// surfaces as a downstream fetch failure.
func ResolveVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", model.E(model.KindInvalidInput, "youtube.resolve", "video identifier is required", nil)
	}

	if videoIDRe.MatchString(input) {
		return input, nil
	}

	if strings.Contains(input, "://") || strings.HasPrefix(input, "www.") || strings.HasPrefix(input, "youtu") {
		if u, err := url.Parse(input); err == nil {
			if v := u.Query().Get("v"); videoIDRe.MatchString(v) {
				return v, nil
			}
		}
		if m := pathVideoRe.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}

	return input, nil
}

// ResolveChannelID normalizes a raw form input into a bare channel ID,
// extracting it from /channel/ URLs when needed.
func ResolveChannelID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", model.E(model.KindInvalidInput, "youtube.resolve", "channel identifier is required", nil)
	}

	if channelIDRe.MatchString(input) {
		return input, nil
	}

	if m := pathChannelRe.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}

	return input, nil
}
