package post

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

var (
	// productColonRe matches "Name: https://..." description lines. The
	// lazy name group stops at the first colon followed by a URL, so the
	// colon inside the URL scheme never splits the pair.
	productColonRe = regexp.MustCompile(`^(.+?):\s*(https?://\S+)\s*$`)
	// productDashRe matches "Name - https://..." description lines.
	productDashRe = regexp.MustCompile(`^(.+?)\s+-\s+(https?://\S+)\s*$`)
	// chapterRe matches "MM:SS Title" or "H:MM:SS Title" description lines.
	chapterRe = regexp.MustCompile(`^((?:\d{1,2}:)?\d{1,2}:\d{2})\s+(.+)$`)
)

// DefaultProductHosts is the allow-list of shopping domains recognized in
// video descriptions. An empty allow-list accepts any http(s) URL.
var DefaultProductHosts = []string{
	"amazon.com",
	"amzn.to",
	"lowes.com",
	"homedepot.com",
	"rockler.com",
	"woodcraft.com",
}

func hostAllowed(rawURL string, allowHosts []string) bool {
	if len(allowHosts) == 0 {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for _, allowed := range allowHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

// ExtractProducts pulls (name, url) pairs from description lines of the
// form "Name: URL" or "Name - URL". Only URLs whose host matches the
// allow-list qualify; pass nil to accept any http(s) URL. Pairs keep
// their order of appearance and duplicate names are not deduplicated.
func ExtractProducts(description string, allowHosts []string) []model.ProductLink {
	var products []model.ProductLink
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		m := productColonRe.FindStringSubmatch(line)
		if m == nil {
			m = productDashRe.FindStringSubmatch(line)
		}
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		link := m[2]
		if name == "" || !hostAllowed(link, allowHosts) {
			continue
		}
		products = append(products, model.ProductLink{Name: name, URL: link})
	}
	return products
}

// ExtractChapters pulls (timestamp, title) pairs from description lines
// starting with an MM:SS or H:MM:SS label. Timestamps are accepted as-is:
// no range checks and no monotonicity requirement.
func ExtractChapters(description string) []model.Chapter {
	var chapters []model.Chapter
	for _, line := range strings.Split(description, "\n") {
		m := chapterRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		chapters = append(chapters, model.Chapter{Timestamp: m[1], Title: strings.TrimSpace(m[2])})
	}
	return chapters
}
