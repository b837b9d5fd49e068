package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

const (
	watchURLFormat = "https://www.youtube.com/watch?v=%s"
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

var (
	// captionTracksRe isolates the caption track list embedded in the
	// watch page's player response JSON.
	captionTracksRe = regexp.MustCompile(`"captionTracks":\s*(\[.*?\])`)
	baseURLRe       = regexp.MustCompile(`"baseUrl"\s*:\s*"(.*?)"`)
)

// BackoffPolicy bounds transcript fetch retries. Delay grows linearly
// with the attempt number.
type BackoffPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// Delay returns how long to wait after the given 1-based attempt.
func (p BackoffPolicy) Delay(attempt int) time.Duration {
	return time.Duration(attempt) * p.BaseDelay
}

// Fetcher retrieves caption tracks by scraping the video watch page for
// the track base URL and downloading it in json3 form. The sleep func is
// injectable so retry behavior is testable without real delays.
type Fetcher struct {
	http   *http.Client
	policy BackoffPolicy
	sleep  func(time.Duration)
}

func NewFetcher(client *http.Client, policy BackoffPolicy) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 3
	}
	return &Fetcher{http: client, policy: policy, sleep: time.Sleep}
}

// Fetch returns the ordered caption segments for a video. A video with
// no transcript track fails immediately with a not-found error; transport
// failures are retried per the backoff policy before giving up.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) ([]model.TranscriptEntry, error) {
	var lastErr error
	for attempt := 1; attempt <= f.policy.MaxAttempts; attempt++ {
		entries, err := f.fetchOnce(ctx, videoID)
		if err == nil {
			return entries, nil
		}
		if model.IsNotFound(err) || ctx.Err() != nil {
			return nil, err
		}

		lastErr = err
		if attempt < f.policy.MaxAttempts {
			middleware.Logger.Warn().
				Str("video_id", videoID).
				Int("attempt", attempt).
				Int("max_attempts", f.policy.MaxAttempts).
				Err(err).
				Msg("transcript fetch failed, retrying")
			f.sleep(f.policy.Delay(attempt))
		}
	}
	return nil, model.E(model.KindUpstream, "transcript.fetch",
		fmt.Sprintf("giving up after %d attempts", f.policy.MaxAttempts), lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, videoID string) ([]model.TranscriptEntry, error) {
	page, err := f.get(ctx, fmt.Sprintf(watchURLFormat, videoID))
	if err != nil {
		return nil, err
	}

	trackURL, err := extractTrackURL(page)
	if err != nil {
		return nil, model.E(model.KindNotFound, "transcript.fetch",
			fmt.Sprintf("no transcript track for video %q", videoID), err)
	}

	raw, err := f.get(ctx, trackURL+"&fmt=json3")
	if err != nil {
		return nil, err
	}

	return parseJSON3(raw)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, model.E(model.KindUpstream, "transcript.fetch", "build request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, model.E(model.KindUpstream, "transcript.fetch", "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, model.E(model.KindUpstream, "transcript.fetch",
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	return io.ReadAll(resp.Body)
}

// extractTrackURL pulls the first caption track base URL out of the watch
// page body.
func extractTrackURL(page []byte) (string, error) {
	tracks := captionTracksRe.FindSubmatch(page)
	if tracks == nil {
		return "", fmt.Errorf("captionTracks not present in watch page")
	}
	m := baseURLRe.FindSubmatch(tracks[1])
	if m == nil {
		return "", fmt.Errorf("caption track has no baseUrl")
	}

	url := string(m[1])
	url = strings.ReplaceAll(url, `\u0026`, "&")
	url = strings.ReplaceAll(url, `\/`, "/")
	return url, nil
}

// json3 wire format of a caption track.
type json3Doc struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	StartMs    int64      `json:"tStartMs"`
	DurationMs int64      `json:"dDurationMs"`
	Segs       []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// parseJSON3 converts a json3 caption document into ordered transcript
// entries. Events without renderable text (styling windows, newlines)
// are skipped.
func parseJSON3(raw []byte) ([]model.TranscriptEntry, error) {
	var doc json3Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, model.E(model.KindUpstream, "transcript.parse", "malformed caption payload", err)
	}

	var entries []model.TranscriptEntry
	for _, ev := range doc.Events {
		var b strings.Builder
		for _, seg := range ev.Segs {
			b.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", " "))
		if text == "" {
			continue
		}
		entries = append(entries, model.TranscriptEntry{
			Text:     text,
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
		})
	}
	return entries, nil
}
