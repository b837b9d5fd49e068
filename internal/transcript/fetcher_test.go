package transcript

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// roundTripFunc lets tests serve canned responses without a network.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

const watchPage = `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"https:\/\/www.youtube.com\/api\/timedtext?v=abc\u0026ei=xyz\u0026lang=en","languageCode":"en"}]}}}`

const captionPayload = `{"events":[
	{"tStartMs":0,"dDurationMs":2000,"segs":[{"utf8":"Hello"}]},
	{"tStartMs":2000,"dDurationMs":1000,"segs":[{"utf8":"\n"}]},
	{"tStartMs":65000,"dDurationMs":3000,"segs":[{"utf8":"wor"},{"utf8":"ld"}]}
]}`

func newTestFetcher(rt roundTripFunc, attempts int) *Fetcher {
	f := NewFetcher(&http.Client{Transport: rt}, BackoffPolicy{MaxAttempts: attempts, BaseDelay: time.Second})
	f.sleep = func(time.Duration) {}
	return f
}

func TestFetch_ParsesCaptionTrack(t *testing.T) {
	f := newTestFetcher(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Path, "timedtext") {
			if req.URL.Query().Get("fmt") != "json3" {
				t.Errorf("track fetch missing fmt=json3: %s", req.URL)
			}
			return response(200, captionPayload), nil
		}
		return response(200, watchPage), nil
	}, 3)

	entries, err := f.Fetch(context.Background(), "abc12345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (newline-only event skipped)", len(entries))
	}
	if entries[0].Text != "Hello" || entries[0].Start != 0 {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Text != "world" || entries[1].Start != 65 {
		t.Errorf("entry 1 = %+v, want text=world start=65", entries[1])
	}
}

func TestFetch_NoTranscriptFailsFast(t *testing.T) {
	calls := 0
	f := newTestFetcher(func(req *http.Request) (*http.Response, error) {
		calls++
		return response(200, `{"responseContext":{}}`), nil
	}, 3)

	_, err := f.Fetch(context.Background(), "abc12345678")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if calls != 1 {
		t.Errorf("no-transcript should not retry, made %d calls", calls)
	}
}

func TestFetch_RetriesTransportFailures(t *testing.T) {
	calls := 0
	f := newTestFetcher(func(req *http.Request) (*http.Response, error) {
		calls++
		return nil, fmt.Errorf("connection reset")
	}, 3)

	_, err := f.Fetch(context.Background(), "abc12345678")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 {
		t.Errorf("made %d attempts, want 3", calls)
	}
}

func TestBackoffPolicy_Delay(t *testing.T) {
	p := BackoffPolicy{MaxAttempts: 3, BaseDelay: 2 * time.Second}

	if got := p.Delay(1); got != 2*time.Second {
		t.Errorf("Delay(1) = %s, want 2s", got)
	}
	if got := p.Delay(3); got != 6*time.Second {
		t.Errorf("Delay(3) = %s, want 6s", got)
	}
}

func TestExtractTrackURL_UnescapesBaseURL(t *testing.T) {
	url, err := extractTrackURL([]byte(watchPage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://www.youtube.com/api/timedtext?v=abc&ei=xyz&lang=en"
	if url != want {
		t.Errorf("got %q, want %q", url, want)
	}
}
