package post

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{3661.9, "01:01:01"}, // truncation, not rounding
		{65, "00:01:05"},
		{3700, "01:01:40"},
		{86399, "23:59:59"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	entries := []model.TranscriptEntry{
		{Text: "Hello", Start: 0},
		{Text: "world", Start: 65},
		{Text: "end", Start: 3700},
	}

	want := "00:00:00: Hello 00:01:05: world 01:01:40: end"
	if got := Flatten(entries); got != want {
		t.Errorf("Flatten = %q, want %q", got, want)
	}

	if got := Flatten(nil); got != "" {
		t.Errorf("Flatten(nil) = %q, want empty", got)
	}
}

func TestSplit_Lossless(t *testing.T) {
	flat := strings.Repeat("abcdefghij", 1000) // 10000 bytes

	for _, size := range []int{1, 7, 100, 3333, 10000, 99999} {
		chunks := Split(flat, size)
		if got := strings.Join(chunks, ""); got != flat {
			t.Errorf("size %d: reassembled chunks differ from input", size)
		}
		for i, c := range chunks {
			if len(c) == 0 {
				t.Errorf("size %d: chunk %d is empty", size, i)
			}
			if len(c) > size {
				t.Errorf("size %d: chunk %d is %d bytes", size, i, len(c))
			}
		}
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	if chunks := Split("", 100); len(chunks) != 0 {
		t.Errorf("empty input should yield zero chunks, got %d", len(chunks))
	}
}

func TestSplit_Deterministic(t *testing.T) {
	flat := strings.Repeat("x", 25000)
	a := Split(flat, 10000)
	b := Split(flat, 10000)

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("got %d and %d chunks, want 3", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("chunk %d differs between identical runs", i)
		}
	}
	if len(a[2]) != 5000 {
		t.Errorf("trailing chunk = %d bytes, want 5000", len(a[2]))
	}
}

type scriptedCompleter struct {
	fail  map[int]bool
	calls int
}

func (s *scriptedCompleter) ReorganizeChunk(ctx context.Context, chunk string) (string, error) {
	s.calls++
	if s.fail[s.calls] {
		return "", errors.New("rate limited")
	}
	return "ok:" + chunk, nil
}

func TestProcessTranscript_SingleChunk(t *testing.T) {
	p := NewProcessor(&scriptedCompleter{}, 100000)
	entries := []model.TranscriptEntry{
		{Text: "Hello", Start: 0},
		{Text: "world", Start: 65},
		{Text: "end", Start: 3700},
	}

	got := p.ProcessTranscript(context.Background(), entries, "vid")
	want := "ok:00:00:00: Hello 00:01:05: world 01:01:40: end"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestProcessTranscript_EmptyTranscript(t *testing.T) {
	c := &scriptedCompleter{}
	p := NewProcessor(c, 100)

	if got := p.ProcessTranscript(context.Background(), nil, "vid"); got != "" {
		t.Errorf("empty transcript should produce empty document, got %q", got)
	}
	if c.calls != 0 {
		t.Errorf("no chunks should be dispatched, got %d calls", c.calls)
	}
}

func TestProcessTranscript_FailedChunkStaysInline(t *testing.T) {
	c := &scriptedCompleter{fail: map[int]bool{2: true}}
	p := NewProcessor(c, 10)
	entries := []model.TranscriptEntry{
		{Text: strings.Repeat("a", 25), Start: 0},
	}

	got := p.ProcessTranscript(context.Background(), entries, "vid")
	parts := strings.Split(got, "\n\n")
	if len(parts) != 4 {
		t.Fatalf("got %d slots, want 4", len(parts))
	}
	if !strings.HasPrefix(parts[1], ErrChunkSentinel) {
		t.Errorf("failed slot should carry the error sentinel, got %q", parts[1])
	}
	for i, part := range []int{0, 2, 3} {
		if !strings.HasPrefix(parts[part], "ok:") {
			t.Errorf("slot %d (index %d) should have succeeded: %q", part, i, parts[part])
		}
	}
}
