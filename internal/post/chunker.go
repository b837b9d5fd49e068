package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

// ErrChunkSentinel prefixes the inline error text that takes a failed
// chunk's slot in the reassembled document. Callers rendering the
// document can check for it; the pipeline itself keeps going (partial
// output over total failure).
const ErrChunkSentinel = "[processing error]"

// ChunkProcessor is the completion-provider boundary the chunk loop
// dispatches to.
type ChunkProcessor interface {
	ReorganizeChunk(ctx context.Context, chunk string) (string, error)
}

// FormatTime renders a start offset as zero-padded "HH:MM:SS".
// Fractional seconds are truncated, not rounded.
func FormatTime(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Flatten renders every entry as "HH:MM:SS: <text>" and joins them with
// single spaces into one flat string.
func Flatten(entries []model.TranscriptEntry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = FormatTime(e.Start) + ": " + e.Text
	}
	return strings.Join(parts, " ")
}

// Split slices flat into consecutive non-overlapping chunks of at most
// maxChunkSize bytes. The split is a pure function of input length: no
// word-boundary handling, no trailing bytes dropped, and an empty input
// yields zero chunks.
func Split(flat string, maxChunkSize int) []string {
	if flat == "" || maxChunkSize <= 0 {
		return nil
	}
	chunks := make([]string, 0, (len(flat)+maxChunkSize-1)/maxChunkSize)
	for i := 0; i < len(flat); i += maxChunkSize {
		end := i + maxChunkSize
		if end > len(flat) {
			end = len(flat)
		}
		chunks = append(chunks, flat[i:end])
	}
	return chunks
}

// Processor runs the transcript chunk loop: flatten, split, dispatch
// each chunk to the completion provider in order, reassemble.
type Processor struct {
	completer    ChunkProcessor
	maxChunkSize int
}

func NewProcessor(completer ChunkProcessor, maxChunkSize int) *Processor {
	return &Processor{completer: completer, maxChunkSize: maxChunkSize}
}

// ProcessTranscript reorganizes a full transcript through the completion
// provider. Chunks are dispatched strictly sequentially and responses are
// re-joined in original order, separated by a blank line. A failed chunk
// contributes an inline error string instead of aborting the document.
// The videoID is only used for logging.
func (p *Processor) ProcessTranscript(ctx context.Context, entries []model.TranscriptEntry, videoID string) string {
	flat := Flatten(entries)
	chunks := Split(flat, p.maxChunkSize)
	if len(chunks) == 0 {
		return ""
	}

	processed := make([]string, len(chunks))
	for i, chunk := range chunks {
		out, err := p.completer.ReorganizeChunk(ctx, chunk)
		if err != nil {
			middleware.Logger.Warn().
				Str("video_id", videoID).
				Int("chunk", i+1).
				Int("chunks", len(chunks)).
				Err(err).
				Msg("chunk reorganization failed")
			out = fmt.Sprintf("%s chunk %d/%d: %v", ErrChunkSentinel, i+1, len(chunks), err)
		}
		processed[i] = out
	}

	return strings.Join(processed, "\n\n")
}
