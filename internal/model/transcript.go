package model

// TranscriptEntry is one timed caption segment. Entries arrive in
// chronological order and that ordering must survive chunking.
type TranscriptEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}
