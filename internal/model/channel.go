package model

import "time"

// Job states for channel batch generation.
const (
	JobQueued    = "queued"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// ChannelJob tracks batch generation of posts for a channel's most
// recent videos. Videos are processed strictly one at a time.
type ChannelJob struct {
	JobID      string    `json:"jobId"`
	ChannelID  string    `json:"channelId"`
	State      string    `json:"state"`
	VideoIDs   []string  `json:"videoIds"`
	Done       int       `json:"done"`
	Failed     int       `json:"failed"`
	LastError  string    `json:"lastError,omitempty"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
}
