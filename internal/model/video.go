package model

import "time"

// VideoMetadata holds the snippet/statistics fields fetched from the
// YouTube Data API for a single video. Immutable once fetched for the
// duration of one request.
type VideoMetadata struct {
	VideoID      string    `json:"videoId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	ViewCount    uint64    `json:"viewCount"`
	LikeCount    uint64    `json:"likeCount"`
	Duration     string    `json:"duration,omitempty"`
	PublishedAt  time.Time `json:"publishedAt"`
}

// Comment is one top-level comment from a video's comment threads.
type Comment struct {
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	LikeCount   int64     `json:"likes"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ChannelVideo is one entry from a channel's upload listing, newest first.
type ChannelVideo struct {
	VideoID     string    `json:"videoId"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"`
}
