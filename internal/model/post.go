package model

import "time"

// ProductLink is a (name, url) pair extracted from a video description
// line of the form "Name: URL" or "Name - URL". Extraction order follows
// order of appearance; duplicate names are kept.
type ProductLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Chapter is a "MM:SS Title" (or H:MM:SS) line extracted from a video
// description. Timestamps are taken as-is, without range or monotonicity
// checks.
type Chapter struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
}

// BlogPost is one generated post together with the metadata it was
// rendered from.
type BlogPost struct {
	VideoID      string        `json:"videoId"`
	Title        string        `json:"title"`
	HTML         string        `json:"html"`
	Products     []ProductLink `json:"products,omitempty"`
	Chapters     []Chapter     `json:"chapters,omitempty"`
	Comments     []Comment     `json:"comments,omitempty"`
	Metadata     VideoMetadata `json:"metadata"`
	FromCache    bool          `json:"fromCache"`
	NoTranscript bool          `json:"noTranscript,omitempty"`
	GeneratedAt  time.Time     `json:"generatedAt"`
}

// CachedPost is the value stored in the vector cache, keyed by video ID.
// Created on first generation, read before regeneration, never deleted.
type CachedPost struct {
	VideoID   string    `json:"videoId"`
	Title     string    `json:"title"`
	Embedding []float32 `json:"embedding,omitempty"`
	BlogHTML  string    `json:"blogHtml"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostRecord is the archive row persisted for every generated post.
type PostRecord struct {
	VideoID     string    `json:"videoId"`
	Title       string    `json:"title"`
	HTML        string    `json:"html"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generatedAt"`
}
