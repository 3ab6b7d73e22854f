package models

import "time"

// ArticlePreviewMarker prefixes collected content when only the preview of a
// long-form X article was readable. The extraction prompt treats marked posts
// leniently: relevance is judged from the title and excerpt alone.
const ArticlePreviewMarker = "[X article preview]"

// MediaItem is one attachment on a collected post.
type MediaItem struct {
	Type string `json:"type"` // "photo", "video", "gif"
	URL  string `json:"url"`
}

// RawPostData is a collected post before persistence. Fetchers produce it,
// the push API accepts it, and the ingest layer dedup-saves it on the
// (source, external_id) identity.
type RawPostData struct {
	Source           string         `json:"source" binding:"required"`
	ExternalID       string         `json:"external_id" binding:"required"`
	Content          string         `json:"content" binding:"required"`
	AuthorName       string         `json:"author_name" binding:"required"`
	AuthorPlatformID *string        `json:"author_platform_id,omitempty"`
	URL              string         `json:"url" binding:"required"`
	PostedAt         time.Time      `json:"posted_at" binding:"required"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	MediaItems       []MediaItem    `json:"media_items,omitempty"`
}
