package tme

// MediaKind identifies the kind of a message attachment.
type MediaKind string

// MediaKind values. MediaVideoThumb is a fallback emitted only when the
// message exposes no direct video sources.
const (
	MediaVideo      MediaKind = "video"
	MediaPhoto      MediaKind = "photo"
	MediaVideoThumb MediaKind = "video_thumbnail"
)

// MediaItem is a single message attachment.
type MediaItem struct {
	Type MediaKind `json:"type"`
	URL  string    `json:"url"`
}

// Reaction is an emoji reaction with its display count. Reactions with an
// empty emoji or a zero count are never emitted.
type Reaction struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Author identifies who posted a message. Username is derived from the
// last path segment of the author's profile link and is empty when the
// link is absent.
type Author struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Post kind values.
const (
	PostKindChannel = "channel_post"
	PostKindGroup   = "group_post"
)

// Post is a single message extracted from an embed page.
type Post struct {
	Type      string      `json:"type"` // channel_post or group_post
	Author    Author      `json:"author"`
	Text      string      `json:"text"`
	Media     []MediaItem `json:"media"`
	Reactions []Reaction  `json:"reactions"`
	Views     int         `json:"views"`
	Date      string      `json:"date"` // ISO-8601, empty if absent
	URL       string      `json:"url"`
}

// PostSummary is one entry of a channel's message-list page.
type PostSummary struct {
	ID        string      `json:"id"`
	URL       string      `json:"url"`
	Author    Author      `json:"author"`
	Text      string      `json:"text"`
	Date      string      `json:"date"`
	Views     int         `json:"views"`
	Media     []MediaItem `json:"media"`
	Forwarded bool        `json:"forwarded"`
}
