package model

import (
	"strings"
	"time"
)

// MediaKind distinguishes image and video assets.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaAsset is a sourced or synthesized media reference. Assets are owned
// by the media orchestrator's shared cache, keyed by
// (business type, section, query), and are reusable across businesses with
// the same classification.
type MediaAsset struct {
	URL         string    `json:"url"`
	Kind        MediaKind `json:"kind"`
	Section     string    `json:"section"`
	AltText     string    `json:"alt_text"`
	Provider    string    `json:"provider"` // "unsplash", "pexels", "placeholder"
	Attribution string    `json:"attribution,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`   // videos only
	DurationSec int       `json:"duration_sec,omitempty"` // videos only
	FetchedAt   time.Time `json:"fetched_at"`
}

// Placeholder reports whether the asset was synthesized locally rather than
// fetched from a provider. Placeholders need no attribution entry.
func (a MediaAsset) Placeholder() bool {
	return a.Provider == "placeholder"
}

// PlaceholderAsset synthesizes a deterministic stock-image asset for a
// search term. The URL pattern is stable for a given term, so the fallback
// never blocks the pipeline and never varies between runs.
func PlaceholderAsset(section, term string, fetchedAt time.Time) MediaAsset {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(term)), " ", ",")
	return MediaAsset{
		URL:       "https://source.unsplash.com/1920x1080/?" + slug,
		Kind:      MediaImage,
		Section:   section,
		AltText:   term,
		Provider:  "placeholder",
		FetchedAt: fetchedAt,
	}
}
