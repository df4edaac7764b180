// Package media sources stock imagery and hero video for template synthesis.
//
// Providers form a fallback chain: primary stock library, then secondary,
// then deterministic placeholder URLs. Sourcing therefore degrades instead
// of failing; a fully placeholder-backed result is still a valid result.
package media

import (
	"context"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

// Provider is a remote stock media library.
type Provider interface {
	// Name identifies the provider in logs, metrics and attribution.
	Name() string

	// SearchImages returns up to count images for the query.
	// Returns ErrNoResults when the query matches nothing.
	SearchImages(ctx context.Context, query string, count int) ([]model.MediaAsset, error)

	// SearchVideos returns up to count videos for the query. Providers
	// without a video catalog return ErrNoResults.
	SearchVideos(ctx context.Context, query string, count int) ([]model.MediaAsset, error)
}
