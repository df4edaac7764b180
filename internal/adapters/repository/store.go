// Package repository defines the artifact store interface and errors.
package repository

import (
	"context"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

// Store provides read/write access to persisted template artifacts.
// Artifacts are immutable once saved; regeneration appends a new variant
// rather than replacing an old one.
type Store interface {
	// Save persists an artifact, assigning the next variant number for its
	// business. Returns the stored artifact with VariantNumber set.
	Save(ctx context.Context, artifact model.TemplateArtifact) (model.TemplateArtifact, error)

	// List returns all variants for a business, oldest first.
	// Returns ErrNotFound if the business has no artifacts.
	List(ctx context.Context, businessID string) ([]model.TemplateArtifact, error)

	// Latest returns the most recent variant for a business.
	// Returns ErrNotFound if the business has no artifacts.
	Latest(ctx context.Context, businessID string) (model.TemplateArtifact, error)

	// Count returns the total number of stored artifacts.
	Count(ctx context.Context) int

	// Businesses returns the number of businesses with at least one artifact.
	Businesses(ctx context.Context) int
}
