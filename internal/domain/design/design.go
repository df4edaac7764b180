// Package design resolves a business type to its design profile: the fixed
// configuration of colors, typography, sections, call-to-action strategy and
// media search terms that the assembler builds from.
//
// Resolution is a static table lookup. Correctness here is table
// completeness, not algorithm: every enumeration member must have a profile,
// and the tests enforce that.
package design

import "github.com/autoweb/sitesmith/internal/domain/model"

// Revision identifies the profile table edition. Profiles are versioned by
// configuration revision, never per business.
const Revision = "2026-08"

// AnimationTier grades how much motion a profile asks for.
type AnimationTier string

const (
	TierSubtle   AnimationTier = "subtle"
	TierModerate AnimationTier = "moderate"
	TierRich     AnimationTier = "rich"
)

// ContentDefaults backfill ContentPackage fields the enhancement step could
// not produce. The assembler guarantees no placeholder survives to the
// artifact; these are the values it falls back to.
type ContentDefaults struct {
	Headline    string
	Subheadline string
	About       string
	ValueProps  []string
}

// Profile is the immutable design configuration for one business type.
type Profile struct {
	BusinessType   model.BusinessType
	Revision       string
	ColorPrimary   string
	ColorSecondary string
	ColorAccent    string
	FontHeading    string
	FontBody       string
	HeroStyle      string // "video", "image" or "gradient"
	AnimationTier  AnimationTier

	// RequiredSections in fixed assembly order.
	RequiredSections []string

	CTAs model.CTASet

	// SearchTerms maps a section to its ranked media queries; the media
	// orchestrator tries them in order.
	SearchTerms map[string][]string

	Defaults ContentDefaults
}

// Resolver performs the type-to-profile lookup.
type Resolver struct {
	table map[model.BusinessType]Profile
}

// NewResolver creates a Resolver over the built-in table.
func NewResolver() *Resolver {
	return &Resolver{table: profileTable()}
}

// Resolve returns the profile for a business type. A type missing from the
// table resolves to the default profile; there is no failure mode.
func (r *Resolver) Resolve(t model.BusinessType) Profile {
	if p, ok := r.table[t]; ok {
		return p
	}
	return r.table[model.TypeDefault]
}

// Known reports whether a type has its own profile entry.
func (r *Resolver) Known(t model.BusinessType) bool {
	_, ok := r.table[t]
	return ok
}
