package model

import "time"

// Section is one resolved block of the structural document. Placeholders are
// fully resolved by the assembler; an empty Heading or Body here is a bug
// caught by validation, never shipped.
type Section struct {
	Name      string       `json:"name"`
	Heading   string       `json:"heading"`
	Body      string       `json:"body"`
	CTA       string       `json:"cta,omitempty"`
	Media     []MediaAsset `json:"media,omitempty"`
	Features  []string     `json:"features,omitempty"` // additive specialization toggles, e.g. "emergency_cta"
	Animation string       `json:"animation"`          // animation style applied to the section
}

// Structure is the opaque structured document the preview UI renders. The
// synthesis core never renders it itself.
type Structure struct {
	Title           string    `json:"title"`
	MetaDescription string    `json:"meta_description"`
	ColorPrimary    string    `json:"color_primary"`
	ColorSecondary  string    `json:"color_secondary"`
	ColorAccent     string    `json:"color_accent"`
	FontHeading     string    `json:"font_heading"`
	FontBody        string    `json:"font_body"`
	HeroStyle       string    `json:"hero_style"`
	Responsive      bool      `json:"responsive"`
	Sections        []Section `json:"sections"`
}

// CheckResult is a single validation checklist finding.
type CheckResult struct {
	Check    string `json:"check"`
	Detail   string `json:"detail"`
	Repaired bool   `json:"repaired"`
}

// ValidationReport lists checklist items the artifact missed. An empty
// report means the artifact passed clean. Reports are transient unless the
// artifact is accepted with warnings, in which case the report is stored
// alongside it for audit.
type ValidationReport struct {
	Findings []CheckResult `json:"findings,omitempty"`
}

// Empty reports whether validation passed with no findings.
func (r ValidationReport) Empty() bool { return len(r.Findings) == 0 }

// TemplateArtifact is the final synthesis output. One business accumulates
// many variants; each is independently valid and immutable once persisted.
type TemplateArtifact struct {
	ID            string           `json:"id"`
	BusinessID    string           `json:"business_id"`
	VariantNumber int              `json:"variant_number"`
	Structure     Structure        `json:"structure"`
	Media         []MediaAsset     `json:"media"`
	HeroVideo     *MediaAsset      `json:"hero_video,omitempty"`
	BusinessType  BusinessType     `json:"business_type"`
	Confidence    float64          `json:"confidence"`
	Warnings      ValidationReport `json:"warnings"`
	GeneratedAt   time.Time        `json:"generated_at"`
}
