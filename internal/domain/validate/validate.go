// Package validate checks an assembled artifact against the feature
// checklist and models the bounded repair state machine.
//
// Validation never hard-fails on cosmetic misses: the pipeline repairs what
// it can in a single bounded pass and accepts the rest with warnings. Only
// a structurally empty artifact is fatal, and that is caught upstream by
// the assembler.
package validate

import (
	"fmt"

	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
)

// Checklist item names. Reports reference these so the repair loop can
// route a finding to the component that produced the concern.
const (
	CheckImageCount      = "image_count"
	CheckAnimationStyles = "animation_styles"
	CheckSections        = "required_sections"
	CheckResponsive      = "responsive_markers"
	CheckAttribution     = "media_attribution"
)

// Default thresholds. The image minimum is deliberately below the sourcing
// target so a partial provider outage does not force a repair pass.
const (
	DefaultMinImages     = 8
	DefaultMinAnimations = 2
	DefaultMinAttributed = 1
)

// Checker runs the checklist.
type Checker struct {
	minImages     int
	minAnimations int
	minAttributed int
}

// Option applies a configuration option to the Checker.
type Option func(*Checker)

// WithMinImages sets the minimum total image count.
func WithMinImages(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.minImages = n
		}
	}
}

// WithMinAnimations sets the minimum distinct animation style count.
func WithMinAnimations(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.minAnimations = n
		}
	}
}

// WithMinAttributed sets the minimum attribution count required when
// externally sourced media is present.
func WithMinAttributed(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.minAttributed = n
		}
	}
}

// New creates a Checker with default thresholds.
func New(opts ...Option) *Checker {
	c := &Checker{
		minImages:     DefaultMinImages,
		minAnimations: DefaultMinAnimations,
		minAttributed: DefaultMinAttributed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs every checklist item independently and returns the full
// report; it never short-circuits on the first miss.
func (c *Checker) Check(doc model.Structure, profile design.Profile) model.ValidationReport {
	var report model.ValidationReport

	images, attributed, external := mediaCounts(doc)

	if images < c.minImages {
		report.Findings = append(report.Findings, model.CheckResult{
			Check:  CheckImageCount,
			Detail: fmt.Sprintf("have %d images, need %d", images, c.minImages),
		})
	}

	if styles := distinctAnimations(doc); styles < c.minAnimations {
		report.Findings = append(report.Findings, model.CheckResult{
			Check:  CheckAnimationStyles,
			Detail: fmt.Sprintf("have %d animation styles, need %d", styles, c.minAnimations),
		})
	}

	for _, required := range profile.RequiredSections {
		if !hasSection(doc, required) {
			report.Findings = append(report.Findings, model.CheckResult{
				Check:  CheckSections,
				Detail: "missing section: " + required,
			})
		}
	}

	if !doc.Responsive {
		report.Findings = append(report.Findings, model.CheckResult{
			Check:  CheckResponsive,
			Detail: "mobile-responsive structural markers absent",
		})
	}

	// Placeholder-only documents owe nobody attribution.
	if external > 0 && attributed < c.minAttributed {
		report.Findings = append(report.Findings, model.CheckResult{
			Check:  CheckAttribution,
			Detail: fmt.Sprintf("%d externally sourced assets but %d attribution entries", external, attributed),
		})
	}

	return report
}

// Repairable reports whether a finding can be fixed by re-running its
// producing component. Only the media concern qualifies; a section missing
// from the structure will not appear on a re-run either.
func Repairable(finding model.CheckResult) bool {
	switch finding.Check {
	case CheckImageCount, CheckAttribution:
		return true
	default:
		return false
	}
}

func mediaCounts(doc model.Structure) (images, attributed, external int) {
	for _, s := range doc.Sections {
		for _, m := range s.Media {
			if m.Kind == model.MediaImage {
				images++
			}
			if !m.Placeholder() {
				external++
				if m.Attribution != "" {
					attributed++
				}
			}
		}
	}
	return images, attributed, external
}

func distinctAnimations(doc model.Structure) int {
	seen := make(map[string]struct{})
	for _, s := range doc.Sections {
		if s.Animation != "" {
			seen[s.Animation] = struct{}{}
		}
	}
	return len(seen)
}

func hasSection(doc model.Structure, name string) bool {
	for _, s := range doc.Sections {
		if s.Name == name {
			return true
		}
	}
	return false
}
