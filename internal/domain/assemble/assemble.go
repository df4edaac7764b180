// Package assemble builds the structural template artifact from a design
// profile, an enhanced content package and sourced media.
//
// Assembly is deterministic for a fixed profile: section ordering and slot
// structure depend only on the profile, never on which copy or media landed
// in them. Content and media injection fill the skeleton; specialization
// adds type-specific toggles on top. No placeholder survives this stage.
package assemble

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
)

// ErrNoSections is the fatal assembly failure: a profile that resolves to
// zero sections produces no artifact and aborts the pipeline.
var ErrNoSections = errors.New("template assembly failed: no sections resolved")

// Per-section image slot counts. Gallery-like sections carry the visual
// weight; everything else gets a small fixed allowance.
const (
	heroSlots    = 1
	gallerySlots = 6
	defaultSlots = 2
)

// animationCycles maps an animation tier to the styles cycled across
// sections. The cycle is fixed so assembly stays deterministic.
var animationCycles = map[design.AnimationTier][]string{
	design.TierSubtle:   {"fade-in", "fade-up"},
	design.TierModerate: {"fade-in", "fade-up", "slide-in"},
	design.TierRich:     {"fade-in", "fade-up", "slide-in", "zoom", "parallax"},
}

// Assembler builds draft artifacts.
type Assembler struct {
	now func() time.Time
}

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build assembles the draft structure. Images are slotted section by
// section in order; excess images are discarded and deficits are padded
// with deterministic placeholders so no slot is ever left empty.
func (a *Assembler) Build(
	profile design.Profile,
	content model.ContentPackage,
	images []model.MediaAsset,
	heroVideo *model.MediaAsset,
) (model.Structure, error) {
	if len(profile.RequiredSections) == 0 {
		return model.Structure{}, ErrNoSections
	}

	content = applyDefaults(content, profile)

	doc := model.Structure{
		Title:           content.Headline,
		MetaDescription: content.MetaDescription,
		ColorPrimary:    profile.ColorPrimary,
		ColorSecondary:  profile.ColorSecondary,
		ColorAccent:     profile.ColorAccent,
		FontHeading:     profile.FontHeading,
		FontBody:        profile.FontBody,
		HeroStyle:       profile.HeroStyle,
		Responsive:      true,
	}

	styles := animationCycles[profile.AnimationTier]
	if len(styles) == 0 {
		styles = animationCycles[design.TierModerate]
	}

	pool := images
	for i, name := range profile.RequiredSections {
		section := model.Section{
			Name:      name,
			Animation: styles[i%len(styles)],
		}
		a.fillCopy(&section, profile, content)

		var take []model.MediaAsset
		take, pool = a.slotMedia(name, profile, pool, slotCount(name))
		section.Media = take

		if name == "hero" && heroVideo != nil && profile.HeroStyle == "video" {
			v := *heroVideo
			v.Section = "hero"
			section.Media = append(section.Media, v)
			section.Features = append(section.Features, "video_hero")
		}

		doc.Sections = append(doc.Sections, section)
	}

	specialize(&doc, profile)

	return doc, nil
}

func slotCount(section string) int {
	switch section {
	case "hero":
		return heroSlots
	case "gallery", "portfolio", "products", "listings", "rooms":
		return gallerySlots
	default:
		return defaultSlots
	}
}

// slotMedia takes up to n images for a section from the pool, preferring
// assets fetched for that section, then pads with placeholders keyed by the
// section's first search term.
func (a *Assembler) slotMedia(
	section string,
	profile design.Profile,
	pool []model.MediaAsset,
	n int,
) (take, rest []model.MediaAsset) {
	var other []model.MediaAsset
	for _, asset := range pool {
		if len(take) < n && (asset.Section == section || asset.Section == "") {
			asset.Section = section
			take = append(take, asset)
			continue
		}
		other = append(other, asset)
	}

	for len(take) < n {
		term := section
		if terms := profile.SearchTerms[section]; len(terms) > 0 {
			term = terms[0]
		}
		take = append(take, model.PlaceholderAsset(section, term, a.now()))
	}
	return take, other
}

// fillCopy resolves every text placeholder for a section. The fallbacks
// bottom out at profile defaults, so nothing is left unresolved.
func (a *Assembler) fillCopy(section *model.Section, profile design.Profile, content model.ContentPackage) {
	switch section.Name {
	case "hero":
		section.Heading = content.Headline
		section.Body = content.Subheadline
		section.CTA = content.CTAs.Primary
	case "services", "programs", "courses", "menu", "products", "listings", "portfolio", "rooms":
		section.Heading = sectionHeading(section.Name)
		section.Body = servicesBody(content)
		section.CTA = content.CTAs.Secondary
	case "about", "team":
		section.Heading = sectionHeading(section.Name)
		section.Body = content.About
	case "testimonials":
		section.Heading = sectionHeading(section.Name)
		section.Body = strings.Join(content.ValueProps, " · ")
	case "contact":
		section.Heading = sectionHeading(section.Name)
		section.Body = content.MetaDescription
		section.CTA = content.CTAs.Urgent
	default:
		section.Heading = sectionHeading(section.Name)
		section.Body = content.About
	}
}

func sectionHeading(name string) string {
	switch name {
	case "services":
		return "What We Do"
	case "programs":
		return "Our Programs"
	case "courses":
		return "Our Courses"
	case "menu":
		return "Our Menu"
	case "products":
		return "Our Products"
	case "listings":
		return "Featured Listings"
	case "portfolio":
		return "Selected Work"
	case "rooms":
		return "Rooms & Suites"
	case "about":
		return "About Us"
	case "team":
		return "Meet the Team"
	case "testimonials":
		return "What Clients Say"
	case "contact":
		return "Get in Touch"
	default:
		return strings.ToUpper(name[:1]) + name[1:]
	}
}

func servicesBody(content model.ContentPackage) string {
	if len(content.Services) == 0 {
		return strings.Join(content.ValueProps, " · ")
	}
	parts := make([]string, 0, len(content.Services))
	for _, s := range content.Services {
		if s.Description == "" {
			parts = append(parts, s.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s — %s", s.Name, s.Description))
	}
	return strings.Join(parts, "\n")
}

// applyDefaults backfills content fields the enhancement step left empty.
// CTA fallbacks come from the profile's call-to-action strategy.
func applyDefaults(content model.ContentPackage, profile design.Profile) model.ContentPackage {
	defaults := profile.Defaults
	if strings.TrimSpace(content.Headline) == "" {
		content.Headline = defaults.Headline
	}
	if strings.TrimSpace(content.Subheadline) == "" {
		content.Subheadline = defaults.Subheadline
	}
	if strings.TrimSpace(content.About) == "" {
		content.About = defaults.About
	}
	if len(content.ValueProps) == 0 {
		content.ValueProps = defaults.ValueProps
	}
	if strings.TrimSpace(content.CTAs.Primary) == "" {
		content.CTAs.Primary = profile.CTAs.Primary
	}
	if strings.TrimSpace(content.CTAs.Secondary) == "" {
		content.CTAs.Secondary = profile.CTAs.Secondary
	}
	if strings.TrimSpace(content.CTAs.Urgent) == "" {
		content.CTAs.Urgent = profile.CTAs.Urgent
	}
	if strings.TrimSpace(content.MetaDescription) == "" {
		content.MetaDescription = truncate(content.Subheadline, 155)
	}
	return content
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
