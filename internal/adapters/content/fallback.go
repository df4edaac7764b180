package content

import (
	"strings"
	"unicode"

	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
)

const fallbackAboutChars = 300

// Fallback builds a minimal content package without a language model:
// profile defaults plus a trimmed, capitalized cut of the scraped text.
// The Degraded flag tells the pipeline the run used no enhancement.
func Fallback(biz model.BusinessProfile, profile design.Profile) model.ContentPackage {
	about := capitalize(truncate(firstNonEmpty(biz.Description, biz.ScrapedText), fallbackAboutChars))
	if about == "" {
		about = profile.Defaults.About
	}

	headline := profile.Defaults.Headline
	if biz.Name != "" {
		headline = capitalize(biz.Name)
	}

	meta := truncate(about, 155)
	if meta == "" {
		meta = profile.Defaults.Subheadline
	}

	return model.ContentPackage{
		Headline:        headline,
		Subheadline:     profile.Defaults.Subheadline,
		ValueProps:      profile.Defaults.ValueProps,
		About:           about,
		CTAs:            profile.CTAs,
		MetaDescription: meta,
		Degraded:        true,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
