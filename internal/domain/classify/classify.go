// Package classify maps raw business text to a business-type tag.
//
// Classification is keyword matching, not ML: each business type in the
// enumeration carries a keyword set, the type with the most distinct
// keyword hits wins, and confidence is the hit ratio against that type's
// vocabulary. The result is recomputed on every synthesis run.
package classify

import (
	"sort"
	"strings"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

// Classifier scores free text against per-type keyword vocabularies.
type Classifier struct {
	keywords      map[model.BusinessType][]string
	secondaryTags map[model.BusinessType]map[string][]string
}

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithKeywords replaces the vocabulary for a single business type. Used by
// tests and by deployments that tune detection for a regional corpus.
func WithKeywords(t model.BusinessType, words []string) Option {
	return func(c *Classifier) {
		if len(words) > 0 {
			c.keywords[t] = words
		}
	}
}

// New creates a Classifier with the built-in vocabularies.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		keywords:      defaultKeywords(),
		secondaryTags: defaultSecondaryTags(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns exactly one business type for the given category and
// free text. There is no error path: zero keyword hits resolve to the
// default type with zero confidence.
//
// Ties are broken by enumeration declaration order; the first-declared type
// wins. That is a documented contract, not an accident of map iteration.
func (c *Classifier) Classify(category, freeText string) model.ClassificationResult {
	haystack := strings.ToLower(category + " " + freeText)

	var (
		best      model.BusinessType
		bestCount int
		bestTotal int
		bestHits  []string
	)

	for _, t := range model.Enumeration() {
		vocab := c.keywords[t]
		if len(vocab) == 0 {
			continue
		}
		var hits []string
		for _, kw := range vocab {
			// Each keyword counts at most once no matter how often it repeats.
			if strings.Contains(haystack, kw) {
				hits = append(hits, kw)
			}
		}
		// Strict greater-than keeps the first-declared type on ties.
		if len(hits) > bestCount {
			best = t
			bestCount = len(hits)
			bestTotal = len(vocab)
			bestHits = hits
		}
	}

	if bestCount == 0 {
		return model.ClassificationResult{
			BusinessType: model.TypeDefault,
			Confidence:   0,
		}
	}

	confidence := float64(bestCount) / float64(bestTotal)
	if confidence > 1 {
		confidence = 1
	}

	return model.ClassificationResult{
		BusinessType:    best,
		Confidence:      confidence,
		SecondaryTags:   c.detectSecondaryTags(best, haystack),
		MatchedKeywords: bestHits,
	}
}

// detectSecondaryTags refines the primary tag with sub-niche markers, e.g.
// a restaurant that is specifically a cafe, or a trade that advertises
// emergency callouts.
func (c *Classifier) detectSecondaryTags(t model.BusinessType, haystack string) []string {
	groups, ok := c.secondaryTags[t]
	if !ok {
		return nil
	}
	var tags []string
	for tag, words := range groups {
		for _, kw := range words {
			if strings.Contains(haystack, kw) {
				tags = append(tags, tag)
				break
			}
		}
	}
	sort.Strings(tags)
	return tags
}
