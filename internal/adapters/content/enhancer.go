// Package content turns scraped business facts into polished website copy.
//
// The happy path is one structured generation request against a language
// model. The unhappy path matters just as much: after bounded retries the
// enhancer falls back to a minimal local rewrite of the scraped text, so
// the pipeline always receives a usable content package.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
	"github.com/autoweb/sitesmith/pkg/logger"
)

const (
	defaultRetries = 2
	defaultBackoff = 500 * time.Millisecond
)

// Enhancer produces a ContentPackage for a business.
type Enhancer struct {
	gen     Generator
	log     logger.Logger
	retries int
	backoff time.Duration
}

// Option applies a configuration option to the Enhancer.
type Option func(*Enhancer)

// WithRetries sets how many times a failed generation is retried.
func WithRetries(n int) Option {
	return func(e *Enhancer) {
		if n >= 0 {
			e.retries = n
		}
	}
}

// WithBackoff sets the base backoff between retries; each retry doubles it.
func WithBackoff(d time.Duration) Option {
	return func(e *Enhancer) {
		if d >= 0 {
			e.backoff = d
		}
	}
}

// WithLogger sets the enhancer logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Enhancer) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEnhancer creates an Enhancer over a Generator.
func NewEnhancer(gen Generator, opts ...Option) *Enhancer {
	e := &Enhancer{
		gen:     gen,
		retries: defaultRetries,
		backoff: defaultBackoff,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Get().Named("content")
	}
	return e
}

// contentPayload is the wire shape of the generation response.
type contentPayload struct {
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	ValueProps  []string `json:"value_props"`
	Services    []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"services"`
	About string `json:"about"`
	CTAs  struct {
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
		Urgent    string `json:"urgent"`
	} `json:"ctas"`
	MetaDescription string `json:"meta_description"`
}

// Enhance generates copy for the business. On terminal generation failure
// it returns the local fallback package with Degraded set; the caller never
// sees an error because degraded content is still shippable content.
func (e *Enhancer) Enhance(ctx context.Context, biz model.BusinessProfile, cls model.ClassificationResult, profile design.Profile) model.ContentPackage {
	prompt := buildPrompt(biz, cls, profile)

	var lastErr error
	attempts := e.retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := e.gen.Generate(ctx, prompt)
		if err == nil {
			pkg, perr := parsePayload(raw)
			if perr == nil {
				return pkg
			}
			err = perr
		}

		lastErr = err
		e.log.Warn(ctx, "content generation attempt failed",
			logger.Int("attempt", attempt), logger.Error(err))

		if attempt < attempts {
			if err := sleepCtx(ctx, e.backoff<<(attempt-1)); err != nil {
				lastErr = err
				break
			}
		}
	}

	e.log.Warn(ctx, "content enhancement degraded to local fallback",
		logger.String("business", biz.Name), logger.Error(lastErr))
	return Fallback(biz, profile)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parsePayload(raw string) (model.ContentPackage, error) {
	var payload contentPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return model.ContentPackage{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if payload.Headline == "" {
		return model.ContentPackage{}, fmt.Errorf("%w: missing headline", ErrMalformedResponse)
	}

	pkg := model.ContentPackage{
		Headline:    payload.Headline,
		Subheadline: payload.Subheadline,
		ValueProps:  payload.ValueProps,
		About:       payload.About,
		CTAs: model.CTASet{
			Primary:   payload.CTAs.Primary,
			Secondary: payload.CTAs.Secondary,
			Urgent:    payload.CTAs.Urgent,
		},
		MetaDescription: payload.MetaDescription,
	}
	for _, s := range payload.Services {
		pkg.Services = append(pkg.Services, model.ServiceDescription{
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return pkg, nil
}

const maxScrapedChars = 1500

func buildPrompt(biz model.BusinessProfile, cls model.ClassificationResult, profile design.Profile) string {
	var b strings.Builder
	b.WriteString("Write website copy for the following business.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", biz.Name)
	fmt.Fprintf(&b, "Business type: %s\n", cls.BusinessType.DisplayName())
	if biz.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", biz.Category)
	}
	if biz.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", biz.Location)
	}
	if len(cls.SecondaryTags) > 0 {
		fmt.Fprintf(&b, "Specialties: %s\n", strings.Join(cls.SecondaryTags, ", "))
	}
	if text := truncate(biz.SearchText(), maxScrapedChars); text != "" {
		fmt.Fprintf(&b, "\nKnown facts about the business:\n%s\n", text)
	}
	fmt.Fprintf(&b, "\nTone: confident and concrete, matching a %s business. ", cls.BusinessType.DisplayName())
	fmt.Fprintf(&b, "The primary call to action should feel like %q. ", profile.CTAs.Primary)
	b.WriteString("Never invent prices, certifications or credentials not present in the facts above.")
	return b.String()
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
