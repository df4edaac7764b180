package media

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
	"github.com/autoweb/sitesmith/pkg/logger"
)

// DefaultTargetImages is the overall sourcing target per synthesis run.
const DefaultTargetImages = 15

// Per-section sourcing quotas, aligned with the assembler's slot counts so
// a fully sourced run needs no placeholder padding.
const (
	heroQuota    = 1
	galleryQuota = 6
	defaultQuota = 2
)

var gallerySections = map[string]bool{
	"gallery":   true,
	"portfolio": true,
	"products":  true,
	"listings":  true,
	"rooms":     true,
}

// Result is the outcome of a sourcing run. Sourcing never fails outright;
// deficits are padded with placeholders and surfaced via PlaceholderCount.
type Result struct {
	Images           []model.MediaAsset
	HeroVideo        *model.MediaAsset
	PlaceholderCount int
	CacheHits        int
	ProviderHits     map[string]int
}

// Orchestrator runs the provider fallback chain with shared caching and
// per-provider rate limiting.
type Orchestrator struct {
	primary   Provider
	secondary Provider
	cache     *resultCache
	limiter   *providerLimiter
	log       logger.Logger
	now       func() time.Time

	targetImages int
	cacheSize    int
	cacheTTL     time.Duration
	rate         rate.Limit
	burst        int
	waitBudget   time.Duration
}

// NewOrchestrator creates an orchestrator over a primary and secondary
// provider. Either provider may be nil; the chain skips nil links.
func NewOrchestrator(primary, secondary Provider, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		primary:      primary,
		secondary:    secondary,
		now:          time.Now,
		targetImages: DefaultTargetImages,
		cacheSize:    defaultCacheSize,
		cacheTTL:     defaultCacheTTL,
		rate:         defaultProviderRate,
		burst:        defaultProviderBurst,
		waitBudget:   defaultWaitBudget,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.Get().Named("media")
	}
	o.cache = newResultCache(o.cacheSize, o.cacheTTL)
	o.limiter = newProviderLimiter(o.rate, o.burst, o.waitBudget)
	return o
}

// Source gathers images for every required section of the profile, plus at
// most one hero video when the profile calls for a video hero.
func (o *Orchestrator) Source(ctx context.Context, bt model.BusinessType, profile design.Profile) Result {
	result := Result{ProviderHits: make(map[string]int)}

	total := 0
	for _, section := range profile.RequiredSections {
		want := sectionQuota(section)
		if remaining := o.targetImages - total; want > remaining {
			want = remaining
		}
		if want <= 0 {
			continue
		}
		assets := o.sourceSection(ctx, bt, section, profile.SearchTerms[section], want, &result)
		result.Images = append(result.Images, assets...)
		total += len(assets)
	}

	if profile.HeroStyle == "video" {
		result.HeroVideo = o.sourceHeroVideo(ctx, profile.SearchTerms["hero"], &result)
	}

	o.log.Debug(ctx, "media sourcing finished",
		logger.String("business_type", string(bt)),
		logger.Int("images", len(result.Images)),
		logger.Int("placeholders", result.PlaceholderCount),
		logger.Int("cache_hits", result.CacheHits))

	return result
}

// sourceSection fills one section's quota, walking the ranked search terms
// and the provider chain. Whatever cannot be sourced is padded with
// placeholders keyed by the section's terms.
func (o *Orchestrator) sourceSection(ctx context.Context, bt model.BusinessType, section string, terms []string, want int, result *Result) []model.MediaAsset {
	if len(terms) == 0 {
		terms = []string{section}
	}

	assets := make([]model.MediaAsset, 0, want)
	for _, term := range terms {
		if len(assets) >= want {
			break
		}
		need := want - len(assets)

		if cached, ok := o.cache.get(bt, section, term); ok {
			result.CacheHits++
			assets = appendForSection(assets, cached, section, need)
			continue
		}

		fetched, provider := o.fetchImages(ctx, term, need)
		if len(fetched) == 0 {
			continue
		}
		o.cache.put(bt, section, term, fetched)
		result.ProviderHits[provider]++
		assets = appendForSection(assets, fetched, section, need)
	}

	// Terminal fallback: deterministic placeholder per term, rotating
	// through the ranked list so adjacent slots do not repeat a query.
	for i := 0; len(assets) < want; i++ {
		term := terms[i%len(terms)]
		assets = append(assets, model.PlaceholderAsset(section, term, o.now().UTC()))
		result.PlaceholderCount++
	}
	return assets
}

// fetchImages walks the provider chain for a single query.
func (o *Orchestrator) fetchImages(ctx context.Context, term string, count int) ([]model.MediaAsset, string) {
	for _, p := range []Provider{o.primary, o.secondary} {
		if p == nil {
			continue
		}
		if err := o.limiter.wait(ctx, p.Name()); err != nil {
			o.log.Warn(ctx, "provider rate wait failed",
				logger.String("provider", p.Name()), logger.Error(err))
			continue
		}
		assets, err := p.SearchImages(ctx, term, count)
		if err != nil {
			o.log.Warn(ctx, "image search failed, falling through",
				logger.String("provider", p.Name()),
				logger.String("query", term),
				logger.Error(err))
			continue
		}
		return assets, p.Name()
	}
	return nil, ""
}

// sourceHeroVideo fetches at most one hero video. A miss is not an error;
// the assembler simply renders an image hero instead.
func (o *Orchestrator) sourceHeroVideo(ctx context.Context, heroTerms []string, result *Result) *model.MediaAsset {
	if len(heroTerms) == 0 {
		return nil
	}
	term := heroTerms[0]

	for _, p := range []Provider{o.primary, o.secondary} {
		if p == nil {
			continue
		}
		if err := o.limiter.wait(ctx, p.Name()); err != nil {
			continue
		}
		videos, err := p.SearchVideos(ctx, term, 5)
		if err != nil || len(videos) == 0 {
			continue
		}
		result.ProviderHits[p.Name()]++
		video := videos[0]
		video.Section = "hero"
		return &video
	}

	o.log.Debug(ctx, "no hero video available", logger.String("query", term))
	return nil
}

// CacheLen reports the number of live cache entries, for stats endpoints.
func (o *Orchestrator) CacheLen() int {
	return o.cache.len()
}

func sectionQuota(section string) int {
	switch {
	case section == "hero":
		return heroQuota
	case gallerySections[section]:
		return galleryQuota
	default:
		return defaultQuota
	}
}

func appendForSection(dst, src []model.MediaAsset, section string, limit int) []model.MediaAsset {
	for _, a := range src {
		if limit <= 0 {
			break
		}
		a.Section = section
		dst = append(dst, a)
		limit--
	}
	return dst
}
