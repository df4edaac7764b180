package media

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/autoweb/sitesmith/pkg/logger"
)

// Option applies a configuration option to the Orchestrator.
type Option func(*Orchestrator)

// WithTargetImages sets the overall image sourcing target.
func WithTargetImages(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.targetImages = n
		}
	}
}

// WithCache sizes the shared result cache.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *Orchestrator) {
		if size > 0 && ttl > 0 {
			o.cacheSize = size
			o.cacheTTL = ttl
		}
	}
}

// WithProviderRate sets the per-provider token bucket.
func WithProviderRate(r rate.Limit, burst int) Option {
	return func(o *Orchestrator) {
		if r > 0 && burst > 0 {
			o.rate = r
			o.burst = burst
		}
	}
}

// WithWaitBudget bounds how long a request may wait on a token.
func WithWaitBudget(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.waitBudget = d
		}
	}
}

// WithLogger sets the orchestrator logger.
func WithLogger(log logger.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}
