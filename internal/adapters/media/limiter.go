package media

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultProviderRate  = rate.Limit(2) // requests per second
	defaultProviderBurst = 4
	defaultWaitBudget    = 5 * time.Second
)

// providerLimiter keeps one token bucket per provider. Waits are bounded:
// a request that cannot get a token inside the budget reports ErrWaitBudget
// so the orchestrator can fall through instead of stalling the pipeline.
type providerLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	budget   time.Duration
}

func newProviderLimiter(r rate.Limit, burst int, budget time.Duration) *providerLimiter {
	return &providerLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
		budget:   budget,
	}
}

func (p *providerLimiter) wait(ctx context.Context, provider string) error {
	limiter := p.limiterFor(provider)

	waitCtx, cancel := context.WithTimeout(ctx, p.budget)
	defer cancel()

	if err := limiter.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrWaitBudget
	}
	return nil
}

func (p *providerLimiter) limiterFor(provider string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[provider]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check pattern
	if limiter, exists := p.limiters[provider]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(p.rate, p.burst)
	p.limiters[provider] = limiter
	return limiter
}
