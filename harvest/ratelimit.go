package harvest

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/aidharvest"
	"golang.org/x/time/rate"
)

var _ aidharvest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a fixed minimum interval between requests to
// each domain using token buckets. Large harvests are paced purely by
// this inter-request delay to respect the remote service.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewDomainLimiter creates a new DomainLimiter with the given minimum
// delay between requests. Each domain gets its own limiter with a burst
// of 1 (no bursting allowed).
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(d.interval), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
