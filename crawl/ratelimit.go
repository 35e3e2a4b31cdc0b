package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/bfscrawl"
	"golang.org/x/time/rate"
)

var _ bfscrawl.Pacer = (*Pacer)(nil)

// Pacer enforces a fixed minimum delay between traversal steps using a
// token bucket with a burst of 1. The first Wait returns immediately.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer that allows one step per delay.
// A delay of zero or less disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next step is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
