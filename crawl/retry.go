package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// Ensure RetryFetcher implements bfscrawl.Fetcher at compile time.
var _ bfscrawl.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher retries failed fetches, waiting delays[i] before retry i+1.
// With no delays it makes a single attempt.
type RetryFetcher struct {
	next   bfscrawl.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next. logger may be nil.
func NewRetryFetcher(next bfscrawl.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch attempts the fetch up to len(delays)+1 times and returns the last error.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (*bfscrawl.Response, error) {
	maxAttempts := len(f.delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := f.next.Fetch(ctx, url)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if f.logger != nil {
			f.logger.Debug("retry",
				"url", url,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return nil, bfscrawl.Errorf(bfscrawl.EUNAVAILABLE, "GET %s: %w", url, ctx.Err())
		case <-time.After(f.delays[attempt]):
		}
	}

	return nil, lastErr
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
