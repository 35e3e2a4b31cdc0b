// Package slog provides logging decorators for bfscrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// Ensure LoggingFetcher implements bfscrawl.Fetcher.
var _ bfscrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   bfscrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next bfscrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *bfscrawl.Response, err error) {
	defer func(begin time.Time) {
		var bytes, status int
		if resp != nil {
			bytes = len(resp.Body)
			status = resp.StatusCode
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
