package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// LoggingProvider wraps an AdjacencyProvider with debug logging.
type LoggingProvider[N comparable] struct {
	next   bfscrawl.AdjacencyProvider[N]
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider[N comparable](next bfscrawl.AdjacencyProvider[N], logger *slog.Logger) *LoggingProvider[N] {
	return &LoggingProvider[N]{next: next, logger: logger}
}

// AdjacentNodes delegates to the wrapped provider and logs the operation.
func (p *LoggingProvider[N]) AdjacentNodes(ctx context.Context, v N) (nodes []N) {
	defer func(begin time.Time) {
		p.logger.Debug("adjacent nodes",
			"node", fmt.Sprint(v),
			"count", len(nodes),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.AdjacentNodes(ctx, v)
}
