package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// Ensure LoggingLinkExtractor implements bfscrawl.LinkExtractor.
var _ bfscrawl.LinkExtractor = (*LoggingLinkExtractor)(nil)

// LoggingLinkExtractor wraps a LinkExtractor with debug logging.
type LoggingLinkExtractor struct {
	next   bfscrawl.LinkExtractor
	logger *slog.Logger
}

// NewLoggingLinkExtractor creates a new LoggingLinkExtractor.
func NewLoggingLinkExtractor(next bfscrawl.LinkExtractor, logger *slog.Logger) *LoggingLinkExtractor {
	return &LoggingLinkExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the operation.
func (e *LoggingLinkExtractor) ExtractLinks(html string, baseURL string) (result *bfscrawl.Extraction, err error) {
	defer func(begin time.Time) {
		var count, skipped int
		if result != nil {
			count = len(result.Links)
			skipped = len(result.Skipped)
		}
		e.logger.Debug("extract links",
			"url", baseURL,
			"count", count,
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(html, baseURL)
}
