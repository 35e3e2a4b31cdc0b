package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
)

// visitedFilterSize sizes the visited-set Bloom filter for unbounded crawls.
const visitedFilterSize = 100_000

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Logger *slog.Logger

	Provider bfscrawl.AdjacencyProvider[string]
}

// CrawlCmd walks the web graph from Start and prints one URL per line.
type CrawlCmd struct {
	Start string
	Max   int
	Delay time.Duration
}

// Run executes the crawl.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	size := uint(visitedFilterSize)
	if c.Max > 0 {
		size = uint(c.Max)
	}
	crawler := crawl.New(c.Start, deps.Provider,
		crawl.WithVisitedFilter(func(s string) string { return s }, size, 0.01),
	)

	begin := time.Now()
	count, err := crawl.Walk(deps.Ctx, crawler, crawl.WalkOptions{
		Max:   c.Max,
		Pacer: crawl.NewPacer(c.Delay),
	}, func(url string) error {
		_, err := fmt.Fprintln(deps.Stdout, url)
		return err
	})

	if errors.Is(err, context.Canceled) {
		deps.Logger.Info("crawl interrupted", "visited", count)
		return nil
	}
	if err != nil {
		return fmt.Errorf("crawl: %w", err)
	}

	deps.Logger.Info("crawl finished",
		"visited", count,
		"pending", crawler.Pending(),
		"duration", time.Since(begin),
	)
	return nil
}
