package crawl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// Ensure LinkGraph implements bfscrawl.AdjacencyProvider at compile time.
var _ bfscrawl.AdjacencyProvider[string] = (*LinkGraph)(nil)

// LinkGraph is the web graph: nodes are absolute URLs without fragments and
// the neighbors of a page are the links in its HTML, in document order.
//
// Failures never reach the caller. A page that cannot be fetched or parsed
// has no neighbors; the cause is logged at Warn level along with every
// wrapped error beneath it. An href that cannot be resolved is logged and
// dropped without affecting the rest of the page.
type LinkGraph struct {
	Fetcher   bfscrawl.Fetcher
	Extractor bfscrawl.LinkExtractor
	Logger    *slog.Logger

	// Pages, if set, receives one record per fetch attempt, tagged with RunID.
	Pages bfscrawl.PageWriter
	RunID string

	position int
}

// AdjacentNodes fetches v and returns the links found on the page.
func (g *LinkGraph) AdjacentNodes(ctx context.Context, v string) []string {
	begin := time.Now()
	resp, links, err := g.links(ctx, v)
	g.record(ctx, v, resp, links, err)

	if err != nil {
		g.logFailure(v, err)
		return nil
	}

	g.logger().Info("links found",
		"url", v,
		"count", len(links),
		"duration", time.Since(begin),
	)
	return links
}

func (g *LinkGraph) links(ctx context.Context, v string) (*bfscrawl.Response, []string, error) {
	resp, err := g.Fetcher.Fetch(ctx, v)
	if err != nil {
		return nil, nil, err
	}

	extraction, err := g.Extractor.ExtractLinks(resp.Body, resp.URL)
	if err != nil {
		return resp, nil, err
	}

	for _, skipped := range extraction.Skipped {
		g.logger().Warn("skipping link",
			"url", v,
			"href", skipped.Href,
			"err", skipped.Err,
		)
	}

	return resp, extraction.Links, nil
}

// record writes the fetch attempt to the page log. Failures to record are
// logged and otherwise ignored.
func (g *LinkGraph) record(ctx context.Context, v string, resp *bfscrawl.Response, links []string, fetchErr error) {
	if g.Pages == nil {
		return
	}

	page := &bfscrawl.Page{
		RunID:     g.RunID,
		URL:       v,
		LinkCount: len(links),
		Position:  g.position,
	}
	g.position++

	if resp != nil {
		page.FinalURL = resp.URL
		page.StatusCode = resp.StatusCode
		page.ContentHash = computeHash(resp.Body)
	}
	if fetchErr != nil {
		page.Error = bfscrawl.ErrorMessage(fetchErr)
	}

	if err := g.Pages.CreatePage(ctx, page); err != nil {
		g.logger().Warn("record page", "url", v, "err", err)
	}
}

func (g *LinkGraph) logFailure(v string, err error) {
	logger := g.logger()
	logger.Warn("adjacency failed",
		"url", v,
		"code", bfscrawl.ErrorCode(err),
		"err", bfscrawl.ErrorMessage(err),
	)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		logger.Warn("error source", "url", v, "err", cause)
	}
}

func (g *LinkGraph) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Logger
}
