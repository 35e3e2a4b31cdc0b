// Package crawl implements lazy breadth-first traversal over any graph
// exposed as a bfscrawl.AdjacencyProvider, along with the web adjacency
// provider that turns pages into nodes and anchor links into edges.
package crawl

import (
	"context"
	"iter"

	"github.com/fwojciec/bfscrawl"
)

// Crawler emits the nodes reachable from a start node in breadth-first
// order, one node per call to Next. Each distinct node is emitted once.
//
// A Crawler is single-use: once exhausted it stays exhausted, and a fresh
// traversal needs a new Crawler. It is not safe for concurrent use.
type Crawler[N comparable] struct {
	graph    bfscrawl.AdjacencyProvider[N]
	frontier *Frontier[N]
	visited  *VisitedSet[N]
}

// Option configures a Crawler.
type Option[N comparable] func(*Crawler[N])

// WithVisitedFilter puts a Bloom filter sized for n nodes in front of the
// visited set. key must map distinct nodes to distinct strings.
// Membership answers stay exact; the filter only short-circuits lookups of
// nodes that were never visited.
func WithVisitedFilter[N comparable](key func(N) string, n uint, fpRate float64) Option[N] {
	return func(c *Crawler[N]) {
		c.visited = NewVisitedSet(withBloom(key, n, fpRate))
	}
}

// New creates a Crawler that starts at start and expands nodes using graph.
func New[N comparable](start N, graph bfscrawl.AdjacencyProvider[N], opts ...Option[N]) *Crawler[N] {
	c := &Crawler[N]{
		graph:    graph,
		frontier: NewFrontier[N](),
		visited:  NewVisitedSet[N](),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.frontier.Push(start)
	return c
}

// Next returns the next unvisited node, after queueing its neighbors.
// The bool result is false once every reachable node has been emitted;
// further calls keep returning false.
//
// Next calls the adjacency provider exactly once per emitted node, and
// never for a node that was already emitted.
func (c *Crawler[N]) Next(ctx context.Context) (N, bool) {
	for {
		v, ok := c.frontier.Pop()
		if !ok {
			var zero N
			return zero, false
		}
		if c.visited.Contains(v) {
			continue
		}

		for _, u := range c.graph.AdjacentNodes(ctx, v) {
			// Pop re-checks, so this only keeps the queue short.
			if !c.visited.Contains(u) {
				c.frontier.Push(u)
			}
		}

		c.visited.Add(v)
		return v, true
	}
}

// All returns an iterator over the remaining nodes. Breaking out of the
// loop leaves the Crawler where it stopped; nothing further is fetched.
func (c *Crawler[N]) All(ctx context.Context) iter.Seq[N] {
	return func(yield func(N) bool) {
		for {
			v, ok := c.Next(ctx)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Visited returns the number of nodes emitted so far.
func (c *Crawler[N]) Visited() int {
	return c.visited.Len()
}

// Pending returns the number of queued entries, duplicates included.
func (c *Crawler[N]) Pending() int {
	return c.frontier.Len()
}
