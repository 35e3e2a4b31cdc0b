package mock

import (
	"context"

	"github.com/fwojciec/bfscrawl"
)

var _ bfscrawl.AdjacencyProvider[int] = (*AdjacencyProvider[int])(nil)

// AdjacencyProvider is a mock implementation of bfscrawl.AdjacencyProvider.
type AdjacencyProvider[N comparable] struct {
	AdjacentNodesFn func(ctx context.Context, v N) []N
}

func (p *AdjacencyProvider[N]) AdjacentNodes(ctx context.Context, v N) []N {
	return p.AdjacentNodesFn(ctx, v)
}

// AdjacencyList is an in-memory graph where node i's neighbors are
// AdjacencyList[i]. Nodes outside the list have no neighbors.
// Calls records every node passed to AdjacentNodes, in order.
type AdjacencyList struct {
	Edges [][]int
	Calls []int
}

func (l *AdjacencyList) AdjacentNodes(_ context.Context, v int) []int {
	l.Calls = append(l.Calls, v)
	if v < 0 || v >= len(l.Edges) {
		return nil
	}
	return l.Edges[v]
}

var _ bfscrawl.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of bfscrawl.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
