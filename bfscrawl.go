// Package bfscrawl provides a breadth-first web crawler built on a generic,
// lazily evaluated graph traversal. A traversal pulls one node at a time,
// asking an AdjacencyProvider for the neighbors of each node it emits.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package bfscrawl

import "context"

// AdjacencyProvider maps a node to the nodes directly reachable from it.
//
// Implementations may perform arbitrary I/O but must never fail: any
// underlying error is reported out of band (logging) and the node
// contributes an empty neighbor list. Order is significant, since it breaks
// ties among siblings during traversal. Duplicates are allowed.
type AdjacencyProvider[N comparable] interface {
	AdjacentNodes(ctx context.Context, v N) []N
}

// AdjacencyFunc adapts an ordinary function to an AdjacencyProvider.
type AdjacencyFunc[N comparable] func(ctx context.Context, v N) []N

// AdjacentNodes calls f(ctx, v).
func (f AdjacencyFunc[N]) AdjacentNodes(ctx context.Context, v N) []N {
	return f(ctx, v)
}

// Pacer spaces out successive steps of a traversal.
type Pacer interface {
	// Wait blocks until the next step is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
