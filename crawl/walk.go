package crawl

import (
	"context"

	"github.com/fwojciec/bfscrawl"
)

// WalkOptions bounds and paces a walk.
type WalkOptions struct {
	// Max stops the walk after this many nodes. Zero means no limit.
	Max int

	// Pacer, if set, is waited on before each pull.
	Pacer bfscrawl.Pacer
}

// Walk pulls nodes from c and passes each to visit until the traversal is
// exhausted, Max nodes have been visited, visit returns an error, or the
// context is canceled while pacing. It returns the number of nodes visited.
//
// Walk never pulls more nodes than it visits, so no page past the last
// visited node is fetched.
func Walk[N comparable](ctx context.Context, c *Crawler[N], opts WalkOptions, visit func(N) error) (int, error) {
	count := 0
	for opts.Max <= 0 || count < opts.Max {
		if opts.Pacer != nil {
			if err := opts.Pacer.Wait(ctx); err != nil {
				return count, err
			}
		}

		v, ok := c.Next(ctx)
		if !ok {
			break
		}
		count++

		if err := visit(v); err != nil {
			return count, err
		}
	}
	return count, nil
}
