package crawl_test

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/fwojciec/bfscrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(c *crawl.Crawler[int]) []int {
	return slices.Collect(c.All(context.Background()))
}

func TestCrawler_BreadthFirstOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edges [][]int
		want  []int
	}{
		{
			name:  "cycle back to start",
			edges: [][]int{{1, 2}, {0, 3}, {3}, {2, 0}},
			want:  []int{0, 1, 2, 3},
		},
		{
			name:  "deeper node discovered after siblings",
			edges: [][]int{{1}, {0, 2, 4}, {0, 3}, {0}, {0}},
			want:  []int{0, 1, 2, 4, 3},
		},
		{
			name:  "duplicate neighbors emitted once",
			edges: [][]int{{1, 1, 2}, {2, 3}, {}, {}},
			want:  []int{0, 1, 2, 3},
		},
		{
			name:  "unreachable node never emitted",
			edges: [][]int{{1}, {}, {}},
			want:  []int{0, 1},
		},
		{
			name:  "single node without edges",
			edges: [][]int{{}},
			want:  []int{0},
		},
		{
			name:  "self loop",
			edges: [][]int{{0, 0, 1}, {1}},
			want:  []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			graph := &mock.AdjacencyList{Edges: tt.edges}
			c := crawl.New(0, graph)

			assert.Equal(t, tt.want, collect(c))
		})
	}
}

func TestCrawler_Next(t *testing.T) {
	t.Parallel()

	t.Run("returns false forever once exhausted", func(t *testing.T) {
		t.Parallel()

		graph := &mock.AdjacencyList{Edges: [][]int{{1}, {}}}
		c := crawl.New(0, graph)
		ctx := context.Background()

		v, ok := c.Next(ctx)
		require.True(t, ok)
		assert.Equal(t, 0, v)

		v, ok = c.Next(ctx)
		require.True(t, ok)
		assert.Equal(t, 1, v)

		for range 3 {
			v, ok = c.Next(ctx)
			assert.False(t, ok)
			assert.Zero(t, v)
		}
		assert.Equal(t, []int{0, 1}, graph.Calls)
	})

	t.Run("start node is emitted even when its adjacency fails", func(t *testing.T) {
		t.Parallel()

		graph := &mock.AdjacencyProvider[string]{
			AdjacentNodesFn: func(_ context.Context, _ string) []string {
				return nil // provider swallowed an error
			},
		}
		c := crawl.New("https://example.com/", graph)

		assert.Equal(t, []string{"https://example.com/"}, slices.Collect(c.All(context.Background())))
	})

	t.Run("failed node is marked visited and loses only its own edges", func(t *testing.T) {
		t.Parallel()

		// 1 fails, so 3 is only reachable through 2.
		edges := map[int][]int{0: {1, 2}, 1: {4}, 2: {3}, 3: {1}}
		var calls []int
		graph := &mock.AdjacencyProvider[int]{
			AdjacentNodesFn: func(_ context.Context, v int) []int {
				calls = append(calls, v)
				if v == 1 {
					return nil
				}
				return edges[v]
			},
		}
		c := crawl.New(0, graph)

		assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(c.All(context.Background())))
		assert.Equal(t, []int{0, 1, 2, 3}, calls, "1 must not be fetched again when 3 links to it")
	})

	t.Run("passes context to provider", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		var got any
		graph := &mock.AdjacencyProvider[int]{
			AdjacentNodesFn: func(ctx context.Context, _ int) []int {
				got = ctx.Value(key{})
				return nil
			},
		}

		_, ok := crawl.New(0, graph).Next(ctx)
		require.True(t, ok)
		assert.Equal(t, "v", got)
	})
}

func TestCrawler_IsLazy(t *testing.T) {
	t.Parallel()

	t.Run("prefix of k nodes makes k adjacency calls", func(t *testing.T) {
		t.Parallel()

		// Infinite graph: n -> {2n+1, 2n+2}.
		calls := 0
		graph := bfscrawl.AdjacencyFunc[int](func(_ context.Context, v int) []int {
			calls++
			return []int{2*v + 1, 2*v + 2}
		})
		c := crawl.New(0, graph)

		var got []int
		for v := range c.All(context.Background()) {
			got = append(got, v)
			if len(got) == 5 {
				break
			}
		}

		assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
		assert.Equal(t, 5, calls)
	})

	t.Run("no adjacency call before first pull", func(t *testing.T) {
		t.Parallel()

		graph := &mock.AdjacencyList{Edges: [][]int{{1}, {}}}
		c := crawl.New(0, graph)

		assert.Empty(t, graph.Calls)
		assert.Equal(t, 1, c.Pending())
		assert.Equal(t, 0, c.Visited())
	})

	t.Run("iteration resumes where a previous loop stopped", func(t *testing.T) {
		t.Parallel()

		graph := &mock.AdjacencyList{Edges: [][]int{{1, 2}, {3}, {}, {}}}
		c := crawl.New(0, graph)

		for range c.All(context.Background()) {
			break
		}
		assert.Equal(t, []int{1, 2, 3}, collect(c))
	})
}

func TestCrawler_EachReachableNodeExactlyOnce(t *testing.T) {
	t.Parallel()

	// Dense graph on 50 nodes: i -> {(i*7)%50, (i*11)%50, (i+1)%50, i}.
	const n = 50
	graph := bfscrawl.AdjacencyFunc[int](func(_ context.Context, v int) []int {
		return []int{(v * 7) % n, (v * 11) % n, (v + 1) % n, v}
	})
	c := crawl.New(0, graph)

	got := collect(c)

	require.Len(t, got, n)
	seen := make(map[int]bool)
	for _, v := range got {
		assert.False(t, seen[v], "node %d emitted twice", v)
		seen[v] = true
	}
	assert.Equal(t, n, c.Visited())
	assert.Equal(t, 0, c.Pending())
}

func TestCrawler_LevelsAreNonDecreasing(t *testing.T) {
	t.Parallel()

	edges := [][]int{{1, 2, 3}, {4, 5}, {5, 6}, {0, 7}, {8}, {}, {8, 9}, {9}, {}, {}}
	graph := &mock.AdjacencyList{Edges: edges}

	// Reference distances from 0.
	dist := map[int]int{0: 0}
	queue := []int{0}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range edges[v] {
			if _, ok := dist[u]; !ok {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}

	got := collect(crawl.New(0, graph))

	require.Len(t, got, len(dist))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, dist[got[i-1]], dist[got[i]], "order %v is not breadth-first", got)
	}
}

func TestCrawler_WithVisitedFilter(t *testing.T) {
	t.Parallel()

	t.Run("matches order without filter", func(t *testing.T) {
		t.Parallel()

		edges := [][]int{{1}, {0, 2, 4}, {0, 3}, {0}, {0}}
		c := crawl.New(0, &mock.AdjacencyList{Edges: edges},
			crawl.WithVisitedFilter(strconv.Itoa, 100, 0.01))

		assert.Equal(t, []int{0, 1, 2, 4, 3}, collect(c))
	})

	t.Run("stays exact under a saturated filter", func(t *testing.T) {
		t.Parallel()

		// A filter sized for 1 node answers "maybe" for nearly everything.
		const n = 200
		graph := bfscrawl.AdjacencyFunc[int](func(_ context.Context, v int) []int {
			if v+1 < n {
				return []int{v + 1}
			}
			return nil
		})
		c := crawl.New(0, graph, crawl.WithVisitedFilter(strconv.Itoa, 1, 0.5))

		got := collect(c)

		require.Len(t, got, n)
		for i, v := range got {
			assert.Equal(t, i, v)
		}
	})
}
