package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/bfscrawl/mock"
	bfsslog "github.com/fwojciec/bfscrawl/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingProvider_AdjacentNodes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.AdjacencyProvider[int]{
		AdjacentNodesFn: func(ctx context.Context, v int) []int {
			return []int{v + 1, v + 2}
		},
	}

	provider := bfsslog.NewLoggingProvider(inner, debugLogger(&buf))
	nodes := provider.AdjacentNodes(context.Background(), 7)

	assert.Equal(t, []int{8, 9}, nodes)
	output := buf.String()
	assert.Contains(t, output, "msg=\"adjacent nodes\"")
	assert.Contains(t, output, "node=7")
	assert.Contains(t, output, "count=2")
}
