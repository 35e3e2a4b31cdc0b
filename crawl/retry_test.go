package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/fwojciec/bfscrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("single attempt without delays", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		f := crawl.NewRetryFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*bfscrawl.Response, error) {
				attempts++
				return nil, errors.New("network error")
			},
		}, nil, nil)

		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		f := crawl.NewRetryFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, u string) (*bfscrawl.Response, error) {
				attempts++
				if attempts < 3 {
					return nil, errors.New("temporary error")
				}
				return &bfscrawl.Response{URL: u, StatusCode: 200, Body: "<html>ok</html>"}, nil
			},
		}, []time.Duration{0, 0, 0}, nil)

		resp, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", resp.Body)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error after all retries", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		f := crawl.NewRetryFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*bfscrawl.Response, error) {
				attempts++
				return nil, bfscrawl.Errorf(bfscrawl.EUPSTREAM, "HTTP 503 attempt %d", attempts)
			},
		}, []time.Duration{0, 0}, nil)

		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, "HTTP 503 attempt 3", bfscrawl.ErrorMessage(err))
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		f := crawl.NewRetryFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*bfscrawl.Response, error) {
				attempts++
				cancel()
				return nil, errors.New("error")
			},
		}, []time.Duration{time.Hour}, nil)

		_, err := f.Fetch(ctx, "https://example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		f := crawl.NewRetryFetcher(&mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}, nil, nil)

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
