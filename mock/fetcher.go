package mock

import (
	"context"

	"github.com/fwojciec/bfscrawl"
)

var _ bfscrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bfscrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*bfscrawl.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*bfscrawl.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
