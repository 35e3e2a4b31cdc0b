package mock

import (
	"context"

	"github.com/fwojciec/bfscrawl"
)

var _ bfscrawl.RunService = (*RunService)(nil)

// RunService is a mock implementation of bfscrawl.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *bfscrawl.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*bfscrawl.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *bfscrawl.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*bfscrawl.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

var _ bfscrawl.PageService = (*PageService)(nil)

// PageService is a mock implementation of bfscrawl.PageService.
type PageService struct {
	CreatePageFn func(ctx context.Context, page *bfscrawl.Page) error
	FindPagesFn  func(ctx context.Context, filter bfscrawl.PageFilter) ([]*bfscrawl.Page, error)
}

func (s *PageService) CreatePage(ctx context.Context, page *bfscrawl.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPages(ctx context.Context, filter bfscrawl.PageFilter) ([]*bfscrawl.Page, error) {
	return s.FindPagesFn(ctx, filter)
}
