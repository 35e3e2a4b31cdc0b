package bfscrawl

import (
	"context"
	"time"
)

// Run represents one crawl recorded in the crawl log.
type Run struct {
	ID        string    `json:"id"`
	StartURL  string    `json:"startUrl"`
	StartedAt time.Time `json:"startedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.StartURL == "" {
		return Errorf(EINVALID, "run start URL required")
	}
	return nil
}

// Page represents one fetch attempt made during a run.
// Failed fetches are recorded too, with Error set and no links.
type Page struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	URL         string    `json:"url"`
	FinalURL    string    `json:"finalUrl"`
	StatusCode  int       `json:"statusCode"`
	LinkCount   int       `json:"linkCount"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	Error       string    `json:"error"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.RunID == "" {
		return Errorf(EINVALID, "page run ID required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// RunService represents a service for managing crawl runs.
type RunService interface {
	// CreateRun creates a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)
}

// PageWriter records fetch attempts.
type PageWriter interface {
	CreatePage(ctx context.Context, page *Page) error
}

// PageService represents a service for managing recorded pages.
type PageService interface {
	PageWriter

	// FindPages retrieves pages matching the filter, ordered by position.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	RunID *string `json:"runId"`
	URL   *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
