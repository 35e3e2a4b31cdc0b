package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/bfscrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bfscrawl.PageService = (*PageService)(nil)

// PageService implements bfscrawl.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// CreatePage records a fetch attempt. ID and FetchedAt are assigned here.
// Returns ENOTFOUND if the page's run does not exist.
func (s *PageService) CreatePage(ctx context.Context, page *bfscrawl.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE id = ?", page.RunID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return bfscrawl.Errorf(bfscrawl.ENOTFOUND, "run not found")
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, run_id, url, final_url, status_code, link_count, content_hash, position, error, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.RunID, page.URL, page.FinalURL, page.StatusCode, page.LinkCount,
		page.ContentHash, page.Position, page.Error, page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPages retrieves pages matching the filter, ordered by position.
func (s *PageService) FindPages(ctx context.Context, filter bfscrawl.PageFilter) ([]*bfscrawl.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, run_id, url, final_url, status_code, link_count, content_hash, position, error, fetched_at
		FROM pages WHERE 1=1`)

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY position ASC, fetched_at ASC")
	// SQLite rejects OFFSET without LIMIT.
	if filter.Offset > 0 && filter.Limit <= 0 {
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*bfscrawl.Page
	for rows.Next() {
		var page bfscrawl.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.RunID, &page.URL, &page.FinalURL, &page.StatusCode,
			&page.LinkCount, &page.ContentHash, &page.Position, &page.Error, &fetchedAt); err != nil {
			return nil, err
		}

		page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}
