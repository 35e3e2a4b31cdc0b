package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/bfscrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bfscrawl.RunService = (*RunService)(nil)

// RunService implements bfscrawl.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run, assigning its ID and start time.
func (s *RunService) CreateRun(ctx context.Context, run *bfscrawl.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, start_url, started_at)
		VALUES (?, ?, ?)
	`, run.ID, run.StartURL, run.StartedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*bfscrawl.Run, error) {
	var run bfscrawl.Run
	var startedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, start_url, started_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.StartURL, &startedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, bfscrawl.Errorf(bfscrawl.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}

	return &run, nil
}
