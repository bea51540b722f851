// Package store persists batch-run history in a local SQLite database.
// Each run row keeps the aggregate counts; per-file outcomes hang off it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	table_path  TEXT NOT NULL,
	total       INTEGER NOT NULL,
	success     INTEGER NOT NULL,
	not_found   INTEGER NOT NULL,
	errors      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_results (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id         TEXT NOT NULL REFERENCES runs(id),
	file_path      TEXT NOT NULL,
	file_name      TEXT NOT NULL,
	status         TEXT NOT NULL,
	extracted_name TEXT NOT NULL DEFAULT '',
	matched_name   TEXT NOT NULL DEFAULT '',
	impact_factor  REAL,
	match_type     TEXT NOT NULL DEFAULT '',
	similarity     REAL,
	message        TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id);
`

// Run is one recorded batch run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	TablePath  string
	Total      int
	Success    int
	NotFound   int
	Errors     int
}

// Store wraps the history database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the history database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records one batch report and returns the run ID.
func (s *Store) SaveRun(ctx context.Context, tablePath string, startedAt, finishedAt time.Time, report entity.BatchReport) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, table_path, total, success, not_found, errors)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, startedAt.UTC(), finishedAt.UTC(), tablePath,
		report.Total(),
		report.CountByStatus(constants.StatusSuccess),
		report.CountByStatus(constants.StatusNotFound),
		report.CountByStatus(constants.StatusError),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_results (run_id, file_path, file_name, status, extracted_name, matched_name, impact_factor, match_type, similarity, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare results: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range report.Results {
		o := r.Outcome
		var factor, similarity any
		if o.MatchedName != "" {
			factor = o.ImpactFactor
		}
		if o.Similarity != nil {
			similarity = *o.Similarity
		}
		if _, err := stmt.ExecContext(ctx,
			runID, r.FilePath, r.FileName, string(o.Status),
			o.ExtractedName, o.MatchedName, factor, string(o.MatchType),
			similarity, o.Message,
		); err != nil {
			return "", fmt.Errorf("insert result for %s: %w", r.FilePath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	s.logger.Info("history.run.saved", "run_id", runID, "files", report.Total())
	return runID, nil
}

// RecentRuns lists the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, table_path, total, success, not_found, errors
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.TablePath,
			&r.Total, &r.Success, &r.NotFound, &r.Errors); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
