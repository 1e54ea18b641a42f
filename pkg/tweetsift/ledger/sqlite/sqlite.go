// Package sqlite persists the audit ledger in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/civiclens/tweetsift/pkg/tweetsift/ledger"
)

// sqliteStore implements ledger.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a ledger database with WAL mode enabled.
func Open(ctx context.Context, path string) (ledger.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS stage_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	stage TEXT NOT NULL,
	criterion TEXT,
	input_rows INTEGER NOT NULL,
	output_rows INTEGER NOT NULL,
	removed_rows INTEGER NOT NULL,
	skipped_rows INTEGER NOT NULL DEFAULT 0,
	artifact_path TEXT,
	recorded_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stage_runs_run ON stage_runs(run_id);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Append records one stage execution.
func (s *sqliteStore) Append(ctx context.Context, e ledger.Entry) error {
	const stmt = `
INSERT INTO stage_runs (run_id, stage, criterion, input_rows, output_rows, removed_rows, skipped_rows, artifact_path, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx, stmt,
		e.RunID, e.Stage, e.Criterion,
		e.Input, e.Output, e.Removed, e.Skipped,
		e.ArtifactPath, at.UTC().Format(time.RFC3339))
	return err
}

// Entries returns the stage entries of one run in recorded order.
func (s *sqliteStore) Entries(ctx context.Context, runID string) ([]ledger.Entry, error) {
	const stmt = `
SELECT run_id, stage, criterion, input_rows, output_rows, removed_rows, skipped_rows, artifact_path, recorded_at
FROM stage_runs WHERE run_id = ? ORDER BY id;
`
	rows, err := s.db.QueryContext(ctx, stmt, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		var recordedAt string
		if err := rows.Scan(&e.RunID, &e.Stage, &e.Criterion,
			&e.Input, &e.Output, &e.Removed, &e.Skipped,
			&e.ArtifactPath, &recordedAt); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339, recordedAt); err == nil {
			e.At = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Runs returns all distinct run IDs, newest first.
func (s *sqliteStore) Runs(ctx context.Context) ([]string, error) {
	const stmt = `SELECT run_id FROM stage_runs GROUP BY run_id ORDER BY MAX(id) DESC;`
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		runs = append(runs, id)
	}
	return runs, rows.Err()
}
