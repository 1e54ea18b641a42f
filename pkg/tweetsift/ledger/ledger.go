// Package ledger records every filtering-stage run so corpus removals
// stay reconstructable: which run, which stage, how many rows went in
// and out, the removal criterion, and where the removed subset was
// persisted.
package ledger

import (
	"context"
	"time"
)

// Entry is one recorded stage execution.
type Entry struct {
	RunID        string
	Stage        string
	Criterion    string
	Input        int
	Output       int
	Removed      int
	Skipped      int
	ArtifactPath string
	At           time.Time
}

// Store persists and queries stage entries.
type Store interface {
	Close() error

	Append(ctx context.Context, e Entry) error
	Entries(ctx context.Context, runID string) ([]Entry, error)
	Runs(ctx context.Context) ([]string, error)
}
