package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/civiclens/tweetsift/pkg/tweetsift/ledger"
)

func TestSQLiteLedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	s, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	at := time.Date(2020, 11, 3, 12, 0, 0, 0, time.UTC)
	want := ledger.Entry{
		RunID:        "01HRUN",
		Stage:        "bot",
		Criterion:    "author post count > 0.995 quantile",
		Input:        1099,
		Output:       99,
		Removed:      1000,
		ArtifactPath: "data/processed/01HRUN_bots_removed.csv",
		At:           at,
	}
	if err := s.Append(ctx, want); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := s.Entries(ctx, "01HRUN")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	e := got[0]
	if e.Stage != want.Stage || e.Input != want.Input || e.Output != want.Output ||
		e.Removed != want.Removed || e.ArtifactPath != want.ArtifactPath {
		t.Errorf("entry = %+v, want %+v", e, want)
	}
	if !e.At.Equal(at) {
		t.Errorf("At = %v, want %v", e.At, at)
	}
}

func TestSQLiteLedgerRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	for _, run := range []string{"first", "second", "third"} {
		if err := s.Append(ctx, ledger.Entry{RunID: run, Stage: "language"}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 3 || runs[0] != "third" || runs[2] != "first" {
		t.Errorf("runs = %v, want [third second first]", runs)
	}
}

func TestSQLiteLedgerReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	s, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Append(ctx, ledger.Entry{RunID: "r", Stage: "noise", Input: 10, Output: 9, Removed: 1}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.Entries(ctx, "r")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(got) != 1 || got[0].Removed != 1 {
		t.Errorf("entries after reopen = %+v", got)
	}
}
