// Package memledger is an in-memory ledger.Store for tests.
package memledger

import (
	"context"
	"sync"
	"time"

	"github.com/civiclens/tweetsift/pkg/tweetsift/ledger"
)

// Store keeps entries in memory in append order.
type Store struct {
	mu      sync.RWMutex
	entries []ledger.Entry
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements ledger.Store.
func (s *Store) Close() error { return nil }

// Append implements ledger.Store.
func (s *Store) Append(ctx context.Context, e ledger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.At.IsZero() {
		e.At = time.Now()
	}
	s.entries = append(s.entries, e)
	return nil
}

// Entries implements ledger.Store.
func (s *Store) Entries(ctx context.Context, runID string) ([]ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ledger.Entry
	for _, e := range s.entries {
		if e.RunID == runID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Runs implements ledger.Store.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var runs []string
	for i := len(s.entries) - 1; i >= 0; i-- {
		id := s.entries[i].RunID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		runs = append(runs, id)
	}
	return runs, nil
}
