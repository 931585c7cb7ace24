package memory

import (
	"context"
	"sync"

	"finview/internal/core"
	ports "finview/internal/sheets"
)

// Store serves a ledger held in memory.
type Store struct {
	mu     sync.Mutex
	ledger core.Ledger
}

var _ ports.LedgerReader = (*Store)(nil)

func New(l core.Ledger) *Store {
	return &Store{ledger: l}
}

// NewFromValues builds a store from a values matrix with a header row.
func NewFromValues(values [][]interface{}) (*Store, error) {
	l, err := ports.ParseValues(values)
	if err != nil {
		return nil, err
	}
	return New(l), nil
}

// Replace swaps the served ledger.
func (s *Store) Replace(l core.Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = l
}

// ReadLedger returns a copy of the stored ledger.
func (s *Store) ReadLedger(_ context.Context) (core.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Clone(), nil
}
