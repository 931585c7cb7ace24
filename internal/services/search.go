package services

import (
	"context"
	"fmt"

	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/sheets"
)

// SearchService runs free-text search over the whole ledger
type SearchService struct {
	ledger sheets.LedgerReader
	logger *log.Logger
}

func NewSearchService(ledger sheets.LedgerReader, logger *log.Logger) *SearchService {
	return &SearchService{ledger: ledger, logger: logger.WithComponent(log.ComponentSearch)}
}

// Search returns the JSON array of records whose category or description
// contains query, case-insensitively.
func (s *SearchService) Search(ctx context.Context, query string) ([]byte, error) {
	l, err := s.ledger.ReadLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	out, err := core.Search(l.Rows(), query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	s.logger.DebugContext(ctx, "Search completed", log.FieldQuery, query, log.FieldRecords, l.Len())
	return out, nil
}
