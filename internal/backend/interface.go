package backend

import (
	"context"

	"finview/internal/sheets"
)

// Factory creates the ledger source described by a Config
type Factory interface {
	CreateLedger(ctx context.Context, config Config) (sheets.LedgerReader, error)
}

// Type represents the kind of ledger source
type Type string

const (
	ExcelBackend  Type = "excel"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known
func (t Type) IsValid() bool {
	switch t {
	case ExcelBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
