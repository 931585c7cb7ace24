package sheets

import (
	"context"

	"finview/internal/core"
)

// Ports for inbound ledger sources.
type (
	// LedgerReader loads the whole transaction ledger. Implementations return
	// core.ErrNotFound when the source does not exist and core.ErrInvalidFormat
	// when it cannot be read as a ledger.
	LedgerReader interface {
		ReadLedger(ctx context.Context) (core.Ledger, error)
	}
)
