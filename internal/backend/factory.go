package backend

import (
	"context"
	"fmt"

	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/sheets"
	"finview/internal/sheets/excel"
	gsheet "finview/internal/sheets/google"
	"finview/internal/sheets/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &DefaultFactory{logger: logger.WithComponent(log.ComponentLedger)}
}

// CreateLedger implements Factory.CreateLedger
func (f *DefaultFactory) CreateLedger(ctx context.Context, config Config) (sheets.LedgerReader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case ExcelBackend:
		f.logger.Info("Initialized excel ledger", log.FieldBackend, config.Type, "path", config.LedgerPath)
		return excel.New(config.LedgerPath, config.LedgerSheet), nil
	case SheetsBackend:
		return f.createSheetsLedger(ctx, config)
	case MemoryBackend:
		f.logger.Warn("Initialized empty memory ledger", log.FieldBackend, config.Type)
		return memory.New(EmptyLedger()), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSheetsLedger(ctx context.Context, config Config) (sheets.LedgerReader, error) {
	client, err := gsheet.New(ctx, gsheet.Options{
		SpreadsheetID:   config.GoogleSpreadsheetID,
		Range:           config.GoogleSheetRange,
		CredentialsJSON: config.GoogleServiceAccountJSON,
		CredentialsFile: config.GoogleServiceAccountFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets ledger: %w", err)
	}
	f.logger.Info("Initialized Google Sheets ledger", log.FieldBackend, config.Type, "range", config.GoogleSheetRange)
	return client, nil
}

// EmptyLedger returns a ledger with the full schema and no records.
func EmptyLedger() core.Ledger {
	return core.Ledger{Columns: []string{
		core.FieldOperationDate,
		core.FieldCardNumber,
		core.FieldOperationAmount,
		core.FieldPaymentAmount,
		core.FieldCategory,
		core.FieldDescription,
	}}
}
