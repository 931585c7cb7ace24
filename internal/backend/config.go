package backend

import (
	"fmt"

	"finview/internal/config"
)

// Config holds what is needed to open a ledger source
type Config struct {
	Type Type

	// Excel specific
	LedgerPath  string
	LedgerSheet string

	// Google Sheets specific
	GoogleSpreadsheetID      string
	GoogleSheetRange         string
	GoogleServiceAccountFile string
	GoogleServiceAccountJSON string
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}
	c := Config{
		Type:                     Type(appConfig.LedgerBackend),
		LedgerPath:               appConfig.LedgerPath,
		LedgerSheet:              appConfig.LedgerSheet,
		GoogleSpreadsheetID:      appConfig.GoogleSpreadsheetID,
		GoogleSheetRange:         appConfig.GoogleSheetRange,
		GoogleServiceAccountFile: appConfig.GoogleServiceAccountFile,
		GoogleServiceAccountJSON: appConfig.GoogleServiceAccountJSON,
	}
	return c, c.Validate()
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	switch c.Type {
	case ExcelBackend:
		if c.LedgerPath == "" {
			return fmt.Errorf("ledger path is required for excel backend")
		}
	case SheetsBackend:
		if c.GoogleSpreadsheetID == "" {
			return fmt.Errorf("Google Spreadsheet ID is required for sheets backend")
		}
		if c.GoogleServiceAccountFile == "" && c.GoogleServiceAccountJSON == "" {
			return fmt.Errorf("either GoogleServiceAccountFile or GoogleServiceAccountJSON must be provided for sheets backend")
		}
	case MemoryBackend:
	default:
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	return nil
}

// Types returns all valid backend type strings
func Types() []string {
	return []string{ExcelBackend.String(), SheetsBackend.String(), MemoryBackend.String()}
}
