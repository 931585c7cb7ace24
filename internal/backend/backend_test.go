package backend

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"finview/internal/config"
	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/sheets/excel"
	"finview/internal/sheets/memory"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"excel", Config{Type: ExcelBackend, LedgerPath: "data/operations.xlsx"}, ""},
		{"excel without path", Config{Type: ExcelBackend}, "ledger path is required"},
		{"sheets", Config{Type: SheetsBackend, GoogleSpreadsheetID: "id", GoogleServiceAccountJSON: "{}"}, ""},
		{"sheets without id", Config{Type: SheetsBackend, GoogleServiceAccountJSON: "{}"}, "Spreadsheet ID is required"},
		{"sheets without credentials", Config{Type: SheetsBackend, GoogleSpreadsheetID: "id"}, "must be provided"},
		{"memory", Config{Type: MemoryBackend}, ""},
		{"unknown", Config{Type: "sqlite"}, "invalid backend type: sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	c, err := FromAppConfig(&config.Config{LedgerBackend: "excel", LedgerPath: "a.xlsx", LedgerSheet: "Лист1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Type != ExcelBackend || c.LedgerPath != "a.xlsx" || c.LedgerSheet != "Лист1" {
		t.Errorf("config = %+v", c)
	}
	if got := strings.Join(Types(), ","); got != "excel,sheets,memory" {
		t.Errorf("Types() = %s", got)
	}
}

func TestFactory_CreateLedger(t *testing.T) {
	f := NewFactory(log.New(log.Config{Output: &bytes.Buffer{}}))

	r, err := f.CreateLedger(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := r.(*memory.Store); !ok {
		t.Fatalf("memory backend returned %T", r)
	}
	l, _ := r.ReadLedger(context.Background())
	if !l.Has(core.FieldOperationDate, core.FieldCardNumber, core.FieldDescription) || l.Len() != 0 {
		t.Errorf("empty ledger = %+v", l)
	}

	path := filepath.Join(t.TempDir(), "missing.xlsx")
	r, err = f.CreateLedger(context.Background(), Config{Type: ExcelBackend, LedgerPath: path})
	if err != nil {
		t.Fatalf("excel: %v", err)
	}
	if _, ok := r.(*excel.Reader); !ok {
		t.Fatalf("excel backend returned %T", r)
	}
	if _, err := r.ReadLedger(context.Background()); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing workbook error = %v", err)
	}

	if _, err := f.CreateLedger(context.Background(), Config{Type: "sqlite"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
