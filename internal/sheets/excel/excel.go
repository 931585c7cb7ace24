// Package excel reads the transaction ledger from an .xlsx bank export.
package excel

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"finview/internal/core"
	ports "finview/internal/sheets"
)

// Reader loads a ledger from a workbook on disk.
type Reader struct {
	path  string
	sheet string
}

// Ensure interface conformance
var _ ports.LedgerReader = (*Reader)(nil)

// New returns a reader for the workbook at path. An empty sheet name selects
// the first sheet of the workbook.
func New(path, sheet string) *Reader {
	return &Reader{path: path, sheet: sheet}
}

// ReadLedger implements sheets.LedgerReader.
func (r *Reader) ReadLedger(ctx context.Context) (core.Ledger, error) {
	if _, err := os.Stat(r.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Ledger{}, fmt.Errorf("%w: ledger file %s", core.ErrNotFound, r.path)
		}
		return core.Ledger{}, fmt.Errorf("stat ledger file: %w", err)
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return core.Ledger{}, fmt.Errorf("%w: open %s: %v", core.ErrInvalidFormat, r.path, err)
	}
	defer f.Close()

	sheet, err := r.sheetName(f)
	if err != nil {
		return core.Ledger{}, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return core.Ledger{}, fmt.Errorf("%w: read sheet %q: %v", core.ErrInvalidFormat, sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return core.Ledger{}, fmt.Errorf("%w: read sheet %q: %v", core.ErrInvalidFormat, sheet, err)
	}
	useRawAmounts(rows, raw)

	l, err := ports.ParseValues(ports.StringRows(rows))
	if err != nil {
		return core.Ledger{}, fmt.Errorf("parse %s: %w", r.path, err)
	}
	slog.InfoContext(ctx, "Ledger loaded from workbook",
		"path", r.path,
		"sheet", sheet,
		"records", l.Len(),
		"columns", l.Columns)
	return l, nil
}

func (r *Reader) sheetName(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook %s has no sheets", core.ErrInvalidFormat, r.path)
	}
	if r.sheet == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == r.sheet {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: sheet %q in %s", core.ErrNotFound, r.sheet, r.path)
}

// useRawAmounts replaces the display text of amount columns with the stored
// cell values, so number formats such as "#,##0.00" do not reach the amount
// parser. Dates keep their display text.
func useRawAmounts(rows, raw [][]string) {
	if len(rows) == 0 {
		return
	}
	var cols []int
	for i, h := range rows[0] {
		if f, ok := ports.FieldFor(h); ok && ports.IsAmountField(f) {
			cols = append(cols, i)
		}
	}
	for r := 1; r < len(rows) && r < len(raw); r++ {
		for _, c := range cols {
			if c < len(rows[r]) && c < len(raw[r]) {
				rows[r][c] = raw[r][c]
			}
		}
	}
}
