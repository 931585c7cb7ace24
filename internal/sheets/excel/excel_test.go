package excel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"finview/internal/core"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "operations.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	return path
}

func TestReadLedger(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Дата операции", "Номер карты", "Статус", "Сумма операции", "Сумма платежа", "Категория", "Описание"},
		{"31.12.2021 16:44:00", "*7197", "OK", "-160,89", "-160,89", "Супермаркеты", "Колхоз"},
		{"31.12.2021 16:42:04", "", "OK", "-64,00", "-64,00", "Супермаркеты", "Колхоз"},
	})

	l, err := New(path, "").ReadLedger(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("got %d records, want 2", l.Len())
	}
	if !l.Has(core.FieldOperationDate, core.FieldCardNumber, core.FieldPaymentAmount, core.FieldDescription) {
		t.Fatalf("schema incomplete: %v", l.Columns)
	}
	first := l.Records[0]
	if first.OperationAmount.String() != "-160.89" || *first.CardNumber != "*7197" {
		t.Errorf("unexpected first record %+v", first)
	}
	if first.Extra["Статус"] != "OK" {
		t.Errorf("extra column lost: %v", first.Extra)
	}
	if l.Records[1].CardNumber != nil {
		t.Errorf("empty card cell should be null")
	}
}

func TestReadLedger_FormattedAmounts(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	header := []any{"Дата операции", "Номер карты", "Сумма операции", "Сумма платежа", "Описание"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatal(err)
	}
	row := []any{"31.12.2021 16:44:00", "*7197", -1234.5, 1234.5, "Ноутбук"}
	if err := f.SetSheetRow("Sheet1", "A2", &row); err != nil {
		t.Fatal(err)
	}
	style, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellStyle("Sheet1", "C2", "D2", style); err != nil {
		t.Fatal(err)
	}
	shown, err := f.GetCellValue("Sheet1", "C2")
	if err != nil || shown != "-1,234.50" {
		t.Fatalf("display text = %q, %v", shown, err)
	}
	path := filepath.Join(t.TempDir(), "formatted.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	l, err := New(path, "").ReadLedger(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := l.Records[0]
	if got.OperationAmount.String() != "-1234.5" || got.PaymentAmount.String() != "1234.5" {
		t.Fatalf("amounts = %s / %s, want -1234.5 / 1234.5", got.OperationAmount, got.PaymentAmount)
	}
	if got.OperationDate.IsEmpty() || *got.CardNumber != "*7197" {
		t.Errorf("non-amount cells changed: %+v", got)
	}
}

func TestReadLedger_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Операции", [][]any{
		{"Дата операции", "Сумма операции"},
		{"01.01.2022 10:00:00", "5"},
	})
	l, err := New(path, "Операции").ReadLedger(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("got %d records", l.Len())
	}

	if _, err := New(path, "Missing").ReadLedger(context.Background()); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("missing sheet: error = %v, want ErrNotFound", err)
	}
}

func TestReadLedger_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := New(filepath.Join(dir, "missing.xlsx"), "").ReadLedger(context.Background())
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("missing file: error = %v, want ErrNotFound", err)
	}

	corrupt := filepath.Join(dir, "corrupt.xlsx")
	if err := os.WriteFile(corrupt, []byte("not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = New(corrupt, "").ReadLedger(context.Background())
	if !errors.Is(err, core.ErrInvalidFormat) {
		t.Fatalf("corrupt file: error = %v, want ErrInvalidFormat", err)
	}
}
