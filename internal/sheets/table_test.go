package sheets

import (
	"errors"
	"testing"

	"finview/internal/core"
)

func TestParseValues(t *testing.T) {
	values := [][]interface{}{
		{"Дата операции", "Дата платежа", "Номер карты", "Статус", "Сумма операции", "Валюта операции", "Сумма платежа", "Категория", "Описание"},
		{"31.12.2021 16:44:00", "31.12.2021", "*7197", "OK", "-160,89", "RUB", "-160,89", "Супермаркеты", "Колхоз"},
		{"bad date", "", "nan", "OK", "oops", "RUB", "-64.00", "", "Перевод"},
		{nil, nil, nil},
		{"30.12.2021 10:00:00", "", "", "OK", "100"},
	}
	l, err := ParseValues(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		core.FieldOperationDate, core.FieldCardNumber, core.FieldOperationAmount,
		core.FieldPaymentAmount, core.FieldCategory, core.FieldDescription,
	}
	if len(l.Columns) != len(want) {
		t.Fatalf("columns = %v, want %v", l.Columns, want)
	}
	for i := range want {
		if l.Columns[i] != want[i] {
			t.Fatalf("columns = %v, want %v", l.Columns, want)
		}
	}
	if l.Len() != 3 {
		t.Fatalf("got %d records, want 3", l.Len())
	}

	first := l.Records[0]
	if first.OperationDate.IsEmpty() || first.OperationAmount.String() != "-160.89" {
		t.Errorf("unexpected first record %+v", first)
	}
	if first.Extra["Валюта операции"] != "RUB" || first.Extra["Дата платежа"] != "31.12.2021" {
		t.Errorf("extra columns = %v", first.Extra)
	}

	second := l.Records[1]
	if !second.OperationDate.IsEmpty() || second.RawDate != "bad date" {
		t.Errorf("bad date should leave the record undated, got %+v", second.OperationDate)
	}
	if second.CardNumber != nil || second.Category != nil {
		t.Errorf("nan and empty cells should be null")
	}
	if !second.OperationAmount.IsZero() || second.PaymentAmount.String() != "-64" {
		t.Errorf("amounts = %s / %s", second.OperationAmount, second.PaymentAmount)
	}

	third := l.Records[2]
	if third.Description != nil || !third.PaymentAmount.IsZero() {
		t.Errorf("short row should leave trailing fields empty: %+v", third)
	}
}

func TestParseValues_Errors(t *testing.T) {
	if _, err := ParseValues(nil); !errors.Is(err, core.ErrInvalidFormat) {
		t.Errorf("no rows: error = %v", err)
	}
	if _, err := ParseValues([][]interface{}{{"a", "b"}}); !errors.Is(err, core.ErrInvalidFormat) {
		t.Errorf("unknown header: error = %v", err)
	}
}

func TestParseValues_EnglishHeaders(t *testing.T) {
	l, err := ParseValues([][]interface{}{
		{"Date", "Card", "Amount", "Payment_Amount", "Category", "Description"},
		{"2021-12-31 16:44:00", "1234", "1.5", "1.5", "Food", "Lunch"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Has(core.FieldOperationDate, core.FieldPaymentAmount) || l.Records[0].OperationDate.IsEmpty() {
		t.Fatalf("english headers not mapped: %+v", l)
	}
}

func TestFieldFor(t *testing.T) {
	cases := []struct {
		header string
		field  string
		amount bool
	}{
		{" Сумма платежа ", core.FieldPaymentAmount, true},
		{"Сумма операции", core.FieldOperationAmount, true},
		{"Дата операции", core.FieldOperationDate, false},
	}
	for _, tc := range cases {
		f, ok := FieldFor(tc.header)
		if !ok || f != tc.field || IsAmountField(f) != tc.amount {
			t.Errorf("FieldFor(%q) = %q, %v", tc.header, f, ok)
		}
	}
	if _, ok := FieldFor("Статус"); ok {
		t.Error("unknown header mapped to a field")
	}
}
