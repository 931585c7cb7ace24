package core

import (
	"encoding/json"
	"testing"
)

func TestLedger_Has(t *testing.T) {
	l := Ledger{Columns: []string{FieldCategory, FieldOperationDate}}
	if !l.Has(FieldCategory) || !l.Has(FieldOperationDate, FieldCategory) {
		t.Error("expected present fields to be reported")
	}
	if l.Has(FieldCategory, FieldCardNumber) {
		t.Error("missing field reported as present")
	}
	if !l.Has() {
		t.Error("no fields requested should always succeed")
	}
}

func TestTransaction_Row(t *testing.T) {
	l := ledgerOf(t,
		row{date: "27.04.2020 19:30:30", card: "*7197", category: "Кафе", amount: "-12.30", payment: "-12.30"},
		row{date: "bad", amount: "1"},
	)
	l.Records[0].Extra = map[string]string{"Валюта операции": "RUB"}

	rows := l.Rows()
	first := rows[0].(map[string]any)
	if first[FieldOperationDate] != "27.04.2020 19:30:30" {
		t.Errorf("date = %v", first[FieldOperationDate])
	}
	if first[FieldOperationAmount] != json.Number("-12.3") {
		t.Errorf("amount = %v", first[FieldOperationAmount])
	}
	if first[FieldDescription] != nil {
		t.Errorf("null description should stay nil, got %v", first[FieldDescription])
	}
	if first["Валюта операции"] != "RUB" {
		t.Errorf("extra column lost: %v", first)
	}

	second := rows[1].(map[string]any)
	if second[FieldOperationDate] != "bad" {
		t.Errorf("unparsed date should keep its text, got %v", second[FieldOperationDate])
	}
	if second[FieldCardNumber] != nil {
		t.Errorf("missing card should be nil, got %v", second[FieldCardNumber])
	}
}
