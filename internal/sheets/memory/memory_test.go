package memory

import (
	"context"
	"errors"
	"testing"

	"finview/internal/core"
)

func TestStoreReadLedgerReturnsCopy(t *testing.T) {
	s, err := NewFromValues([][]interface{}{
		{"Дата операции", "Сумма операции", "Категория"},
		{"01.01.2022 10:00:00", "-5,50", "Кафе"},
		{"", "", ""},
		{"02.01.2022 10:00:00", "7", "Такси"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l, err := s.ReadLedger(context.Background())
	if err != nil || l.Len() != 2 {
		t.Fatalf("unexpected ledger: len=%d err=%v", l.Len(), err)
	}
	l.Records[0].Category = core.String("changed")
	l.Columns[0] = "changed"

	other, _ := s.ReadLedger(context.Background())
	*other.Records[1].Category = "changed"

	again, _ := s.ReadLedger(context.Background())
	if *again.Records[0].Category != "Кафе" || *again.Records[1].Category != "Такси" || again.Columns[0] != core.FieldOperationDate {
		t.Fatalf("store mutated through returned ledger: %+v", again)
	}
}

func TestStoreReplace(t *testing.T) {
	s := New(core.Ledger{})
	s.Replace(core.Ledger{Columns: []string{core.FieldCategory}, Records: make([]core.Transaction, 3)})
	l, _ := s.ReadLedger(context.Background())
	if l.Len() != 3 {
		t.Fatalf("got %d records after replace", l.Len())
	}
}

func TestNewFromValuesRejectsUnknownHeader(t *testing.T) {
	_, err := NewFromValues([][]interface{}{{"foo", "bar"}, {"1", "2"}})
	if !errors.Is(err, core.ErrInvalidFormat) {
		t.Fatalf("error = %v, want ErrInvalidFormat", err)
	}
}
