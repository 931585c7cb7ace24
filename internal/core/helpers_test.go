package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

var allFields = []string{
	FieldOperationDate, FieldCardNumber, FieldOperationAmount,
	FieldPaymentAmount, FieldCategory, FieldDescription,
}

type row struct {
	date, card, category, description string
	amount, payment                   string
}

// ledgerOf builds a full-schema ledger. Empty card, category or description
// strings become null fields.
func ledgerOf(t *testing.T, rows ...row) Ledger {
	t.Helper()
	l := Ledger{Columns: allFields}
	for _, r := range rows {
		tx := Transaction{RawDate: r.date}
		tx.OperationDate, _ = ParseOperationDate(r.date)
		if r.card != "" {
			tx.CardNumber = String(r.card)
		}
		if r.category != "" {
			tx.Category = String(r.category)
		}
		if r.description != "" {
			tx.Description = String(r.description)
		}
		tx.OperationAmount = dec(t, r.amount)
		tx.PaymentAmount = dec(t, r.payment)
		l.Records = append(l.Records, tx)
	}
	return l
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}
