package core

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/shopspring/decimal"
)

// Canonical field names of a ledger record.
const (
	FieldOperationDate   = "operation_date"
	FieldCardNumber      = "card_number"
	FieldOperationAmount = "operation_amount"
	FieldPaymentAmount   = "payment_amount"
	FieldCategory        = "category"
	FieldDescription     = "description"
)

// Display layouts used by the ledger export and by the summary views.
const (
	LedgerTimeLayout   = "02.01.2006 15:04:05"
	DisplayDateLayout  = "02.01.2006"
	ReferenceLayout    = "2006-01-02 15:04:05"
	ReferenceDayLayout = "2006-01-02"
)

type (
	// Date is an operation timestamp. The zero value stands for a missing or
	// unparseable date.
	Date struct {
		time.Time
	}

	Transaction struct {
		OperationDate   Date
		RawDate         string
		CardNumber      *string
		OperationAmount decimal.Decimal
		PaymentAmount   decimal.Decimal
		Category        *string
		Description     *string
		// Extra holds source columns that have no canonical field.
		Extra map[string]string
	}

	// Ledger is an ordered batch of transactions together with the set of
	// canonical fields the source actually provided.
	Ledger struct {
		Columns []string
		Records []Transaction
	}
)

// NewDate creates a Date from its calendar and clock parts in UTC.
func NewDate(year, month, day, hour, min, sec int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)}
}

// IsEmpty reports whether the date is missing.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// Has reports whether every named field is part of the ledger schema.
func (l Ledger) Has(fields ...string) bool {
	for _, f := range fields {
		found := false
		for _, c := range l.Columns {
			if c == f {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Len returns the number of records.
func (l Ledger) Len() int {
	return len(l.Records)
}

// derive returns a ledger sharing the schema of l with the given records.
func (l Ledger) derive(records []Transaction) Ledger {
	return Ledger{
		Columns: append([]string(nil), l.Columns...),
		Records: records,
	}
}

// Rows converts the ledger into row dictionaries keyed by field name. Null
// fields are kept as nil values; extra columns are carried as text.
func (l Ledger) Rows() []any {
	rows := make([]any, 0, len(l.Records))
	for _, t := range l.Records {
		rows = append(rows, t.Row())
	}
	return rows
}

// Row renders a single transaction as a row dictionary.
func (t Transaction) Row() map[string]any {
	row := make(map[string]any, 6+len(t.Extra))
	for k, v := range t.Extra {
		row[k] = v
	}
	if t.OperationDate.IsEmpty() {
		if t.RawDate != "" {
			row[FieldOperationDate] = t.RawDate
		} else {
			row[FieldOperationDate] = nil
		}
	} else {
		row[FieldOperationDate] = t.OperationDate.Format(LedgerTimeLayout)
	}
	row[FieldCardNumber] = stringOrNil(t.CardNumber)
	row[FieldOperationAmount] = json.Number(t.OperationAmount.String())
	row[FieldPaymentAmount] = json.Number(t.PaymentAmount.String())
	row[FieldCategory] = stringOrNil(t.Category)
	row[FieldDescription] = stringOrNil(t.Description)
	return row
}

// clone returns a copy of t that shares no text or extra columns with it.
func (t Transaction) clone() Transaction {
	t.CardNumber = copyString(t.CardNumber)
	t.Category = copyString(t.Category)
	t.Description = copyString(t.Description)
	t.Extra = maps.Clone(t.Extra)
	return t
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	records := make([]Transaction, len(l.Records))
	for i, t := range l.Records {
		records[i] = t.clone()
	}
	return l.derive(records)
}

// String returns a pointer to s, for building records with optional text.
func String(s string) *string {
	return &s
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	return String(*p)
}

func stringOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
