package core

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of payments shown on the home page.
const DefaultTopN = 5

// TopTransaction is the display shape of a ranked payment.
type TopTransaction struct {
	Date        string
	Amount      decimal.Decimal
	Category    *string
	Description *string
}

// MarshalJSON renders the amount as a JSON number and null text as null.
func (t TopTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date        string      `json:"date"`
		Amount      json.Number `json:"amount"`
		Category    *string     `json:"category"`
		Description *string     `json:"description"`
	}{
		Date:        t.Date,
		Amount:      json.Number(t.Amount.String()),
		Category:    t.Category,
		Description: t.Description,
	})
}

// TopN returns the n records with the largest payment amount, largest first.
// Equal amounts keep their ledger order. Records without a parseable
// operation date are not ranked.
func TopN(l Ledger, n int) ([]TopTransaction, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must not be negative, got %d", ErrInvalidArgument, n)
	}
	if !l.Has(FieldOperationDate, FieldPaymentAmount, FieldCategory, FieldDescription) {
		return nil, fmt.Errorf("%w: ledger needs %s, %s, %s and %s fields", ErrInvalidArgument,
			FieldOperationDate, FieldPaymentAmount, FieldCategory, FieldDescription)
	}

	ranked := make([]Transaction, 0, len(l.Records))
	for _, t := range l.Records {
		if t.OperationDate.IsEmpty() {
			continue
		}
		ranked = append(ranked, t)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PaymentAmount.GreaterThan(ranked[j].PaymentAmount)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]TopTransaction, 0, len(ranked))
	for _, t := range ranked {
		out = append(out, TopTransaction{
			Date:        t.OperationDate.Format(DisplayDateLayout),
			Amount:      t.PaymentAmount,
			Category:    copyString(t.Category),
			Description: copyString(t.Description),
		})
	}
	return out, nil
}
