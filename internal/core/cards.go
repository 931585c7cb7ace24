package core

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CardSummary is the per-card total of a ledger.
type CardSummary struct {
	LastDigits string
	TotalSpent decimal.Decimal
	Cashback   decimal.Decimal
}

// MarshalJSON renders amounts as JSON numbers with two decimals.
func (c CardSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		LastDigits string      `json:"last_digits"`
		TotalSpent json.Number `json:"total_spent"`
		Cashback   json.Number `json:"cashback"`
	}{
		LastDigits: c.LastDigits,
		TotalSpent: json.Number(c.TotalSpent.StringFixed(2)),
		Cashback:   json.Number(c.Cashback.StringFixed(2)),
	})
}

// AggregateByCard sums operation amounts per card number. Records without a
// card number form their own group. Groups appear in first-seen order.
func AggregateByCard(l Ledger) ([]CardSummary, error) {
	if !l.Has(FieldCardNumber, FieldOperationAmount) {
		return nil, fmt.Errorf("%w: ledger needs %s and %s fields", ErrInvalidArgument, FieldCardNumber, FieldOperationAmount)
	}

	type group struct {
		card  *string
		total decimal.Decimal
	}
	var (
		groups []*group
		byCard = map[string]*group{}
		noCard *group
	)
	for _, t := range l.Records {
		var g *group
		if t.CardNumber == nil {
			if noCard == nil {
				noCard = &group{total: decimal.Zero}
				groups = append(groups, noCard)
			}
			g = noCard
		} else {
			g = byCard[*t.CardNumber]
			if g == nil {
				g = &group{card: t.CardNumber, total: decimal.Zero}
				byCard[*t.CardNumber] = g
				groups = append(groups, g)
			}
		}
		g.total = g.total.Add(t.OperationAmount)
	}

	out := make([]CardSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, CardSummary{
			LastDigits: LastDigits(deref(g.card)),
			TotalSpent: g.total,
			Cashback:   Cashback(g.total),
		})
	}
	return out, nil
}

// LastDigits returns the last four characters of a card number, or the whole
// value when it is shorter.
func LastDigits(card string) string {
	r := []rune(card)
	if len(r) <= 4 {
		return card
	}
	return string(r[len(r)-4:])
}
