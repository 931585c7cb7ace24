package core

import (
	"fmt"
	"time"
)

// ReportWindow is the length of the trailing window of a category report.
const ReportWindow = 90 * 24 * time.Hour

// SpendingByCategory returns the records labelled exactly category whose
// operation date lies in [ref-90d, ref], in ledger order.
func SpendingByCategory(l Ledger, category string, ref time.Time) (Ledger, error) {
	if !l.Has(FieldCategory, FieldOperationDate) {
		return Ledger{}, fmt.Errorf("%w: ledger needs %s and %s fields", ErrInvalidArgument, FieldCategory, FieldOperationDate)
	}
	matched := make([]Transaction, 0)
	for _, t := range l.Records {
		if t.Category != nil && *t.Category == category {
			matched = append(matched, t)
		}
	}
	return l.derive(withinWindow(matched, ref.Add(-ReportWindow), ref)), nil
}
