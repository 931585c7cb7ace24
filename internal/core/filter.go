package core

import (
	"fmt"
	"time"
)

// DateWindow is the length of the trailing window used by FilterByDate.
const DateWindow = 24 * time.Hour

// FilterByDate keeps the records whose operation date falls within the day
// trailing ref, [ref-24h, ref] inclusive at both ends. ref must be in
// "YYYY-MM-DD HH:MM:SS" format. Records without a parseable date are dropped.
func FilterByDate(l Ledger, ref string) (Ledger, error) {
	if !l.Has(FieldOperationDate) {
		return Ledger{}, fmt.Errorf("%w: ledger has no %s field", ErrInvalidArgument, FieldOperationDate)
	}
	end, err := ParseReference(ref)
	if err != nil {
		return Ledger{}, err
	}
	return l.derive(withinWindow(l.Records, end.Add(-DateWindow), end)), nil
}

// withinWindow returns independent copies of the records dated in [start, end].
func withinWindow(records []Transaction, start, end time.Time) []Transaction {
	out := make([]Transaction, 0, len(records))
	for _, t := range records {
		if t.OperationDate.IsEmpty() {
			continue
		}
		if t.OperationDate.Before(start) || t.OperationDate.After(end) {
			continue
		}
		out = append(out, t.clone())
	}
	return out
}
