package core

import (
	"fmt"
	"strings"
	"time"
)

// operationLayouts lists the accepted operation date layouts, most specific first.
var operationLayouts = []string{
	LedgerTimeLayout,
	"02.01.2006 15:04",
	DisplayDateLayout,
	ReferenceLayout,
	ReferenceDayLayout,
	time.RFC3339,
}

// ParseOperationDate parses a ledger date cell. Unparseable text yields the
// empty Date and false; callers drop such rows from date bounded views.
func ParseOperationDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, layout := range operationLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Date{Time: t}, true
		}
	}
	return Date{}, false
}

// ParseReference parses a reference point in "YYYY-MM-DD HH:MM:SS" format.
func ParseReference(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ReferenceLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: reference date %q must be YYYY-MM-DD HH:MM:SS", ErrInvalidArgument, s)
	}
	return t, nil
}

// ReferenceDate resolves the reference date of a category report. It accepts
// nil (meaning now), a time.Time, *time.Time, Date, or a string in either
// "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD" format.
func ReferenceDate(v any, now time.Time) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return now, nil
	case time.Time:
		return d, nil
	case *time.Time:
		if d == nil {
			return now, nil
		}
		return *d, nil
	case Date:
		if d.IsEmpty() {
			return time.Time{}, fmt.Errorf("%w: empty reference date", ErrInvalidArgument)
		}
		return d.Time, nil
	case string:
		s := strings.TrimSpace(d)
		if t, err := time.ParseInLocation(ReferenceLayout, s, time.UTC); err == nil {
			return t, nil
		}
		if t, err := time.ParseInLocation(ReferenceDayLayout, s, time.UTC); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD or YYYY-MM-DD HH:MM:SS", ErrInvalidArgument, d)
	default:
		return time.Time{}, fmt.Errorf("%w: date must be a time value or string, got %T", ErrInvalidArgument, v)
	}
}

// Greeting returns the salutation matching the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 11:
		return "Доброе утро"
	case h >= 11 && h < 17:
		return "Добрый день"
	case h >= 17 && h < 23:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}
