// Package core provides the ledger model and the pure transformations that
// build the summary views: date filtering, per-card totals, top payments,
// category reports and search.
//
// This file contains amount parsing and the cashback rounding rule.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CashbackRate is the share of total card spend returned as cashback.
var CashbackRate = decimal.New(1, -2)

// ParseAmount converts a ledger amount cell to a decimal.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, a leading
// sign, and spaces or non-breaking spaces used as thousand separators.
//
// Examples:
//
//	ParseAmount("-1 234,50") -> -1234.50, nil
//	ParseAmount("+12.3")     -> 12.3, nil
//	ParseAmount("abc")       -> 0, ErrInvalidFormat
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidFormat)
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimPrefix(s, "+")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q", ErrInvalidFormat, s)
	}
	return d, nil
}

// Cashback returns 1% of total rounded to two places, half away from zero:
// 100.50 gives 1.01 and -100.50 gives -1.01.
func Cashback(total decimal.Decimal) decimal.Decimal {
	return total.Mul(CashbackRate).Round(2)
}
