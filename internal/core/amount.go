// Package core provides the movement domain model and amount handling.
//
// This file contains functions for parsing signed monetary amounts from
// strings into decimal values with cent precision.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a signed decimal string to an amount with cent
// precision.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rounds half-away-from-zero on the third decimal place. Positive values are
// inflows, negative values outflows. Returns an error for invalid formats
// and for zero amounts.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("-3,50")  -> -3.5, nil
//	ParseAmount("12.346") -> 12.35, nil (rounds up)
//	ParseAmount("0")      -> error
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	d = d.Round(2)
	if err := ValidateAmount(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// ValidateAmount rejects amounts that are no movement at all. Decimals are
// finite by construction, so zero is the only degenerate value left.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsZero() {
		return ErrInvalidAmount
	}
	return nil
}
