package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Filter selects a subset of movements. Every bound is optional; a nil or
// empty bound imposes no constraint, supplied bounds are inclusive on both
// ends. Filtering is a read-only view: it never touches the stored ledger
// and balances shown next to a filtered view stay the unfiltered totals.
type Filter struct {
	DateFrom  Date
	DateTo    Date
	Kind      *Kind
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// IsZero reports whether no bound is set.
func (f Filter) IsZero() bool {
	return f.DateFrom.IsEmpty() && f.DateTo.IsEmpty() && f.Kind == nil &&
		f.MinAmount == nil && f.MaxAmount == nil
}

// Apply returns the movements satisfying all supplied bounds, in their
// original order. The input slice is not modified.
func (f Filter) Apply(movements []Movement) []Movement {
	out := make([]Movement, 0, len(movements))
	if f.IsZero() {
		return append(out, movements...)
	}
	for _, m := range movements {
		if f.matches(m) {
			out = append(out, m)
		}
	}
	return out
}

func (f Filter) matches(m Movement) bool {
	if !f.DateFrom.IsEmpty() && string(m.Date) < string(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsEmpty() && string(m.Date) > string(f.DateTo) {
		return false
	}
	if f.Kind != nil && m.Kind != *f.Kind {
		return false
	}
	if f.MinAmount != nil && m.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && m.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

// SortedByDateDesc returns a copy ordered newest date first. The sort is
// stable, so movements sharing a date keep their insertion order. Malformed
// dates sort after well-formed ones instead of failing the whole view.
func SortedByDateDesc(movements []Movement) []Movement {
	out := make([]Movement, len(movements))
	copy(out, movements)
	sort.SliceStable(out, func(i, j int) bool {
		ti, erri := out[i].Date.Time()
		tj, errj := out[j].Date.Time()
		if erri != nil || errj != nil {
			return erri == nil && errj != nil
		}
		return ti.After(tj)
	})
	return out
}
