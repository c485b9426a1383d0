package core

import "github.com/shopspring/decimal"

// Balances is the derived per-bucket summary. It is recomputed from the
// movement list after every mutation, never maintained incrementally.
type Balances struct {
	Bank  decimal.Decimal
	Cash  decimal.Decimal
	Total decimal.Decimal
}

// ComputeBalances sums the movement amounts per bucket. Each bucket is
// rounded to two places from its raw sum, and the total is rounded from the
// raw bank+cash sum rather than built from the rounded buckets. The two can
// drift by a cent for some inputs; the raw-sum order is the contract.
func ComputeBalances(movements []Movement) Balances {
	var bank, cash decimal.Decimal
	for _, m := range movements {
		switch m.Kind {
		case Bank:
			bank = bank.Add(m.Amount)
		case Cash:
			cash = cash.Add(m.Amount)
		}
	}
	return Balances{
		Bank:  bank.Round(2),
		Cash:  cash.Round(2),
		Total: bank.Add(cash).Round(2),
	}
}

// Equal compares balances by numeric value, ignoring exponent representation.
func (b Balances) Equal(o Balances) bool {
	return b.Bank.Equal(o.Bank) && b.Cash.Equal(o.Cash) && b.Total.Equal(o.Total)
}
