package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeBalances(t *testing.T) {
	movements := []Movement{
		{ID: "a", Date: "2024-01-01", Subject: "Salary", Kind: Bank, Amount: amt("1000.00")},
		{ID: "b", Date: "2024-01-02", Subject: "Coffee", Kind: Cash, Amount: amt("-3.50")},
	}

	b := ComputeBalances(movements)
	want := Balances{Bank: amt("1000.00"), Cash: amt("-3.50"), Total: amt("996.50")}
	if !b.Equal(want) {
		t.Fatalf("expected %+v, got %+v", want, b)
	}
}

func TestComputeBalancesEmpty(t *testing.T) {
	b := ComputeBalances(nil)
	if !b.Bank.IsZero() || !b.Cash.IsZero() || !b.Total.IsZero() {
		t.Fatalf("expected all-zero balances, got %+v", b)
	}
}

func TestComputeBalancesIdempotent(t *testing.T) {
	movements := []Movement{
		{ID: "a", Date: "2024-01-01", Subject: "x", Kind: Bank, Amount: amt("12.34")},
		{ID: "b", Date: "2024-01-02", Subject: "y", Kind: Cash, Amount: amt("-0.99")},
		{ID: "c", Date: "2024-01-03", Subject: "z", Kind: Bank, Amount: amt("-5.01")},
	}
	first := ComputeBalances(movements)
	second := ComputeBalances(movements)
	if !first.Equal(second) {
		t.Fatalf("expected identical results, got %+v then %+v", first, second)
	}
}

// The total is rounded from the raw bank+cash sum, not assembled from the
// already-rounded buckets. With two half-cent movements the two orders give
// different answers, and the raw-sum order must win.
func TestComputeBalancesRoundingOrder(t *testing.T) {
	movements := []Movement{
		{ID: "a", Date: "2024-01-01", Subject: "x", Kind: Bank, Amount: amt("0.005")},
		{ID: "b", Date: "2024-01-01", Subject: "y", Kind: Cash, Amount: amt("0.005")},
	}

	b := ComputeBalances(movements)
	if !b.Bank.Equal(amt("0.01")) || !b.Cash.Equal(amt("0.01")) {
		t.Fatalf("expected buckets rounded up to 0.01, got %+v", b)
	}
	if !b.Total.Equal(amt("0.01")) {
		t.Fatalf("expected total 0.01 from the raw sum, got %s", b.Total)
	}
}
