package core

import "testing"

func filterFixture() []Movement {
	return []Movement{
		{ID: "1", Date: "2024-01-01", Subject: "Salary", Kind: Bank, Amount: amt("1000.00")},
		{ID: "2", Date: "2024-01-02", Subject: "Coffee", Kind: Cash, Amount: amt("-3.50")},
		{ID: "3", Date: "2024-02-10", Subject: "Rent", Kind: Bank, Amount: amt("-650.00")},
		{ID: "4", Date: "2024-02-10", Subject: "Market", Kind: Cash, Amount: amt("-42.10")},
	}
}

func ids(ms []Movement) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestFilterApply(t *testing.T) {
	kindCash := Cash
	min := amt("-100")
	max := amt("0")

	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"no bounds", Filter{}, []string{"1", "2", "3", "4"}},
		{"by kind", Filter{Kind: &kindCash}, []string{"2", "4"}},
		{"date range inclusive", Filter{DateFrom: "2024-01-02", DateTo: "2024-02-10"}, []string{"2", "3", "4"}},
		{"amount range inclusive", Filter{MinAmount: &min, MaxAmount: &max}, []string{"2", "4"}},
		{"all bounds", Filter{DateFrom: "2024-02-01", Kind: &kindCash, MinAmount: &min}, []string{"4"}},
		{"empty result", Filter{DateFrom: "2030-01-01"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(tc.f.Apply(filterFixture()))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestFilterIsZero(t *testing.T) {
	if !(Filter{}).IsZero() {
		t.Fatalf("empty filter must report zero")
	}

	kind := Bank
	min := amt("0")
	cases := []struct {
		name string
		f    Filter
	}{
		{"date from", Filter{DateFrom: "2024-01-01"}},
		{"date to", Filter{DateTo: "2024-01-01"}},
		{"kind", Filter{Kind: &kind}},
		{"min amount", Filter{MinAmount: &min}},
		{"max amount", Filter{MaxAmount: &min}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.f.IsZero() {
				t.Fatalf("filter with a bound must not report zero")
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	movements := filterFixture()
	kindBank := Bank
	_ = Filter{Kind: &kindBank}.Apply(movements)

	if len(movements) != 4 || movements[1].ID != "2" {
		t.Fatalf("input slice was modified: %v", ids(movements))
	}
}

func TestSortedByDateDesc(t *testing.T) {
	movements := []Movement{
		{ID: "1", Date: "2024-01-01"},
		{ID: "2", Date: "2024-03-01"},
		{ID: "3", Date: "garbage"},
		{ID: "4", Date: "2024-03-01"},
	}

	sorted := SortedByDateDesc(movements)
	got := ids(sorted)
	want := []string{"2", "4", "1", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	// Original order untouched.
	if movements[0].ID != "1" || movements[3].ID != "4" {
		t.Fatalf("input slice was reordered: %v", ids(movements))
	}
}
