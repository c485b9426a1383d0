package snapshot

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"movimenti/internal/core"
)

func fixture() Snapshot {
	movements := []core.Movement{
		{ID: "a", Date: "2024-01-01", Subject: "Salary", Kind: core.Bank, Amount: decimal.RequireFromString("1000.00")},
		{ID: "b", Date: "2024-01-02", Subject: "Coffee", Kind: core.Cash, Amount: decimal.RequireFromString("-3.50")},
	}
	return Snapshot{Movements: movements, Balances: core.ComputeBalances(movements)}
}

func TestJSONRoundTrip(t *testing.T) {
	s := fixture()

	data, err := JSONEncoder{Pretty: true}.Encode(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Movements) != len(s.Movements) {
		t.Fatalf("expected %d movements, got %d", len(s.Movements), len(got.Movements))
	}
	for i, m := range got.Movements {
		want := s.Movements[i]
		if m.ID != want.ID || m.Date != want.Date || m.Subject != want.Subject || m.Kind != want.Kind {
			t.Fatalf("movement %d mismatch: %+v vs %+v", i, m, want)
		}
		if !m.Amount.Equal(want.Amount) {
			t.Fatalf("movement %d amount: %s vs %s", i, m.Amount, want.Amount)
		}
	}
	if !got.Balances.Equal(s.Balances) {
		t.Fatalf("balances mismatch: %+v vs %+v", got.Balances, s.Balances)
	}
}

func TestEncodeAmountsAsNumbers(t *testing.T) {
	data, err := JSONEncoder{}.Encode(fixture())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	text := string(data)
	if strings.Contains(text, `"amount": "`) || strings.Contains(text, `"amount":"`) {
		t.Fatalf("amounts must be JSON numbers, got: %s", text)
	}
	if !strings.Contains(text, `"amount":-3.5`) {
		t.Fatalf("expected numeric amount on the wire, got: %s", text)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", "{nope"},
		{"wrong shape", `[1,2,3]`},
		{"missing id", `{"movements":[{"date":"2024-01-01","subject":"x","kind":"BANK","amount":1}]}`},
		{"duplicate id", `{"movements":[{"id":"a","date":"2024-01-01","subject":"x","kind":"BANK","amount":1},{"id":"a","date":"2024-01-02","subject":"y","kind":"CASH","amount":2}]}`},
		{"unknown kind", `{"movements":[{"id":"a","date":"2024-01-01","subject":"x","kind":"GOLD","amount":1}]}`},
		{"string amount", `{"movements":[{"id":"a","date":"2024-01-01","subject":"x","kind":"BANK","amount":"12"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	got, err := Decode([]byte(`{"movements":[],"balances":{"bank":0,"cash":0,"total":0}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Movements) != 0 {
		t.Fatalf("expected no movements, got %d", len(got.Movements))
	}
}

func TestDecodeRoundsImportedAmounts(t *testing.T) {
	got, err := Decode([]byte(`{"movements":[{"id":"a","date":"2024-01-01","subject":"x","kind":"BANK","amount":1.005}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := decimal.RequireFromString("1.01"); !got.Movements[0].Amount.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got.Movements[0].Amount)
	}
}

func TestEncoderFor(t *testing.T) {
	if _, err := EncoderFor(""); err != nil {
		t.Fatalf("default format: %v", err)
	}
	if _, err := EncoderFor("yaml"); err != nil {
		t.Fatalf("yaml format: %v", err)
	}
	if _, err := EncoderFor("xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestYAMLEncode(t *testing.T) {
	data, err := YAMLEncoder{}.Encode(fixture())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(data), "subject: Salary") {
		t.Fatalf("unexpected yaml output: %s", data)
	}
}

func TestYAMLEncodesAmountsAsScalars(t *testing.T) {
	data, err := YAMLEncoder{}.Encode(fixture())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out := string(data)
	for _, want := range []string{"amount: 1000", "amount: -3.5", "total: 996.5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in yaml output: %s", want, out)
		}
	}
	if strings.Contains(out, `"-3.5"`) || strings.Contains(out, `'-3.5'`) {
		t.Fatalf("amounts must not be quoted: %s", out)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	if got := ExportFileName(JSONEncoder{Pretty: true}, now); got != "movimenti-2024-01-31.json" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := ExportFileName(YAMLEncoder{}, now); got != "movimenti-2024-01-31.yaml" {
		t.Fatalf("unexpected file name %q", got)
	}
}
