package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date("2024-02-29"), true},
		{Date("2025-02-29"), false},
		{Date("2025-13-01"), false},
		{Date("not-a-date"), false},
		{Date(""), false},
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestKindValidate(t *testing.T) {
	if err := Bank.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := Cash.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := Kind("CHECK").Validate(); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Date:    NewDate(2025, 1, 1),
		Subject: "Salary",
		Kind:    Bank,
		Amount:  decimal.NewFromInt(1000),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// An omitted date is fine: the store defaults it on add.
	noDate := good
	noDate.Date = ""
	if err := noDate.Validate(); err != nil {
		t.Fatalf("expected ok without date, got %v", err)
	}

	bads := []Draft{
		{Date: Date("2025-99-99"), Subject: "a", Kind: Bank, Amount: decimal.NewFromInt(1)},
		{Date: NewDate(2025, 1, 1), Subject: "", Kind: Bank, Amount: decimal.NewFromInt(1)},
		{Date: NewDate(2025, 1, 1), Subject: "a", Kind: Kind("GOLD"), Amount: decimal.NewFromInt(1)},
		{Date: NewDate(2025, 1, 1), Subject: "a", Kind: Cash, Amount: decimal.Zero},
	}
	for i, d := range bads {
		if err := d.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDraftMovementDefaultsDate(t *testing.T) {
	today := NewDate(2025, 6, 15)
	dr := Draft{Subject: " Coffee ", Kind: Cash, Amount: decimal.NewFromFloat(-3.5)}

	m := dr.Movement("id-1", today)
	if m.ID != "id-1" {
		t.Fatalf("expected id to be preserved, got %q", m.ID)
	}
	if m.Date != today {
		t.Fatalf("expected default date %q, got %q", today, m.Date)
	}
	if m.Subject != "Coffee" {
		t.Fatalf("expected trimmed subject, got %q", m.Subject)
	}

	dr.Date = NewDate(2025, 1, 2)
	m = dr.Movement("id-2", today)
	if m.Date != NewDate(2025, 1, 2) {
		t.Fatalf("explicit date must win over the default, got %q", m.Date)
	}
}
