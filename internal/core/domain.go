package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Bank Kind = "BANK"
	Cash Kind = "CASH"
)

// DateLayout is the wire format for movement dates.
const DateLayout = "2006-01-02"

type (
	// Kind selects the balance bucket a movement contributes to.
	Kind string

	// Date is a calendar date in YYYY-MM-DD form.
	Date string

	// Movement is one recorded transaction. ID is assigned by the ledger
	// store at creation time and never changes afterwards.
	Movement struct {
		ID      string
		Date    Date
		Subject string
		Kind    Kind
		Amount  decimal.Decimal
	}

	// Draft carries the caller-supplied fields of a movement before the
	// store assigns an ID and fills defaults.
	Draft struct {
		Date    Date
		Subject string
		Kind    Kind
		Amount  decimal.Decimal
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptySubject  = errors.New("empty subject")
)

func (k Kind) Validate() error {
	switch k {
	case Bank, Cash:
		return nil
	default:
		return ErrInvalidKind
	}
}

// NewDate builds a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(DateLayout))
}

// Today returns the current calendar date.
func Today() Date {
	return Date(time.Now().Format(DateLayout))
}

// Time parses the date. The zero time and an error are returned for
// anything that is not a well-formed YYYY-MM-DD date.
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// IsEmpty reports whether the date was omitted.
func (d Date) IsEmpty() bool {
	return strings.TrimSpace(string(d)) == ""
}

func (d Date) Validate() error {
	if _, err := d.Time(); err != nil {
		return err
	}
	return nil
}

func (dr Draft) Validate() error {
	// Date may be empty here: the store fills in the current date.
	if !dr.Date.IsEmpty() {
		if err := dr.Date.Validate(); err != nil {
			return err
		}
	}
	if len(strings.TrimSpace(dr.Subject)) == 0 {
		return ErrEmptySubject
	}
	if len(dr.Subject) > 200 {
		return errors.New("subject too long (max 200 characters)")
	}
	if err := dr.Kind.Validate(); err != nil {
		return err
	}
	if err := ValidateAmount(dr.Amount); err != nil {
		return err
	}
	return nil
}

func (m Movement) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("missing movement id")
	}
	if err := m.Date.Validate(); err != nil {
		return err
	}
	return Draft{Date: m.Date, Subject: m.Subject, Kind: m.Kind, Amount: m.Amount}.Validate()
}

// Movement applies the store-assigned identity to the draft. Defaulting the
// date is an explicit step so it stays visible and testable.
func (dr Draft) Movement(id string, today Date) Movement {
	date := dr.Date
	if date.IsEmpty() {
		date = today
	}
	return Movement{
		ID:      id,
		Date:    date,
		Subject: strings.TrimSpace(dr.Subject),
		Kind:    dr.Kind,
		Amount:  dr.Amount,
	}
}
