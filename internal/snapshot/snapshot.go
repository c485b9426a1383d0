// Package snapshot encodes and decodes the single-blob wire form of the
// ledger: {"movements": [...], "balances": {...}}. The same shape is used
// for persisted state, export files and import input.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"movimenti/internal/core"
)

// ErrMalformed wraps every decode failure so callers can treat corrupt
// persisted state and malformed import text uniformly.
var ErrMalformed = errors.New("malformed snapshot")

// Snapshot is the full ledger in transportable form.
type Snapshot struct {
	Movements []core.Movement
	Balances  core.Balances
}

type movementWire struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	Subject string      `json:"subject"`
	Kind    string      `json:"kind"`
	Amount  json.Number `json:"amount"`
}

type balancesWire struct {
	Bank  json.Number `json:"bank"`
	Cash  json.Number `json:"cash"`
	Total json.Number `json:"total"`
}

type snapshotWire struct {
	Movements []movementWire `json:"movements"`
	Balances  balancesWire   `json:"balances"`
}

func toWire(s Snapshot) snapshotWire {
	w := snapshotWire{
		Movements: make([]movementWire, 0, len(s.Movements)),
		Balances: balancesWire{
			Bank:  number(s.Balances.Bank),
			Cash:  number(s.Balances.Cash),
			Total: number(s.Balances.Total),
		},
	}
	for _, m := range s.Movements {
		w.Movements = append(w.Movements, movementWire{
			ID:      m.ID,
			Date:    string(m.Date),
			Subject: m.Subject,
			Kind:    string(m.Kind),
			Amount:  number(m.Amount),
		})
	}
	return w
}

// number keeps amounts as JSON numbers on the wire instead of the quoted
// strings decimal would marshal to by default.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Decode parses a JSON snapshot blob. It fails on anything that is not a
// well-formed whole-ledger document: bad JSON, a non-numeric amount, an
// unknown kind, or duplicate/missing movement ids. The returned error always
// wraps ErrMalformed.
func Decode(data []byte) (Snapshot, error) {
	var w snapshotWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	s := Snapshot{Movements: make([]core.Movement, 0, len(w.Movements))}
	seen := make(map[string]struct{}, len(w.Movements))
	for i, mw := range w.Movements {
		if mw.ID == "" {
			return Snapshot{}, fmt.Errorf("%w: movement %d has no id", ErrMalformed, i)
		}
		if _, dup := seen[mw.ID]; dup {
			return Snapshot{}, fmt.Errorf("%w: duplicate movement id %q", ErrMalformed, mw.ID)
		}
		seen[mw.ID] = struct{}{}

		kind := core.Kind(mw.Kind)
		if err := kind.Validate(); err != nil {
			return Snapshot{}, fmt.Errorf("%w: movement %q: %v", ErrMalformed, mw.ID, err)
		}
		amount, err := decimal.NewFromString(mw.Amount.String())
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: movement %q: invalid amount %q", ErrMalformed, mw.ID, mw.Amount)
		}

		s.Movements = append(s.Movements, core.Movement{
			ID:      mw.ID,
			Date:    core.Date(mw.Date),
			Subject: mw.Subject,
			Kind:    kind,
			Amount:  amount.Round(2),
		})
	}

	s.Balances = decodeBalances(w.Balances)
	return s, nil
}

// Persisted balances are advisory: the store recomputes them after every
// load anyway, so unreadable values degrade to zero instead of failing.
func decodeBalances(w balancesWire) core.Balances {
	parse := func(n json.Number) decimal.Decimal {
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}
		}
		return d
	}
	return core.Balances{Bank: parse(w.Bank), Cash: parse(w.Cash), Total: parse(w.Total)}
}

// Encoder serializes a snapshot to one transportable text form.
type Encoder interface {
	Encode(Snapshot) ([]byte, error)
	// Ext is the file extension for export file names, without the dot.
	Ext() string
}

// ExportFileName builds the suggested download name for an export taken at
// the given time, e.g. "movimenti-2024-01-31.json".
func ExportFileName(enc Encoder, now time.Time) string {
	return "movimenti-" + now.Format(core.DateLayout) + "." + enc.Ext()
}
