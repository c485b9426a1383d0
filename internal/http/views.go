package http

import (
	"encoding/json"
	"net/http"

	"movimenti/internal/core"
	"movimenti/internal/ledger"
)

type movementView struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	Subject string      `json:"subject"`
	Kind    string      `json:"kind"`
	Amount  json.Number `json:"amount"`
}

type balancesView struct {
	Bank  json.Number `json:"bank"`
	Cash  json.Number `json:"cash"`
	Total json.Number `json:"total"`
}

// ledgerView is the response shape for every read and mutation: the table
// rows newest date first, balances always the unfiltered totals.
type ledgerView struct {
	Movements []movementView `json:"movements"`
	Balances  balancesView   `json:"balances"`
}

func viewOf(movements []core.Movement, balances core.Balances) ledgerView {
	v := ledgerView{
		Movements: make([]movementView, 0, len(movements)),
		Balances: balancesView{
			Bank:  json.Number(balances.Bank.String()),
			Cash:  json.Number(balances.Cash.String()),
			Total: json.Number(balances.Total.String()),
		},
	}
	for _, m := range core.SortedByDateDesc(movements) {
		v.Movements = append(v.Movements, movementView{
			ID:      m.ID,
			Date:    string(m.Date),
			Subject: m.Subject,
			Kind:    string(m.Kind),
			Amount:  json.Number(m.Amount.String()),
		})
	}
	return v
}

func ledgerViewOf(led ledger.Ledger) ledgerView {
	return viewOf(led.Movements, led.Balances)
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, ErrorResponse{Error: code, ErrorDescription: description})
}
