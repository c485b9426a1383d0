package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"movimenti/internal/core"
	applog "movimenti/internal/log"
	"movimenti/internal/snapshot"
)

// maxImportBytes caps import payloads; a personal ledger blob is tiny.
const maxImportBytes = 4 << 20

type movementRequest struct {
	Date    string      `json:"date"`
	Subject string      `json:"subject"`
	Kind    string      `json:"kind"`
	Amount  json.Number `json:"amount"`
}

func (req movementRequest) draft() (core.Draft, error) {
	amount, err := core.ParseAmount(req.Amount.String())
	if err != nil {
		return core.Draft{}, err
	}
	draft := core.Draft{
		Date:    core.Date(strings.TrimSpace(req.Date)),
		Subject: req.Subject,
		Kind:    core.Kind(strings.ToUpper(strings.TrimSpace(req.Kind))),
		Amount:  amount,
	}
	if err := draft.Validate(); err != nil {
		return core.Draft{}, err
	}
	return draft, nil
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ledgerViewOf(s.store.Current()))
}

func (s *Server) handleListMovements(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	led := s.store.Current()
	// Balances stay the unfiltered totals even for a filtered view.
	writeJSON(w, http.StatusOK, viewOf(filter.Apply(led.Movements), led.Balances))
}

func filterFromQuery(r *http.Request) (core.Filter, error) {
	q := r.URL.Query()
	var f core.Filter

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		d := core.Date(v)
		if err := d.Validate(); err != nil {
			return f, errors.New("invalid 'from' date, expected YYYY-MM-DD")
		}
		f.DateFrom = d
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		d := core.Date(v)
		if err := d.Validate(); err != nil {
			return f, errors.New("invalid 'to' date, expected YYYY-MM-DD")
		}
		f.DateTo = d
	}
	if v := strings.TrimSpace(q.Get("kind")); v != "" {
		kind := core.Kind(strings.ToUpper(v))
		if err := kind.Validate(); err != nil {
			return f, errors.New("invalid 'kind', expected BANK or CASH")
		}
		f.Kind = &kind
	}
	if v := strings.TrimSpace(q.Get("min")); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, errors.New("invalid 'min' amount")
		}
		f.MinAmount = &d
	}
	if v := strings.TrimSpace(q.Get("max")); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, errors.New("invalid 'max' amount")
		}
		f.MaxAmount = &d
	}
	return f, nil
}

func (s *Server) handleAddMovement(w http.ResponseWriter, r *http.Request) {
	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	draft, err := req.draft()
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
		return
	}

	led, err := s.store.Add(r.Context(), draft)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Add movement failed", applog.FieldError, err.Error())
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to save movement")
		return
	}
	writeJSON(w, http.StatusCreated, ledgerViewOf(led))
}

func (s *Server) handleUpdateMovement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	draft, err := req.draft()
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
		return
	}

	// An unknown id leaves the ledger unchanged; the client re-renders from
	// the returned state either way.
	led, err := s.store.Update(r.Context(), id, draft)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Update movement failed",
			applog.FieldMovementID, id, applog.FieldError, err.Error())
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to update movement")
		return
	}
	writeJSON(w, http.StatusOK, ledgerViewOf(led))
}

func (s *Server) handleRemoveMovement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	led, err := s.store.Remove(r.Context(), id)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Remove movement failed",
			applog.FieldMovementID, id, applog.FieldError, err.Error())
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to remove movement")
		return
	}
	writeJSON(w, http.StatusOK, ledgerViewOf(led))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	enc, err := snapshot.EncoderFor(r.URL.Query().Get("format"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	data, name, err := s.store.Export(enc)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Export failed", applog.FieldError, err.Error())
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to export ledger")
		return
	}

	contentType := "application/json"
	if enc.Ext() != "json" {
		contentType = "application/x-yaml"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleImport replaces the whole ledger from an uploaded backup. Only
// .json sources are accepted; the store guarantees a failed parse leaves
// the previous state untouched. Destructive, so clients must confirm with
// the user before calling.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := readImportPayload(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	led, err := s.store.Import(r.Context(), data)
	if err != nil {
		if errors.Is(err, snapshot.ErrMalformed) {
			writeJSONError(w, http.StatusUnprocessableEntity, "malformed_snapshot", err.Error())
			return
		}
		s.logger.ErrorContext(r.Context(), "Import failed", applog.FieldError, err.Error())
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to import ledger")
		return
	}
	writeJSON(w, http.StatusOK, ledgerViewOf(led))
}

func readImportPayload(r *http.Request) ([]byte, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.New("missing or malformed Content-Type")
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, errors.New("failed to parse multipart form")
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("missing 'file' form field")
		}
		defer file.Close()
		return readJSONFile(file, header)
	}

	if mediaType != "application/json" {
		return nil, errors.New("only JSON imports are accepted")
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		return nil, errors.New("failed to read request body")
	}
	return data, nil
}

func readJSONFile(file multipart.File, header *multipart.FileHeader) ([]byte, error) {
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".json") {
		return nil, errors.New("only .json files are accepted")
	}
	data, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
	if err != nil {
		return nil, errors.New("failed to read uploaded file")
	}
	return data, nil
}
