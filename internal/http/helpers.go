package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"kharcha/internal/core"
	"kharcha/internal/sheets"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service failures onto HTTP statuses: caller
// mistakes become 400s, store failures become 500s.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrInvalidMonth),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidBudget),
		errors.Is(err, core.ErrEmptyMemberName):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, sheets.ErrStoreUnavailable):
		slog.ErrorContext(r.Context(), "Store unavailable", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// monthParam extracts and validates the ?month=YYYY-MM query parameter.
func monthParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	month := r.URL.Query().Get("month")
	if !core.IsValidMonth(month) {
		writeError(w, http.StatusBadRequest, "Invalid or missing month parameter (YYYY-MM)")
		return "", false
	}
	return month, true
}
