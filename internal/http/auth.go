package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// PIN headers. The family PIN gates every API route; the admin PIN is
// additionally required for budget writes.
const (
	headerFamilyPIN = "X-Family-Pin"
	headerAdminPIN  = "X-Admin-Pin"
)

// PINs holds the two configured access secrets.
type PINs struct {
	Family string
	Admin  string
}

func pinMatches(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func (s *Server) requireFamilyPIN(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pin := r.Header.Get(headerFamilyPIN)
		if !pinMatches(pin, s.pins.Family) {
			slog.WarnContext(r.Context(), "Family PIN rejected", "method", r.Method, "url", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid or missing Family PIN")
			return
		}
		next(w, r)
	}
}

func (s *Server) requireAdminPIN(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pin := r.Header.Get(headerAdminPIN)
		if !pinMatches(pin, s.pins.Admin) {
			slog.WarnContext(r.Context(), "Admin PIN rejected", "method", r.Method, "url", r.URL.Path)
			writeError(w, http.StatusForbidden, "Forbidden: Invalid or missing Admin PIN")
			return
		}
		next(w, r)
	}
}

// handleVerifyPIN resolves a submitted PIN to a role. It is the only
// route outside the PIN middleware.
func (s *Server) handleVerifyPIN(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		PIN string `json:"pin"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	switch {
	case pinMatches(body.PIN, s.pins.Family):
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "role": "family"})
	case pinMatches(body.PIN, s.pins.Admin):
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "role": "admin"})
	default:
		writeError(w, http.StatusUnauthorized, "Invalid PIN")
	}
}
