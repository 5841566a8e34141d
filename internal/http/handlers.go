package http

import (
	"net/http"

	"kharcha/internal/core"
)

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListExpenses(w, r)
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	expenses, err := s.budgets.ListExpenses(r.Context(), month)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": expenses})
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date        string  `json:"date"`
		MemberName  string  `json:"memberName"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	expense := core.Expense{
		Date:        body.Date,
		MemberName:  body.MemberName,
		Category:    body.Category,
		Description: body.Description,
		Amount:      body.Amount,
	}
	if err := expense.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.budgets.RecordExpense(r.Context(), expense)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetBudget(w, r)
	case http.MethodPost:
		// Budget writes additionally require the admin PIN.
		s.requireAdminPIN(s.handleSetBudget)(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	budget, err := s.budgets.GetBudgetSummary(r.Context(), month)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Month       string  `json:"month"`
		TotalBudget float64 `json:"totalBudget"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := core.ValidateBudgetInput(body.Month, body.TotalBudget); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	budget, err := s.budgets.SetBudget(r.Context(), body.Month, body.TotalBudget)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	dashboard, err := s.budgets.GetDashboard(r.Context(), month)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
