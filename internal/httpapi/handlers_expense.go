package httpapi

import (
	"net/http"
	"strings"

	"github.com/copperline/budgeteer/internal/month"
	"github.com/copperline/budgeteer/internal/service"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var input service.ExpenseInput
	if !s.decode(w, r, &input) {
		return
	}
	expense, err := s.svc.CreateExpense(r.Context(), owner, input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleBulkCreateExpenses(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var req struct {
		Expenses []service.ExpenseInput `json:"expenses"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	expenses, err := s.svc.BulkCreateExpenses(r.Context(), owner, req.Expenses)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, expenses)
}

func (s *Server) handleBulkDeleteExpenses(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var req struct {
		IDs []string `json:"ids"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	deleted, err := s.svc.BulkDeleteExpenses(r.Context(), owner, req.IDs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

func (s *Server) handleReplaceExpenses(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var req struct {
		Months   []string               `json:"months"`
		Expenses []service.ExpenseInput `json:"expenses"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	expenses, err := s.svc.ReplaceExpensesInMonths(r.Context(), owner, req.Months, req.Expenses)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, expenses)
}

// handleListExpenses lists one month's expenses; the month query parameter
// defaults to the current month.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	token := strings.TrimSpace(r.URL.Query().Get("month"))
	if token == "" {
		token = month.Current(s.clock)
	}
	expenses, err := s.svc.ListExpensesInMonth(r.Context(), owner, token)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	expense, err := s.svc.GetExpense(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var update service.ExpenseUpdate
	if !s.decode(w, r, &update) {
		return
	}
	expense, err := s.svc.UpdateExpense(r.Context(), owner, r.PathValue("id"), update)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteExpense(r.Context(), owner, r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
