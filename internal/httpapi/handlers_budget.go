package httpapi

import (
	"net/http"

	"github.com/copperline/budgeteer/internal/model"
)

type budgetRequest struct {
	Month          string                `json:"month"`
	EssentialItems []model.EssentialItem `json:"essentialItems"`
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var req budgetRequest
	if !s.decode(w, r, &req) {
		return
	}
	budget, err := s.svc.CreateBudget(r.Context(), owner, req.Month, req.EssentialItems)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, budget)
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	budgets, err := s.svc.GetAllBudgets(r.Context(), owner)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, budgets)
}

// handleCurrentBudget is a read with a possible create: a missing budget for
// the current month is copied forward from the most recent earlier one.
func (s *Server) handleCurrentBudget(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	budget, err := s.svc.GetCurrentBudget(r.Context(), owner)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if budget == nil {
		s.writeJSON(w, http.StatusOK, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleBudgetByMonth(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	budget, err := s.svc.GetBudgetByMonth(r.Context(), owner, r.PathValue("month"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if budget == nil {
		s.writeJSON(w, http.StatusOK, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var req budgetRequest
	if !s.decode(w, r, &req) {
		return
	}
	budget, err := s.svc.UpdateBudget(r.Context(), owner, r.PathValue("id"), req.Month, req.EssentialItems)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteBudget(r.Context(), owner, r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddEssentialItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	var item model.EssentialItem
	if !s.decode(w, r, &item) {
		return
	}
	budget, err := s.svc.AddEssentialItem(r.Context(), owner, r.PathValue("id"), item)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleRemoveEssentialItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	budget, err := s.svc.RemoveEssentialItem(r.Context(), owner, r.PathValue("id"), r.PathValue("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, budget)
}
