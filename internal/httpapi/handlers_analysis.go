package httpapi

import (
	"encoding/csv"
	"net/http"
	"strconv"
)

func (s *Server) handleAnalysisStats(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	stats, err := s.svc.GetAnalysisStats(r.Context(), owner, r.PathValue("month"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

// handleExportExpensesCSV streams every expense the owner has as CSV, oldest
// first.
func (s *Server) handleExportExpensesCSV(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	expenses, err := s.svc.ListExpensesForExport(r.Context(), owner)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "date", "title", "amount", "category", "description"})
	for _, e := range expenses {
		_ = cw.Write([]string{
			e.ID,
			e.Date.UTC().Format("2006-01-02"),
			e.Title,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Category,
			e.Description,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.logger.Error("csv export write failed", "ownerId", owner, "error", err)
	}
}

func (s *Server) handleWeeklyDigest(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	digest, err := s.svc.GenerateWeeklyDigest(r.Context(), owner)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, digest)
}
