// Package httpapi exposes the engine over a JSON REST surface. Handlers only
// translate between HTTP and service calls; all rules live in the service.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/copperline/budgeteer/internal/month"
	"github.com/copperline/budgeteer/internal/service"
)

// Server holds the handler dependencies.
type Server struct {
	svc    *service.Service
	clock  month.Clock
	logger *slog.Logger
}

// NewServer wires the REST surface over a service. A nil clock falls back to
// the system clock and a nil logger to slog's default.
func NewServer(svc *service.Service, clock month.Clock, logger *slog.Logger) *Server {
	if clock == nil {
		clock = month.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, clock: clock, logger: logger}
}

// Routes builds the full route table.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /v1/budgets", s.handleCreateBudget)
	mux.HandleFunc("GET /v1/budgets", s.handleListBudgets)
	mux.HandleFunc("GET /v1/budgets/current", s.handleCurrentBudget)
	mux.HandleFunc("GET /v1/budgets/month/{month}", s.handleBudgetByMonth)
	mux.HandleFunc("PUT /v1/budgets/{id}", s.handleUpdateBudget)
	mux.HandleFunc("DELETE /v1/budgets/{id}", s.handleDeleteBudget)
	mux.HandleFunc("POST /v1/budgets/{id}/items", s.handleAddEssentialItem)
	mux.HandleFunc("DELETE /v1/budgets/{id}/items/{name}", s.handleRemoveEssentialItem)

	mux.HandleFunc("POST /v1/expenses", s.handleCreateExpense)
	mux.HandleFunc("POST /v1/expenses/bulk", s.handleBulkCreateExpenses)
	mux.HandleFunc("POST /v1/expenses/bulk-delete", s.handleBulkDeleteExpenses)
	mux.HandleFunc("POST /v1/expenses/replace", s.handleReplaceExpenses)
	mux.HandleFunc("GET /v1/expenses", s.handleListExpenses)
	mux.HandleFunc("GET /v1/expenses/{id}", s.handleGetExpense)
	mux.HandleFunc("PATCH /v1/expenses/{id}", s.handleUpdateExpense)
	mux.HandleFunc("DELETE /v1/expenses/{id}", s.handleDeleteExpense)

	mux.HandleFunc("GET /v1/analysis/{month}", s.handleAnalysisStats)
	mux.HandleFunc("GET /v1/export/expenses.csv", s.handleExportExpensesCSV)
	mux.HandleFunc("GET /v1/digest/weekly", s.handleWeeklyDigest)

	return s.withLogging(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// withLogging records method, path, status and latency for every request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
