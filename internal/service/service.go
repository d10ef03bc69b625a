// Package service implements the budget and expense engine: month-scoped
// reads and writes, copy-forward budgets, and the analysis aggregations.
package service

import (
	"log/slog"

	"github.com/copperline/budgeteer/internal/month"
	"github.com/copperline/budgeteer/internal/store"
)

const (
	// bulkLimit caps the number of records a single bulk call may touch.
	bulkLimit = 100

	// topLimit is the series length for top categories and top expenses.
	topLimit = 5
)

// Service exposes the engine's operations over a pair of stores. All methods
// are safe for concurrent use if the underlying stores are.
type Service struct {
	expenses store.ExpenseStore
	budgets  store.BudgetStore
	clock    month.Clock
	logger   *slog.Logger
}

// New wires a Service. A nil clock falls back to the system clock and a nil
// logger to slog's default.
func New(expenses store.ExpenseStore, budgets store.BudgetStore, clock month.Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = month.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		expenses: expenses,
		budgets:  budgets,
		clock:    clock,
		logger:   logger,
	}
}

// parseMonth maps a raw token onto the engine's error taxonomy.
func parseMonth(token string) (month.Range, error) {
	r, err := month.Parse(token)
	if err != nil {
		return month.Range{}, invalidFormat("invalid month %q: expected YYYY-MM", token)
	}
	return r, nil
}
