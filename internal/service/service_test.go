package service

import (
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/copperline/budgeteer/internal/month"
	"github.com/copperline/budgeteer/internal/store"
)

// testNow pins "now" to mid-November 2025 so current-month logic is
// deterministic.
var testNow = time.Date(2025, time.November, 14, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service  *Service
	expenses *store.MockExpenseStore
	budgets  *store.MockBudgetStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	expenses := store.NewMockExpenseStore(ctrl)
	budgets := store.NewMockBudgetStore(ctrl)
	logger := slog.New(slog.DiscardHandler)
	return &fixture{
		service:  New(expenses, budgets, month.FixedClock{T: testNow}, logger),
		expenses: expenses,
		budgets:  budgets,
	}
}

func amount(v float64) *float64 {
	return &v
}

func utcDate(year int, m time.Month, day int) time.Time {
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
}
