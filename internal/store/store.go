// Package store defines the persistence contracts the aggregation engine
// depends on, plus a Firestore implementation and an in-memory twin used for
// local development and tests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/copperline/budgeteer/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

var (
	// ErrNotFound is returned when a record does not exist for the given
	// owner. An id that belongs to a different owner is reported the same
	// way; existence of other users' records must never leak.
	ErrNotFound = errors.New("record not found")

	// ErrBudgetExists is returned by CreateBudget when a budget already
	// exists for the (owner, month) pair. The store must detect this
	// atomically so concurrent first-of-month creates cannot both succeed.
	ErrBudgetExists = errors.New("budget already exists for month")
)

// MonthWindow pairs a month token with its half-open UTC range. Batch
// aggregation queries take windows so the store never parses tokens itself.
type MonthWindow struct {
	Month string
	Start time.Time
	End   time.Time
}

// ExpenseStore owns expense records. All queries are owner-scoped and all
// date windows are half-open: Date >= start && Date < end.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *model.Expense) error
	CreateExpenses(ctx context.Context, expenses []*model.Expense) error
	GetExpense(ctx context.Context, ownerID, expenseID string) (*model.Expense, error)
	UpdateExpense(ctx context.Context, expense *model.Expense) error
	DeleteExpense(ctx context.Context, ownerID, expenseID string) error
	DeleteExpenses(ctx context.Context, ownerID string, expenseIDs []string) (int, error)
	DeleteExpensesInRange(ctx context.Context, ownerID string, start, end time.Time) (int, error)

	// ListExpensesInRange returns the owner's expenses in the window,
	// ordered by date ascending. A zero start/end means unbounded on that
	// side (used by the export read path).
	ListExpensesInRange(ctx context.Context, ownerID string, start, end time.Time) ([]*model.Expense, error)

	// SumInRange returns the summed amount in the window, 0 when no rows
	// match.
	SumInRange(ctx context.Context, ownerID string, start, end time.Time) (float64, error)

	// SumPerMonth batch-sums one figure per requested window. Every
	// requested month token appears in the result, defaulting to 0.
	SumPerMonth(ctx context.Context, ownerID string, windows []MonthWindow) (map[string]float64, error)

	// SumPerDay groups by 1-based day-of-month; days without expenses are
	// omitted.
	SumPerDay(ctx context.Context, ownerID string, start, end time.Time) ([]model.DayTotal, error)

	// SumPerCategory groups by category, blank coalesced to
	// model.UncategorizedLabel, sorted by amount descending.
	SumPerCategory(ctx context.Context, ownerID string, start, end time.Time) ([]model.CategoryTotal, error)

	// TopByTitle groups by normalized (trimmed, title-cased) title, sums
	// amounts, sorts descending and truncates to limit.
	TopByTitle(ctx context.Context, ownerID string, start, end time.Time, limit int) ([]model.TitleTotal, error)

	// SumPerISOWeek groups by ISO-8601 week number, sorted by week
	// ascending.
	SumPerISOWeek(ctx context.Context, ownerID string, start, end time.Time) ([]model.WeekTotal, error)
}

// BudgetStore owns budget records, at most one per (owner, month).
type BudgetStore interface {
	CreateBudget(ctx context.Context, budget *model.Budget) error
	GetBudget(ctx context.Context, ownerID, budgetID string) (*model.Budget, error)
	UpdateBudget(ctx context.Context, budget *model.Budget) error
	DeleteBudget(ctx context.Context, ownerID, budgetID string) error

	// FindBudgetByMonth returns (nil, nil) when the owner has no budget for
	// the month; absence is not an error on this path.
	FindBudgetByMonth(ctx context.Context, ownerID, monthToken string) (*model.Budget, error)

	// FindMostRecentBudgetBefore returns the owner's budget with the
	// greatest month strictly earlier than monthToken, or (nil, nil).
	FindMostRecentBudgetBefore(ctx context.Context, ownerID, monthToken string) (*model.Budget, error)

	BudgetExistsForMonth(ctx context.Context, ownerID, monthToken string) (bool, error)

	// ListBudgets returns all of the owner's budgets sorted by month
	// descending.
	ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error)
}
