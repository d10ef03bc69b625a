package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/copperline/budgeteer/internal/model"
	"github.com/copperline/budgeteer/internal/store"
	"github.com/copperline/budgeteer/internal/validate"
)

// ExpenseInput is the write shape for an expense. Date is either "YYYY-MM-DD"
// (normalized to UTC midnight) or a full RFC3339 instant.
type ExpenseInput struct {
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Date        string  `json:"date"`
}

// ExpenseUpdate carries a partial update; nil fields are left unchanged.
type ExpenseUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

// CreateExpense validates and stores a single expense.
func (s *Service) CreateExpense(ctx context.Context, ownerID string, input ExpenseInput) (*model.Expense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	expense, err := s.buildExpense(ownerID, input)
	if err != nil {
		return nil, err
	}
	if err := s.expenses.CreateExpense(ctx, expense); err != nil {
		return nil, storeUnavailable("create expense", err)
	}
	return expense, nil
}

// BulkCreateExpenses stores up to 100 expenses in one call. All inputs are
// validated before anything is written.
func (s *Service) BulkCreateExpenses(ctx context.Context, ownerID string, inputs []ExpenseInput) ([]*model.Expense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := requireBatch(len(inputs)); err != nil {
		return nil, err
	}

	expenses := make([]*model.Expense, 0, len(inputs))
	for _, input := range inputs {
		expense, err := s.buildExpense(ownerID, input)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := s.expenses.CreateExpenses(ctx, expenses); err != nil {
		return nil, storeUnavailable("bulk create expenses", err)
	}
	return expenses, nil
}

// GetExpense fetches one expense by id.
func (s *Service) GetExpense(ctx context.Context, ownerID, expenseID string) (*model.Expense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := requireID(expenseID, "expense id"); err != nil {
		return nil, err
	}
	expense, err := s.expenses.GetExpense(ctx, ownerID, expenseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("expense %s not found", expenseID)
		}
		return nil, storeUnavailable("get expense", err)
	}
	return expense, nil
}

// UpdateExpense applies a partial update to an existing expense.
func (s *Service) UpdateExpense(ctx context.Context, ownerID, expenseID string, update ExpenseUpdate) (*model.Expense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := requireID(expenseID, "expense id"); err != nil {
		return nil, err
	}

	expense, err := s.expenses.GetExpense(ctx, ownerID, expenseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("expense %s not found", expenseID)
		}
		return nil, storeUnavailable("get expense", err)
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if !validate.ItemName(title) {
			return nil, invalidFormat("title must be 3-100 characters")
		}
		expense.Title = title
	}
	if update.Amount != nil {
		if !validate.Amount(*update.Amount) {
			return nil, invalidFormat("amount must be a finite number of at least 0.01")
		}
		expense.Amount = *update.Amount
	}
	if update.Description != nil {
		expense.Description = strings.TrimSpace(*update.Description)
	}
	if update.Category != nil {
		expense.Category = strings.TrimSpace(*update.Category)
	}
	if update.Date != nil {
		date, err := parseDate(*update.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	expense.UpdatedAt = s.clock.Now().UTC()

	if err := s.expenses.UpdateExpense(ctx, expense); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("expense %s not found", expenseID)
		}
		return nil, storeUnavailable("update expense", err)
	}
	return expense, nil
}

// DeleteExpense removes one expense by id.
func (s *Service) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := requireID(expenseID, "expense id"); err != nil {
		return err
	}
	if err := s.expenses.DeleteExpense(ctx, ownerID, expenseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("expense %s not found", expenseID)
		}
		return storeUnavailable("delete expense", err)
	}
	return nil
}

// BulkDeleteExpenses removes up to 100 expenses by id and reports how many
// were actually deleted. Ids that do not resolve for the owner are skipped.
func (s *Service) BulkDeleteExpenses(ctx context.Context, ownerID string, expenseIDs []string) (int, error) {
	if err := requireOwner(ownerID); err != nil {
		return 0, err
	}
	if err := requireBatch(len(expenseIDs)); err != nil {
		return 0, err
	}
	for _, id := range expenseIDs {
		if strings.TrimSpace(id) == "" {
			return 0, invalidFormat("expense id must not be blank")
		}
	}
	deleted, err := s.expenses.DeleteExpenses(ctx, ownerID, expenseIDs)
	if err != nil {
		return 0, storeUnavailable("bulk delete expenses", err)
	}
	return deleted, nil
}

// ReplaceExpensesInMonths atomically-in-intent swaps the owner's expenses in
// the named months for the supplied list: everything dated inside those
// months is deleted, then the new records are bulk-created. Every new record
// must itself fall inside one of the named months.
func (s *Service) ReplaceExpensesInMonths(ctx context.Context, ownerID string, months []string, inputs []ExpenseInput) ([]*model.Expense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if len(months) == 0 {
		return nil, invalidFormat("at least one month is required")
	}
	// An empty input list is a legitimate "clear these months".
	if len(inputs) > bulkLimit {
		return nil, invalidFormat("bulk operations are capped at %d records", bulkLimit)
	}

	windows := make([]store.MonthWindow, 0, len(months))
	for _, m := range months {
		if !validate.MonthToken(m) {
			return nil, invalidFormat("invalid month %q: expected YYYY-MM", m)
		}
		r, err := parseMonth(m)
		if err != nil {
			return nil, err
		}
		windows = append(windows, store.MonthWindow{Month: m, Start: r.Start, End: r.End})
	}

	expenses := make([]*model.Expense, 0, len(inputs))
	for _, input := range inputs {
		expense, err := s.buildExpense(ownerID, input)
		if err != nil {
			return nil, err
		}
		if !dateInWindows(expense.Date, windows) {
			return nil, invalidFormat("expense %q dated %s falls outside the replaced months",
				expense.Title, expense.Date.Format("2006-01-02"))
		}
		expenses = append(expenses, expense)
	}

	for _, w := range windows {
		if _, err := s.expenses.DeleteExpensesInRange(ctx, ownerID, w.Start, w.End); err != nil {
			return nil, storeUnavailable("delete expenses in range", err)
		}
	}
	if len(expenses) > 0 {
		if err := s.expenses.CreateExpenses(ctx, expenses); err != nil {
			return nil, storeUnavailable("bulk create expenses", err)
		}
	}
	return expenses, nil
}

// ListExpensesInMonth returns the owner's expenses for one month, date
// ascending.
func (s *Service) ListExpensesInMonth(ctx context.Context, ownerID, monthToken string) ([]*model.Expense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !validate.MonthToken(monthToken) {
		return nil, invalidFormat("invalid month %q: expected YYYY-MM", monthToken)
	}
	r, err := parseMonth(monthToken)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListExpensesInRange(ctx, ownerID, r.Start, r.End)
	if err != nil {
		return nil, storeUnavailable("list expenses", err)
	}
	return expenses, nil
}

// ListExpensesForExport returns every expense the owner has, date ascending,
// for downstream formatting (CSV export and the like).
func (s *Service) ListExpensesForExport(ctx context.Context, ownerID string) ([]*model.Expense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListExpensesInRange(ctx, ownerID, time.Time{}, time.Time{})
	if err != nil {
		return nil, storeUnavailable("list expenses for export", err)
	}
	return expenses, nil
}

func (s *Service) buildExpense(ownerID string, input ExpenseInput) (*model.Expense, error) {
	title := strings.TrimSpace(input.Title)
	if !validate.ItemName(title) {
		return nil, invalidFormat("title must be 3-100 characters")
	}
	if !validate.Amount(input.Amount) {
		return nil, invalidFormat("amount must be a finite number of at least 0.01")
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	return &model.Expense{
		OwnerID:     ownerID,
		Title:       title,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// parseDate resolves an inbound date string to a UTC instant. A bare date
// lands on UTC midnight.
func parseDate(value string) (time.Time, error) {
	if !validate.DateString(value) {
		return time.Time{}, invalidFormat("invalid date %q: expected YYYY-MM-DD or RFC3339", value)
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, invalidFormat("invalid date %q: expected YYYY-MM-DD or RFC3339", value)
	}
	return t.UTC(), nil
}

func dateInWindows(date time.Time, windows []store.MonthWindow) bool {
	for _, w := range windows {
		if !date.Before(w.Start) && date.Before(w.End) {
			return true
		}
	}
	return false
}

func requireBatch(n int) error {
	if n == 0 {
		return invalidFormat("at least one record is required")
	}
	if n > bulkLimit {
		return invalidFormat("bulk operations are capped at %d records", bulkLimit)
	}
	return nil
}
