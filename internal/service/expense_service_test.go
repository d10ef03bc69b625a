package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/copperline/budgeteer/internal/model"
	"github.com/copperline/budgeteer/internal/store"
)

func TestCreateExpenseNormalizesDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expenses.EXPECT().
		CreateExpense(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.Expense) error {
			assert.Equal(t, "user-1", e.OwnerID)
			assert.Equal(t, "Coffee beans", e.Title)
			assert.Equal(t, 12.5, e.Amount)
			// A bare date lands on UTC midnight.
			assert.Equal(t, utcDate(2025, time.October, 3), e.Date)
			assert.Equal(t, testNow, e.CreatedAt)
			return nil
		})

	got, err := f.service.CreateExpense(ctx, "user-1", ExpenseInput{
		Title:  "  Coffee beans ",
		Amount: 12.5,
		Date:   "2025-10-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "Coffee beans", got.Title)
}

func TestCreateExpenseAcceptsRFC3339(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expenses.EXPECT().
		CreateExpense(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.Expense) error {
			assert.Equal(t, time.Date(2025, time.October, 3, 18, 30, 0, 0, time.UTC), e.Date)
			return nil
		})

	_, err := f.service.CreateExpense(ctx, "user-1", ExpenseInput{
		Title:  "Dinner out",
		Amount: 48,
		Date:   "2025-10-03T20:30:00+02:00",
	})
	require.NoError(t, err)
}

func TestCreateExpenseValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input ExpenseInput
	}{
		{"short title", ExpenseInput{Title: "ab", Amount: 10, Date: "2025-10-03"}},
		{"sub-cent amount", ExpenseInput{Title: "Coffee beans", Amount: 0.001, Date: "2025-10-03"}},
		{"negative amount", ExpenseInput{Title: "Coffee beans", Amount: -4, Date: "2025-10-03"}},
		{"bad date", ExpenseInput{Title: "Coffee beans", Amount: 10, Date: "03/10/2025"}},
		{"blank date", ExpenseInput{Title: "Coffee beans", Amount: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateExpense(ctx, "user-1", tt.input)
			assert.True(t, IsInvalidFormat(err))
		})
	}
}

func TestBulkCreateExpensesCap(t *testing.T) {
	f := newFixture(t)

	inputs := make([]ExpenseInput, bulkLimit+1)
	for i := range inputs {
		inputs[i] = ExpenseInput{Title: "Filler row", Amount: 1, Date: "2025-10-03"}
	}
	_, err := f.service.BulkCreateExpenses(context.Background(), "user-1", inputs)
	assert.True(t, IsInvalidFormat(err))
}

func TestBulkCreateExpensesValidatesBeforeWriting(t *testing.T) {
	f := newFixture(t)

	// Second row is invalid; nothing may reach the store.
	inputs := []ExpenseInput{
		{Title: "Good row", Amount: 10, Date: "2025-10-03"},
		{Title: "x", Amount: 10, Date: "2025-10-03"},
	}
	_, err := f.service.BulkCreateExpenses(context.Background(), "user-1", inputs)
	assert.True(t, IsInvalidFormat(err))
}

func TestBulkCreateExpenses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expenses.EXPECT().
		CreateExpenses(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, expenses []*model.Expense) error {
			require.Len(t, expenses, 2)
			return nil
		})

	got, err := f.service.BulkCreateExpenses(ctx, "user-1", []ExpenseInput{
		{Title: "Groceries", Amount: 82.4, Date: "2025-10-03"},
		{Title: "Fuel stop", Amount: 55, Date: "2025-10-04"},
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateExpensePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	existing := &model.Expense{
		ID: "e1", OwnerID: "user-1", Title: "Groceries", Amount: 80,
		Category: "Food", Date: utcDate(2025, time.October, 3),
	}
	f.expenses.EXPECT().GetExpense(ctx, "user-1", "e1").Return(existing, nil)
	f.expenses.EXPECT().
		UpdateExpense(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.Expense) error {
			assert.Equal(t, "Groceries", e.Title)
			assert.Equal(t, 95.0, e.Amount)
			assert.Equal(t, "Food", e.Category)
			assert.Equal(t, testNow, e.UpdatedAt)
			return nil
		})

	got, err := f.service.UpdateExpense(ctx, "user-1", "e1", ExpenseUpdate{Amount: amount(95)})
	require.NoError(t, err)
	assert.Equal(t, 95.0, got.Amount)
	assert.Equal(t, "Groceries", got.Title)
}

func TestUpdateExpenseRejectsBadFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	existing := &model.Expense{ID: "e1", OwnerID: "user-1", Title: "Groceries", Amount: 80}
	title := "x"
	f.expenses.EXPECT().GetExpense(ctx, "user-1", "e1").Return(existing, nil)

	_, err := f.service.UpdateExpense(ctx, "user-1", "e1", ExpenseUpdate{Title: &title})
	assert.True(t, IsInvalidFormat(err))
}

func TestGetExpenseNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expenses.EXPECT().GetExpense(ctx, "user-1", "e-gone").Return(nil, store.ErrNotFound)

	_, err := f.service.GetExpense(ctx, "user-1", "e-gone")
	assert.True(t, IsNotFound(err))
}

func TestBulkDeleteExpensesCap(t *testing.T) {
	f := newFixture(t)

	ids := make([]string, bulkLimit+1)
	for i := range ids {
		ids[i] = "id"
	}
	_, err := f.service.BulkDeleteExpenses(context.Background(), "user-1", ids)
	assert.True(t, IsInvalidFormat(err))
}

func TestBulkDeleteExpenses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expenses.EXPECT().DeleteExpenses(ctx, "user-1", []string{"e1", "e2", "e3"}).Return(2, nil)

	deleted, err := f.service.BulkDeleteExpenses(ctx, "user-1", []string{"e1", "e2", "e3"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func TestReplaceExpensesInMonths(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	octStart := utcDate(2025, time.October, 1)
	octEnd := utcDate(2025, time.November, 1)

	f.expenses.EXPECT().DeleteExpensesInRange(ctx, "user-1", octStart, octEnd).Return(3, nil)
	f.expenses.EXPECT().
		CreateExpenses(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, expenses []*model.Expense) error {
			require.Len(t, expenses, 1)
			assert.Equal(t, "Rent October", expenses[0].Title)
			return nil
		})

	got, err := f.service.ReplaceExpensesInMonths(ctx, "user-1", []string{"2025-10"},
		[]ExpenseInput{{Title: "Rent October", Amount: 900, Date: "2025-10-01"}})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReplaceExpensesInMonthsRejectsOutOfRangeDate(t *testing.T) {
	f := newFixture(t)

	// The replacement record is dated outside the replaced month; nothing
	// may be deleted or written.
	_, err := f.service.ReplaceExpensesInMonths(context.Background(), "user-1",
		[]string{"2025-10"},
		[]ExpenseInput{{Title: "November rent", Amount: 900, Date: "2025-11-01"}})
	assert.True(t, IsInvalidFormat(err))
}

func TestReplaceExpensesInMonthsEmptyInputClears(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	octStart := utcDate(2025, time.October, 1)
	octEnd := utcDate(2025, time.November, 1)
	f.expenses.EXPECT().DeleteExpensesInRange(ctx, "user-1", octStart, octEnd).Return(5, nil)

	got, err := f.service.ReplaceExpensesInMonths(ctx, "user-1", []string{"2025-10"}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListExpensesForExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all := []*model.Expense{
		{ID: "e1", OwnerID: "user-1", Title: "Old", Date: utcDate(2024, time.January, 5)},
		{ID: "e2", OwnerID: "user-1", Title: "New", Date: utcDate(2025, time.November, 2)},
	}
	f.expenses.EXPECT().ListExpensesInRange(ctx, "user-1", time.Time{}, time.Time{}).Return(all, nil)

	got, err := f.service.ListExpensesForExport(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListExpensesForExportBlankOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListExpensesForExport(context.Background(), "  ")
	assert.True(t, IsInvalidFormat(err))
}
