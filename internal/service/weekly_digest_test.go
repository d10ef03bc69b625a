package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperline/budgeteer/internal/model"
)

func TestGenerateWeeklyDigest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	weekStart := testNow.AddDate(0, 0, -7)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", weekStart, testNow).Return(120.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", weekStart, testNow).
		Return([]model.CategoryTotal{
			{Category: "Food", Amount: 80, Count: 4},
			{Category: "Transport", Amount: 40, Count: 2},
		}, nil)
	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-11").
		Return(&model.Budget{
			ID: "b1", OwnerID: "user-1", Month: "2025-11",
			EssentialItems: []model.EssentialItem{{Name: "Everything", Amount: amount(500)}},
		}, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", novStart, novEnd).Return(300.0, nil)

	got, err := f.service.GenerateWeeklyDigest(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.TotalSpent)
	assert.Equal(t, "2025-11", got.BudgetMonth)
	assert.True(t, got.BudgetExists)
	assert.Equal(t, 500.0, got.BudgetTotal)
	assert.Equal(t, 300.0, got.BudgetSpent)
	assert.Contains(t, got.Summary, "$120.00")
	assert.Contains(t, got.Summary, "Food")
	assert.Contains(t, got.Summary, "$200.00 of your $500.00 budget remains")
}

func TestGenerateWeeklyDigestNoBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	weekStart := testNow.AddDate(0, 0, -7)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", weekStart, testNow).Return(0.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", weekStart, testNow).Return(nil, nil)
	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-11").Return(nil, nil)

	got, err := f.service.GenerateWeeklyDigest(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, got.BudgetExists)
	assert.Equal(t, "You spent $0.00 this week.", got.Summary)
}

func TestGenerateWeeklyDigestOverBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	weekStart := testNow.AddDate(0, 0, -7)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", weekStart, testNow).Return(250.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", weekStart, testNow).
		Return([]model.CategoryTotal{{Category: "Food", Amount: 250, Count: 6}}, nil)
	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-11").
		Return(&model.Budget{
			ID: "b1", OwnerID: "user-1", Month: "2025-11",
			EssentialItems: []model.EssentialItem{{Name: "Everything", Amount: amount(500)}},
		}, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", novStart, novEnd).Return(620.0, nil)

	got, err := f.service.GenerateWeeklyDigest(ctx, "user-1")
	require.NoError(t, err)
	assert.Contains(t, got.Summary, "You are $120.00 over your $500.00 budget")
}
