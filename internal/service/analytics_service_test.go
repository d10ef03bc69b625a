package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperline/budgeteer/internal/model"
)

func TestGetAnalysisStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	marStart := utcDate(2025, time.March, 1)
	marEnd := utcDate(2025, time.April, 1)

	budget := &model.Budget{
		ID: "b1", OwnerID: "user-1", Month: "2025-03",
		EssentialItems: []model.EssentialItem{{Name: "Everything", Amount: amount(500)}},
	}
	categories := []model.CategoryTotal{
		{Category: "Food", Amount: 125, Count: 3},
		{Category: model.UncategorizedLabel, Amount: 100, Count: 1},
	}
	topExpenses := []model.TitleTotal{
		{Title: "Mystery", Amount: 100},
		{Title: "Dinner", Amount: 60},
	}
	weekly := []model.WeekTotal{{Week: 10, Amount: 125}, {Week: 11, Amount: 100}}

	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-03").Return(budget, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", marStart, marEnd).Return(225.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", marStart, marEnd).Return(categories, nil)
	f.expenses.EXPECT().TopByTitle(ctx, "user-1", marStart, marEnd, 5).Return(topExpenses, nil)
	f.expenses.EXPECT().SumPerISOWeek(ctx, "user-1", marStart, marEnd).Return(weekly, nil)

	got, err := f.service.GetAnalysisStats(ctx, "user-1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", got.Month)
	assert.True(t, got.BudgetExists)
	assert.Equal(t, 500.0, got.TotalBudget)
	assert.Equal(t, 225.0, got.TotalExpenses)
	assert.Equal(t, 275.0, got.RemainingBudget)
	assert.Equal(t, 45.0, got.BudgetUsedPercentage)
	// March is a past month relative to the fixed clock, so the average
	// divides by the full 31 days.
	assert.InDelta(t, 225.0/31.0, got.DailyAverageSpend, 1e-9)
	assert.Equal(t, categories, got.TopCategories)
	assert.Equal(t, topExpenses, got.TopExpenses)
	assert.Equal(t, weekly, got.WeeklyExpenses)
}

func TestGetAnalysisStatsNoBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	marStart := utcDate(2025, time.March, 1)
	marEnd := utcDate(2025, time.April, 1)

	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-03").Return(nil, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", marStart, marEnd).Return(225.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", marStart, marEnd).
		Return([]model.CategoryTotal{{Category: "Food", Amount: 225, Count: 4}}, nil)
	f.expenses.EXPECT().TopByTitle(ctx, "user-1", marStart, marEnd, 5).Return(nil, nil)
	f.expenses.EXPECT().SumPerISOWeek(ctx, "user-1", marStart, marEnd).Return(nil, nil)

	got, err := f.service.GetAnalysisStats(ctx, "user-1", "2025-03")
	require.NoError(t, err)
	assert.False(t, got.BudgetExists)
	assert.Equal(t, 0.0, got.TotalBudget)
	assert.Equal(t, 0.0, got.RemainingBudget)
	assert.Equal(t, 0.0, got.BudgetUsedPercentage)
	// Partial data is still valuable without a budget.
	assert.Equal(t, 225.0, got.TotalExpenses)
	require.Len(t, got.TopCategories, 1)
}

func TestGetAnalysisStatsZeroBudgetTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	marStart := utcDate(2025, time.March, 1)
	marEnd := utcDate(2025, time.April, 1)

	// All items lack amounts, so the recomputed total is 0.
	budget := &model.Budget{
		ID: "b1", OwnerID: "user-1", Month: "2025-03",
		EssentialItems: []model.EssentialItem{{Name: "Placeholder"}},
	}
	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-03").Return(budget, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", marStart, marEnd).Return(50.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", marStart, marEnd).Return(nil, nil)
	f.expenses.EXPECT().TopByTitle(ctx, "user-1", marStart, marEnd, 5).Return(nil, nil)
	f.expenses.EXPECT().SumPerISOWeek(ctx, "user-1", marStart, marEnd).Return(nil, nil)

	got, err := f.service.GetAnalysisStats(ctx, "user-1", "2025-03")
	require.NoError(t, err)
	assert.True(t, got.BudgetExists)
	assert.Equal(t, 0.0, got.BudgetUsedPercentage)
	assert.Equal(t, -50.0, got.RemainingBudget)
}

func TestGetAnalysisStatsCurrentMonthAverage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-11").Return(nil, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", novStart, novEnd).Return(280.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", novStart, novEnd).Return(nil, nil)
	f.expenses.EXPECT().TopByTitle(ctx, "user-1", novStart, novEnd, 5).Return(nil, nil)
	f.expenses.EXPECT().SumPerISOWeek(ctx, "user-1", novStart, novEnd).Return(nil, nil)

	got, err := f.service.GetAnalysisStats(ctx, "user-1", "2025-11")
	require.NoError(t, err)
	// The fixed clock sits on the 14th, so the average reflects elapsed
	// days rather than the whole month.
	assert.InDelta(t, 280.0/14.0, got.DailyAverageSpend, 1e-9)
}

func TestGetAnalysisStatsTruncatesCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	marStart := utcDate(2025, time.March, 1)
	marEnd := utcDate(2025, time.April, 1)

	categories := []model.CategoryTotal{
		{Category: "A", Amount: 60}, {Category: "B", Amount: 50},
		{Category: "C", Amount: 40}, {Category: "D", Amount: 30},
		{Category: "E", Amount: 20}, {Category: "F", Amount: 10},
	}
	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-03").Return(nil, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", marStart, marEnd).Return(210.0, nil)
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", marStart, marEnd).Return(categories, nil)
	f.expenses.EXPECT().TopByTitle(ctx, "user-1", marStart, marEnd, 5).Return(nil, nil)
	f.expenses.EXPECT().SumPerISOWeek(ctx, "user-1", marStart, marEnd).Return(nil, nil)

	got, err := f.service.GetAnalysisStats(ctx, "user-1", "2025-03")
	require.NoError(t, err)
	require.Len(t, got.TopCategories, 5)
	assert.Equal(t, "E", got.TopCategories[4].Category)
}

func TestGetAnalysisStatsSpendFailureDegradesToZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	marStart := utcDate(2025, time.March, 1)
	marEnd := utcDate(2025, time.April, 1)

	budget := &model.Budget{
		ID: "b1", OwnerID: "user-1", Month: "2025-03",
		EssentialItems: []model.EssentialItem{{Name: "Everything", Amount: amount(500)}},
	}
	f.budgets.EXPECT().FindBudgetByMonth(ctx, "user-1", "2025-03").Return(budget, nil)
	f.expenses.EXPECT().SumInRange(ctx, "user-1", marStart, marEnd).
		Return(0.0, errors.New("backend down"))
	f.expenses.EXPECT().SumPerCategory(ctx, "user-1", marStart, marEnd).Return(nil, nil)
	f.expenses.EXPECT().TopByTitle(ctx, "user-1", marStart, marEnd, 5).Return(nil, nil)
	f.expenses.EXPECT().SumPerISOWeek(ctx, "user-1", marStart, marEnd).Return(nil, nil)

	got, err := f.service.GetAnalysisStats(ctx, "user-1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.TotalExpenses)
	assert.Equal(t, 500.0, got.RemainingBudget)
}

func TestGetAnalysisStatsInvalidMonth(t *testing.T) {
	f := newFixture(t)

	for _, token := range []string{"2025-13", "2025-1", "202511", "25-01"} {
		_, err := f.service.GetAnalysisStats(context.Background(), "user-1", token)
		assert.True(t, IsInvalidFormat(err), "token %q", token)
	}
}
