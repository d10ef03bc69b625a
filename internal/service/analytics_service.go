package service

import (
	"context"

	"github.com/copperline/budgeteer/internal/model"
	"github.com/copperline/budgeteer/internal/month"
	"github.com/copperline/budgeteer/internal/validate"
)

// GetAnalysisStats assembles the composite statistics view for one month:
// totals, budget usage, category and weekly breakdowns and the top expenses.
// The month may have no budget; the expense-derived figures are still
// returned with BudgetExists false and the budget figures zeroed.
func (s *Service) GetAnalysisStats(ctx context.Context, ownerID, monthToken string) (*model.AnalysisStats, error) {
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

	budget, err := s.budgets.FindBudgetByMonth(ctx, ownerID, monthToken)
	if err != nil {
		return nil, storeUnavailable("find budget by month", err)
	}

	// The expense total is display enrichment like any other spend figure;
	// it degrades to 0 rather than failing the stats.
	totalExpenses := s.spentAmount(ctx, ownerID, monthToken)

	categories, err := s.expenses.SumPerCategory(ctx, ownerID, r.Start, r.End)
	if err != nil {
		return nil, storeUnavailable("sum per category", err)
	}
	if len(categories) > topLimit {
		categories = categories[:topLimit]
	}

	topExpenses, err := s.expenses.TopByTitle(ctx, ownerID, r.Start, r.End, topLimit)
	if err != nil {
		return nil, storeUnavailable("top expenses by title", err)
	}

	weekly, err := s.expenses.SumPerISOWeek(ctx, ownerID, r.Start, r.End)
	if err != nil {
		return nil, storeUnavailable("sum per iso week", err)
	}

	days, err := month.DaysForAverage(s.clock, monthToken)
	if err != nil {
		return nil, invalidFormat("invalid month %q: expected YYYY-MM", monthToken)
	}

	stats := &model.AnalysisStats{
		Month:             monthToken,
		TotalExpenses:     totalExpenses,
		DailyAverageSpend: totalExpenses / float64(days),
		TopCategories:     categories,
		TopExpenses:       topExpenses,
		WeeklyExpenses:    weekly,
	}

	if budget == nil {
		return stats, nil
	}

	totalBudget := budget.TotalBudget()
	stats.BudgetExists = true
	stats.TotalBudget = totalBudget
	stats.RemainingBudget = totalBudget - totalExpenses
	if totalBudget > 0 {
		stats.BudgetUsedPercentage = totalExpenses / totalBudget * 100
	}
	return stats, nil
}
