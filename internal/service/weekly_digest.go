package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/copperline/budgeteer/internal/model"
	"github.com/copperline/budgeteer/internal/month"
)

var digestPrinter = message.NewPrinter(language.English)

// GenerateWeeklyDigest summarizes the owner's trailing seven days of spending
// and the state of the current month's budget. The digest is plain data; mail
// delivery and templating live outside the engine.
func (s *Service) GenerateWeeklyDigest(ctx context.Context, ownerID string) (*model.WeeklyDigest, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	end := s.clock.Now().UTC()
	start := end.AddDate(0, 0, -7)

	totalSpent, err := s.expenses.SumInRange(ctx, ownerID, start, end)
	if err != nil {
		return nil, storeUnavailable("sum weekly spend", err)
	}
	categories, err := s.expenses.SumPerCategory(ctx, ownerID, start, end)
	if err != nil {
		return nil, storeUnavailable("weekly category breakdown", err)
	}
	if len(categories) > topLimit {
		categories = categories[:topLimit]
	}

	digest := &model.WeeklyDigest{
		OwnerID:       ownerID,
		PeriodStart:   start,
		PeriodEnd:     end,
		TotalSpent:    totalSpent,
		TopCategories: categories,
		BudgetMonth:   month.Current(s.clock),
	}

	// Budget context is enrichment; a missing budget still yields a digest.
	budget, err := s.budgets.FindBudgetByMonth(ctx, ownerID, digest.BudgetMonth)
	if err != nil {
		s.logger.Warn("weekly digest budget lookup failed", "ownerId", ownerID, "error", err)
	} else if budget != nil {
		digest.BudgetExists = true
		digest.BudgetTotal = budget.TotalBudget()
		digest.BudgetSpent = s.spentAmount(ctx, ownerID, digest.BudgetMonth)
	}

	digest.Summary = summarize(digest)
	return digest, nil
}

// summarize renders the one-line human summary carried in the digest body.
func summarize(d *model.WeeklyDigest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You spent %s this week", digestPrinter.Sprintf("$%.2f", d.TotalSpent))
	if len(d.TopCategories) > 0 {
		fmt.Fprintf(&b, ", mostly on %s (%s)",
			d.TopCategories[0].Category,
			digestPrinter.Sprintf("$%.2f", d.TopCategories[0].Amount))
	}
	b.WriteString(".")
	if d.BudgetExists && d.BudgetTotal > 0 {
		remaining := d.BudgetTotal - d.BudgetSpent
		if remaining >= 0 {
			fmt.Fprintf(&b, " %s of your %s budget remains for %s.",
				digestPrinter.Sprintf("$%.2f", remaining),
				digestPrinter.Sprintf("$%.2f", d.BudgetTotal),
				d.BudgetMonth)
		} else {
			fmt.Fprintf(&b, " You are %s over your %s budget for %s.",
				digestPrinter.Sprintf("$%.2f", -remaining),
				digestPrinter.Sprintf("$%.2f", d.BudgetTotal),
				d.BudgetMonth)
		}
	}
	return b.String()
}
