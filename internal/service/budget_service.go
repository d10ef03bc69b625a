package service

import (
	"context"
	"errors"
	"strings"

	"github.com/copperline/budgeteer/internal/model"
	"github.com/copperline/budgeteer/internal/month"
	"github.com/copperline/budgeteer/internal/store"
	"github.com/copperline/budgeteer/internal/validate"
)

// CreateBudget creates a budget for (owner, month). A budget already existing
// for that month is a conflict.
func (s *Service) CreateBudget(ctx context.Context, ownerID, monthToken string, items []model.EssentialItem) (*model.BudgetWithSpend, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !validate.MonthToken(monthToken) {
		return nil, invalidFormat("invalid month %q: expected YYYY-MM", monthToken)
	}
	cleaned, err := cleanItems(items)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	budget := &model.Budget{
		OwnerID:        ownerID,
		Month:          monthToken,
		EssentialItems: cleaned,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.budgets.CreateBudget(ctx, budget); err != nil {
		if errors.Is(err, store.ErrBudgetExists) {
			return nil, conflict("budget already exists for month %s", monthToken)
		}
		return nil, storeUnavailable("create budget", err)
	}
	return s.enrich(ctx, budget), nil
}

// UpdateBudget replaces the month and essential items of an existing budget.
func (s *Service) UpdateBudget(ctx context.Context, ownerID, budgetID, monthToken string, items []model.EssentialItem) (*model.BudgetWithSpend, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := requireID(budgetID, "budget id"); err != nil {
		return nil, err
	}
	if !validate.MonthToken(monthToken) {
		return nil, invalidFormat("invalid month %q: expected YYYY-MM", monthToken)
	}
	cleaned, err := cleanItems(items)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgets.GetBudget(ctx, ownerID, budgetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("budget %s not found", budgetID)
		}
		return nil, storeUnavailable("get budget", err)
	}

	budget.Month = monthToken
	budget.EssentialItems = cleaned
	budget.UpdatedAt = s.clock.Now().UTC()
	if err := s.budgets.UpdateBudget(ctx, budget); err != nil {
		switch {
		case errors.Is(err, store.ErrBudgetExists):
			return nil, conflict("budget already exists for month %s", monthToken)
		case errors.Is(err, store.ErrNotFound):
			return nil, notFound("budget %s not found", budgetID)
		}
		return nil, storeUnavailable("update budget", err)
	}
	return s.enrich(ctx, budget), nil
}

// DeleteBudget removes a budget by id.
func (s *Service) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := requireID(budgetID, "budget id"); err != nil {
		return err
	}
	if err := s.budgets.DeleteBudget(ctx, ownerID, budgetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("budget %s not found", budgetID)
		}
		return storeUnavailable("delete budget", err)
	}
	return nil
}

// GetBudgetByMonth returns the owner's budget for the given month enriched
// with spend, or (nil, nil) when no budget exists for that month.
func (s *Service) GetBudgetByMonth(ctx context.Context, ownerID, monthToken string) (*model.BudgetWithSpend, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !validate.MonthToken(monthToken) {
		return nil, invalidFormat("invalid month %q: expected YYYY-MM", monthToken)
	}

	budget, err := s.budgets.FindBudgetByMonth(ctx, ownerID, monthToken)
	if err != nil {
		return nil, storeUnavailable("find budget by month", err)
	}
	if budget == nil {
		return nil, nil
	}
	return s.enrich(ctx, budget), nil
}

// GetAllBudgets returns every budget for the owner, month descending, each
// annotated with its total and spent amount. Spend for all months is resolved
// with one batched query.
func (s *Service) GetAllBudgets(ctx context.Context, ownerID string) ([]*model.BudgetWithSpend, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	budgets, err := s.budgets.ListBudgets(ctx, ownerID)
	if err != nil {
		return nil, storeUnavailable("list budgets", err)
	}
	if len(budgets) == 0 {
		return []*model.BudgetWithSpend{}, nil
	}

	windows := make([]store.MonthWindow, 0, len(budgets))
	seen := make(map[string]bool, len(budgets))
	for _, b := range budgets {
		if seen[b.Month] {
			continue
		}
		seen[b.Month] = true
		r, err := parseMonth(b.Month)
		if err != nil {
			// A stored month token is always valid; skip rather than fail
			// the whole list if one is somehow not.
			s.logger.Warn("skipping budget with malformed month", "budgetId", b.ID, "month", b.Month)
			continue
		}
		windows = append(windows, store.MonthWindow{Month: b.Month, Start: r.Start, End: r.End})
	}

	// Spend is display enrichment: a failed sum degrades to 0 instead of
	// failing the list.
	spent, err := s.expenses.SumPerMonth(ctx, ownerID, windows)
	if err != nil {
		s.logger.Warn("spend enrichment failed, defaulting to 0", "ownerId", ownerID, "error", err)
		spent = map[string]float64{}
	}

	enriched := make([]*model.BudgetWithSpend, 0, len(budgets))
	for _, b := range budgets {
		enriched = append(enriched, &model.BudgetWithSpend{
			Budget:      *b,
			TotalBudget: b.TotalBudget(),
			SpentAmount: spent[b.Month],
		})
	}
	return enriched, nil
}

// GetCurrentBudget resolves the budget for the clock's current month. This is
// a read with a possible create: when the month has no budget yet, the
// essential items of the most recent earlier budget are copied forward into a
// brand-new budget. With no earlier budget the result is (nil, nil).
//
// Two concurrent first calls in a fresh month may race on the create; the
// (owner, month) uniqueness guarantee in the store makes the loser re-fetch
// the winner's budget instead of duplicating it.
func (s *Service) GetCurrentBudget(ctx context.Context, ownerID string) (*model.BudgetWithSpend, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	current := month.Current(s.clock)

	budget, err := s.budgets.FindBudgetByMonth(ctx, ownerID, current)
	if err != nil {
		return nil, storeUnavailable("find budget by month", err)
	}
	if budget != nil {
		return s.enrich(ctx, budget), nil
	}

	previous, err := s.budgets.FindMostRecentBudgetBefore(ctx, ownerID, current)
	if err != nil {
		return nil, storeUnavailable("find previous budget", err)
	}
	if previous == nil {
		return nil, nil
	}

	now := s.clock.Now().UTC()
	created := &model.Budget{
		OwnerID:        ownerID,
		Month:          current,
		EssentialItems: copyItems(previous.EssentialItems),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.budgets.CreateBudget(ctx, created); err != nil {
		if errors.Is(err, store.ErrBudgetExists) {
			// Lost the create race; the winner's budget is the budget.
			winner, ferr := s.budgets.FindBudgetByMonth(ctx, ownerID, current)
			if ferr != nil {
				return nil, storeUnavailable("re-fetch budget after conflict", ferr)
			}
			if winner == nil {
				return nil, storeUnavailable("budget vanished after create conflict", err)
			}
			return s.enrich(ctx, winner), nil
		}
		return nil, storeUnavailable("create copied-forward budget", err)
	}
	s.logger.Info("copied budget forward",
		"ownerId", ownerID, "fromMonth", previous.Month, "toMonth", current)
	return s.enrich(ctx, created), nil
}

// AddEssentialItem appends a named item to the budget. Adding a name that is
// already present is a no-op, not an error; the existing item and its amount
// are retained.
func (s *Service) AddEssentialItem(ctx context.Context, ownerID, budgetID string, item model.EssentialItem) (*model.BudgetWithSpend, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := requireID(budgetID, "budget id"); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(item.Name)
	if !validate.ItemName(name) {
		return nil, invalidFormat("item name must be 3-100 characters")
	}
	if !validate.OptionalAmount(item.Amount) {
		return nil, invalidFormat("item amount must be a positive finite number")
	}

	budget, err := s.budgets.GetBudget(ctx, ownerID, budgetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("budget %s not found", budgetID)
		}
		return nil, storeUnavailable("get budget", err)
	}

	for _, existing := range budget.EssentialItems {
		if existing.Name == name {
			return s.enrich(ctx, budget), nil
		}
	}

	budget.EssentialItems = append(budget.EssentialItems, model.EssentialItem{Name: name, Amount: item.Amount})
	budget.UpdatedAt = s.clock.Now().UTC()
	if err := s.budgets.UpdateBudget(ctx, budget); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("budget %s not found", budgetID)
		}
		return nil, storeUnavailable("update budget", err)
	}
	return s.enrich(ctx, budget), nil
}

// RemoveEssentialItem drops every item carrying the exact name. Removing a
// name that is not present is a no-op.
func (s *Service) RemoveEssentialItem(ctx context.Context, ownerID, budgetID, itemName string) (*model.BudgetWithSpend, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := requireID(budgetID, "budget id"); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(itemName)
	if name == "" {
		return nil, invalidFormat("item name must not be blank")
	}

	budget, err := s.budgets.GetBudget(ctx, ownerID, budgetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("budget %s not found", budgetID)
		}
		return nil, storeUnavailable("get budget", err)
	}

	kept := budget.EssentialItems[:0:0]
	for _, item := range budget.EssentialItems {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(budget.EssentialItems) {
		return s.enrich(ctx, budget), nil
	}

	budget.EssentialItems = kept
	budget.UpdatedAt = s.clock.Now().UTC()
	if err := s.budgets.UpdateBudget(ctx, budget); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("budget %s not found", budgetID)
		}
		return nil, storeUnavailable("update budget", err)
	}
	return s.enrich(ctx, budget), nil
}

// spentAmount sums the owner's expenses inside the month's range. Best-effort:
// enrichment must not take down the read it decorates, so any failure is
// logged and reported as 0.
func (s *Service) spentAmount(ctx context.Context, ownerID, monthToken string) float64 {
	r, err := parseMonth(monthToken)
	if err != nil {
		s.logger.Warn("spend enrichment skipped for malformed month", "month", monthToken)
		return 0
	}
	total, err := s.expenses.SumInRange(ctx, ownerID, r.Start, r.End)
	if err != nil {
		s.logger.Warn("spend enrichment failed, defaulting to 0",
			"ownerId", ownerID, "month", monthToken, "error", err)
		return 0
	}
	return total
}

// enrich annotates a budget with its recomputed total and spent amount.
func (s *Service) enrich(ctx context.Context, budget *model.Budget) *model.BudgetWithSpend {
	return &model.BudgetWithSpend{
		Budget:      *budget,
		TotalBudget: budget.TotalBudget(),
		SpentAmount: s.spentAmount(ctx, budget.OwnerID, budget.Month),
	}
}

func copyItems(items []model.EssentialItem) []model.EssentialItem {
	copied := make([]model.EssentialItem, len(items))
	for i, item := range items {
		copied[i] = item
		if item.Amount != nil {
			amount := *item.Amount
			copied[i].Amount = &amount
		}
	}
	return copied
}

// cleanItems validates and trims an incoming item list, rejecting duplicate
// names inside one request.
func cleanItems(items []model.EssentialItem) ([]model.EssentialItem, error) {
	cleaned := make([]model.EssentialItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if !validate.ItemName(name) {
			return nil, invalidFormat("item name %q must be 3-100 characters", item.Name)
		}
		if !validate.OptionalAmount(item.Amount) {
			return nil, invalidFormat("item %q amount must be a positive finite number", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		cleaned = append(cleaned, model.EssentialItem{Name: name, Amount: item.Amount})
	}
	return cleaned, nil
}

func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return invalidFormat("owner id must not be blank")
	}
	return nil
}

func requireID(id, label string) error {
	if strings.TrimSpace(id) == "" {
		return invalidFormat("%s must not be blank", label)
	}
	return nil
}
