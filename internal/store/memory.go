package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/copperline/budgeteer/internal/model"
)

// MemoryStore implements ExpenseStore and BudgetStore with in-memory maps.
// Used for local development and tests; it must stay behaviorally identical to
// the Firestore store, including the (owner, month) uniqueness guarantee.
type MemoryStore struct {
	mu sync.RWMutex

	expenses map[string]*model.Expense
	budgets  map[string]*model.Budget

	// budgetMonths indexes (owner, month) -> budget id so CreateBudget can
	// reject duplicates atomically under the same mutex.
	budgetMonths map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expenses:     make(map[string]*model.Expense),
		budgets:      make(map[string]*model.Budget),
		budgetMonths: make(map[string]string),
	}
}

func monthKey(ownerID, monthToken string) string {
	return ownerID + "|" + monthToken
}

func cloneExpense(e *model.Expense) *model.Expense {
	c := *e
	return &c
}

func cloneBudget(b *model.Budget) *model.Budget {
	c := *b
	c.EssentialItems = make([]model.EssentialItem, len(b.EssentialItems))
	for i, item := range b.EssentialItems {
		c.EssentialItems[i] = item
		if item.Amount != nil {
			amount := *item.Amount
			c.EssentialItems[i].Amount = &amount
		}
	}
	return &c
}

// inWindow applies the half-open range filter; a zero bound is unbounded.
func inWindow(date, start, end time.Time) bool {
	if !start.IsZero() && date.Before(start) {
		return false
	}
	if !end.IsZero() && !date.Before(end) {
		return false
	}
	return true
}

// expensesInRange collects the owner's expenses in the window, date ascending.
// Callers must hold at least the read lock.
func (m *MemoryStore) expensesInRange(ownerID string, start, end time.Time) []*model.Expense {
	var matched []*model.Expense
	for _, e := range m.expenses {
		if e.OwnerID == ownerID && inWindow(e.Date, start, end) {
			matched = append(matched, cloneExpense(e))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})
	return matched
}

// Expense operations

func (m *MemoryStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	m.expenses[expense.ID] = cloneExpense(expense)
	return nil
}

func (m *MemoryStore) CreateExpenses(ctx context.Context, expenses []*model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, expense := range expenses {
		if expense.ID == "" {
			expense.ID = uuid.New().String()
		}
		m.expenses[expense.ID] = cloneExpense(expense)
	}
	return nil
}

func (m *MemoryStore) GetExpense(ctx context.Context, ownerID, expenseID string) (*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expense, ok := m.expenses[expenseID]
	if !ok || expense.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return cloneExpense(expense), nil
}

func (m *MemoryStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.expenses[expense.ID]
	if !ok || existing.OwnerID != expense.OwnerID {
		return ErrNotFound
	}
	m.expenses[expense.ID] = cloneExpense(expense)
	return nil
}

func (m *MemoryStore) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.expenses[expenseID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.expenses, expenseID)
	return nil
}

func (m *MemoryStore) DeleteExpenses(ctx context.Context, ownerID string, expenseIDs []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := 0
	for _, id := range expenseIDs {
		if existing, ok := m.expenses[id]; ok && existing.OwnerID == ownerID {
			delete(m.expenses, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MemoryStore) DeleteExpensesInRange(ctx context.Context, ownerID string, start, end time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := 0
	for id, e := range m.expenses {
		if e.OwnerID == ownerID && inWindow(e.Date, start, end) {
			delete(m.expenses, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MemoryStore) ListExpensesInRange(ctx context.Context, ownerID string, start, end time.Time) ([]*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.expensesInRange(ownerID, start, end), nil
}

func (m *MemoryStore) SumInRange(ctx context.Context, ownerID string, start, end time.Time) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sumAmounts(m.expensesInRange(ownerID, start, end)), nil
}

func (m *MemoryStore) SumPerMonth(ctx context.Context, ownerID string, windows []MonthWindow) (map[string]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totals := make(map[string]float64, len(windows))
	for _, w := range windows {
		totals[w.Month] = sumAmounts(m.expensesInRange(ownerID, w.Start, w.End))
	}
	return totals, nil
}

func (m *MemoryStore) SumPerDay(ctx context.Context, ownerID string, start, end time.Time) ([]model.DayTotal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return groupByDay(m.expensesInRange(ownerID, start, end)), nil
}

func (m *MemoryStore) SumPerCategory(ctx context.Context, ownerID string, start, end time.Time) ([]model.CategoryTotal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return groupByCategory(m.expensesInRange(ownerID, start, end)), nil
}

func (m *MemoryStore) TopByTitle(ctx context.Context, ownerID string, start, end time.Time, limit int) ([]model.TitleTotal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return groupByTitle(m.expensesInRange(ownerID, start, end), limit), nil
}

func (m *MemoryStore) SumPerISOWeek(ctx context.Context, ownerID string, start, end time.Time) ([]model.WeekTotal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return groupByISOWeek(m.expensesInRange(ownerID, start, end)), nil
}

// Budget operations

func (m *MemoryStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := monthKey(budget.OwnerID, budget.Month)
	if _, exists := m.budgetMonths[key]; exists {
		return ErrBudgetExists
	}

	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	m.budgets[budget.ID] = cloneBudget(budget)
	m.budgetMonths[key] = budget.ID
	return nil
}

func (m *MemoryStore) GetBudget(ctx context.Context, ownerID, budgetID string) (*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	budget, ok := m.budgets[budgetID]
	if !ok || budget.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return cloneBudget(budget), nil
}

func (m *MemoryStore) UpdateBudget(ctx context.Context, budget *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.budgets[budget.ID]
	if !ok || existing.OwnerID != budget.OwnerID {
		return ErrNotFound
	}
	if existing.Month != budget.Month {
		key := monthKey(budget.OwnerID, budget.Month)
		if _, taken := m.budgetMonths[key]; taken {
			return ErrBudgetExists
		}
		delete(m.budgetMonths, monthKey(existing.OwnerID, existing.Month))
		m.budgetMonths[key] = budget.ID
	}
	m.budgets[budget.ID] = cloneBudget(budget)
	return nil
}

func (m *MemoryStore) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.budgets[budgetID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.budgetMonths, monthKey(existing.OwnerID, existing.Month))
	delete(m.budgets, budgetID)
	return nil
}

func (m *MemoryStore) FindBudgetByMonth(ctx context.Context, ownerID, monthToken string) (*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.budgetMonths[monthKey(ownerID, monthToken)]
	if !ok {
		return nil, nil
	}
	return cloneBudget(m.budgets[id]), nil
}

func (m *MemoryStore) FindMostRecentBudgetBefore(ctx context.Context, ownerID, monthToken string) (*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var best *model.Budget
	for _, b := range m.budgets {
		if b.OwnerID != ownerID || b.Month >= monthToken {
			continue
		}
		// Zero-padded tokens order lexicographically, so string comparison
		// is chronological comparison.
		if best == nil || b.Month > best.Month {
			best = b
		}
	}
	if best == nil {
		return nil, nil
	}
	return cloneBudget(best), nil
}

func (m *MemoryStore) BudgetExistsForMonth(ctx context.Context, ownerID, monthToken string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.budgetMonths[monthKey(ownerID, monthToken)]
	return ok, nil
}

func (m *MemoryStore) ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var budgets []*model.Budget
	for _, b := range m.budgets {
		if b.OwnerID == ownerID {
			budgets = append(budgets, cloneBudget(b))
		}
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].Month > budgets[j].Month
	})
	return budgets, nil
}
