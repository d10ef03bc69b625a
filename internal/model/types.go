// Package model holds the plain domain types shared by the stores, the
// aggregation engine and the HTTP surface. Nothing in here is store-specific
// beyond the firestore field tags.
package model

import "time"

// UncategorizedLabel is the canonical category assigned to expenses whose
// category is missing or blank when grouping by category.
const UncategorizedLabel = "Uncategorized"

// Expense is one discrete spending event owned by a single user.
type Expense struct {
	ID          string    `firestore:"Id" json:"id"`
	OwnerID     string    `firestore:"OwnerId" json:"ownerId"`
	Title       string    `firestore:"Title" json:"title"`
	Amount      float64   `firestore:"Amount" json:"amount"`
	Description string    `firestore:"Description" json:"description,omitempty"`
	Category    string    `firestore:"Category" json:"category,omitempty"`
	Date        time.Time `firestore:"Date" json:"date"`
	CreatedAt   time.Time `firestore:"CreatedAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"UpdatedAt" json:"updatedAt"`
}

// EssentialItem is a named planned expense line within a monthly budget.
// Amount is optional; nil means "planned but not priced yet" and counts as 0
// toward the budget total.
type EssentialItem struct {
	Name   string   `firestore:"Name" json:"name"`
	Amount *float64 `firestore:"Amount" json:"amount,omitempty"`
}

// Budget is a per-user, per-calendar-month plan. At most one budget exists per
// (owner, month) pair; Month is a "YYYY-MM" token.
type Budget struct {
	ID             string          `firestore:"Id" json:"id"`
	OwnerID        string          `firestore:"OwnerId" json:"ownerId"`
	Month          string          `firestore:"Month" json:"month"`
	EssentialItems []EssentialItem `firestore:"EssentialItems" json:"essentialItems"`
	CreatedAt      time.Time       `firestore:"CreatedAt" json:"createdAt"`
	UpdatedAt      time.Time       `firestore:"UpdatedAt" json:"updatedAt"`
}

// TotalBudget recomputes the planned total from the essential items. The total
// is never stored; a stale persisted figure must not be trusted.
func (b *Budget) TotalBudget() float64 {
	var total float64
	for _, item := range b.EssentialItems {
		if item.Amount != nil {
			total += *item.Amount
		}
	}
	return total
}

// BudgetWithSpend is a budget enriched with its computed totals for display.
type BudgetWithSpend struct {
	Budget
	TotalBudget float64 `json:"totalBudget"`
	SpentAmount float64 `json:"spentAmount"`
}

// CategoryTotal is one row of a category breakdown, amount descending.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// DayTotal is the summed spend for one 1-based day of the month. Days with no
// expenses are omitted; consumers fill the gaps.
type DayTotal struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

// WeekTotal is the summed spend for one ISO week intersecting the range.
type WeekTotal struct {
	Week   int     `json:"week"`
	Amount float64 `json:"amount"`
}

// TitleTotal is the summed spend for one normalized expense title.
type TitleTotal struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

// AnalysisStats is the composite read view for one user and month. When no
// budget exists for the month, BudgetExists is false and the budget-derived
// fields are zero while the expense-derived fields are still populated.
type AnalysisStats struct {
	Month                string          `json:"month"`
	BudgetExists         bool            `json:"budgetExists"`
	TotalBudget          float64         `json:"totalBudget"`
	TotalExpenses        float64         `json:"totalExpenses"`
	RemainingBudget      float64         `json:"remainingBudget"`
	BudgetUsedPercentage float64         `json:"budgetUsedPercentage"`
	DailyAverageSpend    float64         `json:"dailyAverageSpend"`
	TopCategories        []CategoryTotal `json:"topCategories"`
	TopExpenses          []TitleTotal    `json:"topExpenses"`
	WeeklyExpenses       []WeekTotal     `json:"weeklyExpenses"`
}

// WeeklyDigest is the trailing-7-day summary consumed by the email sender.
type WeeklyDigest struct {
	OwnerID       string          `json:"ownerId"`
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	TotalSpent    float64         `json:"totalSpent"`
	TopCategories []CategoryTotal `json:"topCategories"`
	BudgetMonth   string          `json:"budgetMonth,omitempty"`
	BudgetTotal   float64         `json:"budgetTotal"`
	BudgetSpent   float64         `json:"budgetSpent"`
	BudgetExists  bool            `json:"budgetExists"`
	Summary       string          `json:"summary"`
}
