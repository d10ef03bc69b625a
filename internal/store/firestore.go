package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/copperline/budgeteer/internal/model"
)

const (
	expensesCollection = "expenses"
	budgetsCollection  = "budgets"
)

// FirestoreStore implements ExpenseStore and BudgetStore on Firestore.
//
// Firestore has no server-side group-by, so the grouped aggregation queries
// fetch the owner's rows for the window and reduce them with the shared
// helpers in aggregate.go. Field names in queries must match the Go struct
// firestore tags.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// bulkJob is the result surface of a firestore.BulkWriterJob. The enqueue
// error from bw.Create/bw.Delete covers queueing only; the write outcome is
// reported through the job.
type bulkJob interface {
	Results() (*firestore.WriteResult, error)
}

// awaitBulkJobs surfaces the first failed write of a flushed bulk batch.
// Callers must have called bw.End (or Flush) first so Results does not block
// on an unsent batch.
func awaitBulkJobs(jobs []bulkJob) error {
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return err
		}
	}
	return nil
}

// rangeQuery builds the owner-scoped half-open window query. Zero bounds are
// unbounded.
func (s *FirestoreStore) rangeQuery(ownerID string, start, end time.Time) firestore.Query {
	query := s.client.Collection(expensesCollection).Query.Where("OwnerId", "==", ownerID)
	if !start.IsZero() {
		query = query.Where("Date", ">=", start)
	}
	if !end.IsZero() {
		query = query.Where("Date", "<", end)
	}
	return query.OrderBy("Date", firestore.Asc)
}

// collectExpenses drains a query into expense rows.
func collectExpenses(ctx context.Context, query firestore.Query) ([]*model.Expense, error) {
	it := query.Documents(ctx)
	defer it.Stop()

	var expenses []*model.Expense
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate expenses: %w", err)
		}
		var expense model.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, fmt.Errorf("failed to parse expense: %w", err)
		}
		expenses = append(expenses, &expense)
	}
	return expenses, nil
}

// Expense operations

func (s *FirestoreStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	_, err := s.client.Collection(expensesCollection).Doc(expense.ID).Create(ctx, expense)
	return err
}

func (s *FirestoreStore) CreateExpenses(ctx context.Context, expenses []*model.Expense) error {
	bw := s.client.BulkWriter(ctx)
	jobs := make([]bulkJob, 0, len(expenses))
	for _, expense := range expenses {
		if expense.ID == "" {
			expense.ID = uuid.New().String()
		}
		job, err := bw.Create(s.client.Collection(expensesCollection).Doc(expense.ID), expense)
		if err != nil {
			return fmt.Errorf("failed to enqueue expense create: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()
	if err := awaitBulkJobs(jobs); err != nil {
		return fmt.Errorf("bulk expense create failed: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetExpense(ctx context.Context, ownerID, expenseID string) (*model.Expense, error) {
	doc, err := s.client.Collection(expensesCollection).Doc(expenseID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	var expense model.Expense
	if err := doc.DataTo(&expense); err != nil {
		return nil, fmt.Errorf("failed to parse expense: %w", err)
	}
	if expense.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &expense, nil
}

func (s *FirestoreStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	if _, err := s.GetExpense(ctx, expense.OwnerID, expense.ID); err != nil {
		return err
	}
	_, err := s.client.Collection(expensesCollection).Doc(expense.ID).Set(ctx, expense)
	return err
}

func (s *FirestoreStore) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	if _, err := s.GetExpense(ctx, ownerID, expenseID); err != nil {
		return err
	}
	_, err := s.client.Collection(expensesCollection).Doc(expenseID).Delete(ctx)
	return err
}

func (s *FirestoreStore) DeleteExpenses(ctx context.Context, ownerID string, expenseIDs []string) (int, error) {
	bw := s.client.BulkWriter(ctx)
	var jobs []bulkJob
	for _, id := range expenseIDs {
		if _, err := s.GetExpense(ctx, ownerID, id); err != nil {
			// Skip ids that do not resolve for this owner.
			continue
		}
		job, err := bw.Delete(s.client.Collection(expensesCollection).Doc(id))
		if err != nil {
			return 0, fmt.Errorf("failed to enqueue expense delete: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	deleted := 0
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return deleted, fmt.Errorf("bulk expense delete failed: %w", err)
		}
		deleted++
	}
	return deleted, nil
}

func (s *FirestoreStore) DeleteExpensesInRange(ctx context.Context, ownerID string, start, end time.Time) (int, error) {
	it := s.rangeQuery(ownerID, start, end).Documents(ctx)
	defer it.Stop()

	bw := s.client.BulkWriter(ctx)
	var jobs []bulkJob
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to iterate expenses for delete: %w", err)
		}
		job, err := bw.Delete(doc.Ref)
		if err != nil {
			return 0, fmt.Errorf("failed to enqueue expense delete: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	deleted := 0
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return deleted, fmt.Errorf("bulk expense delete failed: %w", err)
		}
		deleted++
	}
	return deleted, nil
}

func (s *FirestoreStore) ListExpensesInRange(ctx context.Context, ownerID string, start, end time.Time) ([]*model.Expense, error) {
	return collectExpenses(ctx, s.rangeQuery(ownerID, start, end))
}

func (s *FirestoreStore) SumInRange(ctx context.Context, ownerID string, start, end time.Time) (float64, error) {
	expenses, err := collectExpenses(ctx, s.rangeQuery(ownerID, start, end))
	if err != nil {
		return 0, err
	}
	return sumAmounts(expenses), nil
}

func (s *FirestoreStore) SumPerMonth(ctx context.Context, ownerID string, windows []MonthWindow) (map[string]float64, error) {
	totals := make(map[string]float64, len(windows))
	for _, w := range windows {
		sum, err := s.SumInRange(ctx, ownerID, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		totals[w.Month] = sum
	}
	return totals, nil
}

func (s *FirestoreStore) SumPerDay(ctx context.Context, ownerID string, start, end time.Time) ([]model.DayTotal, error) {
	expenses, err := collectExpenses(ctx, s.rangeQuery(ownerID, start, end))
	if err != nil {
		return nil, err
	}
	return groupByDay(expenses), nil
}

func (s *FirestoreStore) SumPerCategory(ctx context.Context, ownerID string, start, end time.Time) ([]model.CategoryTotal, error) {
	expenses, err := collectExpenses(ctx, s.rangeQuery(ownerID, start, end))
	if err != nil {
		return nil, err
	}
	return groupByCategory(expenses), nil
}

func (s *FirestoreStore) TopByTitle(ctx context.Context, ownerID string, start, end time.Time, limit int) ([]model.TitleTotal, error) {
	expenses, err := collectExpenses(ctx, s.rangeQuery(ownerID, start, end))
	if err != nil {
		return nil, err
	}
	return groupByTitle(expenses, limit), nil
}

func (s *FirestoreStore) SumPerISOWeek(ctx context.Context, ownerID string, start, end time.Time) ([]model.WeekTotal, error) {
	expenses, err := collectExpenses(ctx, s.rangeQuery(ownerID, start, end))
	if err != nil {
		return nil, err
	}
	return groupByISOWeek(expenses), nil
}

// Budget operations

// CreateBudget creates the budget inside a transaction that first checks for
// an existing (owner, month) document, so concurrent creates for the same
// month cannot both win; the loser gets ErrBudgetExists.
func (s *FirestoreStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := s.client.Collection(budgetsCollection).
			Where("OwnerId", "==", budget.OwnerID).
			Where("Month", "==", budget.Month).
			Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return fmt.Errorf("failed to check for existing budget: %w", err)
		}
		if len(docs) > 0 {
			return ErrBudgetExists
		}
		return tx.Create(s.client.Collection(budgetsCollection).Doc(budget.ID), budget)
	})
}

func (s *FirestoreStore) GetBudget(ctx context.Context, ownerID, budgetID string) (*model.Budget, error) {
	doc, err := s.client.Collection(budgetsCollection).Doc(budgetID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	var budget model.Budget
	if err := doc.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to parse budget: %w", err)
	}
	if budget.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &budget, nil
}

// UpdateBudget runs inside a transaction so a month move cannot race another
// writer past the (owner, month) uniqueness check, mirroring CreateBudget.
func (s *FirestoreStore) UpdateBudget(ctx context.Context, budget *model.Budget) error {
	ref := s.client.Collection(budgetsCollection).Doc(budget.ID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get budget: %w", err)
		}
		var existing model.Budget
		if err := doc.DataTo(&existing); err != nil {
			return fmt.Errorf("failed to parse budget: %w", err)
		}
		if existing.OwnerID != budget.OwnerID {
			return ErrNotFound
		}
		if existing.Month != budget.Month {
			query := s.client.Collection(budgetsCollection).
				Where("OwnerId", "==", budget.OwnerID).
				Where("Month", "==", budget.Month).
				Limit(1)
			docs, err := tx.Documents(query).GetAll()
			if err != nil {
				return fmt.Errorf("failed to check for existing budget: %w", err)
			}
			if len(docs) > 0 {
				return ErrBudgetExists
			}
		}
		return tx.Set(ref, budget)
	})
}

func (s *FirestoreStore) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	if _, err := s.GetBudget(ctx, ownerID, budgetID); err != nil {
		return err
	}
	_, err := s.client.Collection(budgetsCollection).Doc(budgetID).Delete(ctx)
	return err
}

func (s *FirestoreStore) FindBudgetByMonth(ctx context.Context, ownerID, monthToken string) (*model.Budget, error) {
	it := s.client.Collection(budgetsCollection).
		Where("OwnerId", "==", ownerID).
		Where("Month", "==", monthToken).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find budget by month: %w", err)
	}

	var budget model.Budget
	if err := doc.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to parse budget: %w", err)
	}
	return &budget, nil
}

func (s *FirestoreStore) FindMostRecentBudgetBefore(ctx context.Context, ownerID, monthToken string) (*model.Budget, error) {
	// Zero-padded month tokens order lexicographically, so Firestore's
	// string ordering is chronological ordering.
	it := s.client.Collection(budgetsCollection).
		Where("OwnerId", "==", ownerID).
		Where("Month", "<", monthToken).
		OrderBy("Month", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find most recent budget: %w", err)
	}

	var budget model.Budget
	if err := doc.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to parse budget: %w", err)
	}
	return &budget, nil
}

func (s *FirestoreStore) BudgetExistsForMonth(ctx context.Context, ownerID, monthToken string) (bool, error) {
	budget, err := s.FindBudgetByMonth(ctx, ownerID, monthToken)
	if err != nil {
		return false, err
	}
	return budget != nil, nil
}

func (s *FirestoreStore) ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	it := s.client.Collection(budgetsCollection).
		Where("OwnerId", "==", ownerID).
		OrderBy("Month", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	var budgets []*model.Budget
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate budgets: %w", err)
		}
		var budget model.Budget
		if err := doc.DataTo(&budget); err != nil {
			return nil, fmt.Errorf("failed to parse budget: %w", err)
		}
		budgets = append(budgets, &budget)
	}
	return budgets, nil
}
