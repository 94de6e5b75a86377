package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
)

type financeRepository struct {
	store *Store
}

// NewFinanceRepository creates a SQLite-backed finance repository
func NewFinanceRepository(store *Store) repository.FinanceRepository {
	return &financeRepository{store: store}
}

func requireID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%s id is required", kind)
	}
	return nil
}

func (r *financeRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := requireID("transaction", tx.ID); err != nil {
		return nil, err
	}
	t := *tx
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if err := put(ctx, r.store.db, "transactions", t.ID, t.Date.String(), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *financeRepository) ListTransactions(ctx context.Context, start, end models.Date) ([]models.Transaction, error) {
	return list[models.Transaction](ctx, r.store.db, "transactions", start.String(), end.String())
}

func (r *financeRepository) DeleteTransaction(ctx context.Context, id string) error {
	return remove(ctx, r.store.db, "transactions", id)
}

func (r *financeRepository) SaveBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	if err := requireID("budget", budget.ID); err != nil {
		return nil, err
	}
	if err := put(ctx, r.store.db, "budgets", budget.ID, budget.StartDate.String(), budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (r *financeRepository) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	return list[models.Budget](ctx, r.store.db, "budgets", "", "")
}

func (r *financeRepository) SaveBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	if err := requireID("bill", bill.ID); err != nil {
		return nil, err
	}
	if err := put(ctx, r.store.db, "bills", bill.ID, bill.DueDate.String(), bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *financeRepository) ListBills(ctx context.Context) ([]models.Bill, error) {
	return list[models.Bill](ctx, r.store.db, "bills", "", "")
}

func (r *financeRepository) SaveSavingsGoal(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	if err := requireID("savings goal", goal.ID); err != nil {
		return nil, err
	}
	if err := put(ctx, r.store.db, "savings_goals", goal.ID, goal.Deadline.String(), goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *financeRepository) ListSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	return list[models.SavingsGoal](ctx, r.store.db, "savings_goals", "", "")
}

func (r *financeRepository) SaveAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := requireID("account", account.ID); err != nil {
		return nil, err
	}
	if err := put(ctx, r.store.db, "accounts", account.ID, account.Name, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (r *financeRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return list[models.Account](ctx, r.store.db, "accounts", "", "")
}
