package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/pkg/supabase"
)

type financeRepository struct {
	client *supabase.Client
}

// NewFinanceRepository creates a new Supabase-backed finance repository
func NewFinanceRepository(client *supabase.Client) FinanceRepository {
	return &financeRepository{client: client}
}

// upsertOne writes record keyed by id and decodes the returned row
func upsertOne[T any](ctx context.Context, client *supabase.Client, table string, record *T) (*T, error) {
	body, err := client.Upsert(ctx, table, record, "id")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert %s: %w", table, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no %s returned", table)
	}

	return &rows[0], nil
}

// queryAll fetches every row matching query
func queryAll[T any](ctx context.Context, client *supabase.Client, table string, query map[string]interface{}) ([]T, error) {
	body, err := client.Query(ctx, table, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return rows, nil
}

func (r *financeRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	body, err := r.client.Insert(ctx, "transactions", tx)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	var txs []models.Transaction
	if err := json.Unmarshal(body, &txs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(txs) == 0 {
		return nil, fmt.Errorf("no transaction returned")
	}

	return &txs[0], nil
}

func (r *financeRepository) ListTransactions(ctx context.Context, start, end models.Date) ([]models.Transaction, error) {
	query := map[string]interface{}{
		"select": "*",
		"order":  "date.asc",
	}
	if filters := dateRange(start, end); len(filters) > 0 {
		query["date"] = filters
	}
	return queryAll[models.Transaction](ctx, r.client, "transactions", query)
}

func (r *financeRepository) DeleteTransaction(ctx context.Context, id string) error {
	rows, err := queryAll[models.Transaction](ctx, r.client, "transactions", map[string]interface{}{
		"id": fmt.Sprintf("eq.%s", id),
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}

	if err := r.client.Delete(ctx, "transactions", id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func (r *financeRepository) SaveBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	return upsertOne(ctx, r.client, "budgets", budget)
}

func (r *financeRepository) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	return queryAll[models.Budget](ctx, r.client, "budgets", map[string]interface{}{"select": "*"})
}

func (r *financeRepository) SaveBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	return upsertOne(ctx, r.client, "bills", bill)
}

func (r *financeRepository) ListBills(ctx context.Context) ([]models.Bill, error) {
	return queryAll[models.Bill](ctx, r.client, "bills", map[string]interface{}{
		"select": "*",
		"order":  "due_date.asc",
	})
}

func (r *financeRepository) SaveSavingsGoal(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	return upsertOne(ctx, r.client, "savings_goals", goal)
}

func (r *financeRepository) ListSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	return queryAll[models.SavingsGoal](ctx, r.client, "savings_goals", map[string]interface{}{"select": "*"})
}

func (r *financeRepository) SaveAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	return upsertOne(ctx, r.client, "accounts", account)
}

func (r *financeRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return queryAll[models.Account](ctx, r.client, "accounts", map[string]interface{}{"select": "*"})
}
