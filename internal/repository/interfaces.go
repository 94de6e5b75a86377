package repository

import (
	"context"
	"errors"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// GoalRepository defines the interface for goal data access.
// Goals are stored with their progress history.
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	GetByID(ctx context.Context, id string) (*models.Goal, error)
	List(ctx context.Context) ([]models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	Delete(ctx context.Context, id string) error
}

// TodoListRepository defines the interface for todo list data access.
// There is at most one list per date.
type TodoListRepository interface {
	Upsert(ctx context.Context, list *models.TodoList) (*models.TodoList, error)
	GetByDate(ctx context.Context, date models.Date) (*models.TodoList, error)
	// List returns lists dated within [start, end]; a zero bound is open.
	List(ctx context.Context, start, end models.Date) ([]models.TodoList, error)
	Delete(ctx context.Context, date models.Date) error
}

// FinanceRepository defines the interface for finance data access
type FinanceRepository interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	// ListTransactions returns transactions dated within [start, end]; a zero bound is open.
	ListTransactions(ctx context.Context, start, end models.Date) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	SaveBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	ListBudgets(ctx context.Context) ([]models.Budget, error)

	SaveBill(ctx context.Context, bill *models.Bill) (*models.Bill, error)
	ListBills(ctx context.Context) ([]models.Bill, error)

	SaveSavingsGoal(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error)
	ListSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error)

	SaveAccount(ctx context.Context, account *models.Account) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
