package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

// ValidationError reports a request field the service rejected
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// GoalService defines the interface for goal business logic
type GoalService interface {
	CreateGoal(ctx context.Context, req *models.CreateGoalRequest) (*models.Goal, error)
	GetGoal(ctx context.Context, goalID string) (*models.Goal, error)
	ListGoals(ctx context.Context, category string) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req *models.UpdateGoalRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error
	RecordProgress(ctx context.Context, goalID string, req *models.RecordProgressRequest) (*models.Goal, error)
}

// TodoService defines the interface for todo list business logic
type TodoService interface {
	GetList(ctx context.Context, date models.Date) (*models.TodoList, error)
	ListLists(ctx context.Context, start, end models.Date) ([]models.TodoList, error)
	UpsertList(ctx context.Context, req *models.UpsertTodoListRequest) (*models.TodoList, error)
	UpdateItemStatus(ctx context.Context, date models.Date, itemID string, status models.TodoStatus) (*models.TodoList, error)
	DeleteList(ctx context.Context, date models.Date) error
}

// FinanceService defines the interface for finance business logic
type FinanceService interface {
	CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
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

// AnalyticsService loads records and runs the analytics engine over them.
// A zero ref means "now" per the engine's clock.
type AnalyticsService interface {
	Dashboard(ctx context.Context, ref time.Time) (*models.Dashboard, error)
	GoalProgress(ctx context.Context, goalID string, ref time.Time) (*models.GoalProgressSummary, error)
	CategoryProgress(ctx context.Context, category string, ref time.Time) (*models.CategorySummary, error)
	Streaks(ctx context.Context, ref time.Time) (*models.Streaks, error)
	TodoStats(ctx context.Context) (*models.TodoStats, error)
	DayOfWeek(ctx context.Context) ([]models.DayPerformance, error)
	TodoTrend(ctx context.Context, ref time.Time, days int) (*models.TrendData, error)
	WeeklySummary(ctx context.Context, ref time.Time) ([]models.WeeklySummary, error)
	FinanceOverview(ctx context.Context, ref time.Time) (*models.FinanceOverview, error)
}
