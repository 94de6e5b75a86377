package service

import (
	"context"
	"strings"

	"github.com/JonnyWalker81/habithub/backend/internal/analytics"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
	"github.com/shopspring/decimal"
)

type financeService struct {
	financeRepo repository.FinanceRepository
	engine      *analytics.Engine
}

// NewFinanceService creates a new finance service
func NewFinanceService(financeRepo repository.FinanceRepository, engine *analytics.Engine) FinanceService {
	return &financeService{
		financeRepo: financeRepo,
		engine:      engine,
	}
}

func (s *financeService) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, invalid("amount", "must be greater than zero")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, invalid("category", "is required")
	}

	id, err := ResolveID(req.ID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = models.DateOf(s.engine.Now())
	}

	tx := &models.Transaction{
		ID:               id,
		Amount:           req.Amount,
		Type:             req.Type,
		Category:         req.Category,
		Description:      req.Description,
		Date:             date,
		AccountID:        req.AccountID,
		IsRecurring:      req.IsRecurring,
		RecurringDetails: req.RecurringDetails,
		CreatedAt:        ExtractUUIDv7Timestamp(id),
	}

	return s.financeRepo.CreateTransaction(ctx, tx)
}

func (s *financeService) ListTransactions(ctx context.Context, start, end models.Date) ([]models.Transaction, error) {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, invalid("end", "must not be before start")
	}
	return s.financeRepo.ListTransactions(ctx, start, end)
}

func (s *financeService) DeleteTransaction(ctx context.Context, id string) error {
	return s.financeRepo.DeleteTransaction(ctx, id)
}

func nonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return invalid(field, "must not be negative")
	}
	return nil
}

func (s *financeService) SaveBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	if err := nonNegative("amount", budget.Amount); err != nil {
		return nil, err
	}
	if err := nonNegative("spent", budget.Spent); err != nil {
		return nil, err
	}
	if !budget.EndDate.IsZero() && budget.EndDate.Before(budget.StartDate) {
		return nil, invalid("end_date", "must not be before start_date")
	}

	id, err := ResolveID(budget.ID)
	if err != nil {
		return nil, err
	}
	b := *budget
	b.ID = id
	return s.financeRepo.SaveBudget(ctx, &b)
}

func (s *financeService) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	return s.financeRepo.ListBudgets(ctx)
}

func (s *financeService) SaveBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	if err := nonNegative("amount", bill.Amount); err != nil {
		return nil, err
	}
	if bill.DueDate.IsZero() {
		return nil, invalid("due_date", "is required")
	}

	id, err := ResolveID(bill.ID)
	if err != nil {
		return nil, err
	}
	b := *bill
	b.ID = id
	return s.financeRepo.SaveBill(ctx, &b)
}

func (s *financeService) ListBills(ctx context.Context) ([]models.Bill, error) {
	return s.financeRepo.ListBills(ctx)
}

func (s *financeService) SaveSavingsGoal(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	if err := nonNegative("target_amount", goal.TargetAmount); err != nil {
		return nil, err
	}
	if err := nonNegative("current_amount", goal.CurrentAmount); err != nil {
		return nil, err
	}

	id, err := ResolveID(goal.ID)
	if err != nil {
		return nil, err
	}
	g := *goal
	g.ID = id
	return s.financeRepo.SaveSavingsGoal(ctx, &g)
}

func (s *financeService) ListSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	return s.financeRepo.ListSavingsGoals(ctx)
}

func (s *financeService) SaveAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if strings.TrimSpace(account.Name) == "" {
		return nil, invalid("name", "is required")
	}

	id, err := ResolveID(account.ID)
	if err != nil {
		return nil, err
	}
	a := *account
	a.ID = id
	return s.financeRepo.SaveAccount(ctx, &a)
}

func (s *financeService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.financeRepo.ListAccounts(ctx)
}
