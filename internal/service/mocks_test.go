package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/analytics"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
)

// fixedEngine returns an engine whose clock is pinned to now, in UTC
func fixedEngine(now time.Time) *analytics.Engine {
	return analytics.NewEngine(
		analytics.WithClock(func() time.Time { return now }),
		analytics.WithLocation(time.UTC),
	)
}

// mockGoalRepository is an in-memory GoalRepository for testing
type mockGoalRepository struct {
	mu          sync.Mutex
	goals       map[string]models.Goal
	order       []string
	updateCalls int
	listErr     error
}

func newMockGoalRepository(goals ...models.Goal) *mockGoalRepository {
	m := &mockGoalRepository{goals: make(map[string]models.Goal)}
	for _, g := range goals {
		m.goals[g.ID] = g
		m.order = append(m.order, g.ID)
	}
	return m
}

func (m *mockGoalRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[goal.ID]; ok {
		return nil, fmt.Errorf("duplicate goal %s", goal.ID)
	}
	m.goals[goal.ID] = *goal
	m.order = append(m.order, goal.ID)
	g := *goal
	return &g, nil
}

func (m *mockGoalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.goals[id]
	if !ok {
		return nil, fmt.Errorf("goal %s: %w", id, repository.ErrNotFound)
	}
	g.ProgressHistory = append([]models.Progress(nil), g.ProgressHistory...)
	if g.Recurrence != nil {
		r := *g.Recurrence
		g.Recurrence = &r
	}
	return &g, nil
}

func (m *mockGoalRepository) List(ctx context.Context) ([]models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]models.Goal, 0, len(m.order))
	for _, id := range m.order {
		if g, ok := m.goals[id]; ok {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockGoalRepository) Update(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if _, ok := m.goals[goal.ID]; !ok {
		return nil, fmt.Errorf("goal %s: %w", goal.ID, repository.ErrNotFound)
	}
	m.goals[goal.ID] = *goal
	g := *goal
	return &g, nil
}

func (m *mockGoalRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[id]; !ok {
		return fmt.Errorf("goal %s: %w", id, repository.ErrNotFound)
	}
	delete(m.goals, id)
	return nil
}

// mockTodoListRepository is an in-memory TodoListRepository for testing
type mockTodoListRepository struct {
	mu    sync.Mutex
	lists map[string]models.TodoList
}

func newMockTodoListRepository(lists ...models.TodoList) *mockTodoListRepository {
	m := &mockTodoListRepository{lists: make(map[string]models.TodoList)}
	for _, l := range lists {
		m.lists[l.Date.String()] = l
	}
	return m
}

func (m *mockTodoListRepository) Upsert(ctx context.Context, list *models.TodoList) (*models.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[list.Date.String()] = *list
	l := *list
	return &l, nil
}

func (m *mockTodoListRepository) GetByDate(ctx context.Context, date models.Date) (*models.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[date.String()]
	if !ok {
		return nil, fmt.Errorf("todo list %s: %w", date, repository.ErrNotFound)
	}
	l.Items = append([]models.TodoItem(nil), l.Items...)
	return &l, nil
}

func (m *mockTodoListRepository) List(ctx context.Context, start, end models.Date) ([]models.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]models.TodoList, 0, len(m.lists))
	for _, l := range m.lists {
		if !start.IsZero() && l.Date.Before(start) {
			continue
		}
		if !end.IsZero() && l.Date.After(end) {
			continue
		}
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockTodoListRepository) Delete(ctx context.Context, date models.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lists[date.String()]; !ok {
		return fmt.Errorf("todo list %s: %w", date, repository.ErrNotFound)
	}
	delete(m.lists, date.String())
	return nil
}

// mockFinanceRepository is an in-memory FinanceRepository for testing
type mockFinanceRepository struct {
	mu           sync.Mutex
	transactions []models.Transaction
	budgets      []models.Budget
	bills        []models.Bill
	savings      []models.SavingsGoal
	accounts     []models.Account
	failBills    bool
}

var errMockFailure = errors.New("mock failure")

func (m *mockFinanceRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, *tx)
	t := *tx
	return &t, nil
}

func (m *mockFinanceRepository) ListTransactions(ctx context.Context, start, end models.Date) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Transaction
	for _, tx := range m.transactions {
		if !start.IsZero() && tx.Date.Before(start) {
			continue
		}
		if !end.IsZero() && tx.Date.After(end) {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}

func (m *mockFinanceRepository) DeleteTransaction(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, tx := range m.transactions {
		if tx.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", id, repository.ErrNotFound)
}

func (m *mockFinanceRepository) SaveBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.budgets = append(m.budgets, *budget)
	return budget, nil
}

func (m *mockFinanceRepository) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.budgets, nil
}

func (m *mockFinanceRepository) SaveBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bills = append(m.bills, *bill)
	return bill, nil
}

func (m *mockFinanceRepository) ListBills(ctx context.Context) ([]models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failBills {
		return nil, errMockFailure
	}
	return m.bills, nil
}

func (m *mockFinanceRepository) SaveSavingsGoal(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.savings = append(m.savings, *goal)
	return goal, nil
}

func (m *mockFinanceRepository) ListSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.savings, nil
}

func (m *mockFinanceRepository) SaveAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, *account)
	return account, nil
}

func (m *mockFinanceRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts, nil
}

// recordingObserver remembers every computation it sees
type recordingObserver struct {
	mu         sync.Mutex
	operations []string
	errors     int
}

func (o *recordingObserver) RecordComputation(operation string, duration time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, operation)
	if err != nil {
		o.errors++
	}
}
