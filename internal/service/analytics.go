package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/habithub/backend/internal/analytics"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
)

// Observer captures telemetry for analytics computations
type Observer interface {
	RecordComputation(operation string, duration time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) RecordComputation(string, time.Duration, error) {}

type analyticsService struct {
	goalRepo    repository.GoalRepository
	todoRepo    repository.TodoListRepository
	financeRepo repository.FinanceRepository
	engine      *analytics.Engine
	categories  []string
	observer    Observer
}

// AnalyticsOption configures the analytics service
type AnalyticsOption func(*analyticsService)

// WithObserver records computation latency and failures
func WithObserver(observer Observer) AnalyticsOption {
	return func(s *analyticsService) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithCategories sets the categories the dashboard always lists
func WithCategories(categories []string) AnalyticsOption {
	return func(s *analyticsService) {
		s.categories = categories
	}
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	goalRepo repository.GoalRepository,
	todoRepo repository.TodoListRepository,
	financeRepo repository.FinanceRepository,
	engine *analytics.Engine,
	opts ...AnalyticsOption,
) AnalyticsService {
	s := &analyticsService{
		goalRepo:    goalRepo,
		todoRepo:    todoRepo,
		financeRepo: financeRepo,
		engine:      engine,
		categories:  models.DefaultCategoryNames(),
		observer:    nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// track starts timing operation; call the result with the named error on return
func (s *analyticsService) track(operation string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		s.observer.RecordComputation(operation, time.Since(start), *errp)
	}
}

// load fetches goals and todo lists concurrently
func (s *analyticsService) load(ctx context.Context) ([]models.Goal, []models.TodoList, error) {
	var goals []models.Goal
	var lists []models.TodoList

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		lists, err = s.todoRepo.List(ctx, models.Date{}, models.Date{})
		if err != nil {
			return fmt.Errorf("failed to load todo lists: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return goals, lists, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, ref time.Time) (dashboard *models.Dashboard, err error) {
	defer s.track("dashboard")(&err)

	ref = s.engine.Reference(ref)
	goals, lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	overall := analytics.OverallProgress(goals)
	return &models.Dashboard{
		ReferenceDate:      models.DateOf(ref),
		OverallProgress:    overall,
		Band:               analytics.MotivationalBand(float64(overall)),
		GoalStreak:         analytics.GoalStreak(goals, ref),
		TodoStreak:         analytics.TodoStreak(lists, ref),
		DailyCompletion:    analytics.DailyCompletionRate(lists, ref),
		TodoCompletionRate: analytics.TodoCompletionRate(lists),
		Categories:         analytics.CategoryBreakdown(goals, s.categories, ref),
		DayOfWeek:          analytics.DayOfWeekPerformance(lists),
		WeeklySummary:      analytics.WeeklyProgressSummary(goals, ref),
		ComputedAt:         s.engine.Now(),
	}, nil
}

func (s *analyticsService) GoalProgress(ctx context.Context, goalID string, ref time.Time) (summary *models.GoalProgressSummary, err error) {
	defer s.track("goal_progress")(&err)

	ref = s.engine.Reference(ref)
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	percent := analytics.GoalProgressPercent(*goal)
	summary = &models.GoalProgressSummary{
		GoalID:          goal.ID,
		Title:           goal.Title,
		Category:        goal.Category,
		ProgressModel:   goal.ProgressModel,
		ProgressPercent: percent,
		Band:            analytics.MotivationalBand(float64(percent)),
		Streak:          analytics.GoalStreakHistory(*goal, ref),
	}
	if !goal.EndDate.IsZero() {
		days := analytics.DaysUntil(goal.EndDate, ref)
		summary.DaysUntilDue = &days
	}
	return summary, nil
}

func (s *analyticsService) CategoryProgress(ctx context.Context, category string, ref time.Time) (summary *models.CategorySummary, err error) {
	defer s.track("category_progress")(&err)

	ref = s.engine.Reference(ref)
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range analytics.CategoryBreakdown(goals, []string{category}, ref) {
		if c.Category == category {
			return &c, nil
		}
	}
	return &models.CategorySummary{Category: category}, nil
}

func (s *analyticsService) Streaks(ctx context.Context, ref time.Time) (streaks *models.Streaks, err error) {
	defer s.track("streaks")(&err)

	ref = s.engine.Reference(ref)
	goals, lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Streaks{
		ReferenceDate: models.DateOf(ref),
		GoalStreak:    analytics.GoalStreak(goals, ref),
		TodoStreak:    analytics.TodoStreak(lists, ref),
	}, nil
}

func (s *analyticsService) TodoStats(ctx context.Context) (stats *models.TodoStats, err error) {
	defer s.track("todo_stats")(&err)

	lists, err := s.todoRepo.List(ctx, models.Date{}, models.Date{})
	if err != nil {
		return nil, err
	}

	result := analytics.TodoStats(lists)
	return &result, nil
}

func (s *analyticsService) DayOfWeek(ctx context.Context) (days []models.DayPerformance, err error) {
	defer s.track("day_of_week")(&err)

	lists, err := s.todoRepo.List(ctx, models.Date{}, models.Date{})
	if err != nil {
		return nil, err
	}
	return analytics.DayOfWeekPerformance(lists), nil
}

func (s *analyticsService) TodoTrend(ctx context.Context, ref time.Time, days int) (trend *models.TrendData, err error) {
	defer s.track("todo_trend")(&err)

	ref = s.engine.Reference(ref)
	if days < 1 {
		days = 7
	}
	end := models.DateOf(ref)
	lists, err := s.todoRepo.List(ctx, end.AddDays(-(days - 1)), end)
	if err != nil {
		return nil, err
	}

	result := analytics.TodoTrend(lists, ref, days)
	return &result, nil
}

func (s *analyticsService) WeeklySummary(ctx context.Context, ref time.Time) (summaries []models.WeeklySummary, err error) {
	defer s.track("weekly_summary")(&err)

	ref = s.engine.Reference(ref)
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyProgressSummary(goals, ref), nil
}

func (s *analyticsService) FinanceOverview(ctx context.Context, ref time.Time) (overview *models.FinanceOverview, err error) {
	defer s.track("finance_overview")(&err)

	ref = s.engine.Reference(ref)

	var (
		txs      []models.Transaction
		budgets  []models.Budget
		bills    []models.Bill
		savings  []models.SavingsGoal
		accounts []models.Account
	)

	today := models.DateOf(ref)
	monthStart := models.NewDate(today.Year(), today.Month(), 1)
	monthEnd := monthStart.AddDays(31)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = s.financeRepo.ListTransactions(gctx, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.financeRepo.ListBudgets(gctx)
		return err
	})
	g.Go(func() (err error) {
		bills, err = s.financeRepo.ListBills(gctx)
		return err
	})
	g.Go(func() (err error) {
		savings, err = s.financeRepo.ListSavingsGoals(gctx)
		return err
	})
	g.Go(func() (err error) {
		accounts, err = s.financeRepo.ListAccounts(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load finance records: %w", err)
	}

	result := analytics.FinanceSummary(txs, budgets, bills, savings, accounts, ref)
	return &result, nil
}
