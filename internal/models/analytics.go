package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Band is the motivational classification of a progress percentage
type Band string

const (
	BandGoalReached  Band = "goal-reached"
	BandNearComplete Band = "near-complete"
	BandHalfway      Band = "halfway"
	BandStarted      Band = "started"
	BandBeginning    Band = "beginning"
)

// Trend labels for TrendData
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Direction labels for WeeklySummary
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionSame = "same"
)

// GoalProgressSummary is the derived progress of one goal
type GoalProgressSummary struct {
	GoalID          string        `json:"goal_id"`
	Title           string        `json:"title"`
	Category        string        `json:"category"`
	ProgressModel   ProgressModel `json:"progress_model"`
	ProgressPercent int           `json:"progress_percent"`
	Band            Band          `json:"band"`
	DaysUntilDue    *int          `json:"days_until_due,omitempty"`
	Streak          StreakSummary `json:"streak"`
}

// CategorySummary aggregates the goals sharing a category
type CategorySummary struct {
	Category       string `json:"category"`
	TotalGoals     int    `json:"total_goals"`
	CompletedGoals int    `json:"completed_goals"`
	Progress       int    `json:"progress"`
	Streak         int    `json:"streak"`
}

// StreakSummary holds current and longest runs of compliant days
type StreakSummary struct {
	Current      int   `json:"current"`
	Longest      int   `json:"longest"`
	IsActive     bool  `json:"is_active"`
	CurrentStart *Date `json:"current_start,omitempty"`
	LongestStart *Date `json:"longest_start,omitempty"`
	LongestEnd   *Date `json:"longest_end,omitempty"`
}

// Streaks is the tracker-wide streak view
type Streaks struct {
	ReferenceDate Date `json:"reference_date"`
	GoalStreak    int  `json:"goal_streak"`
	TodoStreak    int  `json:"todo_streak"`
}

// TodoStats summarizes todo items by status
type TodoStats struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	FailedTasks    int     `json:"failed_tasks"`
	PendingTasks   int     `json:"pending_tasks"`
	CompletionRate float64 `json:"completion_rate"`
	FailureRate    float64 `json:"failure_rate"`
	PendingRate    float64 `json:"pending_rate"`
}

// DayPerformance is the todo completion rate for one weekday
type DayPerformance struct {
	Day            int     `json:"day"` // 0 = Sunday
	Label          string  `json:"label"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// WeeklySummary represents week-over-week progress logging for a goal
type WeeklySummary struct {
	GoalID        string  `json:"goal_id"`
	GoalTitle     string  `json:"goal_title"`
	Category      string  `json:"category"`
	ThisWeekCount int     `json:"this_week_count"`
	LastWeekCount int     `json:"last_week_count"`
	ChangePercent float64 `json:"change_percent"`
	Direction     string  `json:"direction"` // "up", "down", "same"
}

// TrendData represents a daily series and its direction
type TrendData struct {
	Period  string                `json:"period"`
	Data    []TimeSeriesDataPoint `json:"data"`
	Average float64               `json:"average"`
	Trend   string                `json:"trend"` // "increasing", "decreasing", "stable"
}

// TimeSeriesDataPoint represents a data point in time series
type TimeSeriesDataPoint struct {
	Date  Date  `json:"date"`
	Count int64 `json:"count"`
}

// Dashboard is the combined analytics view
type Dashboard struct {
	ReferenceDate      Date              `json:"reference_date"`
	OverallProgress    int               `json:"overall_progress"`
	Band               Band              `json:"band"`
	GoalStreak         int               `json:"goal_streak"`
	TodoStreak         int               `json:"todo_streak"`
	DailyCompletion    int               `json:"daily_completion_rate"`
	TodoCompletionRate int               `json:"todo_completion_rate"`
	Categories         []CategorySummary `json:"categories"`
	DayOfWeek          []DayPerformance  `json:"day_of_week"`
	WeeklySummary      []WeeklySummary   `json:"weekly_summary"`
	ComputedAt         time.Time         `json:"computed_at"`
}

// BudgetStatus is a budget's allocation against its spending
type BudgetStatus struct {
	BudgetID    string          `json:"budget_id"`
	CategoryID  string          `json:"category_id"`
	Allocated   decimal.Decimal `json:"allocated"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Utilization float64         `json:"utilization"`
	OverBudget  bool            `json:"over_budget"`
}

// SavingsStatus is a savings goal's progress
type SavingsStatus struct {
	SavingsGoalID string          `json:"savings_goal_id"`
	Name          string          `json:"name"`
	Percent       int             `json:"percent"`
	Remaining     decimal.Decimal `json:"remaining"`
	DaysLeft      *int            `json:"days_left,omitempty"`
}

// FinanceOverview is the combined finance analytics view
type FinanceOverview struct {
	ReferenceDate   Date            `json:"reference_date"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlySpending decimal.Decimal `json:"monthly_spending"`
	MonthlyNet      decimal.Decimal `json:"monthly_net"`
	Budgets         []BudgetStatus  `json:"budgets"`
	UpcomingBills   []Bill          `json:"upcoming_bills"`
	Savings         []SavingsStatus `json:"savings"`
}
