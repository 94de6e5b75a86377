package models

import "time"

// GoalType describes how a goal measures success
type GoalType string

const (
	GoalTypeQuantitative GoalType = "quantitative"
	GoalTypeQualitative  GoalType = "qualitative"
	GoalTypeRecurring    GoalType = "recurring"
	GoalTypeHybrid       GoalType = "hybrid"
	GoalTypeMilestone    GoalType = "milestone"
)

// Timeframe is a goal's review cadence
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeYearly  Timeframe = "yearly"
	TimeframeNever   Timeframe = "never"
)

// GoalStatus is the lifecycle classification of a goal
type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not-started"
	GoalStatusInProgress GoalStatus = "in-progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusOnHold     GoalStatus = "on-hold"
	GoalStatusAtRisk     GoalStatus = "at-risk"
)

// ProgressModel says how CurrentProgress relates to Target
type ProgressModel string

const (
	// ProgressModelTargetRelative: CurrentProgress is an absolute amount measured against Target
	ProgressModelTargetRelative ProgressModel = "target_relative"
	// ProgressModelPrenormalized: CurrentProgress is already a 0-100 percentage
	ProgressModelPrenormalized ProgressModel = "prenormalized_percent"
)

// MetricType is the display/interpretation type of a numeric progress value
type MetricType string

const (
	MetricTypeNumber     MetricType = "number"
	MetricTypePercentage MetricType = "percentage"
	MetricTypeCurrency   MetricType = "currency"
	MetricTypeDistance   MetricType = "distance"
	MetricTypeTime       MetricType = "time"
	MetricTypePages      MetricType = "pages"
	MetricTypeCustom     MetricType = "custom"
	MetricTypeChecked    MetricType = "checked"
)

// Metric describes how a goal's progress values are interpreted
type Metric struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Type   MetricType `json:"type"`
	Unit   string     `json:"unit,omitempty"`
	Format string     `json:"format,omitempty"` // currency code for currency metrics
}

// Progress is a single timestamped observation against a goal
type Progress struct {
	ID     string    `json:"id"`
	GoalID string    `json:"goal_id"`
	Date   time.Time `json:"date"`
	Value  float64   `json:"value"`
	Notes  *string   `json:"notes,omitempty"`
}

// Recurrence tracks session targets for recurring goals
type Recurrence struct {
	Frequency Timeframe `json:"frequency"`
	Days      []string  `json:"days,omitempty"`
	Target    float64   `json:"target"`
	Completed int       `json:"completed"`
}

// Milestone is a checkpoint on a milestone goal
type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal represents a user-defined target with a progress history
type Goal struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description,omitempty"`
	Type              GoalType      `json:"type"`
	Category          string        `json:"category"`
	Timeframe         Timeframe     `json:"timeframe"`
	StartDate         Date          `json:"start_date"`
	EndDate           Date          `json:"end_date"`
	Target            float64       `json:"target"`
	CurrentProgress   float64       `json:"current_progress"`
	ProgressModel     ProgressModel `json:"progress_model"`
	Metric            Metric        `json:"metric"`
	Status            GoalStatus    `json:"status"`
	ProgressHistory   []Progress    `json:"progress_history"`
	ReminderFrequency Timeframe     `json:"reminder_frequency,omitempty"`
	ReminderTime      string        `json:"reminder_time,omitempty"`
	Tags              []string      `json:"tags,omitempty"`
	Recurrence        *Recurrence   `json:"recurrence,omitempty"`
	Milestones        []Milestone   `json:"milestones,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Normalize resolves the goal's progress model from its shape when the
// record does not carry one. Percentage metrics without a positive target
// are pre-normalized; everything else is measured against Target.
func (g *Goal) Normalize() {
	if g.ProgressModel != "" {
		return
	}
	if g.Metric.Type == MetricTypePercentage && g.Target <= 0 {
		g.ProgressModel = ProgressModelPrenormalized
		return
	}
	g.ProgressModel = ProgressModelTargetRelative
}

// StreakThreshold is the value a single review must reach to count for a
// day: the goal target, else the recurrence target, else zero.
func (g *Goal) StreakThreshold() float64 {
	if g.Target > 0 {
		return g.Target
	}
	if g.Recurrence != nil && g.Recurrence.Target > 0 {
		return g.Recurrence.Target
	}
	return 0
}

// TodoStatus is the state of a todo item
type TodoStatus string

const (
	TodoStatusPending   TodoStatus = "pending"
	TodoStatusCompleted TodoStatus = "completed"
	TodoStatusFailed    TodoStatus = "failed"
)

// RecurrencePattern describes how a todo item repeats
type RecurrencePattern struct {
	Frequency Timeframe `json:"frequency"`
	Days      []int     `json:"days,omitempty"`
	Date      int       `json:"date,omitempty"`
}

// TodoItem is a single entry on a daily todo list
type TodoItem struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       *string            `json:"description,omitempty"`
	DueDate           Date               `json:"due_date"`
	DueTime           string             `json:"due_time,omitempty"`
	ReminderTime      string             `json:"reminder_time,omitempty"`
	Status            TodoStatus         `json:"status"`
	IsRecurring       bool               `json:"is_recurring"`
	RecurrencePattern *RecurrencePattern `json:"recurrence_pattern,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
}

// TodoList is the checklist for one calendar date
type TodoList struct {
	ID                      string     `json:"id"`
	Date                    Date       `json:"date"`
	Items                   []TodoItem `json:"items"`
	MorningNotificationTime string     `json:"morning_notification_time,omitempty"`
	EveningNotificationTime string     `json:"evening_notification_time,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// Category is a user-facing grouping label for goals
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// DefaultCategories are offered to every new tracker
var DefaultCategories = []Category{
	{ID: "1", Name: "Career", Color: "#4F46E5", Icon: "briefcase"},
	{ID: "2", Name: "Finance", Color: "#10B981", Icon: "dollar-sign"},
	{ID: "6", Name: "Education", Color: "#30C48D", Icon: "book"},
	{ID: "3", Name: "Health", Color: "#EF4444", Icon: "heart"},
	{ID: "4", Name: "Personal", Color: "#F59E0B", Icon: "user"},
}

// DefaultCategoryNames returns the names of DefaultCategories in order
func DefaultCategoryNames() []string {
	names := make([]string, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		names = append(names, c.Name)
	}
	return names
}

// CreateGoalRequest represents the request to create a goal
type CreateGoalRequest struct {
	ID                string        `json:"id"`
	Title             string        `json:"title" binding:"required"`
	Description       *string       `json:"description"`
	Type              GoalType      `json:"type" binding:"required,oneof=quantitative qualitative recurring hybrid milestone"`
	Category          string        `json:"category" binding:"required"`
	Timeframe         Timeframe     `json:"timeframe" binding:"required,oneof=daily weekly monthly yearly never"`
	StartDate         Date          `json:"start_date"`
	EndDate           Date          `json:"end_date"`
	Target            float64       `json:"target" binding:"gte=0"`
	ProgressModel     ProgressModel `json:"progress_model" binding:"omitempty,oneof=target_relative prenormalized_percent"`
	Metric            Metric        `json:"metric"`
	ReminderFrequency Timeframe     `json:"reminder_frequency"`
	ReminderTime      string        `json:"reminder_time"`
	Tags              []string      `json:"tags"`
	Recurrence        *Recurrence   `json:"recurrence"`
	Milestones        []Milestone   `json:"milestones"`
}

// UpdateGoalRequest represents the request to update a goal.
// Description and EndDate distinguish "absent" from "cleared".
type UpdateGoalRequest struct {
	Title       *string        `json:"title"`
	Description NullableString `json:"description"`
	Category    *string        `json:"category"`
	Timeframe   *Timeframe     `json:"timeframe"`
	EndDate     NullableDate   `json:"end_date"`
	Target      *float64       `json:"target"`
	Status      *GoalStatus    `json:"status"`
	Metric      *Metric        `json:"metric"`
	Tags        []string       `json:"tags"`
	Milestones  []Milestone    `json:"milestones"`
}

// RecordProgressRequest represents a new progress entry for a goal
type RecordProgressRequest struct {
	ID    string     `json:"id"`
	Date  *time.Time `json:"date"`
	Value *float64   `json:"value" binding:"required"`
	Notes *string    `json:"notes"`
}

// UpsertTodoListRequest replaces the todo list for a date
type UpsertTodoListRequest struct {
	Date                    Date       `json:"date"`
	Items                   []TodoItem `json:"items"`
	MorningNotificationTime string     `json:"morning_notification_time"`
	EveningNotificationTime string     `json:"evening_notification_time"`
}

// UpdateTodoItemRequest changes the status of a single item
type UpdateTodoItemRequest struct {
	Status TodoStatus `json:"status" binding:"required,oneof=pending completed failed"`
}
