package analytics

import (
	"testing"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

func item(due string, status models.TodoStatus) models.TodoItem {
	it := models.TodoItem{Status: status}
	if due != "" {
		it.DueDate = models.MustParseDate(due)
	}
	return it
}

func TestTodoCompletionRate(t *testing.T) {
	tests := []struct {
		name  string
		lists []models.TodoList
		want  int
	}{
		{name: "no lists", lists: nil, want: 0},
		{name: "no items", lists: []models.TodoList{{}}, want: 0},
		{
			name: "two of three",
			lists: []models.TodoList{
				{Items: []models.TodoItem{item("", models.TodoStatusCompleted), item("", models.TodoStatusFailed)}},
				{Items: []models.TodoItem{item("", models.TodoStatusCompleted)}},
			},
			want: 67,
		},
		{
			name: "all done",
			lists: []models.TodoList{
				{Items: []models.TodoItem{item("", models.TodoStatusCompleted)}},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TodoCompletionRate(tt.lists)
			if got != tt.want {
				t.Errorf("TodoCompletionRate() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("TodoCompletionRate() = %d, out of range", got)
			}
		})
	}
}

func TestDailyCompletionRate(t *testing.T) {
	lists := []models.TodoList{
		{Date: models.MustParseDate("2024-03-10"), Items: []models.TodoItem{
			item("", models.TodoStatusCompleted),
			item("", models.TodoStatusPending),
		}},
		{Date: models.MustParseDate("2024-03-09"), Items: []models.TodoItem{
			item("", models.TodoStatusCompleted),
		}},
	}

	if got := DailyCompletionRate(lists, at("2024-03-10")); got != 50 {
		t.Errorf("DailyCompletionRate() = %d, want 50", got)
	}
	if got := DailyCompletionRate(lists, at("2024-03-11")); got != 0 {
		t.Errorf("DailyCompletionRate() without list = %d, want 0", got)
	}
}

func TestTodoStats(t *testing.T) {
	lists := []models.TodoList{
		{Items: []models.TodoItem{
			item("", models.TodoStatusCompleted),
			item("", models.TodoStatusFailed),
			item("", models.TodoStatusPending),
		}},
	}

	got := TodoStats(lists)
	if got.TotalTasks != 3 || got.CompletedTasks != 1 || got.FailedTasks != 1 || got.PendingTasks != 1 {
		t.Errorf("TodoStats() counts = %+v", got)
	}
	if got.CompletionRate != 33.3 || got.FailureRate != 33.3 || got.PendingRate != 33.3 {
		t.Errorf("TodoStats() rates = %v/%v/%v, want 33.3 each", got.CompletionRate, got.FailureRate, got.PendingRate)
	}

	empty := TodoStats(nil)
	if empty.TotalTasks != 0 || empty.CompletionRate != 0 {
		t.Errorf("TodoStats(nil) = %+v, want zero", empty)
	}
}

func TestDayOfWeekPerformance(t *testing.T) {
	// 2024-03-10 is a Sunday, 2024-03-11 a Monday.
	lists := []models.TodoList{
		{Items: []models.TodoItem{
			item("2024-03-10", models.TodoStatusCompleted),
			item("2024-03-10", models.TodoStatusPending),
			item("2024-03-10", models.TodoStatusFailed),
			item("2024-03-11", models.TodoStatusCompleted),
			item("", models.TodoStatusCompleted),
		}},
	}

	got := DayOfWeekPerformance(lists)
	if len(got) != 7 {
		t.Fatalf("DayOfWeekPerformance() returned %d entries, want 7", len(got))
	}

	for i, d := range got {
		if d.Day != i || d.Label != DayLabels[i] {
			t.Errorf("entry %d = day %d %q, want %d %q", i, d.Day, d.Label, i, DayLabels[i])
		}
	}

	if got[0].Label != "Sun" || got[6].Label != "Sat" {
		t.Errorf("labels = %q..%q, want Sun..Sat", got[0].Label, got[6].Label)
	}
	if got[0].Total != 3 || got[0].Completed != 1 || got[0].CompletionRate != 33.3 {
		t.Errorf("Sunday = %+v, want 1/3 at 33.3", got[0])
	}
	if got[1].CompletionRate != 100 {
		t.Errorf("Monday rate = %v, want 100", got[1].CompletionRate)
	}
	if got[2].Total != 0 || got[2].CompletionRate != 0 {
		t.Errorf("Tuesday = %+v, want empty", got[2])
	}
}

func TestDayOfWeekPerformance_Empty(t *testing.T) {
	got := DayOfWeekPerformance(nil)
	if len(got) != 7 {
		t.Fatalf("DayOfWeekPerformance(nil) returned %d entries, want 7", len(got))
	}
	for _, d := range got {
		if d.CompletionRate != 0 {
			t.Errorf("%s rate = %v, want 0", d.Label, d.CompletionRate)
		}
	}
}

func TestTodoTrend(t *testing.T) {
	var lists []models.TodoList
	for i := 0; i < 7; i++ {
		l := models.TodoList{Date: models.MustParseDate("2024-03-04").AddDays(i)}
		for j := 0; j <= i; j++ {
			l.Items = append(l.Items, item("", models.TodoStatusCompleted))
		}
		lists = append(lists, l)
	}

	got := TodoTrend(lists, at("2024-03-10"), 7)
	if len(got.Data) != 7 {
		t.Fatalf("TodoTrend() returned %d points, want 7", len(got.Data))
	}
	if got.Data[0].Date.String() != "2024-03-04" || got.Data[6].Count != 7 {
		t.Errorf("TodoTrend() series = %+v", got.Data)
	}
	if got.Average != 4 {
		t.Errorf("Average = %v, want 4", got.Average)
	}
	if got.Trend != models.TrendIncreasing {
		t.Errorf("Trend = %q, want %q", got.Trend, models.TrendIncreasing)
	}
	if got.Period != "7d" {
		t.Errorf("Period = %q, want 7d", got.Period)
	}
}

func TestTodoTrend_SingleDayIsStable(t *testing.T) {
	got := TodoTrend(nil, at("2024-03-10"), 0)
	if len(got.Data) != 1 || got.Trend != models.TrendStable {
		t.Errorf("TodoTrend() = %+v, want one stable point", got)
	}
}

func TestWeeklyProgressSummary(t *testing.T) {
	// 2024-03-13 is a Wednesday; this week starts Sunday 2024-03-10.
	ref := at("2024-03-13")
	goals := []models.Goal{
		{ID: "steady", ProgressHistory: append(reviews("2024-03-13", 2, 1), reviews("2024-03-09", 2, 1)...)},
		{ID: "new", ProgressHistory: reviews("2024-03-13", 4, 1)},
		{ID: "idle"},
		{ID: "slowing", ProgressHistory: append(reviews("2024-03-10", 1, 1), reviews("2024-03-08", 4, 1)...)},
	}

	got := WeeklyProgressSummary(goals, ref)
	if len(got) != 3 {
		t.Fatalf("WeeklyProgressSummary() returned %d entries, want 3", len(got))
	}

	byID := map[string]models.WeeklySummary{}
	for _, s := range got {
		byID[s.GoalID] = s
	}

	if s := byID["steady"]; s.ThisWeekCount != 2 || s.LastWeekCount != 2 || s.Direction != models.DirectionSame {
		t.Errorf("steady = %+v", s)
	}
	// reviews("2024-03-13", 4) spans Mar 10..13, all this week.
	if s := byID["new"]; s.ThisWeekCount != 4 || s.ChangePercent != 100 || s.Direction != models.DirectionUp {
		t.Errorf("new = %+v", s)
	}
	if s := byID["slowing"]; s.Direction != models.DirectionDown || s.ChangePercent != -75 {
		t.Errorf("slowing = %+v", s)
	}
	if got[0].GoalID != "new" {
		t.Errorf("first = %q, want new", got[0].GoalID)
	}
}
