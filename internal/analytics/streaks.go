package analytics

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

// compliantDays returns the calendar dates on which goal has at least one
// review reaching its streak threshold. Each review is bucketed by the date
// in its own offset.
func compliantDays(goal models.Goal) map[string]bool {
	threshold := goal.StreakThreshold()
	days := make(map[string]bool)
	for _, p := range goal.ProgressHistory {
		if p.Date.IsZero() || !finite(p.Value) {
			continue
		}
		if p.Value >= threshold {
			days[models.DateOf(p.Date).String()] = true
		}
	}
	return days
}

// GoalStreak counts consecutive days, ending on ref's date, on which every
// daily goal has a compliant review. Non-daily goals are ignored. The walk
// stops at the first failing day or after StreakWindowDays days.
func GoalStreak(goals []models.Goal, ref time.Time) int {
	var daily []map[string]bool
	for _, g := range goals {
		if g.Timeframe != models.TimeframeDaily {
			continue
		}
		daily = append(daily, compliantDays(g))
	}
	if len(daily) == 0 {
		return 0
	}

	today := models.DateOf(ref)
	streak := 0
	for i := 0; i < StreakWindowDays; i++ {
		key := today.AddDays(-i).String()
		for _, days := range daily {
			if !days[key] {
				return streak
			}
		}
		streak++
	}
	return streak
}

// TodoStreak counts consecutive days, ending on ref's date, whose todo list
// exists, has at least one non-recurring item, and has every such item
// completed. A missing list breaks the streak. Lists sharing a date are
// merged.
func TodoStreak(lists []models.TodoList, ref time.Time) int {
	byDay := make(map[string][]models.TodoItem, len(lists))
	for _, l := range lists {
		if l.Date.IsZero() {
			continue
		}
		key := l.Date.String()
		byDay[key] = append(byDay[key], l.Items...)
	}

	today := models.DateOf(ref)
	streak := 0
	for i := 0; i < StreakWindowDays; i++ {
		items, ok := byDay[today.AddDays(-i).String()]
		if !ok || !dayComplete(items) {
			break
		}
		streak++
	}
	return streak
}

func dayComplete(items []models.TodoItem) bool {
	counted := 0
	for _, item := range items {
		if item.IsRecurring {
			continue
		}
		if item.Status != models.TodoStatusCompleted {
			return false
		}
		counted++
	}
	return counted > 0
}

// GoalStreakHistory finds the current and longest runs of compliant days
// for a single goal, considering reviews up to ref's date. The current run
// is active when it ends today or yesterday. Unlike GoalStreak it is not
// bounded by StreakWindowDays.
func GoalStreakHistory(goal models.Goal, ref time.Time) models.StreakSummary {
	today := models.DateOf(ref)

	dates := make([]models.Date, 0)
	for key := range compliantDays(goal) {
		d := models.MustParseDate(key)
		if d.After(today) {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return models.StreakSummary{}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	currentStart := dates[0]
	currentLength := 1
	longestStart := dates[0]
	longestEnd := dates[0]
	longestLength := 1

	for i := 1; i < len(dates); i++ {
		if dates[i].DaysSince(dates[i-1]) == 1 {
			currentLength++
		} else {
			currentStart = dates[i]
			currentLength = 1
		}
		if currentLength > longestLength {
			longestLength = currentLength
			longestStart = currentStart
			longestEnd = dates[i]
		}
	}

	summary := models.StreakSummary{
		Longest:      longestLength,
		LongestStart: &longestStart,
		LongestEnd:   &longestEnd,
	}

	last := dates[len(dates)-1]
	if today.DaysSince(last) <= 1 {
		summary.Current = currentLength
		summary.IsActive = true
		summary.CurrentStart = &currentStart
	}

	return summary
}
