package analytics

import (
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

// GoalProgressPercent returns the goal's progress as a whole percentage in
// [0, 100].
//
// Target-relative goals report CurrentProgress/Target*100; a zero or
// negative target reports 0. Pre-normalized goals report CurrentProgress
// as-is. Qualitative goals are 100 once completed and 0 otherwise.
func GoalProgressPercent(goal models.Goal) int {
	return roundHalfUp(goalProgress(goal))
}

// goalProgress is the unrounded, clamped percentage behind GoalProgressPercent
func goalProgress(goal models.Goal) float64 {
	if goal.Type == models.GoalTypeQualitative {
		if goal.Status == models.GoalStatusCompleted {
			return 100
		}
		return 0
	}

	var p float64
	switch goal.ProgressModel {
	case models.ProgressModelPrenormalized:
		p = goal.CurrentProgress
	default:
		if !(goal.Target > 0) || !finite(goal.Target) {
			return 0
		}
		p = goal.CurrentProgress / goal.Target * 100
	}

	if !finite(p) {
		return 0
	}
	return clamp(p, 0, 100)
}

// CategoryProgress returns the mean progress of the goals in category,
// rounded to a whole percentage. Per-goal values are clamped before
// averaging and left unrounded until the end. An empty category is 0.
func CategoryProgress(goals []models.Goal, category string) int {
	sum := 0.0
	n := 0
	for _, g := range goals {
		if g.Category != category {
			continue
		}
		sum += goalProgress(g)
		n++
	}
	if n == 0 {
		return 0
	}
	return roundHalfUp(sum / float64(n))
}

// OverallProgress is the mean progress across every goal
func OverallProgress(goals []models.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	sum := 0.0
	for _, g := range goals {
		sum += goalProgress(g)
	}
	return roundHalfUp(sum / float64(len(goals)))
}

// CategoryBreakdown summarizes each category. The result follows the order
// of categories, followed by any category that only appears on a goal, in
// order of first appearance.
func CategoryBreakdown(goals []models.Goal, categories []string, ref time.Time) []models.CategorySummary {
	names := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if !seen[c] {
			seen[c] = true
			names = append(names, c)
		}
	}
	for _, g := range goals {
		if !seen[g.Category] {
			seen[g.Category] = true
			names = append(names, g.Category)
		}
	}

	summaries := make([]models.CategorySummary, 0, len(names))
	for _, name := range names {
		var members []models.Goal
		completed := 0
		for _, g := range goals {
			if g.Category != name {
				continue
			}
			members = append(members, g)
			if g.Status == models.GoalStatusCompleted {
				completed++
			}
		}

		summaries = append(summaries, models.CategorySummary{
			Category:       name,
			TotalGoals:     len(members),
			CompletedGoals: completed,
			Progress:       CategoryProgress(members, name),
			Streak:         GoalStreak(members, ref),
		})
	}

	return summaries
}

// GoalCompletionRate returns the share of goals with the given timeframe
// whose status is completed, as a whole percentage. An empty timeframe
// considers every goal.
func GoalCompletionRate(goals []models.Goal, timeframe models.Timeframe) int {
	total := 0
	completed := 0
	for _, g := range goals {
		if timeframe != "" && g.Timeframe != timeframe {
			continue
		}
		total++
		if g.Status == models.GoalStatusCompleted {
			completed++
		}
	}
	return roundHalfUp(percent(completed, total))
}

// DaysUntil returns the number of calendar days from ref's date to due.
// Past dates are negative.
func DaysUntil(due models.Date, ref time.Time) int {
	return due.DaysSince(models.DateOf(ref))
}
