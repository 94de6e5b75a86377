package analytics

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

// WeekStart returns the Sunday on or before d
func WeekStart(d models.Date) models.Date {
	return d.AddDays(-int(d.Weekday()))
}

// WeeklyProgressSummary compares the number of reviews logged per goal this
// week (Sunday through ref's date) against the whole of last week. Goals
// with no reviews in either week are omitted. The result is ordered by this
// week's count, descending; ties keep input order.
func WeeklyProgressSummary(goals []models.Goal, ref time.Time) []models.WeeklySummary {
	today := models.DateOf(ref)
	thisWeekStart := WeekStart(today)
	lastWeekStart := thisWeekStart.AddDays(-7)

	summaries := make([]models.WeeklySummary, 0, len(goals))

	for _, g := range goals {
		thisWeekCount := 0
		lastWeekCount := 0

		for _, p := range g.ProgressHistory {
			if p.Date.IsZero() {
				continue
			}
			d := models.DateOf(p.Date)
			switch {
			case d.After(today):
				continue
			case !d.Before(thisWeekStart):
				thisWeekCount++
			case !d.Before(lastWeekStart):
				lastWeekCount++
			}
		}

		if thisWeekCount == 0 && lastWeekCount == 0 {
			continue
		}

		var changePercent float64
		var direction string

		if lastWeekCount == 0 {
			changePercent = 100
			direction = models.DirectionUp
		} else {
			changePercent = roundTo1(float64(thisWeekCount-lastWeekCount) / float64(lastWeekCount) * 100)
			if changePercent > 5 {
				direction = models.DirectionUp
			} else if changePercent < -5 {
				direction = models.DirectionDown
			} else {
				direction = models.DirectionSame
			}
		}

		summaries = append(summaries, models.WeeklySummary{
			GoalID:        g.ID,
			GoalTitle:     g.Title,
			Category:      g.Category,
			ThisWeekCount: thisWeekCount,
			LastWeekCount: lastWeekCount,
			ChangePercent: changePercent,
			Direction:     direction,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ThisWeekCount > summaries[j].ThisWeekCount
	})

	return summaries
}
