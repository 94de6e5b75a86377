package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

// DayLabels are the short weekday names, indexed by time.Weekday
var DayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// TodoCompletionRate returns completed items over all items across lists,
// as a whole percentage. No items is 0.
func TodoCompletionRate(lists []models.TodoList) int {
	total := 0
	completed := 0
	for _, l := range lists {
		for _, item := range l.Items {
			total++
			if item.Status == models.TodoStatusCompleted {
				completed++
			}
		}
	}
	return roundHalfUp(percent(completed, total))
}

// DailyCompletionRate is TodoCompletionRate restricted to the list for
// ref's date
func DailyCompletionRate(lists []models.TodoList, ref time.Time) int {
	today := models.DateOf(ref)
	var todays []models.TodoList
	for _, l := range lists {
		if l.Date.Equal(today) {
			todays = append(todays, l)
		}
	}
	return TodoCompletionRate(todays)
}

// TodoStats counts items by status across lists. Rates carry one decimal.
func TodoStats(lists []models.TodoList) models.TodoStats {
	var stats models.TodoStats
	for _, l := range lists {
		for _, item := range l.Items {
			stats.TotalTasks++
			switch item.Status {
			case models.TodoStatusCompleted:
				stats.CompletedTasks++
			case models.TodoStatusFailed:
				stats.FailedTasks++
			default:
				stats.PendingTasks++
			}
		}
	}

	stats.CompletionRate = roundTo1(percent(stats.CompletedTasks, stats.TotalTasks))
	stats.FailureRate = roundTo1(percent(stats.FailedTasks, stats.TotalTasks))
	stats.PendingRate = roundTo1(percent(stats.PendingTasks, stats.TotalTasks))
	return stats
}

// DayOfWeekPerformance returns seven entries, Sunday first, with the
// completion rate of items grouped by the weekday of their due date.
// Items without a due date are skipped.
func DayOfWeekPerformance(lists []models.TodoList) []models.DayPerformance {
	var totals, completed [7]int
	for _, l := range lists {
		for _, item := range l.Items {
			if item.DueDate.IsZero() {
				continue
			}
			day := item.DueDate.Weekday()
			totals[day]++
			if item.Status == models.TodoStatusCompleted {
				completed[day]++
			}
		}
	}

	days := make([]models.DayPerformance, 7)
	for i := range days {
		days[i] = models.DayPerformance{
			Day:            i,
			Label:          DayLabels[i],
			Total:          totals[i],
			Completed:      completed[i],
			CompletionRate: roundTo1(percent(completed[i], totals[i])),
		}
	}
	return days
}

// TodoTrend builds a daily series of completed items for the days window
// ending on ref's date, and classifies its direction by linear regression.
func TodoTrend(lists []models.TodoList, ref time.Time, days int) models.TrendData {
	if days < 1 {
		days = 1
	}

	completedByDay := make(map[string]int64, len(lists))
	for _, l := range lists {
		if l.Date.IsZero() {
			continue
		}
		for _, item := range l.Items {
			if item.Status == models.TodoStatusCompleted {
				completedByDay[l.Date.String()]++
			}
		}
	}

	start := models.DateOf(ref).AddDays(-(days - 1))
	dataPoints := make([]models.TimeSeriesDataPoint, 0, days)
	total := int64(0)
	for i := 0; i < days; i++ {
		d := start.AddDays(i)
		count := completedByDay[d.String()]
		total += count
		dataPoints = append(dataPoints, models.TimeSeriesDataPoint{
			Date:  d,
			Count: count,
		})
	}

	return models.TrendData{
		Period:  fmt.Sprintf("%dd", days),
		Data:    dataPoints,
		Average: float64(total) / float64(len(dataPoints)),
		Trend:   determineTrend(dataPoints),
	}
}

// determineTrend fits a least-squares line through the series and calls it
// stable when the slope is under 0.1 per day
func determineTrend(dataPoints []models.TimeSeriesDataPoint) string {
	if len(dataPoints) < 2 {
		return models.TrendStable
	}

	n := float64(len(dataPoints))
	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumXX := 0.0

	for i, dp := range dataPoints {
		x := float64(i)
		y := float64(dp.Count)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)

	if math.Abs(slope) < 0.1 {
		return models.TrendStable
	} else if slope > 0 {
		return models.TrendIncreasing
	}
	return models.TrendDecreasing
}
