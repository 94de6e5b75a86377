// Package presenter turns analytics results into display text. Nothing in
// the analytics core depends on it.
package presenter

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

// DefaultCurrency is used for currency metrics that carry no code
const DefaultCurrency = "ZMW"

var bandMessages = map[models.Band]string{
	models.BandGoalReached:  "Amazing job! You've reached your goal! 🎉",
	models.BandNearComplete: "You're almost there! Keep pushing! 💪",
	models.BandHalfway:      "Halfway there! You're making great progress! 🌟",
	models.BandStarted:      "Great start! Keep up the momentum! 🚀",
	models.BandBeginning:    "Every step counts! Let's get started! 🌱",
}

// Message returns the encouragement text for a band
func Message(band models.Band) string {
	if msg, ok := bandMessages[band]; ok {
		return msg
	}
	return bandMessages[models.BandBeginning]
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatCurrency renders amount with two decimals and thousands
// separators. Known codes use their symbol; others are prefixed with the
// code itself, e.g. "ZMW 1,250.00".
func FormatCurrency(amount decimal.Decimal, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	code = strings.ToUpper(code)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	body := groupThousands(whole) + "." + frac

	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + body
	}
	return sign + code + " " + body
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDuration renders a number of minutes as "Xh Ym", or "Ym" under an hour
func FormatDuration(minutes float64) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes < 0 {
		minutes = 0
	}
	total := int(math.Round(minutes))
	hours := total / 60
	mins := total % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

func formatNumber(value float64) string {
	return decimal.NewFromFloat(value).String()
}

// FormatValue renders a progress value according to the goal's metric
func FormatValue(metric models.Metric, value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	switch metric.Type {
	case models.MetricTypeCurrency:
		return FormatCurrency(decimal.NewFromFloat(value), metric.Format)
	case models.MetricTypePercentage:
		return formatNumber(value) + "%"
	case models.MetricTypeDistance:
		return strings.TrimSpace(formatNumber(value) + " " + metric.Unit)
	case models.MetricTypeTime:
		return FormatDuration(value)
	case models.MetricTypePages:
		return formatNumber(value) + " pages"
	case models.MetricTypeChecked:
		if value > 0 {
			return "done"
		}
		return "not done"
	case models.MetricTypeCustom:
		if metric.Unit != "" {
			return formatNumber(value) + " " + metric.Unit
		}
		return formatNumber(value)
	default:
		return formatNumber(value)
	}
}

// GoalLine summarizes a goal as "current / target" in its own units, or
// just the current value when the goal has no target.
func GoalLine(goal models.Goal) string {
	current := FormatValue(goal.Metric, goal.CurrentProgress)
	if goal.Target <= 0 || goal.ProgressModel == models.ProgressModelPrenormalized {
		return current
	}
	return current + " / " + FormatValue(goal.Metric, goal.Target)
}
