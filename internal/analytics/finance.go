package analytics

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultBillWindowDays is how far ahead UpcomingBills looks by default
const DefaultBillWindowDays = 7

var hundred = decimal.NewFromInt(100)

func monthlyTotal(txs []models.Transaction, kind models.TransactionType, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type != kind || tx.Date.IsZero() {
			continue
		}
		if tx.Date.Year() == year && tx.Date.Month() == month {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// MonthlySpending sums expense transactions dated in the given month
func MonthlySpending(txs []models.Transaction, year int, month time.Month) decimal.Decimal {
	return monthlyTotal(txs, models.TransactionTypeExpense, year, month)
}

// MonthlyIncome sums income transactions dated in the given month
func MonthlyIncome(txs []models.Transaction, year int, month time.Month) decimal.Decimal {
	return monthlyTotal(txs, models.TransactionTypeIncome, year, month)
}

// CategorySpending sums expenses in category dated within [start, end].
// A zero bound is open.
func CategorySpending(txs []models.Transaction, category string, start, end models.Date) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense || tx.Category != category {
			continue
		}
		if !start.IsZero() && tx.Date.Before(start) {
			continue
		}
		if !end.IsZero() && tx.Date.After(end) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// BudgetOverview reports allocation, spending and remaining amount per
// budget. Utilization is a one-decimal percentage, 0 for an empty budget.
func BudgetOverview(budgets []models.Budget) []models.BudgetStatus {
	statuses := make([]models.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		utilization := 0.0
		if b.Amount.IsPositive() {
			utilization = b.Spent.Div(b.Amount).Mul(hundred).Round(1).InexactFloat64()
		}
		statuses = append(statuses, models.BudgetStatus{
			BudgetID:    b.ID,
			CategoryID:  b.CategoryID,
			Allocated:   b.Amount,
			Spent:       b.Spent,
			Remaining:   b.Amount.Sub(b.Spent),
			Utilization: utilization,
			OverBudget:  b.Spent.GreaterThan(b.Amount),
		})
	}
	return statuses
}

// UpcomingBills returns unpaid bills due between ref's date and days later,
// inclusive, ordered by due date. A non-positive days uses
// DefaultBillWindowDays.
func UpcomingBills(bills []models.Bill, ref time.Time, days int) []models.Bill {
	if days <= 0 {
		days = DefaultBillWindowDays
	}
	today := models.DateOf(ref)
	until := today.AddDays(days)

	upcoming := make([]models.Bill, 0)
	for _, b := range bills {
		if b.IsPaid || b.DueDate.IsZero() {
			continue
		}
		if b.DueDate.Before(today) || b.DueDate.After(until) {
			continue
		}
		upcoming = append(upcoming, b)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming
}

// TotalBalance sums every account balance
func TotalBalance(accounts []models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// SavingsProgress reports how far a savings goal is toward its target
func SavingsProgress(goal models.SavingsGoal, ref time.Time) models.SavingsStatus {
	status := models.SavingsStatus{
		SavingsGoalID: goal.ID,
		Name:          goal.Name,
		Remaining:     decimal.Max(goal.TargetAmount.Sub(goal.CurrentAmount), decimal.Zero),
	}

	if goal.TargetAmount.IsPositive() {
		p := goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
		p = decimal.Min(decimal.Max(p, decimal.Zero), hundred)
		status.Percent = int(p.Round(0).IntPart())
	}

	if !goal.Deadline.IsZero() {
		days := DaysUntil(goal.Deadline, ref)
		status.DaysLeft = &days
	}

	return status
}

// FinanceSummary combines balances, the current month's cash flow, budget
// status, upcoming bills and savings progress as of ref
func FinanceSummary(
	txs []models.Transaction,
	budgets []models.Budget,
	bills []models.Bill,
	savings []models.SavingsGoal,
	accounts []models.Account,
	ref time.Time,
) models.FinanceOverview {
	today := models.DateOf(ref)
	income := MonthlyIncome(txs, today.Year(), today.Month())
	spending := MonthlySpending(txs, today.Year(), today.Month())

	savingsStatus := make([]models.SavingsStatus, 0, len(savings))
	for _, s := range savings {
		savingsStatus = append(savingsStatus, SavingsProgress(s, ref))
	}

	return models.FinanceOverview{
		ReferenceDate:   today,
		TotalBalance:    TotalBalance(accounts),
		MonthlyIncome:   income,
		MonthlySpending: spending,
		MonthlyNet:      income.Sub(spending),
		Budgets:         BudgetOverview(budgets),
		UpcomingBills:   UpcomingBills(bills, ref, DefaultBillWindowDays),
		Savings:         savingsStatus,
	}
}
