package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money in from money out
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// RecurringDetails describes a repeating transaction or bill
type RecurringDetails struct {
	Frequency Timeframe `json:"frequency"`
	EndDate   Date      `json:"end_date"`
}

// Transaction is a single income or expense record. Amount is always
// positive; Type carries the sign.
type Transaction struct {
	ID               string            `json:"id"`
	Amount           decimal.Decimal   `json:"amount"`
	Type             TransactionType   `json:"type"`
	Category         string            `json:"category"`
	Description      string            `json:"description"`
	Date             Date              `json:"date"`
	AccountID        string            `json:"account_id"`
	IsRecurring      bool              `json:"is_recurring"`
	RecurringDetails *RecurringDetails `json:"recurring_details,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// BudgetPeriod is the window a budget covers
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// Budget is a spending allowance for a category
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  Date            `json:"start_date"`
	EndDate    Date            `json:"end_date"`
}

// SavingsGoal is a target balance with a deadline
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      Date            `json:"deadline"`
	Category      string          `json:"category"`
	Color         string          `json:"color,omitempty"`
}

// Bill is an amount due on a date
type Bill struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Amount           decimal.Decimal   `json:"amount"`
	DueDate          Date              `json:"due_date"`
	IsPaid           bool              `json:"is_paid"`
	Category         string            `json:"category"`
	RecurringDetails *RecurringDetails `json:"recurring_details,omitempty"`
}

// AccountType classifies a money account
type AccountType string

const (
	AccountTypeSavings  AccountType = "savings"
	AccountTypeChecking AccountType = "checking"
	AccountTypeCredit   AccountType = "credit"
)

// Account holds a running balance
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	Color   string          `json:"color,omitempty"`
}

// CreateTransactionRequest represents the request to record a transaction
type CreateTransactionRequest struct {
	ID               string            `json:"id"`
	Amount           decimal.Decimal   `json:"amount"`
	Type             TransactionType   `json:"type" binding:"required,oneof=income expense"`
	Category         string            `json:"category" binding:"required"`
	Description      string            `json:"description"`
	Date             Date              `json:"date"`
	AccountID        string            `json:"account_id"`
	IsRecurring      bool              `json:"is_recurring"`
	RecurringDetails *RecurringDetails `json:"recurring_details"`
}
