package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending for one category in one calendar month.
// At most one budget exists per (category, month, year).
type Budget struct {
	BudgetID   int64           `json:"id"`
	CategoryID int64           `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	CreatedAt  time.Time       `json:"createdAt"`

	CategoryName  *string `json:"categoryName,omitempty"`
	CategoryColor *string `json:"categoryColor,omitempty"`
}

// BudgetSpending is a budget joined with the expenses recorded against its
// category in the budget's month.
type BudgetSpending struct {
	Budget
	Budgeted decimal.Decimal `json:"budgeted"`
	Spent    decimal.Decimal `json:"spent"`
}
