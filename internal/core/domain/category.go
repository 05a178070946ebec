package domain

import "time"

// CategoryType distinguishes income from expense categories.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category tags transactions, budgets and bills.
type Category struct {
	CategoryID int64        `json:"id"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"`
	CreatedAt  time.Time    `json:"createdAt"`
}
