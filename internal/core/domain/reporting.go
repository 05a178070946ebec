package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the current month's budget position and the
// state of pending bills.
type DashboardSummary struct {
	TotalBudget   decimal.Decimal `json:"totalBudget"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	Remaining     decimal.Decimal `json:"remaining"`
	UpcomingBills int             `json:"upcomingBills"`
	OverdueBills  int             `json:"overdueBills"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
}

// CategorySpending is the expense total recorded against one category.
type CategorySpending struct {
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Total decimal.Decimal `json:"total"`
}
