package dto

import (
	"time"

	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	CategoryID int64           `json:"categoryId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"omitempty,currencycode"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required"`
}

// UpdateBudgetRequest defines the data for replacing a budget.
type UpdateBudgetRequest struct {
	CategoryID int64           `json:"categoryId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"omitempty,currencycode"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	ID            int64           `json:"id"`
	CategoryID    int64           `json:"categoryId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	CreatedAt     time.Time       `json:"createdAt"`
	CategoryName  *string         `json:"categoryName,omitempty"`
	CategoryColor *string         `json:"categoryColor,omitempty"`
}

// BudgetSpendingResponse is a budget joined with the month's spending.
type BudgetSpendingResponse struct {
	BudgetResponse
	Budgeted decimal.Decimal `json:"budgeted"`
	Spent    decimal.Decimal `json:"spent"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:            b.BudgetID,
		CategoryID:    b.CategoryID,
		Amount:        b.Amount,
		Currency:      b.Currency,
		Month:         b.Month,
		Year:          b.Year,
		CreatedAt:     b.CreatedAt,
		CategoryName:  b.CategoryName,
		CategoryColor: b.CategoryColor,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to DTOs.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return res
}

// ToBudgetSpendingResponse converts a domain.BudgetSpending to its DTO.
func ToBudgetSpendingResponse(bs *domain.BudgetSpending) BudgetSpendingResponse {
	return BudgetSpendingResponse{
		BudgetResponse: ToBudgetResponse(&bs.Budget),
		Budgeted:       bs.Budgeted,
		Spent:          bs.Spent,
	}
}

// ToListBudgetSpendingResponse converts a slice of domain.BudgetSpending to DTOs.
func ToListBudgetSpendingResponse(spendings []domain.BudgetSpending) []BudgetSpendingResponse {
	res := make([]BudgetSpendingResponse, len(spendings))
	for i, bs := range spendings {
		res[i] = ToBudgetSpendingResponse(&bs)
	}
	return res
}
