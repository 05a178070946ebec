package dto

import (
	"time"

	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to create a bill.
type CreateBillRequest struct {
	Name               string          `json:"name" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Currency           string          `json:"currency" binding:"omitempty,currencycode"`
	DueDate            string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	CategoryID         *int64          `json:"categoryId"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurrenceInterval *string         `json:"recurrenceInterval" binding:"omitempty,oneof=monthly yearly"`
	Status             string          `json:"status" binding:"omitempty,oneof=pending paid"`
}

// UpdateBillRequest defines the data for replacing a bill.
type UpdateBillRequest struct {
	Name               string          `json:"name" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Currency           string          `json:"currency" binding:"omitempty,currencycode"`
	DueDate            string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	CategoryID         *int64          `json:"categoryId"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurrenceInterval *string         `json:"recurrenceInterval" binding:"omitempty,oneof=monthly yearly"`
	Status             string          `json:"status" binding:"omitempty,oneof=pending paid"`
}

// UpdateBillStatusRequest marks a bill pending or paid.
type UpdateBillStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	DueDate            string          `json:"dueDate"`
	CategoryID         *int64          `json:"categoryId"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurrenceInterval *string         `json:"recurrenceInterval"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	CategoryName       *string         `json:"categoryName,omitempty"`
	CategoryColor      *string         `json:"categoryColor,omitempty"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	var interval *string
	if b.RecurrenceInterval != nil {
		s := string(*b.RecurrenceInterval)
		interval = &s
	}
	return BillResponse{
		ID:                 b.BillID,
		Name:               b.Name,
		Amount:             b.Amount,
		Currency:           b.Currency,
		DueDate:            b.DueDate.Format(DateLayout),
		CategoryID:         b.CategoryID,
		IsRecurring:        b.IsRecurring,
		RecurrenceInterval: interval,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		CategoryName:       b.CategoryName,
		CategoryColor:      b.CategoryColor,
	}
}

// ToListBillResponse converts a slice of domain.Bill to DTOs.
func ToListBillResponse(bills []domain.Bill) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(&b)
	}
	return res
}
