package dto

import (
	"time"

	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
type CreateTransactionRequest struct {
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Currency           string          `json:"currency" binding:"omitempty,currencycode"`
	CategoryID         *int64          `json:"categoryId"`
	Description        string          `json:"description"`
	Date               string          `json:"date" binding:"required,datetime=2006-01-02"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurrenceInterval *string         `json:"recurrenceInterval" binding:"omitempty,oneof=daily weekly monthly yearly"`
}

// UpdateTransactionRequest defines the data for replacing a transaction.
type UpdateTransactionRequest struct {
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Currency           string          `json:"currency" binding:"omitempty,currencycode"`
	CategoryID         *int64          `json:"categoryId"`
	Description        string          `json:"description"`
	Date               string          `json:"date" binding:"required,datetime=2006-01-02"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurrenceInterval *string         `json:"recurrenceInterval" binding:"omitempty,oneof=daily weekly monthly yearly"`
}

// TransactionResponse defines the data returned for a transaction, including
// the joined category summary when present.
type TransactionResponse struct {
	ID                 int64           `json:"id"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	CategoryID         *int64          `json:"categoryId"`
	Description        string          `json:"description"`
	Date               string          `json:"date"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurrenceInterval *string         `json:"recurrenceInterval"`
	CreatedAt          time.Time       `json:"createdAt"`
	CategoryName       *string         `json:"categoryName,omitempty"`
	CategoryType       *string         `json:"categoryType,omitempty"`
	CategoryColor      *string         `json:"categoryColor,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	var interval *string
	if txn.RecurrenceInterval != nil {
		s := string(*txn.RecurrenceInterval)
		interval = &s
	}
	return TransactionResponse{
		ID:                 txn.TransactionID,
		Amount:             txn.Amount,
		Currency:           txn.Currency,
		CategoryID:         txn.CategoryID,
		Description:        txn.Description,
		Date:               txn.Date.Format(DateLayout),
		IsRecurring:        txn.IsRecurring,
		RecurrenceInterval: interval,
		CreatedAt:          txn.CreatedAt,
		CategoryName:       txn.CategoryName,
		CategoryType:       txn.CategoryType,
		CategoryColor:      txn.CategoryColor,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
