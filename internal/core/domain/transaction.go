package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceInterval describes how often a recurring record repeats.
type RecurrenceInterval string

const (
	RecurrenceDaily   RecurrenceInterval = "daily"
	RecurrenceWeekly  RecurrenceInterval = "weekly"
	RecurrenceMonthly RecurrenceInterval = "monthly"
	RecurrenceYearly  RecurrenceInterval = "yearly"
)

// Transaction is a single category-tagged income or expense entry.
// The Category* fields are denormalized from the joined category row and
// are nil when the transaction has no category.
type Transaction struct {
	TransactionID      int64               `json:"id"`
	Amount             decimal.Decimal     `json:"amount"`
	Currency           string              `json:"currency"`
	CategoryID         *int64              `json:"categoryId"`
	Description        string              `json:"description"`
	Date               time.Time           `json:"date"`
	IsRecurring        bool                `json:"isRecurring"`
	RecurrenceInterval *RecurrenceInterval `json:"recurrenceInterval"`
	CreatedAt          time.Time           `json:"createdAt"`

	CategoryName  *string `json:"categoryName,omitempty"`
	CategoryType  *string `json:"categoryType,omitempty"`
	CategoryColor *string `json:"categoryColor,omitempty"`
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
}
