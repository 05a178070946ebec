package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus tracks whether a bill has been settled.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
)

// Bill is a one-off or recurring payable with a due date.
type Bill struct {
	BillID             int64               `json:"id"`
	Name               string              `json:"name"`
	Amount             decimal.Decimal     `json:"amount"`
	Currency           string              `json:"currency"`
	DueDate            time.Time           `json:"dueDate"`
	CategoryID         *int64              `json:"categoryId"`
	IsRecurring        bool                `json:"isRecurring"`
	RecurrenceInterval *RecurrenceInterval `json:"recurrenceInterval"`
	Status             BillStatus          `json:"status"`
	CreatedAt          time.Time           `json:"createdAt"`

	CategoryName  *string `json:"categoryName,omitempty"`
	CategoryColor *string `json:"categoryColor,omitempty"`
}

// BillFilter narrows bill listings.
type BillFilter struct {
	Status *BillStatus
	// Upcoming restricts the listing to pending bills due within the next
	// seven days.
	Upcoming bool
}
