package repositories

import (
	"context"

	"finance-tracker/internal/core/domain"
)

// BillReader defines read operations for bills.
type BillReader interface {
	FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error)
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)
}

// BillWriter defines write operations for bills.
type BillWriter interface {
	CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error)
	UpdateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error)
	UpdateBillStatus(ctx context.Context, billID int64, status domain.BillStatus) (*domain.Bill, error)
	DeleteBill(ctx context.Context, billID int64) error
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
