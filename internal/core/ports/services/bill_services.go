package services

import (
	"context"

	"finance-tracker/internal/core/domain"
	"finance-tracker/internal/dto"
)

// BillReaderSvc defines read operations for bill data.
type BillReaderSvc interface {
	GetBillByID(ctx context.Context, billID int64) (*domain.Bill, error)
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)
}

// BillWriterSvc defines write operations for bill data.
type BillWriterSvc interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error)
	UpdateBill(ctx context.Context, billID int64, req dto.UpdateBillRequest) (*domain.Bill, error)
	UpdateBillStatus(ctx context.Context, billID int64, status domain.BillStatus) (*domain.Bill, error)
	DeleteBill(ctx context.Context, billID int64) error
}

// BillSvcFacade combines all bill-related service interfaces.
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
