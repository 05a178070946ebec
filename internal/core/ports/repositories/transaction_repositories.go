package repositories

import (
	"context"

	"finance-tracker/internal/core/domain"
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
