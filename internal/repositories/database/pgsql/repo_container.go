package pgsql

import (
	portsrepo "finance-tracker/internal/core/ports/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:        newPgxRateRepository(dbPool),
		PreferenceRepo:  newPgxPreferenceRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		BillRepo:        newPgxBillRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
