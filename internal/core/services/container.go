package services

import (
	"log/slog"

	"finance-tracker/internal/core/ports"
	portsrepo "finance-tracker/internal/core/ports/repositories"
	portssvc "finance-tracker/internal/core/ports/services"
)

// NewServiceContainer wires every service from the repository provider and
// the external rate source.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, source ports.RateSourceClient, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Rate:        NewRateService(repos.RateRepo, source, logger),
		Preference:  NewPreferenceService(repos.PreferenceRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.CategoryRepo),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.CategoryRepo),
		Bill:        NewBillService(repos.BillRepo, repos.CategoryRepo),
		Reporting:   NewReportingService(repos.ReportingRepo, repos.TransactionRepo),
	}
}
