package repositories

// RepositoryProvider bundles every repository implementation so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	RateRepo        RateRepositoryFacade
	PreferenceRepo  PreferenceRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	BillRepo        BillRepositoryFacade
	ReportingRepo   ReportingReader
}
