package repositories

// RepositoryProvider bundles all repository implementations for injection into
// the service container.
type RepositoryProvider struct {
	LoanRepo      LoanRepositoryWithTx
	MemberRepo    MemberRepositoryFacade
	UserRepo      UserRepository
	ActivityRepo  ActivityRepository
	ReportingRepo ReportingRepository
}
