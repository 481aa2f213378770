package services

import (
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The activity feed comes first since the loan and member services push
	// entries into it.
	container.Activity = NewActivityService(repos.ActivityRepo)

	container.Loan = NewLoanService(repos.LoanRepo, repos.MemberRepo, container.Activity)
	container.Member = NewMemberService(repos.MemberRepo, container.Activity)
	container.User = NewUserService(cfg, repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
