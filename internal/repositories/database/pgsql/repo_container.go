package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LoanRepo:      newPgxLoanRepository(dbPool),
		MemberRepo:    newPgxMemberRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ActivityRepo:  newPgxActivityRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
