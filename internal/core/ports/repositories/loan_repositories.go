package repositories

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// LoanReader defines read operations for loan application data.
type LoanReader interface {
	// FindLoanByID retrieves a loan, its guarantors and its full comment trail.
	FindLoanByID(ctx context.Context, loanID string) (*domain.LoanApplication, error)

	// ListLoans retrieves a paginated list of loans, optionally filtered by the
	// derived status, newest applications first. It returns the loans, a token
	// for the next page, and an error.
	ListLoans(ctx context.Context, status *domain.LoanStatus, limit int, nextToken *string) ([]domain.LoanApplication, *string, error)

	// CountLoansAppliedInYear returns how many loans were submitted in the
	// given calendar year; used to derive the next loan number.
	CountLoansAppliedInYear(ctx context.Context, year int) (int, error)
}

// LoanWriter defines write operations for loan application data.
type LoanWriter interface {
	// SaveLoan persists a newly submitted loan with its guarantors.
	SaveLoan(ctx context.Context, loan domain.LoanApplication) error

	// SaveReview persists the outcome of one review transition: the updated
	// stage records and terminal fields, plus the single new trail comment,
	// atomically.
	SaveReview(ctx context.Context, loan domain.LoanApplication, newComment domain.LoanComment) error
}

// LoanRepositoryFacade combines all loan repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}

// LoanRepositoryWithTx extends LoanRepositoryFacade with transaction capabilities.
type LoanRepositoryWithTx interface {
	LoanRepositoryFacade
	TransactionManager
}
