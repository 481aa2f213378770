package services

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
)

// LoanReaderSvc defines read operations for loan applications.
type LoanReaderSvc interface {
	// GetLoanByID retrieves a loan with its full review timeline.
	GetLoanByID(ctx context.Context, loanID string) (*domain.LoanApplication, error)

	// ListLoans retrieves a paginated loan listing, optionally filtered by
	// derived status.
	ListLoans(ctx context.Context, params dto.ListLoansParams) (*dto.ListLoansResponse, error)
}

// LoanWriterSvc defines operations that move loans through their lifecycle.
type LoanWriterSvc interface {
	// SubmitLoan validates and persists a new application. The loan enters the
	// workflow at the treasurer's stage with every stage explicitly pending.
	SubmitLoan(ctx context.Context, req dto.SubmitLoanRequest) (*domain.LoanApplication, error)

	// ReviewLoan applies one reviewer's decision to the stage they own and
	// persists the result. The permission table is consulted before the state
	// machine runs.
	ReviewLoan(ctx context.Context, loanID string, reviewer domain.Reviewer, req dto.ReviewLoanRequest) (*domain.LoanApplication, error)
}

// LoanSvcFacade combines all loan service interfaces.
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
