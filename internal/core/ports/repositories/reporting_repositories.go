package repositories

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// ReportingRepository defines read-only aggregation queries over loan data.
type ReportingRepository interface {
	// GetLoanSummary aggregates loan counts, approved amounts and per-stage
	// rejection counts across all loans.
	GetLoanSummary(ctx context.Context) (*domain.LoanSummary, error)
}
