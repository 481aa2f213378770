package services

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// ReportingSvcFacade defines the reporting operations.
type ReportingSvcFacade interface {
	// GetLoanSummary aggregates decided and in-flight loans. Gated on the
	// view_reports permission.
	GetLoanSummary(ctx context.Context, actor domain.Reviewer) (*domain.LoanSummary, error)
}
