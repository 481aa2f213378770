package services

import (
	"context"
	"fmt"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetLoanSummary aggregates decided and in-flight loans for the group's
// reports. Every office holds the view_reports grant today, but the gate stays
// so the table remains the single place permissions change.
func (s *reportingService) GetLoanSummary(ctx context.Context, actor domain.Reviewer) (*domain.LoanSummary, error) {
	if err := s.Authorize(ctx, actor, domain.ActionViewReports); err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.GetLoanSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate loan summary")
		return nil, fmt.Errorf("failed to aggregate loan summary: %w", err)
	}
	return summary, nil
}
