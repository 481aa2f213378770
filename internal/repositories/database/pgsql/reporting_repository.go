package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
)

type ReportingRepository struct {
	db *pgxpool.Pool
}

// newReportingRepository creates a new repository for aggregate loan queries.
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{db: db}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetLoanSummary aggregates loan counts and amounts over the derived status,
// plus per-stage rejection counts.
func (r *ReportingRepository) GetLoanSummary(ctx context.Context) (*domain.LoanSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total_loans,
			COUNT(*) FILTER (WHERE status IN ('TREASURER_REVIEW', 'SECRETARY_REVIEW', 'CHAIRMAN_REVIEW')) AS pending_loans,
			COUNT(*) FILTER (WHERE status = 'APPROVED') AS approved_loans,
			COUNT(*) FILTER (WHERE status = 'REJECTED') AS rejected_loans,
			COALESCE(SUM(amount) FILTER (WHERE status = 'APPROVED'), 0) AS approved_amount
		FROM (SELECT amount, ` + derivedStatusSQL + ` AS status FROM loans) derived;
	`

	summary := &domain.LoanSummary{
		RejectionsByStage: map[domain.ReviewStage]int{},
	}
	err := r.db.QueryRow(ctx, query).Scan(
		&summary.TotalLoans,
		&summary.PendingLoans,
		&summary.ApprovedLoans,
		&summary.RejectedLoans,
		&summary.ApprovedAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate loan summary: %w", err)
	}

	decided := summary.ApprovedLoans + summary.RejectedLoans
	if decided > 0 {
		summary.ApprovalRatePercent = decimal.NewFromInt(int64(summary.ApprovedLoans)).
			Div(decimal.NewFromInt(int64(decided))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	} else {
		summary.ApprovalRatePercent = decimal.Zero
	}

	rejectionQuery := `
		SELECT rejected_by_stage, COUNT(*)
		FROM loans
		WHERE rejected_by_stage IS NOT NULL
		GROUP BY rejected_by_stage;
	`
	rows, err := r.db.Query(ctx, rejectionQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rejections by stage: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stage string
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rejection row: %w", err)
		}
		summary.RejectionsByStage[domain.ReviewStage(stage)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rejection rows: %w", err)
	}

	return summary, nil
}
