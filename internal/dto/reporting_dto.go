package dto

import (
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"

	"github.com/shopspring/decimal"
)

// LoanSummaryResponse is the reporting view over all loans.
type LoanSummaryResponse struct {
	TotalLoans          int             `json:"totalLoans"`
	PendingLoans        int             `json:"pendingLoans"`
	ApprovedLoans       int             `json:"approvedLoans"`
	RejectedLoans       int             `json:"rejectedLoans"`
	ApprovedAmount      decimal.Decimal `json:"approvedAmount"`
	ApprovalRatePercent decimal.Decimal `json:"approvalRatePercent"`
	RejectionsByStage   map[string]int  `json:"rejectionsByStage"`
}

// ToLoanSummaryResponse converts the domain summary to its API representation.
func ToLoanSummaryResponse(s *domain.LoanSummary) LoanSummaryResponse {
	rejections := make(map[string]int, len(s.RejectionsByStage))
	for stage, count := range s.RejectionsByStage {
		rejections[string(stage)] = count
	}
	return LoanSummaryResponse{
		TotalLoans:          s.TotalLoans,
		PendingLoans:        s.PendingLoans,
		ApprovedLoans:       s.ApprovedLoans,
		RejectedLoans:       s.RejectedLoans,
		ApprovedAmount:      s.ApprovedAmount,
		ApprovalRatePercent: s.ApprovalRatePercent,
		RejectionsByStage:   rejections,
	}
}
