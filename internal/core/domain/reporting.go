package domain

import "github.com/shopspring/decimal"

// LoanSummary aggregates the decided loans for reporting. Only terminal loans
// (approved or rejected) contribute to the totals; in-flight loans appear in
// the pending counters.
type LoanSummary struct {
	TotalLoans     int             `json:"totalLoans"`
	PendingLoans   int             `json:"pendingLoans"`
	ApprovedLoans  int             `json:"approvedLoans"`
	RejectedLoans  int             `json:"rejectedLoans"`
	ApprovedAmount decimal.Decimal `json:"approvedAmount"`

	// ApprovalRatePercent is approved / (approved + rejected) * 100, zero when
	// nothing has been decided yet.
	ApprovalRatePercent decimal.Decimal `json:"approvalRatePercent"`

	// RejectionsByStage counts which seat rejected, keyed by stage.
	RejectionsByStage map[ReviewStage]int `json:"rejectionsByStage"`
}
