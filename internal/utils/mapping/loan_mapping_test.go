package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/models"
	"github.com/stgabriel-shg/shg_backend/internal/utils/mapping"
)

// The loan row flattens stage reviews into columns and stores the rejecting
// stage as a nullable string, so the conversions here are the ones worth
// pinning down: a reassembled loan must derive the same status as the
// original, and the rejection pointer must survive both directions.
func TestLoanRoundTripPreservesDerivedStatus(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	rejectedBy := domain.StageSecretary

	loan := domain.LoanApplication{
		LoanID:             "loan-1",
		LoanNumber:         "LN2026007",
		MemberID:           "member-1",
		MemberName:         "Wanjiru Kamau",
		MonthlyIncome:      decimal.NewFromInt(30_000),
		Amount:             decimal.NewFromInt(150_000),
		Purpose:            "Poultry expansion",
		TermMonths:         12,
		InterestRate:       domain.AnnualInterestRatePercent,
		MonthlyInstallment: decimal.NewFromInt(13327),
		Guarantors: []domain.Guarantor{
			{Name: "Otieno Odhiambo", Phone: "+254700000001", PledgedAmount: decimal.NewFromInt(100_000)},
			{Name: "Achieng Akinyi", Phone: "+254700000002", PledgedAmount: decimal.NewFromInt(50_000)},
		},
		AppliedAt: now,
		StageReviews: domain.StageReviews{
			Treasurer: domain.StageReview{Outcome: domain.OutcomeApproved, Comment: "Savings cover it", ReviewedBy: "user-t", ReviewedAt: &now},
			Secretary: domain.StageReview{Outcome: domain.OutcomeRejected, Comment: "Arrears on record", ReviewedBy: "user-s", ReviewedAt: &now},
			Chairman:  domain.StageReview{Outcome: domain.OutcomePending},
		},
		RejectedByStage: &rejectedBy,
		DecidedAt:       &now,
		Comments: []domain.LoanComment{
			{CommentID: "c1", AuthorID: "user-t", AuthorName: "Otieno Odhiambo", AuthorRole: domain.RoleTreasurer, Text: "Savings cover it", Timestamp: now},
			{CommentID: "c2", AuthorID: "user-s", AuthorName: "Achieng Akinyi", AuthorRole: domain.RoleSecretary, Text: "Arrears on record", Timestamp: now},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "member-1", LastUpdatedAt: now, LastUpdatedBy: "user-s"},
	}
	require.Equal(t, domain.StatusRejected, loan.Status())

	row := mapping.ToModelLoan(loan)
	guarantorRows := mapping.ToModelGuarantors(loan.LoanID, loan.Guarantors)
	commentRows := make([]models.LoanComment, len(loan.Comments))
	for i, c := range loan.Comments {
		commentRows[i] = mapping.ToModelComment(loan.LoanID, c)
	}

	assert.Equal(t, "SECRETARY", *row.RejectedByStage)
	assert.Equal(t, "REJECTED", row.SecretaryOutcome)
	require.Len(t, guarantorRows, 2)
	assert.Equal(t, 0, guarantorRows[0].Position)
	assert.Equal(t, 1, guarantorRows[1].Position)

	back := mapping.ToDomainLoan(row, guarantorRows, commentRows)
	assert.Equal(t, loan, back)
	assert.Equal(t, domain.StatusRejected, back.Status())
}

// A fresh application has every stage Pending and no rejection marker; the
// nullable column must come back nil, not empty string.
func TestLoanRoundTripPendingApplication(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	loan := domain.LoanApplication{
		LoanID:             "loan-2",
		LoanNumber:         "LN2026008",
		MemberID:           "member-2",
		MemberName:         "Mwangi Njoroge",
		MonthlyIncome:      decimal.NewFromInt(45_000),
		Amount:             decimal.NewFromInt(50_000),
		Purpose:            "School fees",
		TermMonths:         6,
		InterestRate:       domain.AnnualInterestRatePercent,
		MonthlyInstallment: decimal.NewFromInt(8627),
		Guarantors:         []domain.Guarantor{},
		AppliedAt:          now,
		StageReviews:       domain.NewStageReviews(),
		Comments:           []domain.LoanComment{},
		AuditFields:        domain.AuditFields{CreatedAt: now, CreatedBy: "member-2", LastUpdatedAt: now, LastUpdatedBy: "member-2"},
	}

	row := mapping.ToModelLoan(loan)
	assert.Nil(t, row.RejectedByStage)
	assert.Equal(t, "PENDING", row.TreasurerOutcome)

	back := mapping.ToDomainLoan(row, nil, nil)
	assert.Equal(t, loan, back)
	assert.Equal(t, domain.StatusTreasurerReview, back.Status())
}
