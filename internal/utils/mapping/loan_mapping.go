package mapping

import (
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/models"
)

// ToModelLoan flattens a domain loan into its row representation. Guarantors
// and comments map to their own tables via ToModelGuarantors/ToModelComment.
func ToModelLoan(d domain.LoanApplication) models.Loan {
	var rejectedBy *string
	if d.RejectedByStage != nil {
		s := string(*d.RejectedByStage)
		rejectedBy = &s
	}
	return models.Loan{
		LoanID:             d.LoanID,
		LoanNumber:         d.LoanNumber,
		MemberID:           d.MemberID,
		MemberName:         d.MemberName,
		MonthlyIncome:      d.MonthlyIncome,
		Amount:             d.Amount,
		Purpose:            d.Purpose,
		TermMonths:         d.TermMonths,
		InterestRate:       d.InterestRate,
		MonthlyInstallment: d.MonthlyInstallment,
		Collateral:         d.Collateral,
		AppliedAt:          d.AppliedAt,

		TreasurerOutcome:    string(d.StageReviews.Treasurer.Outcome),
		TreasurerComment:    d.StageReviews.Treasurer.Comment,
		TreasurerReviewedBy: d.StageReviews.Treasurer.ReviewedBy,
		TreasurerReviewedAt: d.StageReviews.Treasurer.ReviewedAt,

		SecretaryOutcome:    string(d.StageReviews.Secretary.Outcome),
		SecretaryComment:    d.StageReviews.Secretary.Comment,
		SecretaryReviewedBy: d.StageReviews.Secretary.ReviewedBy,
		SecretaryReviewedAt: d.StageReviews.Secretary.ReviewedAt,

		ChairmanOutcome:    string(d.StageReviews.Chairman.Outcome),
		ChairmanComment:    d.StageReviews.Chairman.Comment,
		ChairmanReviewedBy: d.StageReviews.Chairman.ReviewedBy,
		ChairmanReviewedAt: d.StageReviews.Chairman.ReviewedAt,

		RejectedByStage: rejectedBy,
		DecidedAt:       d.DecidedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan reassembles a domain loan from its row, its guarantor rows and
// its comment rows (comments already in insertion order).
func ToDomainLoan(m models.Loan, guarantors []models.LoanGuarantor, comments []models.LoanComment) domain.LoanApplication {
	var rejectedBy *domain.ReviewStage
	if m.RejectedByStage != nil {
		s := domain.ReviewStage(*m.RejectedByStage)
		rejectedBy = &s
	}

	domainGuarantors := make([]domain.Guarantor, len(guarantors))
	for i, g := range guarantors {
		domainGuarantors[i] = domain.Guarantor{
			Name:          g.Name,
			Phone:         g.Phone,
			PledgedAmount: g.PledgedAmount,
		}
	}

	domainComments := make([]domain.LoanComment, len(comments))
	for i, c := range comments {
		domainComments[i] = domain.LoanComment{
			CommentID:  c.CommentID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			AuthorRole: domain.UserRole(c.AuthorRole),
			Text:       c.Text,
			Timestamp:  c.Timestamp,
		}
	}

	return domain.LoanApplication{
		LoanID:             m.LoanID,
		LoanNumber:         m.LoanNumber,
		MemberID:           m.MemberID,
		MemberName:         m.MemberName,
		MonthlyIncome:      m.MonthlyIncome,
		Amount:             m.Amount,
		Purpose:            m.Purpose,
		TermMonths:         m.TermMonths,
		InterestRate:       m.InterestRate,
		MonthlyInstallment: m.MonthlyInstallment,
		Guarantors:         domainGuarantors,
		Collateral:         m.Collateral,
		AppliedAt:          m.AppliedAt,

		StageReviews: domain.StageReviews{
			Treasurer: domain.StageReview{
				Outcome:    domain.StageOutcome(m.TreasurerOutcome),
				Comment:    m.TreasurerComment,
				ReviewedBy: m.TreasurerReviewedBy,
				ReviewedAt: m.TreasurerReviewedAt,
			},
			Secretary: domain.StageReview{
				Outcome:    domain.StageOutcome(m.SecretaryOutcome),
				Comment:    m.SecretaryComment,
				ReviewedBy: m.SecretaryReviewedBy,
				ReviewedAt: m.SecretaryReviewedAt,
			},
			Chairman: domain.StageReview{
				Outcome:    domain.StageOutcome(m.ChairmanOutcome),
				Comment:    m.ChairmanComment,
				ReviewedBy: m.ChairmanReviewedBy,
				ReviewedAt: m.ChairmanReviewedAt,
			},
		},
		RejectedByStage: rejectedBy,
		DecidedAt:       m.DecidedAt,
		Comments:        domainComments,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelGuarantors converts a loan's pledges to rows, preserving order.
func ToModelGuarantors(loanID string, guarantors []domain.Guarantor) []models.LoanGuarantor {
	rows := make([]models.LoanGuarantor, len(guarantors))
	for i, g := range guarantors {
		rows[i] = models.LoanGuarantor{
			LoanID:        loanID,
			Position:      i,
			Name:          g.Name,
			Phone:         g.Phone,
			PledgedAmount: g.PledgedAmount,
		}
	}
	return rows
}

// ToModelComment converts one trail comment to its row.
func ToModelComment(loanID string, c domain.LoanComment) models.LoanComment {
	return models.LoanComment{
		CommentID:  c.CommentID,
		LoanID:     loanID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		AuthorRole: string(c.AuthorRole),
		Text:       c.Text,
		Timestamp:  c.Timestamp,
	}
}
