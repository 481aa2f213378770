package dto

import (
	"time"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"

	"github.com/shopspring/decimal"
)

// GuarantorRequest is one pledge attached to a loan submission.
type GuarantorRequest struct {
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone" binding:"required,len=10,numeric"`
	PledgedAmount decimal.Decimal `json:"pledgedAmount" binding:"required"`
}

// SubmitLoanRequest is the intake payload for a new loan application. The
// applicant is identified by their member number; the snapshot fields are
// filled from the member record server-side.
type SubmitLoanRequest struct {
	MemberNumber  string             `json:"memberNumber" binding:"required"`
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
	Purpose       string             `json:"purpose" binding:"required"`
	TermMonths    int                `json:"termMonths" binding:"required,gt=0,lte=60"`
	MonthlyIncome decimal.Decimal    `json:"monthlyIncome" binding:"required"`
	Guarantors    []GuarantorRequest `json:"guarantors,omitempty" binding:"omitempty,dive"`
	Collateral    string             `json:"collateral,omitempty"`
}

// ReviewLoanRequest carries one reviewer's verdict on the stage they own.
type ReviewLoanRequest struct {
	Decision domain.ReviewDecision `json:"decision" binding:"required,oneof=APPROVE REJECT"`
	Comment  string                `json:"comment" binding:"required"`
}

// StageReviewResponse is the per-stage slice of a loan's review state.
type StageReviewResponse struct {
	Outcome    domain.StageOutcome `json:"outcome"`
	Comment    string              `json:"comment,omitempty"`
	ReviewedBy string              `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time          `json:"reviewedAt,omitempty"`
}

// LoanCommentResponse is one entry of the loan's audit trail.
type LoanCommentResponse struct {
	CommentID  string          `json:"commentID"`
	AuthorID   string          `json:"authorID"`
	AuthorName string          `json:"authorName"`
	AuthorRole domain.UserRole `json:"authorRole"`
	Text       string          `json:"text"`
	Timestamp  time.Time       `json:"timestamp"`
}

// GuarantorResponse is one pledge on a loan.
type GuarantorResponse struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	PledgedAmount decimal.Decimal `json:"pledgedAmount"`
}

// LoanResponse is the full representation of a loan application, including the
// derived status, the stage records and the comment timeline.
type LoanResponse struct {
	LoanID             string              `json:"loanID"`
	LoanNumber         string              `json:"loanNumber"`
	MemberID           string              `json:"memberID"`
	MemberName         string              `json:"memberName"`
	MonthlyIncome      decimal.Decimal     `json:"monthlyIncome"`
	Amount             decimal.Decimal     `json:"amount"`
	Purpose            string              `json:"purpose"`
	TermMonths         int                 `json:"termMonths"`
	InterestRate       decimal.Decimal     `json:"interestRate"`
	MonthlyInstallment decimal.Decimal     `json:"monthlyInstallment"`
	Guarantors         []GuarantorResponse `json:"guarantors,omitempty"`
	Collateral         string              `json:"collateral,omitempty"`
	AppliedAt          time.Time           `json:"appliedAt"`

	Status          domain.LoanStatus   `json:"status"`
	TreasurerReview StageReviewResponse `json:"treasurerReview"`
	SecretaryReview StageReviewResponse `json:"secretaryReview"`
	ChairmanReview  StageReviewResponse `json:"chairmanReview"`
	RejectedByStage *domain.ReviewStage `json:"rejectedByStage,omitempty"`
	DecidedAt       *time.Time          `json:"decidedAt,omitempty"`

	Comments []LoanCommentResponse `json:"comments"`
}

// ListLoansParams filters and pages the loan listing.
type ListLoansParams struct {
	Status    *domain.LoanStatus `form:"status" binding:"omitempty,oneof=TREASURER_REVIEW SECRETARY_REVIEW CHAIRMAN_REVIEW APPROVED REJECTED"`
	Limit     int                `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	NextToken *string            `form:"nextToken"`
}

// ListLoansResponse pages through loans.
type ListLoansResponse struct {
	Loans     []LoanResponse `json:"loans"`
	NextToken *string        `json:"nextToken,omitempty"`
}

func toStageReviewResponse(r domain.StageReview) StageReviewResponse {
	return StageReviewResponse{
		Outcome:    r.Outcome,
		Comment:    r.Comment,
		ReviewedBy: r.ReviewedBy,
		ReviewedAt: r.ReviewedAt,
	}
}

// ToLoanResponse converts a domain loan to its API representation.
func ToLoanResponse(l *domain.LoanApplication) LoanResponse {
	guarantors := make([]GuarantorResponse, len(l.Guarantors))
	for i, g := range l.Guarantors {
		guarantors[i] = GuarantorResponse{Name: g.Name, Phone: g.Phone, PledgedAmount: g.PledgedAmount}
	}
	comments := make([]LoanCommentResponse, len(l.Comments))
	for i, c := range l.Comments {
		comments[i] = LoanCommentResponse{
			CommentID:  c.CommentID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			AuthorRole: c.AuthorRole,
			Text:       c.Text,
			Timestamp:  c.Timestamp,
		}
	}
	return LoanResponse{
		LoanID:             l.LoanID,
		LoanNumber:         l.LoanNumber,
		MemberID:           l.MemberID,
		MemberName:         l.MemberName,
		MonthlyIncome:      l.MonthlyIncome,
		Amount:             l.Amount,
		Purpose:            l.Purpose,
		TermMonths:         l.TermMonths,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyInstallment,
		Guarantors:         guarantors,
		Collateral:         l.Collateral,
		AppliedAt:          l.AppliedAt,
		Status:             l.Status(),
		TreasurerReview:    toStageReviewResponse(l.StageReviews.Treasurer),
		SecretaryReview:    toStageReviewResponse(l.StageReviews.Secretary),
		ChairmanReview:     toStageReviewResponse(l.StageReviews.Chairman),
		RejectedByStage:    l.RejectedByStage,
		DecidedAt:          l.DecidedAt,
		Comments:           comments,
	}
}

// ToLoanResponses converts a slice of domain loans.
func ToLoanResponses(loans []domain.LoanApplication) []LoanResponse {
	responses := make([]LoanResponse, len(loans))
	for i := range loans {
		responses[i] = ToLoanResponse(&loans[i])
	}
	return responses
}
