package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the flat view of where a loan sits in the approval chain. It is
// always derived from the per-stage reviews (see LoanApplication.Status); it is
// never stored or mutated on its own.
type LoanStatus string

const (
	StatusTreasurerReview LoanStatus = "TREASURER_REVIEW"
	StatusSecretaryReview LoanStatus = "SECRETARY_REVIEW"
	StatusChairmanReview  LoanStatus = "CHAIRMAN_REVIEW"
	StatusApproved        LoanStatus = "APPROVED"
	StatusRejected        LoanStatus = "REJECTED"
)

// ReviewStage is one of the three sequential reviewer seats a loan must pass.
type ReviewStage string

const (
	StageTreasurer ReviewStage = "TREASURER"
	StageSecretary ReviewStage = "SECRETARY"
	StageChairman  ReviewStage = "CHAIRMAN"
)

// OwnerRole returns the office that owns this review stage.
func (s ReviewStage) OwnerRole() UserRole {
	switch s {
	case StageTreasurer:
		return RoleTreasurer
	case StageSecretary:
		return RoleSecretary
	case StageChairman:
		return RoleChairman
	}
	return ""
}

// StageOutcome records whether a stage has acted on a loan, and how.
type StageOutcome string

const (
	OutcomePending  StageOutcome = "PENDING"
	OutcomeApproved StageOutcome = "APPROVED"
	OutcomeRejected StageOutcome = "REJECTED"
)

// StageReview is the formal record of one stage's decision. A stage decides at
// most once; Outcome stays Pending until then.
type StageReview struct {
	Outcome    StageOutcome `json:"outcome"`
	Comment    string       `json:"comment,omitempty"`
	ReviewedBy string       `json:"reviewedBy,omitempty"` // UserID of the reviewer
	ReviewedAt *time.Time   `json:"reviewedAt,omitempty"`
}

// StageReviews holds the three per-stage records. A struct rather than a map so
// that adding a stage is a visible change everywhere the stages are consumed.
type StageReviews struct {
	Treasurer StageReview `json:"treasurer"`
	Secretary StageReview `json:"secretary"`
	Chairman  StageReview `json:"chairman"`
}

// NewStageReviews returns the initial state: every stage explicitly Pending.
func NewStageReviews() StageReviews {
	return StageReviews{
		Treasurer: StageReview{Outcome: OutcomePending},
		Secretary: StageReview{Outcome: OutcomePending},
		Chairman:  StageReview{Outcome: OutcomePending},
	}
}

// ForStage returns the review record for the given stage.
func (r StageReviews) ForStage(stage ReviewStage) StageReview {
	switch stage {
	case StageTreasurer:
		return r.Treasurer
	case StageSecretary:
		return r.Secretary
	case StageChairman:
		return r.Chairman
	}
	return StageReview{}
}

func (r *StageReviews) setStage(stage ReviewStage, review StageReview) {
	switch stage {
	case StageTreasurer:
		r.Treasurer = review
	case StageSecretary:
		r.Secretary = review
	case StageChairman:
		r.Chairman = review
	}
}

// LoanComment is one entry in a loan's append-only audit trail. The formal
// stage outcome lives in StageReviews; comments keep the full narrative in
// insertion order.
type LoanComment struct {
	CommentID  string    `json:"commentID"`
	AuthorID   string    `json:"authorID"`
	AuthorName string    `json:"authorName"`
	AuthorRole UserRole  `json:"authorRole"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Guarantor is a member pledge backing part of a requested principal.
type Guarantor struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	PledgedAmount decimal.Decimal `json:"pledgedAmount"`
}

// Loan amount policy for the group, in Kenyan shillings.
var (
	MinLoanAmount = decimal.NewFromInt(10_000)
	MaxLoanAmount = decimal.NewFromInt(5_000_000)
	// Loans above this principal must be fully covered by guarantor pledges.
	GuarantorThreshold = decimal.NewFromInt(100_000)
)

// AnnualInterestRatePercent is the group's flat lending rate.
var AnnualInterestRatePercent = decimal.NewFromInt(12)

// LoanApplication is a member's loan request moving through the sequential
// treasurer -> secretary -> chairman approval chain. The loan terms and the
// applicant snapshot are fixed at submission; only the review state and the
// comment trail change afterwards, and only through Transition.
type LoanApplication struct {
	LoanID     string `json:"loanID"`     // Primary key (UUID)
	LoanNumber string `json:"loanNumber"` // Human-facing number, e.g. LN2026042

	// Applicant snapshot, immutable after submission.
	MemberID      string          `json:"memberID"`
	MemberName    string          `json:"memberName"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`

	// Loan terms, immutable after submission.
	Amount             decimal.Decimal `json:"amount"`
	Purpose            string          `json:"purpose"`
	TermMonths         int             `json:"termMonths"`
	InterestRate       decimal.Decimal `json:"interestRate"` // percent per annum
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	Guarantors         []Guarantor     `json:"guarantors,omitempty"`
	Collateral         string          `json:"collateral,omitempty"`
	AppliedAt          time.Time       `json:"appliedAt"`

	// Review state. StageReviews is the single authoritative record; the flat
	// status is derived from it.
	StageReviews    StageReviews  `json:"stageReviews"`
	RejectedByStage *ReviewStage  `json:"rejectedByStage,omitempty"`
	DecidedAt       *time.Time    `json:"decidedAt,omitempty"`
	Comments        []LoanComment `json:"comments"`

	AuditFields
}

// Status derives the flat view of the loan's position from the stage records.
func (l *LoanApplication) Status() LoanStatus {
	if l.RejectedByStage != nil ||
		l.StageReviews.Treasurer.Outcome == OutcomeRejected ||
		l.StageReviews.Secretary.Outcome == OutcomeRejected ||
		l.StageReviews.Chairman.Outcome == OutcomeRejected {
		return StatusRejected
	}
	switch {
	case l.StageReviews.Treasurer.Outcome == OutcomePending:
		return StatusTreasurerReview
	case l.StageReviews.Secretary.Outcome == OutcomePending:
		return StatusSecretaryReview
	case l.StageReviews.Chairman.Outcome == OutcomePending:
		return StatusChairmanReview
	}
	return StatusApproved
}

// CurrentStage returns the stage whose turn it is. ok is false once the loan
// is terminal.
func (l *LoanApplication) CurrentStage() (stage ReviewStage, ok bool) {
	switch l.Status() {
	case StatusTreasurerReview:
		return StageTreasurer, true
	case StatusSecretaryReview:
		return StageSecretary, true
	case StatusChairmanReview:
		return StageChairman, true
	}
	return "", false
}

// IsTerminal reports whether the loan has been finally approved or rejected.
func (l *LoanApplication) IsTerminal() bool {
	status := l.Status()
	return status == StatusApproved || status == StatusRejected
}
