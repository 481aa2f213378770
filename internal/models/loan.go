package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the loans table row. The three review stages are flattened into
// columns; the flat status is never stored, it is derived from these columns
// both in SQL and in the domain.
type Loan struct {
	LoanID             string          `db:"loan_id"`
	LoanNumber         string          `db:"loan_number"`
	MemberID           string          `db:"member_id"`
	MemberName         string          `db:"member_name"`
	MonthlyIncome      decimal.Decimal `db:"monthly_income"`
	Amount             decimal.Decimal `db:"amount"`
	Purpose            string          `db:"purpose"`
	TermMonths         int             `db:"term_months"`
	InterestRate       decimal.Decimal `db:"interest_rate"`
	MonthlyInstallment decimal.Decimal `db:"monthly_installment"`
	Collateral         string          `db:"collateral"`
	AppliedAt          time.Time       `db:"applied_at"`

	TreasurerOutcome    string     `db:"treasurer_outcome"`
	TreasurerComment    string     `db:"treasurer_comment"`
	TreasurerReviewedBy string     `db:"treasurer_reviewed_by"`
	TreasurerReviewedAt *time.Time `db:"treasurer_reviewed_at"`

	SecretaryOutcome    string     `db:"secretary_outcome"`
	SecretaryComment    string     `db:"secretary_comment"`
	SecretaryReviewedBy string     `db:"secretary_reviewed_by"`
	SecretaryReviewedAt *time.Time `db:"secretary_reviewed_at"`

	ChairmanOutcome    string     `db:"chairman_outcome"`
	ChairmanComment    string     `db:"chairman_comment"`
	ChairmanReviewedBy string     `db:"chairman_reviewed_by"`
	ChairmanReviewedAt *time.Time `db:"chairman_reviewed_at"`

	RejectedByStage *string    `db:"rejected_by_stage"`
	DecidedAt       *time.Time `db:"decided_at"`

	AuditFields
}

// LoanGuarantor is the loan_guarantors table row. Position preserves the
// order pledges were listed at intake.
type LoanGuarantor struct {
	LoanID        string          `db:"loan_id"`
	Position      int             `db:"position"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	PledgedAmount decimal.Decimal `db:"pledged_amount"`
}

// LoanComment is the loan_comments table row. Rows are append-only.
type LoanComment struct {
	CommentID  string    `db:"comment_id"`
	LoanID     string    `db:"loan_id"`
	AuthorID   string    `db:"author_id"`
	AuthorName string    `db:"author_name"`
	AuthorRole string    `db:"author_role"`
	Text       string    `db:"text"`
	Timestamp  time.Time `db:"timestamp"`
}
