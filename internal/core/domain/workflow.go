package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingComment is returned when a reviewer submits a decision without
	// any rationale text.
	ErrMissingComment = errors.New("review comment is required")
	// ErrWrongStage is returned when the acting role does not own the loan's
	// current stage.
	ErrWrongStage = errors.New("loan is not at this reviewer's stage")
	// ErrTerminalState is returned on any attempt to review a loan that has
	// already been approved or rejected.
	ErrTerminalState = errors.New("loan has already been decided")
	// ErrGuarantorCoverage is returned at submission time when the pledged
	// guarantor amounts do not cover the requested principal.
	ErrGuarantorCoverage = errors.New("guarantor pledges do not cover the requested amount")
)

// ReviewDecision is a reviewer's verdict on the stage they own.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "APPROVE"
	DecisionReject  ReviewDecision = "REJECT"
)

// Reviewer identifies the acting office holder. The identity is supplied by
// the caller (auth middleware) and trusted as given.
type Reviewer struct {
	UserID string
	Name   string
	Role   UserRole
}

// Transition computes the loan's next state for one review decision. It is a
// pure computation: the input loan is not mutated and nothing is persisted.
//
// The review is applied to the stage the acting role owns, the reviewer's
// rationale is appended to the comment trail, and a rejection at any stage
// makes the loan immediately terminal. Callers persist the returned loan.
func Transition(loan LoanApplication, reviewer Reviewer, decision ReviewDecision, comment string, now time.Time) (LoanApplication, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return LoanApplication{}, ErrMissingComment
	}

	if loan.IsTerminal() {
		return LoanApplication{}, fmt.Errorf("%w: status is %s", ErrTerminalState, loan.Status())
	}

	stage, _ := loan.CurrentStage()
	if stage.OwnerRole() != reviewer.Role {
		return LoanApplication{}, fmt.Errorf("%w: loan awaits %s, actor is %s", ErrWrongStage, stage.OwnerRole(), reviewer.Role)
	}

	var outcome StageOutcome
	switch decision {
	case DecisionApprove:
		outcome = OutcomeApproved
	case DecisionReject:
		outcome = OutcomeRejected
	default:
		return LoanApplication{}, fmt.Errorf("unknown review decision %q", decision)
	}

	next := loan
	next.Guarantors = append([]Guarantor(nil), loan.Guarantors...)
	next.Comments = append([]LoanComment(nil), loan.Comments...)

	reviewedAt := now
	next.StageReviews.setStage(stage, StageReview{
		Outcome:    outcome,
		Comment:    comment,
		ReviewedBy: reviewer.UserID,
		ReviewedAt: &reviewedAt,
	})

	switch outcome {
	case OutcomeRejected:
		rejectedBy := stage
		decidedAt := now
		next.RejectedByStage = &rejectedBy
		next.DecidedAt = &decidedAt
	case OutcomeApproved:
		if stage == StageChairman {
			decidedAt := now
			next.DecidedAt = &decidedAt
		}
	}

	next.Comments = append(next.Comments, LoanComment{
		CommentID:  uuid.NewString(),
		AuthorID:   reviewer.UserID,
		AuthorName: reviewer.Name,
		AuthorRole: reviewer.Role,
		Text:       comment,
		Timestamp:  now,
	})

	next.LastUpdatedAt = now
	next.LastUpdatedBy = reviewer.UserID

	return next, nil
}

// ReviewAction maps a pending review to the permission-table action that must
// be granted before Transition may run. The treasurer and secretary act under
// the intermediate review_loan grant; the chairman's final verdict requires
// the approve_loan or reject_loan grant.
func ReviewAction(stage ReviewStage, decision ReviewDecision) Action {
	if stage == StageChairman {
		if decision == DecisionReject {
			return ActionRejectLoan
		}
		return ActionApproveLoan
	}
	return ActionReviewLoan
}

// ValidateGuarantorCoverage enforces the submission-time pledge rule: a loan
// above GuarantorThreshold must carry pledges summing to at least the
// principal. Smaller loans need no guarantors.
func ValidateGuarantorCoverage(amount decimal.Decimal, guarantors []Guarantor) error {
	if amount.LessThanOrEqual(GuarantorThreshold) {
		return nil
	}
	pledged := decimal.Zero
	for _, g := range guarantors {
		pledged = pledged.Add(g.PledgedAmount)
	}
	if pledged.LessThan(amount) {
		return fmt.Errorf("%w: pledged %s of %s", ErrGuarantorCoverage, pledged.String(), amount.String())
	}
	return nil
}
