package domain_test

import (
	"testing"
	"time"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	treasurer = domain.Reviewer{UserID: "u-treasurer", Name: "Michael Ochieng", Role: domain.RoleTreasurer}
	secretary = domain.Reviewer{UserID: "u-secretary", Name: "Sarah Njeri", Role: domain.RoleSecretary}
	chairman  = domain.Reviewer{UserID: "u-chairman", Name: "John Kamau", Role: domain.RoleChairman}
)

func newTestLoan() domain.LoanApplication {
	return domain.LoanApplication{
		LoanID:             "loan-1",
		LoanNumber:         "LN2026001",
		MemberID:           "member-1",
		MemberName:         "Grace Wanjiru",
		MonthlyIncome:      decimal.NewFromInt(45_000),
		Amount:             decimal.NewFromInt(50_000),
		Purpose:            "Business expansion",
		TermMonths:         12,
		InterestRate:       decimal.NewFromInt(12),
		MonthlyInstallment: decimal.NewFromInt(4443),
		AppliedAt:          time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		StageReviews:       domain.NewStageReviews(),
	}
}

func TestLoanStatus_Derivation(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		mutate func(*domain.LoanApplication)
		want   domain.LoanStatus
	}{
		{
			name:   "fresh loan awaits treasurer",
			mutate: func(l *domain.LoanApplication) {},
			want:   domain.StatusTreasurerReview,
		},
		{
			name: "treasurer approved moves to secretary",
			mutate: func(l *domain.LoanApplication) {
				l.StageReviews.Treasurer = domain.StageReview{Outcome: domain.OutcomeApproved, ReviewedAt: &now}
			},
			want: domain.StatusSecretaryReview,
		},
		{
			name: "secretary approved moves to chairman",
			mutate: func(l *domain.LoanApplication) {
				l.StageReviews.Treasurer = domain.StageReview{Outcome: domain.OutcomeApproved, ReviewedAt: &now}
				l.StageReviews.Secretary = domain.StageReview{Outcome: domain.OutcomeApproved, ReviewedAt: &now}
			},
			want: domain.StatusChairmanReview,
		},
		{
			name: "all stages approved is terminal approved",
			mutate: func(l *domain.LoanApplication) {
				l.StageReviews.Treasurer = domain.StageReview{Outcome: domain.OutcomeApproved, ReviewedAt: &now}
				l.StageReviews.Secretary = domain.StageReview{Outcome: domain.OutcomeApproved, ReviewedAt: &now}
				l.StageReviews.Chairman = domain.StageReview{Outcome: domain.OutcomeApproved, ReviewedAt: &now}
			},
			want: domain.StatusApproved,
		},
		{
			name: "any rejection is terminal rejected",
			mutate: func(l *domain.LoanApplication) {
				stage := domain.StageTreasurer
				l.StageReviews.Treasurer = domain.StageReview{Outcome: domain.OutcomeRejected, ReviewedAt: &now}
				l.RejectedByStage = &stage
			},
			want: domain.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := newTestLoan()
			tt.mutate(&loan)
			assert.Equal(t, tt.want, loan.Status())
		})
	}
}

func TestTransition_TreasurerApprovesForwardsToSecretary(t *testing.T) {
	loan := newTestLoan()
	now := time.Now().UTC()

	next, err := domain.Transition(loan, treasurer, domain.DecisionApprove, "ok", now)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSecretaryReview, next.Status())
	assert.Equal(t, domain.OutcomeApproved, next.StageReviews.Treasurer.Outcome)
	assert.Equal(t, "ok", next.StageReviews.Treasurer.Comment)
	assert.Equal(t, treasurer.UserID, next.StageReviews.Treasurer.ReviewedBy)
	assert.Equal(t, domain.OutcomePending, next.StageReviews.Secretary.Outcome)
	assert.Equal(t, domain.OutcomePending, next.StageReviews.Chairman.Outcome)
	assert.Nil(t, next.DecidedAt)

	require.Len(t, next.Comments, 1)
	assert.Equal(t, treasurer.UserID, next.Comments[0].AuthorID)
	assert.Equal(t, domain.RoleTreasurer, next.Comments[0].AuthorRole)
	assert.Equal(t, "ok", next.Comments[0].Text)
	assert.Equal(t, now, next.Comments[0].Timestamp)

	// The input loan is untouched.
	assert.Equal(t, domain.StatusTreasurerReview, loan.Status())
	assert.Empty(t, loan.Comments)
}

func TestTransition_SecretaryRejectionShortCircuits(t *testing.T) {
	loan := newTestLoan()
	now := time.Now().UTC()

	afterTreasurer, err := domain.Transition(loan, treasurer, domain.DecisionApprove, "financials verified", now)
	require.NoError(t, err)

	rejected, err := domain.Transition(afterTreasurer, secretary, domain.DecisionReject, "insufficient income", now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, rejected.Status())
	require.NotNil(t, rejected.RejectedByStage)
	assert.Equal(t, domain.StageSecretary, *rejected.RejectedByStage)
	require.NotNil(t, rejected.DecidedAt)

	// Stages after the rejecting stage never advance.
	assert.Equal(t, domain.OutcomeRejected, rejected.StageReviews.Secretary.Outcome)
	assert.Equal(t, domain.OutcomePending, rejected.StageReviews.Chairman.Outcome)
	assert.Len(t, rejected.Comments, 2)
}

func TestTransition_WrongStageLeavesLoanUnchanged(t *testing.T) {
	loan := newTestLoan()

	_, err := domain.Transition(loan, chairman, domain.DecisionApprove, "looks fine", time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrWrongStage)

	assert.Equal(t, domain.StatusTreasurerReview, loan.Status())
	assert.Empty(t, loan.Comments)
}

func TestTransition_MissingCommentRejected(t *testing.T) {
	loan := newTestLoan()

	for _, comment := range []string{"", "   ", "\n\t"} {
		_, err := domain.Transition(loan, treasurer, domain.DecisionApprove, comment, time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrMissingComment)
	}
	assert.Equal(t, domain.StatusTreasurerReview, loan.Status())
}

func TestTransition_ChairmanApprovalIsFinal(t *testing.T) {
	loan := newTestLoan()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	var err error
	loan, err = domain.Transition(loan, treasurer, domain.DecisionApprove, "income sufficient", base)
	require.NoError(t, err)
	loan, err = domain.Transition(loan, secretary, domain.DecisionApprove, "records in order", base.Add(time.Hour))
	require.NoError(t, err)

	decidedAt := base.Add(2 * time.Hour)
	loan, err = domain.Transition(loan, chairman, domain.DecisionApprove, "approved for disbursement", decidedAt)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, loan.Status())
	assert.True(t, loan.IsTerminal())
	require.NotNil(t, loan.DecidedAt)
	assert.Equal(t, decidedAt, *loan.DecidedAt)
	assert.Nil(t, loan.RejectedByStage)
	assert.Len(t, loan.Comments, 3)

	// Comments stay in insertion order.
	assert.Equal(t, domain.RoleTreasurer, loan.Comments[0].AuthorRole)
	assert.Equal(t, domain.RoleSecretary, loan.Comments[1].AuthorRole)
	assert.Equal(t, domain.RoleChairman, loan.Comments[2].AuthorRole)
}

func TestTransition_TerminalLoanAcceptsNoFurtherReviews(t *testing.T) {
	loan := newTestLoan()
	now := time.Now().UTC()

	rejected, err := domain.Transition(loan, treasurer, domain.DecisionReject, "income insufficient", now)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, rejected.Status())

	before := rejected

	for _, reviewer := range []domain.Reviewer{treasurer, secretary, chairman} {
		for _, decision := range []domain.ReviewDecision{domain.DecisionApprove, domain.DecisionReject} {
			_, err := domain.Transition(rejected, reviewer, decision, "retry", now.Add(time.Minute))
			assert.ErrorIs(t, err, domain.ErrTerminalState)
		}
	}

	// Rejecting an already rejected loan changed nothing.
	assert.Equal(t, before, rejected)
}

func TestTransition_EachSuccessAppendsExactlyOneComment(t *testing.T) {
	loan := newTestLoan()
	now := time.Now().UTC()

	steps := []struct {
		reviewer domain.Reviewer
		decision domain.ReviewDecision
	}{
		{treasurer, domain.DecisionApprove},
		{secretary, domain.DecisionApprove},
		{chairman, domain.DecisionApprove},
	}

	for i, step := range steps {
		before := len(loan.Comments)
		var err error
		loan, err = domain.Transition(loan, step.reviewer, step.decision, "stage cleared", now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, before+1, len(loan.Comments))
	}
}

func TestTransition_UnknownDecision(t *testing.T) {
	loan := newTestLoan()
	_, err := domain.Transition(loan, treasurer, domain.ReviewDecision("DEFER"), "come back later", time.Now().UTC())
	assert.Error(t, err)
}

func TestReviewAction(t *testing.T) {
	assert.Equal(t, domain.ActionReviewLoan, domain.ReviewAction(domain.StageTreasurer, domain.DecisionApprove))
	assert.Equal(t, domain.ActionReviewLoan, domain.ReviewAction(domain.StageSecretary, domain.DecisionReject))
	assert.Equal(t, domain.ActionApproveLoan, domain.ReviewAction(domain.StageChairman, domain.DecisionApprove))
	assert.Equal(t, domain.ActionRejectLoan, domain.ReviewAction(domain.StageChairman, domain.DecisionReject))
}

func TestValidateGuarantorCoverage(t *testing.T) {
	tests := []struct {
		name       string
		amount     decimal.Decimal
		guarantors []domain.Guarantor
		wantErr    bool
	}{
		{
			name:   "below threshold needs no guarantors",
			amount: decimal.NewFromInt(50_000),
		},
		{
			name:   "at threshold needs no guarantors",
			amount: decimal.NewFromInt(100_000),
		},
		{
			name:    "above threshold with no pledges fails",
			amount:  decimal.NewFromInt(150_000),
			wantErr: true,
		},
		{
			name:   "pledges covering principal pass",
			amount: decimal.NewFromInt(150_000),
			guarantors: []domain.Guarantor{
				{Name: "Peter Mwangi", Phone: "0712345678", PledgedAmount: decimal.NewFromInt(100_000)},
				{Name: "Faith Nyambura", Phone: "0723456789", PledgedAmount: decimal.NewFromInt(60_000)},
			},
		},
		{
			name:   "pledges short of principal fail",
			amount: decimal.NewFromInt(200_000),
			guarantors: []domain.Guarantor{
				{Name: "Peter Mwangi", Phone: "0712345678", PledgedAmount: decimal.NewFromInt(120_000)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateGuarantorCoverage(tt.amount, tt.guarantors)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrGuarantorCoverage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
