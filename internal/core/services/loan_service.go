package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
	"github.com/stgabriel-shg/shg_backend/internal/utils/loanmath"
)

// loanService drives the loan lifecycle: intake validation and the sequential
// treasurer -> secretary -> chairman review chain.
type loanService struct {
	BaseService
	loanRepo    portsrepo.LoanRepositoryWithTx
	memberRepo  portsrepo.MemberReader
	activitySvc portssvc.ActivitySvcFacade
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo portsrepo.LoanRepositoryWithTx, memberRepo portsrepo.MemberReader, activitySvc portssvc.ActivitySvcFacade) portssvc.LoanSvcFacade {
	return &loanService{
		loanRepo:    loanRepo,
		memberRepo:  memberRepo,
		activitySvc: activitySvc,
	}
}

// Ensure loanService implements the portssvc.LoanSvcFacade interface
var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// SubmitLoan validates a new application and enters it into the workflow at
// the treasurer's stage.
func (s *loanService) SubmitLoan(ctx context.Context, req dto.SubmitLoanRequest) (*domain.LoanApplication, error) {
	member, err := s.memberRepo.FindMemberByNumber(ctx, req.MemberNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up applicant", slog.String("member_number", req.MemberNumber))
		return nil, fmt.Errorf("failed to look up applicant: %w", err)
	}
	if member.Status != domain.MemberActive {
		return nil, fmt.Errorf("%w: member %s is not active", apperrors.ErrValidation, req.MemberNumber)
	}

	if req.Amount.LessThan(domain.MinLoanAmount) || req.Amount.GreaterThan(domain.MaxLoanAmount) {
		return nil, fmt.Errorf("%w: amount must be between %s and %s",
			apperrors.ErrValidation, domain.MinLoanAmount.String(), domain.MaxLoanAmount.String())
	}
	if req.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: monthly income must be positive", apperrors.ErrValidation)
	}

	guarantors := make([]domain.Guarantor, len(req.Guarantors))
	for i, g := range req.Guarantors {
		guarantors[i] = domain.Guarantor{Name: g.Name, Phone: g.Phone, PledgedAmount: g.PledgedAmount}
	}
	if err := domain.ValidateGuarantorCoverage(req.Amount, guarantors); err != nil {
		return nil, err
	}

	now := time.Now()
	loanNumber, err := s.nextLoanNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	installment := loanmath.MonthlyInstallment(req.Amount, domain.AnnualInterestRatePercent, req.TermMonths)

	loan := domain.LoanApplication{
		LoanID:             uuid.NewString(),
		LoanNumber:         loanNumber,
		MemberID:           member.MemberID,
		MemberName:         member.FullName(),
		MonthlyIncome:      req.MonthlyIncome,
		Amount:             req.Amount,
		Purpose:            req.Purpose,
		TermMonths:         req.TermMonths,
		InterestRate:       domain.AnnualInterestRatePercent,
		MonthlyInstallment: installment,
		Guarantors:         guarantors,
		Collateral:         req.Collateral,
		AppliedAt:          now,
		StageReviews:       domain.NewStageReviews(),
		Comments:           []domain.LoanComment{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     member.MemberID,
			LastUpdatedAt: now,
			LastUpdatedBy: member.MemberID,
		},
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("loan_number", loanNumber))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	s.recordActivity(ctx, domain.ActivityLoanApplied,
		fmt.Sprintf("%s applied for a loan of KES %s (%s)", loan.MemberName, loan.Amount.String(), loanNumber))

	s.LogInfo(ctx, "Loan submitted",
		slog.String("loan_id", loan.LoanID),
		slog.String("loan_number", loanNumber),
		slog.String("member_number", req.MemberNumber))
	return &loan, nil
}

// ReviewLoan applies one reviewer's verdict to the stage they own. The
// permission table is consulted for the action the verdict maps to before the
// state machine runs; workflow violations surface as the domain's sentinel
// errors.
func (s *loanService) ReviewLoan(ctx context.Context, loanID string, reviewer domain.Reviewer, req dto.ReviewLoanRequest) (*domain.LoanApplication, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	if stage, ok := loan.CurrentStage(); ok {
		if err := s.Authorize(ctx, reviewer, domain.ReviewAction(stage, req.Decision)); err != nil {
			return nil, err
		}
	}

	next, err := domain.Transition(*loan, reviewer, req.Decision, req.Comment, time.Now())
	if err != nil {
		s.LogDebug(ctx, "Review rejected by workflow",
			slog.String("loan_id", loanID),
			slog.String("reviewer_role", string(reviewer.Role)),
			slog.String("error", err.Error()))
		return nil, err
	}

	newComment := next.Comments[len(next.Comments)-1]
	if err := s.loanRepo.SaveReview(ctx, next, newComment); err != nil {
		s.LogError(ctx, err, "Failed to save review", slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	switch next.Status() {
	case domain.StatusApproved:
		s.recordActivity(ctx, domain.ActivityLoanApproved,
			fmt.Sprintf("Loan %s for %s was approved", next.LoanNumber, next.MemberName))
	case domain.StatusRejected:
		s.recordActivity(ctx, domain.ActivityLoanRejected,
			fmt.Sprintf("Loan %s for %s was rejected at the %s stage", next.LoanNumber, next.MemberName, *next.RejectedByStage))
	}

	s.LogInfo(ctx, "Loan reviewed",
		slog.String("loan_id", loanID),
		slog.String("reviewer_id", reviewer.UserID),
		slog.String("decision", string(req.Decision)),
		slog.String("status", string(next.Status())))
	return &next, nil
}

// GetLoanByID retrieves a loan with its full review timeline.
func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// ListLoans retrieves a paginated loan listing, newest applications first.
func (s *loanService) ListLoans(ctx context.Context, params dto.ListLoansParams) (*dto.ListLoansResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	loans, nextToken, err := s.loanRepo.ListLoans(ctx, params.Status, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return &dto.ListLoansResponse{
		Loans:     dto.ToLoanResponses(loans),
		NextToken: nextToken,
	}, nil
}

// nextLoanNumber derives the human-facing loan number from the number of
// applications already filed this calendar year, e.g. LN2026042.
func (s *loanService) nextLoanNumber(ctx context.Context, now time.Time) (string, error) {
	count, err := s.loanRepo.CountLoansAppliedInYear(ctx, now.Year())
	if err != nil {
		return "", fmt.Errorf("failed to count loans for numbering: %w", err)
	}
	return fmt.Sprintf("LN%d%03d", now.Year(), count+1), nil
}

func (s *loanService) recordActivity(ctx context.Context, activityType domain.ActivityType, description string) {
	if s.activitySvc == nil {
		return
	}
	if err := s.activitySvc.Record(ctx, activityType, description); err != nil {
		s.LogError(ctx, err, "Failed to record activity", slog.String("activity_type", string(activityType)))
	}
}
