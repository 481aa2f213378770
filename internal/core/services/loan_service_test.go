package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/core/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
)

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

// Ensure MockLoanRepository implements portsrepo.LoanRepositoryWithTx
var _ portsrepo.LoanRepositoryWithTx = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.LoanApplication) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) SaveReview(ctx context.Context, loan domain.LoanApplication, newComment domain.LoanComment) error {
	args := m.Called(ctx, loan, newComment)
	return args.Error(0)
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, status *domain.LoanStatus, limit int, nextToken *string) ([]domain.LoanApplication, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LoanApplication), returnedNextToken, args.Error(2)
}

func (m *MockLoanRepository) CountLoansAppliedInYear(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

func (m *MockLoanRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockLoanRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLoanRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ActivityService ---
type MockActivityService struct {
	mock.Mock
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

func (m *MockActivityService) Record(ctx context.Context, activityType domain.ActivityType, description string) error {
	args := m.Called(ctx, activityType, description)
	return args.Error(0)
}

func (m *MockActivityService) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

// --- Test Suite ---
type LoanServiceTestSuite struct {
	suite.Suite
	mockLoanRepo    *MockLoanRepository
	mockMemberRepo  *MockMemberRepository
	mockActivitySvc *MockActivityService
	service         portssvc.LoanSvcFacade

	member    domain.Member
	treasurer domain.Reviewer
	secretary domain.Reviewer
	chairman  domain.Reviewer
}

func (s *LoanServiceTestSuite) SetupTest() {
	s.mockLoanRepo = new(MockLoanRepository)
	s.mockMemberRepo = new(MockMemberRepository)
	s.mockActivitySvc = new(MockActivityService)
	s.service = services.NewLoanService(s.mockLoanRepo, s.mockMemberRepo, s.mockActivitySvc)

	s.member = domain.Member{
		MemberID:     uuid.NewString(),
		MemberNumber: "STG0007",
		FirstName:    "Wanjiru",
		LastName:     "Kamau",
		Status:       domain.MemberActive,
	}
	s.treasurer = domain.Reviewer{UserID: uuid.NewString(), Name: "Otieno Odhiambo", Role: domain.RoleTreasurer}
	s.secretary = domain.Reviewer{UserID: uuid.NewString(), Name: "Achieng Akinyi", Role: domain.RoleSecretary}
	s.chairman = domain.Reviewer{UserID: uuid.NewString(), Name: "Mwangi Njoroge", Role: domain.RoleChairman}
}

func (s *LoanServiceTestSuite) pendingLoan() *domain.LoanApplication {
	return &domain.LoanApplication{
		LoanID:       uuid.NewString(),
		LoanNumber:   "LN2026001",
		MemberID:     s.member.MemberID,
		MemberName:   s.member.FullName(),
		Amount:       decimal.NewFromInt(50_000),
		TermMonths:   12,
		StageReviews: domain.NewStageReviews(),
		AppliedAt:    time.Now(),
	}
}

func (s *LoanServiceTestSuite) TestSubmitLoanSuccess() {
	ctx := context.Background()
	req := dto.SubmitLoanRequest{
		MemberNumber:  s.member.MemberNumber,
		Amount:        decimal.NewFromInt(100_000),
		Purpose:       "Dairy cow purchase",
		TermMonths:    12,
		MonthlyIncome: decimal.NewFromInt(45_000),
	}

	s.mockMemberRepo.On("FindMemberByNumber", ctx, s.member.MemberNumber).Return(&s.member, nil).Once()
	s.mockLoanRepo.On("CountLoansAppliedInYear", ctx, mock.AnythingOfType("int")).Return(41, nil).Once()
	s.mockLoanRepo.On("SaveLoan", ctx, mock.AnythingOfType("domain.LoanApplication")).Return(nil).Once()
	s.mockActivitySvc.On("Record", ctx, domain.ActivityLoanApplied, mock.AnythingOfType("string")).Return(nil).Once()

	loan, err := s.service.SubmitLoan(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(loan)
	s.Equal(fmt.Sprintf("LN%d042", time.Now().Year()), loan.LoanNumber)
	s.Equal(s.member.MemberID, loan.MemberID)
	s.Equal("Wanjiru Kamau", loan.MemberName)
	s.Equal(domain.StatusTreasurerReview, loan.Status())
	s.Equal(domain.OutcomePending, loan.StageReviews.Treasurer.Outcome)
	s.Equal(domain.OutcomePending, loan.StageReviews.Secretary.Outcome)
	s.Equal(domain.OutcomePending, loan.StageReviews.Chairman.Outcome)
	// 100,000 at 12% over 12 months works out to 8,885 a month.
	s.True(loan.MonthlyInstallment.Equal(decimal.NewFromInt(8_885)),
		"expected installment 8885, got %s", loan.MonthlyInstallment)
	s.mockLoanRepo.AssertExpectations(s.T())
	s.mockActivitySvc.AssertExpectations(s.T())
}

func (s *LoanServiceTestSuite) TestSubmitLoanAmountOutOfBounds() {
	ctx := context.Background()
	req := dto.SubmitLoanRequest{
		MemberNumber:  s.member.MemberNumber,
		Amount:        decimal.NewFromInt(5_000),
		Purpose:       "Too small",
		TermMonths:    6,
		MonthlyIncome: decimal.NewFromInt(20_000),
	}

	s.mockMemberRepo.On("FindMemberByNumber", ctx, s.member.MemberNumber).Return(&s.member, nil).Once()

	loan, err := s.service.SubmitLoan(ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(loan)
	s.mockLoanRepo.AssertNotCalled(s.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestSubmitLoanInactiveMember() {
	ctx := context.Background()
	pending := s.member
	pending.Status = domain.MemberPending
	req := dto.SubmitLoanRequest{
		MemberNumber:  pending.MemberNumber,
		Amount:        decimal.NewFromInt(50_000),
		Purpose:       "School fees",
		TermMonths:    12,
		MonthlyIncome: decimal.NewFromInt(30_000),
	}

	s.mockMemberRepo.On("FindMemberByNumber", ctx, pending.MemberNumber).Return(&pending, nil).Once()

	loan, err := s.service.SubmitLoan(ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(loan)
}

func (s *LoanServiceTestSuite) TestSubmitLoanGuarantorShortfall() {
	ctx := context.Background()
	req := dto.SubmitLoanRequest{
		MemberNumber:  s.member.MemberNumber,
		Amount:        decimal.NewFromInt(200_000),
		Purpose:       "Shop stock",
		TermMonths:    24,
		MonthlyIncome: decimal.NewFromInt(60_000),
		Guarantors: []dto.GuarantorRequest{
			{Name: "Njeri Wambui", Phone: "0722000001", PledgedAmount: decimal.NewFromInt(80_000)},
		},
	}

	s.mockMemberRepo.On("FindMemberByNumber", ctx, s.member.MemberNumber).Return(&s.member, nil).Once()

	loan, err := s.service.SubmitLoan(ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrGuarantorCoverage)
	s.Nil(loan)
	s.mockLoanRepo.AssertNotCalled(s.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestReviewLoanTreasurerApproves() {
	ctx := context.Background()
	loan := s.pendingLoan()
	req := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Savings record is clean"}

	s.mockLoanRepo.On("FindLoanByID", ctx, loan.LoanID).Return(loan, nil).Once()
	s.mockLoanRepo.On("SaveReview", ctx, mock.AnythingOfType("domain.LoanApplication"), mock.AnythingOfType("domain.LoanComment")).Return(nil).Once()

	reviewed, err := s.service.ReviewLoan(ctx, loan.LoanID, s.treasurer, req)

	s.Require().NoError(err)
	s.Require().NotNil(reviewed)
	s.Equal(domain.StatusSecretaryReview, reviewed.Status())
	s.Equal(domain.OutcomeApproved, reviewed.StageReviews.Treasurer.Outcome)
	s.Len(reviewed.Comments, 1)
	// Not terminal yet, so no feed entry.
	s.mockActivitySvc.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything, mock.Anything)
	s.mockLoanRepo.AssertExpectations(s.T())
}

func (s *LoanServiceTestSuite) TestReviewLoanChairmanAtTreasurerStageForbidden() {
	ctx := context.Background()
	loan := s.pendingLoan()
	req := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Jumping the queue"}

	s.mockLoanRepo.On("FindLoanByID", ctx, loan.LoanID).Return(loan, nil).Once()

	reviewed, err := s.service.ReviewLoan(ctx, loan.LoanID, s.chairman, req)

	// The treasurer stage maps to review_loan, which the chairman's office
	// does not hold, so the permission gate fires before the state machine.
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.Nil(reviewed)
	s.mockLoanRepo.AssertNotCalled(s.T(), "SaveReview", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestReviewLoanWrongStage() {
	ctx := context.Background()
	loan := s.pendingLoan()
	req := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Out of turn"}

	s.mockLoanRepo.On("FindLoanByID", ctx, loan.LoanID).Return(loan, nil).Once()

	reviewed, err := s.service.ReviewLoan(ctx, loan.LoanID, s.secretary, req)

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrWrongStage)
	s.Nil(reviewed)
	s.mockLoanRepo.AssertNotCalled(s.T(), "SaveReview", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestReviewLoanMissingComment() {
	ctx := context.Background()
	loan := s.pendingLoan()
	req := dto.ReviewLoanRequest{Decision: domain.DecisionReject, Comment: "   "}

	s.mockLoanRepo.On("FindLoanByID", ctx, loan.LoanID).Return(loan, nil).Once()

	reviewed, err := s.service.ReviewLoan(ctx, loan.LoanID, s.treasurer, req)

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrMissingComment)
	s.Nil(reviewed)
	s.mockLoanRepo.AssertNotCalled(s.T(), "SaveReview", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestReviewLoanTerminal() {
	ctx := context.Background()
	loan := s.pendingLoan()
	rejected, err := domain.Transition(*loan, s.treasurer, domain.DecisionReject, "Savings too low", time.Now())
	s.Require().NoError(err)

	req := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Second thoughts"}
	s.mockLoanRepo.On("FindLoanByID", ctx, loan.LoanID).Return(&rejected, nil).Once()

	reviewed, err := s.service.ReviewLoan(ctx, loan.LoanID, s.treasurer, req)

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrTerminalState)
	s.Nil(reviewed)
}

func (s *LoanServiceTestSuite) TestReviewLoanChairmanApprovalRecordsActivity() {
	ctx := context.Background()
	loan := s.pendingLoan()
	now := time.Now()
	afterTreasurer, err := domain.Transition(*loan, s.treasurer, domain.DecisionApprove, "Savings verified", now)
	s.Require().NoError(err)
	afterSecretary, err := domain.Transition(afterTreasurer, s.secretary, domain.DecisionApprove, "Minutes recorded", now)
	s.Require().NoError(err)

	req := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Approved for disbursement"}
	s.mockLoanRepo.On("FindLoanByID", ctx, loan.LoanID).Return(&afterSecretary, nil).Once()
	s.mockLoanRepo.On("SaveReview", ctx, mock.AnythingOfType("domain.LoanApplication"), mock.AnythingOfType("domain.LoanComment")).Return(nil).Once()
	s.mockActivitySvc.On("Record", ctx, domain.ActivityLoanApproved, mock.AnythingOfType("string")).Return(nil).Once()

	reviewed, err := s.service.ReviewLoan(ctx, loan.LoanID, s.chairman, req)

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, reviewed.Status())
	s.Require().NotNil(reviewed.DecidedAt)
	s.Len(reviewed.Comments, 3)
	s.mockActivitySvc.AssertExpectations(s.T())
}

func (s *LoanServiceTestSuite) TestReviewLoanNotFound() {
	ctx := context.Background()
	loanID := uuid.NewString()
	req := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "No such loan"}

	s.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(nil, apperrors.ErrNotFound).Once()

	reviewed, err := s.service.ReviewLoan(ctx, loanID, s.treasurer, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(reviewed)
}

func (s *LoanServiceTestSuite) TestListLoansPassesStatusFilter() {
	ctx := context.Background()
	status := domain.StatusChairmanReview
	params := dto.ListLoansParams{Status: &status, Limit: 10}

	s.mockLoanRepo.On("ListLoans", ctx, &status, 10, (*string)(nil)).Return([]domain.LoanApplication{}, nil, nil).Once()

	resp, err := s.service.ListLoans(ctx, params)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Empty(resp.Loans)
	s.Nil(resp.NextToken)
	s.mockLoanRepo.AssertExpectations(s.T())
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
