package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
	"github.com/stgabriel-shg/shg_backend/internal/handlers"
	"github.com/stgabriel-shg/shg_backend/internal/middleware"
)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

func (m *MockLoanService) SubmitLoan(ctx context.Context, req dto.SubmitLoanRequest) (*domain.LoanApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}

func (m *MockLoanService) ReviewLoan(ctx context.Context, loanID string, reviewer domain.Reviewer, req dto.ReviewLoanRequest) (*domain.LoanApplication, error) {
	args := m.Called(ctx, loanID, reviewer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}

func (m *MockLoanService) GetLoanByID(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}

func (m *MockLoanService) ListLoans(ctx context.Context, params dto.ListLoansParams) (*dto.ListLoansResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLoansResponse), args.Error(1)
}

// --- Test Suite ---
type LoanHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLoanService *MockLoanService
	jwtSecret       string

	treasurer domain.Reviewer
}

// generateTestToken creates a signed JWT carrying the reviewer's identity.
func (s *LoanHandlerTestSuite) generateTestToken(reviewer domain.Reviewer) string {
	claims := middleware.AccessClaims{
		Name: reviewer.Name,
		Role: string(reviewer.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   reviewer.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	s.Require().NoError(err)
	return signed
}

func (s *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockLoanService = new(MockLoanService)
	s.jwtSecret = "test-secret"

	s.treasurer = domain.Reviewer{UserID: uuid.NewString(), Name: "Otieno Odhiambo", Role: domain.RoleTreasurer}

	// Wire only the loan routes the suite exercises, mirroring RegisterRoutes.
	public := s.router.Group("/api/v1/public")
	handlers.RegisterLoanIntakeRoutes(public, s.mockLoanService)
	v1 := s.router.Group("/api/v1", middleware.AuthMiddleware(s.jwtSecret))
	handlers.RegisterLoanRoutes(v1, s.mockLoanService)
}

func (s *LoanHandlerTestSuite) pendingLoan() *domain.LoanApplication {
	return &domain.LoanApplication{
		LoanID:       uuid.NewString(),
		LoanNumber:   "LN2026001",
		MemberID:     uuid.NewString(),
		MemberName:   "Wanjiru Kamau",
		Amount:       decimal.NewFromInt(50_000),
		TermMonths:   12,
		StageReviews: domain.NewStageReviews(),
		AppliedAt:    time.Now(),
	}
}

func (s *LoanHandlerTestSuite) TestSubmitLoanReturnsCreated() {
	loan := s.pendingLoan()
	s.mockLoanService.On("SubmitLoan", mock.Anything, mock.AnythingOfType("dto.SubmitLoanRequest")).Return(loan, nil).Once()

	body, _ := json.Marshal(dto.SubmitLoanRequest{
		MemberNumber:  "STG0007",
		Amount:        decimal.NewFromInt(50_000),
		Purpose:       "School fees",
		TermMonths:    12,
		MonthlyIncome: decimal.NewFromInt(30_000),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/loans", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.LoanResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(loan.LoanNumber, resp.LoanNumber)
	s.Equal(domain.StatusTreasurerReview, resp.Status)
	s.Equal(domain.OutcomePending, resp.TreasurerReview.Outcome)
}

func (s *LoanHandlerTestSuite) TestReviewLoanRequiresToken() {
	loanID := uuid.NewString()
	body, _ := json.Marshal(dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "ok"})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/loans/%s/review", loanID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockLoanService.AssertNotCalled(s.T(), "ReviewLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanHandlerTestSuite) TestReviewLoanPassesActorFromToken() {
	loan := s.pendingLoan()
	reviewReq := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Savings verified"}

	s.mockLoanService.On("ReviewLoan", mock.Anything, loan.LoanID, s.treasurer, reviewReq).Return(loan, nil).Once()

	body, _ := json.Marshal(reviewReq)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/loans/%s/review", loan.LoanID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken(s.treasurer))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockLoanService.AssertExpectations(s.T())
}

func (s *LoanHandlerTestSuite) TestReviewLoanWrongStageMapsToConflict() {
	loanID := uuid.NewString()
	reviewReq := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Out of turn"}

	s.mockLoanService.On("ReviewLoan", mock.Anything, loanID, s.treasurer, reviewReq).Return(nil, domain.ErrWrongStage).Once()

	body, _ := json.Marshal(reviewReq)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/loans/%s/review", loanID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken(s.treasurer))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *LoanHandlerTestSuite) TestReviewLoanForbiddenMapsTo403() {
	loanID := uuid.NewString()
	reviewReq := dto.ReviewLoanRequest{Decision: domain.DecisionApprove, Comment: "Not my office"}

	s.mockLoanService.On("ReviewLoan", mock.Anything, loanID, s.treasurer, reviewReq).Return(nil, apperrors.ErrForbidden).Once()

	body, _ := json.Marshal(reviewReq)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/loans/%s/review", loanID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken(s.treasurer))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *LoanHandlerTestSuite) TestGetLoanNotFound() {
	loanID := uuid.NewString()
	s.mockLoanService.On("GetLoanByID", mock.Anything, loanID).Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/"+loanID, nil)
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken(s.treasurer))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func TestLoanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}
