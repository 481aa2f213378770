package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
	"github.com/stgabriel-shg/shg_backend/internal/middleware"
)

// loanHandler handles HTTP requests related to loan applications.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// newLoanHandler creates a new loanHandler.
func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// RegisterLoanIntakeRoutes registers the public loan submission route. Members
// apply without an account; the office reviews through the protected routes.
func RegisterLoanIntakeRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)
	rg.POST("/loans", h.submitLoan)
}

// RegisterLoanRoutes registers the protected loan review routes.
func RegisterLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.GET("/:loanID", h.getLoan)
		loans.POST("/:loanID/review", h.reviewLoan)
	}
}

// submitLoan godoc
// @Summary Submit a loan application
// @Description Validates and files a new loan application for an active member. The application enters the review chain at the treasurer's stage.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.SubmitLoanRequest true "Loan application"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input or policy violation"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to submit loan"
// @Router /loans [post]
func (h *loanHandler) submitLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.SubmitLoan(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, domain.ErrGuarantorCoverage):
			logger.Warn("Loan submission rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Applicant not found", slog.String("member_number", req.MemberNumber))
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		default:
			logger.Error("Failed to submit loan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit loan"})
		}
		return
	}

	logger.Info("Loan submitted", slog.String("loan_id", loan.LoanID), slog.String("loan_number", loan.LoanNumber))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loan applications
// @Description Retrieves a paginated list of loans, newest first, optionally filtered by status.
// @Tags loans
// @Produce json
// @Param status query string false "Filter by derived status" Enums(TREASURER_REVIEW, SECRETARY_REVIEW, CHAIRMAN_REVIEW, APPROVED, REJECTED)
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListLoansResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list loans"
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListLoans", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.loanService.ListLoans(c.Request.Context(), params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 400 {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		logger.Error("Failed to list loans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list loans"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getLoan godoc
// @Summary Get a loan application
// @Description Retrieves a loan with its stage records and full comment trail.
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to retrieve loan"
// @Security BearerAuth
// @Router /loans/{loanID} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Loan not found", slog.String("loan_id", loanID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		} else {
			logger.Error("Failed to get loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve loan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// reviewLoan godoc
// @Summary Review a loan application
// @Description Applies the signed-in officer's decision to the review stage their office owns. A rejection at any stage is final.
// @Tags loans
// @Accept json
// @Produce json
// @Param loanID path string true "Loan ID"
// @Param review body dto.ReviewLoanRequest true "Review decision and comment"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input or missing comment"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Office lacks the required permission"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 409 {object} map[string]string "Loan is at another stage or already decided"
// @Failure 500 {object} map[string]string "Failed to review loan"
// @Security BearerAuth
// @Router /loans/{loanID}/review [post]
func (h *loanHandler) reviewLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	var req dto.ReviewLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReviewLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reviewer, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	loan, err := h.loanService.ReviewLoan(c.Request.Context(), loanID, reviewer, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrTerminalState), errors.Is(err, domain.ErrWrongStage):
			logger.Warn("Review rejected by workflow", slog.String("loan_id", loanID), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Review forbidden", slog.String("loan_id", loanID), slog.String("role", string(reviewer.Role)))
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		default:
			logger.Error("Failed to review loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review loan"})
		}
		return
	}

	logger.Info("Loan reviewed", slog.String("loan_id", loanID), slog.String("status", string(loan.Status())))
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}
