package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
	"github.com/stgabriel-shg/shg_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the protected reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/loan-summary", h.getLoanSummary)
	}
}

// getLoanSummary godoc
// @Summary Loan portfolio summary
// @Description Aggregates loan counts, approved amounts, the approval rate and per-stage rejection counts.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.LoanSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Office lacks the view_reports permission"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /reports/loan-summary [get]
func (h *reportingHandler) getLoanSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.GetLoanSummary(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build loan summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanSummaryResponse(summary))
}
