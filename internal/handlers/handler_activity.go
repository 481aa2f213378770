package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
	"github.com/stgabriel-shg/shg_backend/internal/middleware"
)

// activityHandler handles HTTP requests for the group activity feed.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// newActivityHandler creates a new activityHandler.
func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

// registerActivityRoutes registers the protected activity feed route.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)
	rg.GET("/activities", h.listActivities)
}

// listActivities godoc
// @Summary Recent group activity
// @Description Returns the most recent activity feed entries, newest first.
// @Tags activities
// @Produce json
// @Param limit query int false "Maximum entries to return (default 20, max 100)"
// @Success 200 {object} dto.ListActivitiesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list activities"
// @Security BearerAuth
// @Router /activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	activities, err := h.activityService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list activities", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, dto.ListActivitiesResponse{Activities: dto.ToActivityResponses(activities)})
}
