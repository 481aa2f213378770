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

// memberHandler handles HTTP requests related to members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

// newMemberHandler creates a new memberHandler.
func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberIntakeRoutes registers the public registration route.
func registerMemberIntakeRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)
	rg.POST("/members/register", h.registerMember)
}

// registerMemberRoutes registers the protected member management routes.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/:memberID", h.getMember)
		members.POST("/:memberID/approve", h.approveMember)
		members.POST("/:memberID/reject", h.rejectMember)
	}
}

// registerMember godoc
// @Summary Register a new member
// @Description Files a membership registration. The registration stays pending until an office holder approves it.
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.RegisterMemberRequest true "Registration details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Member already exists"
// @Failure 500 {object} map[string]string "Failed to register member"
// @Router /members/register [post]
func (h *memberHandler) registerMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	member, err := h.memberService.RegisterMember(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate member registration", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register member"})
		}
		return
	}

	logger.Info("Member registered", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members
// @Description Retrieves members, optionally filtered by status, newest first.
// @Tags members
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, ACTIVE, INACTIVE)
// @Success 200 {object} dto.ListMembersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list members"
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListMembers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.memberService.ListMembers(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list members", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getMember godoc
// @Summary Get a member
// @Description Retrieves a member by ID.
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to retrieve member"
// @Security BearerAuth
// @Router /members/{memberID} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("memberID")

	member, err := h.memberService.GetMemberByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			logger.Error("Failed to get member", slog.String("member_id", memberID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// approveMember godoc
// @Summary Approve a pending registration
// @Description Activates a pending member and assigns the next sequential member number.
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} map[string]string "Member is not pending"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Office lacks the approve_member permission"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to approve member"
// @Security BearerAuth
// @Router /members/{memberID}/approve [post]
func (h *memberHandler) approveMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("memberID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.memberService.ApproveMember(c.Request.Context(), memberID, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to approve member", slog.String("member_id", memberID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve member"})
		}
		return
	}

	logger.Info("Member approved", slog.String("member_id", memberID), slog.String("member_number", member.MemberNumber))
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// rejectMember godoc
// @Summary Reject a pending registration
// @Description Removes a pending member registration.
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 204 "Registration removed"
// @Failure 400 {object} map[string]string "Member is not pending"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Office lacks the reject_member permission"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to reject member"
// @Security BearerAuth
// @Router /members/{memberID}/reject [post]
func (h *memberHandler) rejectMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("memberID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.memberService.RejectMember(c.Request.Context(), memberID, actor); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reject member", slog.String("member_id", memberID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject member"})
		}
		return
	}

	logger.Info("Member registration rejected", slog.String("member_id", memberID))
	c.Status(http.StatusNoContent)
}
