package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"syncnotes.app/api-server/internal/http/dto"
	"syncnotes.app/api-server/internal/http/middleware"
	"syncnotes.app/api-server/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	members, err := h.memberService.List(ctx, orgID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to list members")
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": dto.ToMemberResponses(members)})
}

func (h *MemberHandler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	memberID, ok := pathID(c, "memberID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.memberService.UpdateRole(ctx, orgID, memberID, caller.ID, req.Role)
	if err != nil {
		h.respondError(c, err, "failed to update member role")
		return
	}

	c.JSON(http.StatusOK, dto.ToMembershipResponse(membership))
}

func (h *MemberHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	memberID, ok := pathID(c, "memberID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	if err := h.memberService.Remove(ctx, orgID, memberID, caller.ID); err != nil {
		h.respondError(c, err, "failed to remove member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
}

func (h *MemberHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrSelfTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotMember), errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLastAdmin):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
