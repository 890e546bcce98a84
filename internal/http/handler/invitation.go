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

type InvitationHandler struct {
	invitationService service.InvitationService
}

func NewInvitationHandler(invitationService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

func (h *InvitationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.invitationService.Create(ctx, orgID, caller.ID, req.Email, req.Role)
	if err != nil {
		h.respondError(c, err, "failed to create invitation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) ListForOrganization(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	invs, err := h.invitationService.ListForOrganization(ctx, orgID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to list invitations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": dto.ToInvitationResponses(invs)})
}

func (h *InvitationHandler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	invitationID, ok := pathID(c, "invitationID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation id"})
		return
	}

	if err := h.invitationService.Revoke(ctx, orgID, invitationID, caller.ID); err != nil {
		h.respondError(c, err, "failed to revoke invitation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invitation revoked"})
}

// ListMine returns the caller's live invitations across organizations.
func (h *InvitationHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	invs, err := h.invitationService.ListForUser(ctx, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to list invitations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": dto.ToInvitationResponses(invs)})
}

func (h *InvitationHandler) Accept(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	invitationID, ok := pathID(c, "invitationID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation id"})
		return
	}

	inv, err := h.invitationService.Accept(ctx, invitationID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to accept invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) Reject(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	invitationID, ok := pathID(c, "invitationID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation id"})
		return
	}

	inv, err := h.invitationService.Reject(ctx, invitationID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to reject invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotMember), errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInviteNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInviteExpired):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInviteNotPending),
		errors.Is(err, service.ErrInvitePendingExists),
		errors.Is(err, service.ErrAlreadyMember):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
