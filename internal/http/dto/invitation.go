package dto

import (
	"time"

	"syncnotes.app/api-server/internal/model"
)

type CreateInvitationRequest struct {
	Email string     `json:"email" binding:"required,email"`
	Role  model.Role `json:"role" binding:"required"`
}

type InvitationResponse struct {
	ID             int64                  `json:"id,string"`
	OrganizationID int64                  `json:"organization_id,string"`
	Email          string                 `json:"email"`
	Role           model.Role             `json:"role"`
	Status         model.InvitationStatus `json:"status"`
	InvitedByID    int64                  `json:"invited_by_id,string"`
	Organization   *OrganizationResponse  `json:"organization,omitempty"`
	InvitedBy      *UserResponse          `json:"invited_by,omitempty"`
	ExpiresAt      time.Time              `json:"expires_at"`
	CreatedAt      time.Time              `json:"created_at"`
}

func ToInvitationResponse(inv *model.Invitation) *InvitationResponse {
	resp := &InvitationResponse{
		ID:             inv.ID,
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		Role:           inv.Role,
		Status:         inv.Status,
		InvitedByID:    inv.InvitedByID,
		ExpiresAt:      inv.ExpiresAt,
		CreatedAt:      inv.CreatedAt,
	}
	if inv.Organization != nil {
		resp.Organization = ToOrganizationResponse(inv.Organization)
	}
	if inv.InvitedBy != nil {
		resp.InvitedBy = ToUserResponse(inv.InvitedBy)
	}
	return resp
}

func ToInvitationResponses(invs []model.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invs))
	for i := range invs {
		out = append(out, *ToInvitationResponse(&invs[i]))
	}
	return out
}
