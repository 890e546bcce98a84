package dto

import (
	"time"

	"syncnotes.app/api-server/internal/model"
)

type UpdateMemberRoleRequest struct {
	Role model.Role `json:"role" binding:"required"`
}

type MemberResponse struct {
	ID        int64         `json:"id,string"`
	UserID    int64         `json:"user_id,string"`
	Role      model.Role    `json:"role"`
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

func ToMemberResponse(member *model.Member) *MemberResponse {
	resp := &MemberResponse{
		ID:        member.ID,
		UserID:    member.UserID,
		Role:      member.Role,
		CreatedAt: member.CreatedAt,
	}
	if member.User != nil {
		resp.User = ToUserResponse(member.User)
	}
	return resp
}

func ToMemberResponses(members []model.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *ToMemberResponse(&members[i]))
	}
	return out
}

type MembershipResponse struct {
	ID             int64      `json:"id,string"`
	UserID         int64      `json:"user_id,string"`
	OrganizationID int64      `json:"organization_id,string"`
	Role           model.Role `json:"role"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToMembershipResponse(m *model.Membership) *MembershipResponse {
	return &MembershipResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           m.Role,
		UpdatedAt:      m.UpdatedAt,
	}
}
