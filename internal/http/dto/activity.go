package dto

import (
	"time"

	"syncnotes.app/api-server/internal/model"
)

type ActivityLogResponse struct {
	ID             int64         `json:"id,string"`
	OrganizationID int64         `json:"organization_id,string"`
	UserID         int64         `json:"user_id,string"`
	Action         string        `json:"action"`
	Details        *string       `json:"details,omitempty"`
	User           *UserResponse `json:"user,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

func ToActivityLogResponses(entries []model.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		resp := ActivityLogResponse{
			ID:             entry.ID,
			OrganizationID: entry.OrganizationID,
			UserID:         entry.UserID,
			Action:         entry.Action,
			Details:        entry.Details,
			CreatedAt:      entry.CreatedAt,
		}
		if entry.User != nil {
			resp.User = ToUserResponse(entry.User)
		}
		out = append(out, resp)
	}
	return out
}
