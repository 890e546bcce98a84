package model

import "time"

// ActivityLog records a human-readable audit entry for an organization.
type ActivityLog struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	UserID         int64     `json:"user_id"`
	Action         string    `json:"action"`
	Details        *string   `json:"details,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	User *User `json:"user,omitempty"`
}
