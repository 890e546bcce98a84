package model

import "time"

// Membership ties a user to an organization with a single role.
type Membership struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	OrganizationID int64     `json:"organization_id"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Member is a membership joined with its user, as listed on the members page.
type Member struct {
	Membership
	User *User `json:"user"`
}
