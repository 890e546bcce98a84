package model

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationRejected InvitationStatus = "REJECTED"
	InvitationExpired  InvitationStatus = "EXPIRED"
)

type Invitation struct {
	ID             int64            `json:"id"`
	OrganizationID int64            `json:"organization_id"`
	Email          string           `json:"email"`
	Role           Role             `json:"role"`
	Status         InvitationStatus `json:"status"`
	InvitedByID    int64            `json:"invited_by_id"`
	ExpiresAt      time.Time        `json:"expires_at"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Organization *Organization `json:"organization,omitempty"`
	InvitedBy    *User         `json:"invited_by,omitempty"`
}

// LapsedAt reports whether the invitation's expiry has passed relative to now.
// Stored status is reconciled lazily on read, so a PENDING row may still be
// lapsed.
func (i *Invitation) LapsedAt(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
