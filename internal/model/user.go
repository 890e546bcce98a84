package model

import "time"

type User struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	PasswordHash  *string    `json:"-"`
	OTP           *string    `json:"-"`
	OTPExpiry     *time.Time `json:"-"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// HasPassword distinguishes real accounts from placeholder rows created
// when an unknown email is invited to an organization.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
