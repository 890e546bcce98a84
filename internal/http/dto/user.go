package dto

import (
	"time"

	"syncnotes.app/api-server/internal/model"
)

type UserResponse struct {
	ID            int64      `json:"id,string"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		AvatarURL:     user.AvatarURL,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}
