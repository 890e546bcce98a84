package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"syncnotes.app/api-server/core/db/sqlc"
	"syncnotes.app/api-server/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		AvatarUrl:    user.AvatarURL,
		PasswordHash: user.PasswordHash,
	})
	if err != nil {
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) Update(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUser(ctx, sqlc.UpdateUserParams{
		ID:        user.ID,
		Name:      user.Name,
		AvatarUrl: user.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) SetPassword(ctx context.Context, id int64, name string, passwordHash string) (*model.User, error) {
	row, err := s.queries.SetUserPassword(ctx, sqlc.SetUserPasswordParams{
		ID:           id,
		Name:         name,
		PasswordHash: &passwordHash,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) SetOTP(ctx context.Context, id int64, otp string, expiry time.Time) (*model.User, error) {
	row, err := s.queries.SetUserOTP(ctx, sqlc.SetUserOTPParams{
		ID:        id,
		Otp:       &otp,
		OtpExpiry: toTimestamptz(expiry),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) ClearOTP(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.ClearUserOTP(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) ConsumeOTP(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.ConsumeUserOTP(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func toUserModel(row sqlc.User) *model.User {
	user := &model.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		AvatarURL:    row.AvatarUrl,
		PasswordHash: row.PasswordHash,
		OTP:          row.Otp,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
	if row.OtpExpiry.Valid {
		user.OTPExpiry = &row.OtpExpiry.Time
	}
	if row.EmailVerified.Valid {
		user.EmailVerified = &row.EmailVerified.Time
	}
	return user
}
