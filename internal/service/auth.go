package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"syncnotes.app/api-server/common/id"
	"syncnotes.app/api-server/internal/mail"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/store"
)

const (
	bcryptCost = 12

	// OTPValidity is how long a one-time code stays usable after issue.
	OTPValidity = 10 * time.Minute
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrOTPNotRequested    = errors.New("no verification code was requested")
	ErrOTPExpired         = errors.New("verification code has expired")
	ErrOTPMismatch        = errors.New("incorrect verification code")
	ErrEmailDispatch      = errors.New("failed to send email")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, *model.Session, error)
	LoginWithPassword(ctx context.Context, email, password string) (*model.User, *model.Session, error)
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*model.User, *model.Session, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, error)
	Logout(ctx context.Context, sessionID int64) error
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	mailer       mail.Mailer
	txRunner     TxRunner
	sessionTTL   time.Duration
}

func NewAuthService(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	mailer mail.Mailer,
	txRunner TxRunner,
	sessionTTL time.Duration,
) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		mailer:       mailer,
		txRunner:     txRunner,
		sessionTTL:   sessionTTL,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, *model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}
	hashStr := string(hash)

	existing, err := s.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.HasPassword():
		return nil, nil, ErrEmailTaken
	case err == nil:
		// Placeholder row created by an invitation: claim it.
		user, err := s.userStore.SetPassword(ctx, existing.ID, name, hashStr)
		if err != nil {
			return nil, nil, fmt.Errorf("claiming invited account: %w", err)
		}
		slog.InfoContext(ctx, "invited user completed registration", "user_id", user.ID)
		return s.startSession(ctx, user)
	case errors.Is(err, store.ErrNotFound):
		user := &model.User{
			ID:           id.New(),
			Name:         name,
			Email:        email,
			PasswordHash: &hashStr,
		}
		if err := s.userStore.Create(ctx, user); err != nil {
			return nil, nil, fmt.Errorf("creating user: %w", err)
		}
		slog.InfoContext(ctx, "user registered", "user_id", user.ID)
		return s.startSession(ctx, user)
	default:
		return nil, nil, fmt.Errorf("looking up user: %w", err)
	}
}

func (s *authService) LoginWithPassword(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("looking up user: %w", err)
	}

	if !user.HasPassword() {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	return s.startSession(ctx, user)
}

// RequestOTP issues a fresh one-time code for the user. The code is only
// persisted after the email is dispatched, so a delivery failure never
// strands an unusable code on the account. Any previously stored code is
// overwritten on success.
func (s *authService) RequestOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("looking up user: %w", err)
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}
	expiry := time.Now().Add(OTPValidity)

	if err := s.mailer.SendOTP(ctx, user.Email, user.Name, code); err != nil {
		slog.ErrorContext(ctx, "otp email dispatch failed", "error", err, "user_id", user.ID)
		return ErrEmailDispatch
	}

	if _, err := s.userStore.SetOTP(ctx, user.ID, code, expiry); err != nil {
		return fmt.Errorf("storing code: %w", err)
	}

	slog.InfoContext(ctx, "otp issued", "user_id", user.ID, "expires_at", expiry)
	return nil
}

// VerifyOTP checks the submitted code against the stored one. Expired codes
// are cleared on sight; a mismatch leaves the stored code intact so the user
// can retry until expiry. A successful match consumes the code, marks the
// email verified, and opens a session.
func (s *authService) VerifyOTP(ctx context.Context, email, code string) (*model.User, *model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("looking up user: %w", err)
	}

	if user.OTP == nil || user.OTPExpiry == nil {
		return nil, nil, ErrOTPNotRequested
	}

	if time.Now().After(*user.OTPExpiry) {
		if _, err := s.userStore.ClearOTP(ctx, user.ID); err != nil {
			return nil, nil, fmt.Errorf("clearing expired code: %w", err)
		}
		return nil, nil, ErrOTPExpired
	}

	if *user.OTP != code {
		return nil, nil, ErrOTPMismatch
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	// The code is consumed and the session opened in one transaction, so a
	// code is never burned without a session to show for it.
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		user, err = stores.Users().ConsumeOTP(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("consuming code: %w", err)
		}
		if err := stores.Sessions().Create(ctx, session); err != nil {
			return fmt.Errorf("creating session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "otp verified", "user_id", user.ID, "session_id", session.ID)
	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	if session.ExpiredAt(time.Now()) {
		if err := s.sessionStore.Delete(ctx, session.ID); err != nil {
			slog.WarnContext(ctx, "deleting expired session failed", "error", err, "session_id", session.ID)
		}
		return nil, ErrSessionExpired
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *authService) startSession(ctx context.Context, user *model.User) (*model.User, *model.Session, error) {
	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "session created", "user_id", user.ID, "session_id", session.ID)
	return user, session, nil
}

// generateOTP returns a uniformly distributed six-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
