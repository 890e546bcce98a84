package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"syncnotes.app/api-server/common/id"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/service"
)

var _ = Describe("AuthService", func() {
	var (
		svc      service.AuthService
		users    *mockUserStore
		sessions *mockSessionStore
		mailer   *mockMailer
		txRunner *mockTxRunner
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		sessions = &mockSessionStore{}
		mailer = &mockMailer{}
		txRunner = &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{users: users, sessions: sessions})
			},
		}
		svc = service.NewAuthService(users, sessions, mailer, txRunner, 24*time.Hour)
		Expect(id.Init(1)).To(Succeed())
	})

	hashOf := func(password string) *string {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		s := string(hash)
		return &s
	}

	Describe("Register", func() {
		It("rejects an email that already has a password", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, PasswordHash: hashOf("existing")}, nil
			}

			_, _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123")
			Expect(err).To(MatchError(service.ErrEmailTaken))
		})

		It("claims a placeholder account created by an invitation", func() {
			placeholder := &model.User{ID: 7, Name: "ada@example.com", Email: "ada@example.com"}
			users.getByEmailFn = func(_ context.Context, _ string) (*model.User, error) {
				return placeholder, nil
			}

			var claimedName string
			users.setPasswordFn = func(_ context.Context, userID int64, name string, passwordHash string) (*model.User, error) {
				Expect(userID).To(Equal(int64(7)))
				Expect(bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123"))).To(Succeed())
				claimedName = name
				return &model.User{ID: 7, Name: name, Email: "ada@example.com", PasswordHash: &passwordHash}, nil
			}

			user, session, err := svc.Register(ctx, "Ada Lovelace", "ada@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(claimedName).To(Equal("Ada Lovelace"))
			Expect(user.ID).To(Equal(int64(7)))
			Expect(session.UserID).To(Equal(int64(7)))
		})

		It("creates a fresh user and session, normalizing the email", func() {
			var created *model.User
			users.createFn = func(_ context.Context, user *model.User) error {
				created = user
				return nil
			}

			user, session, err := svc.Register(ctx, "Ada", "  ADA@Example.com ", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())
			Expect(created.Email).To(Equal("ada@example.com"))
			Expect(created.PasswordHash).NotTo(BeNil())
			Expect(user.ID).To(Equal(created.ID))
			Expect(session.UserID).To(Equal(created.ID))
			Expect(session.ExpiresAt).To(BeTemporally("~", time.Now().Add(24*time.Hour), time.Minute))
		})
	})

	Describe("LoginWithPassword", func() {
		It("does not reveal whether the account exists", func() {
			_, _, err := svc.LoginWithPassword(ctx, "ghost@example.com", "whatever")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("rejects placeholder accounts without a password", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email}, nil
			}

			_, _, err := svc.LoginWithPassword(ctx, "ada@example.com", "whatever")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("rejects a wrong password", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, PasswordHash: hashOf("right")}, nil
			}

			_, _, err := svc.LoginWithPassword(ctx, "ada@example.com", "wrong")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("opens a session on a correct password", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 42, Email: email, PasswordHash: hashOf("right")}, nil
			}

			var created *model.Session
			sessions.createFn = func(_ context.Context, session *model.Session) error {
				created = session
				return nil
			}

			_, session, err := svc.LoginWithPassword(ctx, "ada@example.com", "right")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())
			Expect(session.UserID).To(Equal(int64(42)))
		})
	})

	Describe("RequestOTP", func() {
		It("fails for an unknown email", func() {
			err := svc.RequestOTP(ctx, "ghost@example.com")
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})

		It("issues a six-digit code with a ten-minute expiry", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Name: "Ada", Email: email}, nil
			}

			var sentCode string
			mailer.sendOTPFn = func(_ context.Context, to, name, code string) error {
				Expect(to).To(Equal("ada@example.com"))
				sentCode = code
				return nil
			}

			var storedCode string
			var storedExpiry time.Time
			users.setOTPFn = func(_ context.Context, userID int64, otp string, expiry time.Time) (*model.User, error) {
				Expect(userID).To(Equal(int64(1)))
				storedCode = otp
				storedExpiry = expiry
				return &model.User{ID: userID}, nil
			}

			Expect(svc.RequestOTP(ctx, "ada@example.com")).To(Succeed())
			Expect(sentCode).To(MatchRegexp(`^\d{6}$`))
			Expect(storedCode).To(Equal(sentCode))
			Expect(storedExpiry).To(BeTemporally("~", time.Now().Add(10*time.Minute), time.Minute))
		})

		It("does not store a code when the email cannot be sent", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Name: "Ada", Email: email}, nil
			}
			mailer.sendOTPFn = func(_ context.Context, _, _, _ string) error {
				return context.DeadlineExceeded
			}

			stored := false
			users.setOTPFn = func(_ context.Context, _ int64, _ string, _ time.Time) (*model.User, error) {
				stored = true
				return nil, nil
			}

			err := svc.RequestOTP(ctx, "ada@example.com")
			Expect(err).To(MatchError(service.ErrEmailDispatch))
			Expect(stored).To(BeFalse())
		})

		It("overwrites a previously stored code", func() {
			old := "111111"
			oldExpiry := time.Now().Add(5 * time.Minute)
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Name: "Ada", Email: email, OTP: &old, OTPExpiry: &oldExpiry}, nil
			}

			var storedCode string
			users.setOTPFn = func(_ context.Context, _ int64, otp string, _ time.Time) (*model.User, error) {
				storedCode = otp
				return &model.User{ID: 1}, nil
			}

			Expect(svc.RequestOTP(ctx, "ada@example.com")).To(Succeed())
			Expect(storedCode).NotTo(BeEmpty())
			Expect(storedCode).NotTo(Equal(old))
		})
	})

	Describe("VerifyOTP", func() {
		It("fails when no code was requested", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email}, nil
			}

			_, _, err := svc.VerifyOTP(ctx, "ada@example.com", "123456")
			Expect(err).To(MatchError(service.ErrOTPNotRequested))
		})

		It("clears an expired code and rejects it", func() {
			code := "123456"
			expiry := time.Now().Add(-time.Minute)
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, OTP: &code, OTPExpiry: &expiry}, nil
			}

			cleared := false
			users.clearOTPFn = func(_ context.Context, userID int64) (*model.User, error) {
				Expect(userID).To(Equal(int64(1)))
				cleared = true
				return &model.User{ID: userID}, nil
			}

			_, _, err := svc.VerifyOTP(ctx, "ada@example.com", "123456")
			Expect(err).To(MatchError(service.ErrOTPExpired))
			Expect(cleared).To(BeTrue())
		})

		It("keeps the stored code on a mismatch so the user can retry", func() {
			code := "123456"
			expiry := time.Now().Add(5 * time.Minute)
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, OTP: &code, OTPExpiry: &expiry}, nil
			}

			users.clearOTPFn = func(_ context.Context, _ int64) (*model.User, error) {
				Fail("mismatched code must not clear the stored one")
				return nil, nil
			}
			users.consumeOTPFn = func(_ context.Context, _ int64) (*model.User, error) {
				Fail("mismatched code must not be consumed")
				return nil, nil
			}

			_, _, err := svc.VerifyOTP(ctx, "ada@example.com", "654321")
			Expect(err).To(MatchError(service.ErrOTPMismatch))
		})

		It("consumes a matching code and opens a session", func() {
			code := "123456"
			expiry := time.Now().Add(5 * time.Minute)
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, OTP: &code, OTPExpiry: &expiry}, nil
			}

			consumed := false
			users.consumeOTPFn = func(_ context.Context, userID int64) (*model.User, error) {
				consumed = true
				now := time.Now()
				return &model.User{ID: userID, Email: "ada@example.com", EmailVerified: &now}, nil
			}

			user, session, err := svc.VerifyOTP(ctx, "ada@example.com", "123456")
			Expect(err).NotTo(HaveOccurred())
			Expect(consumed).To(BeTrue())
			Expect(user.EmailVerified).NotTo(BeNil())
			Expect(session.UserID).To(Equal(int64(1)))
		})

		It("consumes the code and opens the session in one transaction", func() {
			code := "123456"
			expiry := time.Now().Add(5 * time.Minute)
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, OTP: &code, OTPExpiry: &expiry}, nil
			}

			inTx := false
			txRunner.withTxFn = func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				inTx = true
				defer func() { inTx = false }()
				return fn(&mockStoreProvider{users: users, sessions: sessions})
			}
			users.consumeOTPFn = func(_ context.Context, userID int64) (*model.User, error) {
				Expect(inTx).To(BeTrue(), "the code must be consumed inside the transaction")
				return &model.User{ID: userID, Email: "ada@example.com"}, nil
			}
			sessions.createFn = func(_ context.Context, _ *model.Session) error {
				Expect(inTx).To(BeTrue(), "the session must be created inside the transaction")
				return nil
			}

			_, _, err := svc.VerifyOTP(ctx, "ada@example.com", "123456")
			Expect(err).NotTo(HaveOccurred())
		})

		It("surfaces a session insert failure from the transaction", func() {
			code := "123456"
			expiry := time.Now().Add(5 * time.Minute)
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, OTP: &code, OTPExpiry: &expiry}, nil
			}
			users.consumeOTPFn = func(_ context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, Email: "ada@example.com"}, nil
			}
			sessions.createFn = func(_ context.Context, _ *model.Session) error {
				return context.DeadlineExceeded
			}

			_, _, err := svc.VerifyOTP(ctx, "ada@example.com", "123456")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ValidateSession", func() {
		It("deletes an expired session and reports it", func() {
			users.getByIDFn = func(_ context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID}, nil
			}
			sessions.getByIDFn = func(_ context.Context, sessionID int64) (*model.Session, error) {
				return &model.Session{ID: sessionID, UserID: 1, ExpiresAt: time.Now().Add(-time.Hour)}, nil
			}

			deleted := false
			sessions.deleteFn = func(_ context.Context, _ int64) error {
				deleted = true
				return nil
			}

			_, err := svc.ValidateSession(ctx, 99)
			Expect(err).To(MatchError(service.ErrSessionExpired))
			Expect(deleted).To(BeTrue())
		})

		It("returns the user for a live session", func() {
			sessions.getByIDFn = func(_ context.Context, sessionID int64) (*model.Session, error) {
				return &model.Session{ID: sessionID, UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
			}
			users.getByIDFn = func(_ context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, Email: "ada@example.com"}, nil
			}

			user, err := svc.ValidateSession(ctx, 99)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("ada@example.com"))
		})
	})
})
