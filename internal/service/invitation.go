package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"syncnotes.app/api-server/common/id"
	"syncnotes.app/api-server/common/logger"
	"syncnotes.app/api-server/internal/mail"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/policy"
	"syncnotes.app/api-server/internal/store"
)

var (
	ErrInviteNotFound      = errors.New("invitation not found")
	ErrInviteExpired       = errors.New("invitation has expired")
	ErrInviteNotPending    = errors.New("invitation has already been resolved")
	ErrInvitePendingExists = errors.New("a pending invitation already exists for this email")
	ErrAlreadyMember       = errors.New("user is already a member of this organization")
)

type InvitationService interface {
	Create(ctx context.Context, orgID, callerID int64, email string, role model.Role) (*model.Invitation, error)
	ListForOrganization(ctx context.Context, orgID, callerID int64) ([]model.Invitation, error)
	ListForUser(ctx context.Context, callerID int64) ([]model.Invitation, error)
	Accept(ctx context.Context, invitationID, callerID int64) (*model.Invitation, error)
	Reject(ctx context.Context, invitationID, callerID int64) (*model.Invitation, error)
	Revoke(ctx context.Context, orgID, invitationID, callerID int64) error
}

type invitationService struct {
	invStore        store.InvitationStore
	userStore       store.UserStore
	membershipStore store.MembershipStore
	orgStore        store.OrganizationStore
	mailer          mail.Mailer
	txRunner        TxRunner
	ttl             time.Duration
}

func NewInvitationService(
	invStore store.InvitationStore,
	userStore store.UserStore,
	membershipStore store.MembershipStore,
	orgStore store.OrganizationStore,
	mailer mail.Mailer,
	txRunner TxRunner,
	ttl time.Duration,
) InvitationService {
	return &invitationService{
		invStore:        invStore,
		userStore:       userStore,
		membershipStore: membershipStore,
		orgStore:        orgStore,
		mailer:          mailer,
		txRunner:        txRunner,
		ttl:             ttl,
	}
}

// Create invites an email address into the organization. Unknown addresses
// get a placeholder user row, claimed later when the invitee registers.
func (s *invitationService) Create(ctx context.Context, orgID, callerID int64, email string, role model.Role) (*model.Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	caller, err := s.requireMembership(ctx, callerID, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageMembers(caller) {
		return nil, ErrForbidden
	}

	invitee, err := s.ensureUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if _, err := s.membershipStore.Get(ctx, invitee.ID, orgID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking membership: %w", err)
	}

	if existing, err := s.invStore.GetPending(ctx, orgID, email); err == nil {
		existing, err = s.reconcile(ctx, existing)
		if err != nil {
			return nil, err
		}
		if existing.Status == model.InvitationPending {
			return nil, ErrInvitePendingExists
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking pending invitation: %w", err)
	}

	inv := &model.Invitation{
		ID:             id.New(),
		OrganizationID: orgID,
		Email:          email,
		Role:           role,
		Status:         model.InvitationPending,
		InvitedByID:    callerID,
		ExpiresAt:      time.Now().Add(s.ttl),
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Invitations().Create(ctx, inv); err != nil {
			return fmt.Errorf("creating invitation: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: orgID,
			UserID:         callerID,
			Action:         "Sent Invitation",
			Details:        logger.Ptr(email),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyInvitee(ctx, inv, caller.UserID)

	slog.InfoContext(ctx, "invitation created",
		"invitation_id", inv.ID,
		"organization_id", orgID,
		"expires_at", inv.ExpiresAt,
	)

	return inv, nil
}

func (s *invitationService) ListForOrganization(ctx context.Context, orgID, callerID int64) ([]model.Invitation, error) {
	caller, err := s.requireMembership(ctx, callerID, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageMembers(caller) {
		return nil, ErrForbidden
	}

	invs, err := s.invStore.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return s.reconcileAll(ctx, invs)
}

func (s *invitationService) ListForUser(ctx context.Context, callerID int64) ([]model.Invitation, error) {
	user, err := s.userStore.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	invs, err := s.invStore.ListPendingByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}

	invs, err = s.reconcileAll(ctx, invs)
	if err != nil {
		return nil, err
	}

	// Lapsed ones were just flipped to EXPIRED; only offer live invitations.
	pending := make([]model.Invitation, 0, len(invs))
	for _, inv := range invs {
		if inv.Status == model.InvitationPending {
			pending = append(pending, inv)
		}
	}
	return pending, nil
}

// Accept turns the invitation into a membership. The status flip and the
// membership insert happen in one transaction.
func (s *invitationService) Accept(ctx context.Context, invitationID, callerID int64) (*model.Invitation, error) {
	inv, err := s.pendingForUser(ctx, invitationID, callerID)
	if err != nil {
		return nil, err
	}

	var accepted *model.Invitation
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		membership := &model.Membership{
			ID:             id.New(),
			UserID:         callerID,
			OrganizationID: inv.OrganizationID,
			Role:           inv.Role,
		}
		if err := stores.Memberships().Create(ctx, membership); err != nil {
			return fmt.Errorf("creating membership: %w", err)
		}

		accepted, err = stores.Invitations().UpdateStatus(ctx, inv.ID, model.InvitationAccepted)
		if err != nil {
			return fmt.Errorf("updating invitation: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: inv.OrganizationID,
			UserID:         callerID,
			Action:         "Joined Organization",
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "invitation accepted",
		"invitation_id", inv.ID,
		"organization_id", inv.OrganizationID,
		"user_id", callerID,
	)

	return accepted, nil
}

func (s *invitationService) Reject(ctx context.Context, invitationID, callerID int64) (*model.Invitation, error) {
	inv, err := s.pendingForUser(ctx, invitationID, callerID)
	if err != nil {
		return nil, err
	}

	rejected, err := s.invStore.UpdateStatus(ctx, inv.ID, model.InvitationRejected)
	if err != nil {
		return nil, fmt.Errorf("updating invitation: %w", err)
	}

	slog.InfoContext(ctx, "invitation rejected", "invitation_id", inv.ID, "user_id", callerID)
	return rejected, nil
}

func (s *invitationService) Revoke(ctx context.Context, orgID, invitationID, callerID int64) error {
	caller, err := s.requireMembership(ctx, callerID, orgID)
	if err != nil {
		return err
	}
	if !policy.CanManageMembers(caller) {
		return ErrForbidden
	}

	inv, err := s.invStore.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return fmt.Errorf("getting invitation: %w", err)
	}
	if inv.OrganizationID != orgID {
		return ErrInviteNotFound
	}
	if inv.Status != model.InvitationPending {
		return ErrInviteNotPending
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Invitations().Delete(ctx, inv.ID); err != nil {
			return fmt.Errorf("deleting invitation: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: orgID,
			UserID:         callerID,
			Action:         "Revoked Invitation",
			Details:        logger.Ptr(inv.Email),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "invitation revoked", "invitation_id", inv.ID, "caller_id", callerID)
	return nil
}

func (s *invitationService) requireMembership(ctx context.Context, userID, orgID int64) (*model.Membership, error) {
	m, err := s.membershipStore.Get(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	return m, nil
}

// pendingForUser loads the invitation and verifies it is addressed to the
// caller and still live. Lapsed invitations are flipped to EXPIRED here.
func (s *invitationService) pendingForUser(ctx context.Context, invitationID, callerID int64) (*model.Invitation, error) {
	inv, err := s.invStore.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if !strings.EqualFold(inv.Email, user.Email) {
		// Do not reveal other people's invitations.
		return nil, ErrInviteNotFound
	}

	inv, err = s.reconcile(ctx, inv)
	if err != nil {
		return nil, err
	}

	switch inv.Status {
	case model.InvitationPending:
		return inv, nil
	case model.InvitationExpired:
		return nil, ErrInviteExpired
	default:
		return nil, ErrInviteNotPending
	}
}

// reconcile lazily flips a lapsed PENDING invitation to EXPIRED.
func (s *invitationService) reconcile(ctx context.Context, inv *model.Invitation) (*model.Invitation, error) {
	if inv.Status != model.InvitationPending || !inv.LapsedAt(time.Now()) {
		return inv, nil
	}

	expired, err := s.invStore.UpdateStatus(ctx, inv.ID, model.InvitationExpired)
	if err != nil {
		return nil, fmt.Errorf("expiring invitation: %w", err)
	}
	expired.Organization = inv.Organization
	expired.InvitedBy = inv.InvitedBy
	return expired, nil
}

func (s *invitationService) reconcileAll(ctx context.Context, invs []model.Invitation) ([]model.Invitation, error) {
	for i := range invs {
		updated, err := s.reconcile(ctx, &invs[i])
		if err != nil {
			return nil, err
		}
		invs[i] = *updated
	}
	return invs, nil
}

// ensureUser returns the user for the email, creating a placeholder row
// (no password) when none exists.
func (s *invitationService) ensureUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	user = &model.User{
		ID:    id.New(),
		Name:  email,
		Email: email,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating placeholder user: %w", err)
	}

	slog.InfoContext(ctx, "placeholder user created for invitation", "user_id", user.ID)
	return user, nil
}

// notifyInvitee emails the invitation. Delivery failure is logged, not
// returned: the invitation is already live and visible in the app.
func (s *invitationService) notifyInvitee(ctx context.Context, inv *model.Invitation, inviterID int64) {
	org, err := s.orgStore.GetByID(ctx, inv.OrganizationID)
	if err != nil {
		slog.WarnContext(ctx, "loading organization for invitation email failed", "error", err)
		return
	}
	inviter, err := s.userStore.GetByID(ctx, inviterID)
	if err != nil {
		slog.WarnContext(ctx, "loading inviter for invitation email failed", "error", err)
		return
	}

	if err := s.mailer.SendInvitation(ctx, inv.Email, org.Name, inviter.Name, string(inv.Role)); err != nil {
		slog.WarnContext(ctx, "invitation email dispatch failed", "error", err, "invitation_id", inv.ID)
	}
}
