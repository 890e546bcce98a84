package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"syncnotes.app/api-server/common/id"
	"syncnotes.app/api-server/common/logger"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/policy"
	"syncnotes.app/api-server/internal/store"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrLastAdmin      = errors.New("cannot remove the last admin")
	ErrInvalidRole    = errors.New("invalid role")
	ErrSelfTarget     = errors.New("cannot change your own membership")
)

type MemberService interface {
	List(ctx context.Context, orgID, callerID int64) ([]model.Member, error)
	UpdateRole(ctx context.Context, orgID, memberID, callerID int64, role model.Role) (*model.Membership, error)
	Remove(ctx context.Context, orgID, memberID, callerID int64) error
}

type memberService struct {
	membershipStore store.MembershipStore
	txRunner        TxRunner
}

func NewMemberService(membershipStore store.MembershipStore, txRunner TxRunner) MemberService {
	return &memberService{
		membershipStore: membershipStore,
		txRunner:        txRunner,
	}
}

func (s *memberService) List(ctx context.Context, orgID, callerID int64) ([]model.Member, error) {
	if _, err := s.requireMembership(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	members, err := s.membershipStore.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return members, nil
}

// UpdateRole changes a member's role. Admins may not change their own role,
// and demoting the organization's only admin is rejected so the organization
// always keeps at least one.
func (s *memberService) UpdateRole(ctx context.Context, orgID, memberID, callerID int64, role model.Role) (*model.Membership, error) {
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

	target, err := s.getTarget(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}
	if target.UserID == callerID {
		return nil, ErrSelfTarget
	}

	if target.Role == model.RoleAdmin && role != model.RoleAdmin {
		if err := s.requireAnotherAdmin(ctx, orgID); err != nil {
			return nil, err
		}
	}

	var updated *model.Membership
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		updated, err = stores.Memberships().UpdateRole(ctx, target.ID, role)
		if err != nil {
			return fmt.Errorf("updating role: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: orgID,
			UserID:         callerID,
			Action:         "Updated Member Role",
			Details:        logger.Ptr(fmt.Sprintf("%s -> %s", target.Role, role)),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "member role updated",
		"organization_id", orgID,
		"membership_id", target.ID,
		"role", role,
		"caller_id", callerID,
	)

	return updated, nil
}

// Remove deletes a membership. Admins can remove anyone but themselves and
// the last admin.
func (s *memberService) Remove(ctx context.Context, orgID, memberID, callerID int64) error {
	caller, err := s.requireMembership(ctx, callerID, orgID)
	if err != nil {
		return err
	}
	if !policy.CanManageMembers(caller) {
		return ErrForbidden
	}

	target, err := s.getTarget(ctx, orgID, memberID)
	if err != nil {
		return err
	}
	if target.UserID == callerID {
		return ErrSelfTarget
	}

	if target.Role == model.RoleAdmin {
		if err := s.requireAnotherAdmin(ctx, orgID); err != nil {
			return err
		}
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Memberships().Delete(ctx, target.ID); err != nil {
			return fmt.Errorf("deleting membership: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: orgID,
			UserID:         callerID,
			Action:         "Removed Member",
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "member removed",
		"organization_id", orgID,
		"membership_id", target.ID,
		"caller_id", callerID,
	)

	return nil
}

func (s *memberService) requireMembership(ctx context.Context, userID, orgID int64) (*model.Membership, error) {
	m, err := s.membershipStore.Get(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	return m, nil
}

func (s *memberService) getTarget(ctx context.Context, orgID, memberID int64) (*model.Membership, error) {
	target, err := s.membershipStore.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	if target.OrganizationID != orgID {
		return nil, ErrMemberNotFound
	}
	return target, nil
}

func (s *memberService) requireAnotherAdmin(ctx context.Context, orgID int64) error {
	admins, err := s.membershipStore.CountAdmins(ctx, orgID)
	if err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}
