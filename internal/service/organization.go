package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"syncnotes.app/api-server/common"
	"syncnotes.app/api-server/common/id"
	"syncnotes.app/api-server/common/logger"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/policy"
	"syncnotes.app/api-server/internal/store"
)

var ErrOrgNotFound = errors.New("organization not found")

type OrganizationService interface {
	Create(ctx context.Context, name string, slug, description *string, creatorID int64) (*model.Organization, error)
	Get(ctx context.Context, orgID, callerID int64) (*model.Organization, error)
	Update(ctx context.Context, orgID, callerID int64, name string, description *string) (*model.Organization, error)
	Delete(ctx context.Context, orgID, callerID int64) error
	ListForUser(ctx context.Context, userID int64) ([]model.Organization, error)
}

type organizationService struct {
	orgStore        store.OrganizationStore
	membershipStore store.MembershipStore
	txRunner        TxRunner
}

func NewOrganizationService(orgStore store.OrganizationStore, membershipStore store.MembershipStore, txRunner TxRunner) OrganizationService {
	return &organizationService{
		orgStore:        orgStore,
		membershipStore: membershipStore,
		txRunner:        txRunner,
	}
}

// Create makes the organization and its founding ADMIN membership in one
// transaction, so an organization can never exist without an admin.
func (s *organizationService) Create(ctx context.Context, name string, slug, description *string, creatorID int64) (*model.Organization, error) {
	finalSlug, err := s.ensureSlug(ctx, name, slug)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		ID:          id.New(),
		Name:        name,
		Slug:        finalSlug,
		Description: description,
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Organizations().Create(ctx, org); err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		membership := &model.Membership{
			ID:             id.New(),
			UserID:         creatorID,
			OrganizationID: org.ID,
			Role:           model.RoleAdmin,
		}
		if err := stores.Memberships().Create(ctx, membership); err != nil {
			return fmt.Errorf("creating admin membership: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: org.ID,
			UserID:         creatorID,
			Action:         "Created Organization",
			Details:        logger.Ptr(org.Name),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created",
		"organization_id", org.ID,
		"slug", org.Slug,
		"creator_id", creatorID,
	)

	return org, nil
}

func (s *organizationService) Get(ctx context.Context, orgID, callerID int64) (*model.Organization, error) {
	if _, err := s.requireMembership(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	org, err := s.orgStore.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) Update(ctx context.Context, orgID, callerID int64, name string, description *string) (*model.Organization, error) {
	m, err := s.requireMembership(ctx, callerID, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageMembers(m) {
		return nil, ErrForbidden
	}

	org, err := s.orgStore.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	org.Name = name
	org.Description = description
	if err := s.orgStore.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	return org, nil
}

func (s *organizationService) Delete(ctx context.Context, orgID, callerID int64) error {
	m, err := s.requireMembership(ctx, callerID, orgID)
	if err != nil {
		return err
	}
	if !policy.CanManageMembers(m) {
		return ErrForbidden
	}

	if err := s.orgStore.Delete(ctx, orgID); err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}

	slog.InfoContext(ctx, "organization deleted", "organization_id", orgID, "caller_id", callerID)
	return nil
}

func (s *organizationService) ListForUser(ctx context.Context, userID int64) ([]model.Organization, error) {
	orgs, err := s.orgStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return orgs, nil
}

func (s *organizationService) requireMembership(ctx context.Context, userID, orgID int64) (*model.Membership, error) {
	m, err := s.membershipStore.Get(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	return m, nil
}

func (s *organizationService) ensureSlug(ctx context.Context, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "org")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := s.orgStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := s.orgStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
