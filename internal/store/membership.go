package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"syncnotes.app/api-server/core/db/sqlc"
	"syncnotes.app/api-server/internal/model"
)

type membershipStore struct {
	queries *sqlc.Queries
}

func newMembershipStore(queries *sqlc.Queries) MembershipStore {
	return &membershipStore{queries: queries}
}

func (s *membershipStore) Create(ctx context.Context, m *model.Membership) error {
	row, err := s.queries.CreateMembership(ctx, sqlc.CreateMembershipParams{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           string(m.Role),
	})
	if err != nil {
		return err
	}
	*m = *toMembershipModel(row)
	return nil
}

func (s *membershipStore) GetByID(ctx context.Context, id int64) (*model.Membership, error) {
	row, err := s.queries.GetMembershipByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMembershipModel(row), nil
}

func (s *membershipStore) Get(ctx context.Context, userID, orgID int64) (*model.Membership, error) {
	row, err := s.queries.GetMembership(ctx, sqlc.GetMembershipParams{
		UserID:         userID,
		OrganizationID: orgID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMembershipModel(row), nil
}

func (s *membershipStore) UpdateRole(ctx context.Context, id int64, role model.Role) (*model.Membership, error) {
	row, err := s.queries.UpdateMembershipRole(ctx, sqlc.UpdateMembershipRoleParams{
		ID:   id,
		Role: string(role),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMembershipModel(row), nil
}

func (s *membershipStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteMembership(ctx, id)
}

func (s *membershipStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Member, error) {
	rows, err := s.queries.ListMembersByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Member, len(rows))
	for i, row := range rows {
		result[i] = model.Member{
			Membership: *toMembershipModel(row.Membership),
			User:       toUserModel(row.User),
		}
	}
	return result, nil
}

func (s *membershipStore) CountAdmins(ctx context.Context, orgID int64) (int64, error) {
	return s.queries.CountAdminsByOrganization(ctx, orgID)
}

func toMembershipModel(row sqlc.Membership) *model.Membership {
	return &model.Membership{
		ID:             row.ID,
		UserID:         row.UserID,
		OrganizationID: row.OrganizationID,
		Role:           model.Role(row.Role),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
