package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"syncnotes.app/api-server/core/db/sqlc"
	"syncnotes.app/api-server/internal/model"
)

type invitationStore struct {
	queries *sqlc.Queries
}

func newInvitationStore(queries *sqlc.Queries) InvitationStore {
	return &invitationStore{queries: queries}
}

func (s *invitationStore) Create(ctx context.Context, inv *model.Invitation) error {
	row, err := s.queries.CreateInvitation(ctx, sqlc.CreateInvitationParams{
		ID:             inv.ID,
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		Role:           string(inv.Role),
		Status:         string(inv.Status),
		InvitedByID:    inv.InvitedByID,
		ExpiresAt:      toTimestamptz(inv.ExpiresAt),
	})
	if err != nil {
		return err
	}
	*inv = *toInvitationModel(row)
	return nil
}

func (s *invitationStore) GetByID(ctx context.Context, id int64) (*model.Invitation, error) {
	row, err := s.queries.GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetPending(ctx context.Context, orgID int64, email string) (*model.Invitation, error) {
	row, err := s.queries.GetPendingInvitation(ctx, sqlc.GetPendingInvitationParams{
		OrganizationID: orgID,
		Lower:          email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) UpdateStatus(ctx context.Context, id int64, status model.InvitationStatus) (*model.Invitation, error) {
	row, err := s.queries.UpdateInvitationStatus(ctx, sqlc.UpdateInvitationStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteInvitation(ctx, id)
}

func (s *invitationStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Invitation, error) {
	rows, err := s.queries.ListInvitationsByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Invitation, len(rows))
	for i, row := range rows {
		inv := toInvitationModel(row.Invitation)
		inv.InvitedBy = toUserModel(row.User)
		result[i] = *inv
	}
	return result, nil
}

func (s *invitationStore) ListPendingByEmail(ctx context.Context, email string) ([]model.Invitation, error) {
	rows, err := s.queries.ListPendingInvitationsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	result := make([]model.Invitation, len(rows))
	for i, row := range rows {
		inv := toInvitationModel(row.Invitation)
		inv.Organization = toOrganizationModel(row.Organization)
		result[i] = *inv
	}
	return result, nil
}

func toInvitationModel(row sqlc.Invitation) *model.Invitation {
	return &model.Invitation{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Email:          row.Email,
		Role:           model.Role(row.Role),
		Status:         model.InvitationStatus(row.Status),
		InvitedByID:    row.InvitedByID,
		ExpiresAt:      row.ExpiresAt.Time,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
