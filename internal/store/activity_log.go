package store

import (
	"context"

	"syncnotes.app/api-server/core/db/sqlc"
	"syncnotes.app/api-server/internal/model"
)

type activityLogStore struct {
	queries *sqlc.Queries
}

func newActivityLogStore(queries *sqlc.Queries) ActivityLogStore {
	return &activityLogStore{queries: queries}
}

func (s *activityLogStore) Create(ctx context.Context, entry *model.ActivityLog) error {
	row, err := s.queries.CreateActivityLog(ctx, sqlc.CreateActivityLogParams{
		ID:             entry.ID,
		OrganizationID: entry.OrganizationID,
		UserID:         entry.UserID,
		Action:         entry.Action,
		Details:        entry.Details,
	})
	if err != nil {
		return err
	}
	*entry = *toActivityLogModel(row)
	return nil
}

func (s *activityLogStore) ListByOrganization(ctx context.Context, orgID int64, limit, offset int32) ([]model.ActivityLog, error) {
	rows, err := s.queries.ListActivityLogsByOrganization(ctx, sqlc.ListActivityLogsByOrganizationParams{
		OrganizationID: orgID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.ActivityLog, len(rows))
	for i, row := range rows {
		entry := toActivityLogModel(row.ActivityLog)
		entry.User = toUserModel(row.User)
		result[i] = *entry
	}
	return result, nil
}

func toActivityLogModel(row sqlc.ActivityLog) *model.ActivityLog {
	return &model.ActivityLog{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		UserID:         row.UserID,
		Action:         row.Action,
		Details:        row.Details,
		CreatedAt:      row.CreatedAt.Time,
	}
}
