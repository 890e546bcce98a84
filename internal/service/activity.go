package service

import (
	"context"
	"errors"
	"fmt"

	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/store"
)

const (
	defaultActivityPageSize = 50
	maxActivityPageSize     = 200
)

type ActivityService interface {
	List(ctx context.Context, orgID, callerID int64, limit, offset int32) ([]model.ActivityLog, error)
}

type activityService struct {
	activityStore   store.ActivityLogStore
	membershipStore store.MembershipStore
}

func NewActivityService(activityStore store.ActivityLogStore, membershipStore store.MembershipStore) ActivityService {
	return &activityService{
		activityStore:   activityStore,
		membershipStore: membershipStore,
	}
}

// List returns the organization's audit trail, newest first. Any member may
// read it.
func (s *activityService) List(ctx context.Context, orgID, callerID int64, limit, offset int32) ([]model.ActivityLog, error) {
	if _, err := s.membershipStore.Get(ctx, callerID, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}

	if limit <= 0 {
		limit = defaultActivityPageSize
	}
	if limit > maxActivityPageSize {
		limit = maxActivityPageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.activityStore.ListByOrganization(ctx, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return entries, nil
}
