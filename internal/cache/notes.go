// Package cache holds the Redis-backed cache for per-organization note
// listings. Cache failures are never fatal: readers fall back to the
// database and writers log and continue.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"syncnotes.app/api-server/internal/model"
)

// NoteCache caches the full note list of an organization. Entries are
// invalidated whenever any note in the organization changes; visibility
// filtering happens after the cache, per caller.
type NoteCache interface {
	Get(ctx context.Context, orgID int64) ([]model.Note, bool)
	Set(ctx context.Context, orgID int64, notes []model.Note)
	Invalidate(ctx context.Context, orgID int64)
}

type noteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNoteCache(client *redis.Client, ttl time.Duration) NoteCache {
	return &noteCache{client: client, ttl: ttl}
}

func noteKey(orgID int64) string {
	return fmt.Sprintf("org:%d:notes", orgID)
}

func (c *noteCache) Get(ctx context.Context, orgID int64) ([]model.Note, bool) {
	data, err := c.client.Get(ctx, noteKey(orgID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "note cache read failed", "error", err, "organization_id", orgID)
		}
		return nil, false
	}

	var notes []model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		slog.WarnContext(ctx, "note cache entry corrupt, dropping", "error", err, "organization_id", orgID)
		c.Invalidate(ctx, orgID)
		return nil, false
	}
	return notes, true
}

func (c *noteCache) Set(ctx context.Context, orgID int64, notes []model.Note) {
	data, err := json.Marshal(notes)
	if err != nil {
		slog.WarnContext(ctx, "note cache marshal failed", "error", err, "organization_id", orgID)
		return
	}
	if err := c.client.Set(ctx, noteKey(orgID), data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "note cache write failed", "error", err, "organization_id", orgID)
	}
}

func (c *noteCache) Invalidate(ctx context.Context, orgID int64) {
	if err := c.client.Del(ctx, noteKey(orgID)).Err(); err != nil {
		slog.WarnContext(ctx, "note cache invalidation failed", "error", err, "organization_id", orgID)
	}
}

// noopCache is used when Redis is not configured.
type noopCache struct{}

func NewNoopCache() NoteCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, int64) ([]model.Note, bool) { return nil, false }
func (noopCache) Set(context.Context, int64, []model.Note)       {}
func (noopCache) Invalidate(context.Context, int64)              {}
