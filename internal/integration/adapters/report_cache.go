// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/duitku/backend/internal/application/adapter"
)

// defaultReportCacheTTL bounds how stale a cached report can get even if an
// invalidation is missed.
const defaultReportCacheTTL = 60 * time.Second

// reportCache implements the adapter.ReportCache interface on redis. Entries
// are JSON payloads keyed per user so invalidation can drop a whole user's
// reports with one pattern scan.
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache instance.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	if ttl <= 0 {
		ttl = defaultReportCacheTTL
	}
	return &reportCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *reportCache) cacheKey(userID uuid.UUID, key string) string {
	return fmt.Sprintf("reports:%s:%s", userID, key)
}

// Get retrieves a cached payload for the user under the given key.
func (c *reportCache) Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, c.cacheKey(userID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a payload for the user under the given key.
func (c *reportCache) Set(ctx context.Context, userID uuid.UUID, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.cacheKey(userID, key), payload, c.ttl).Err()
}

// Invalidate drops all cached reports for the user.
func (c *reportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("reports:%s:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
