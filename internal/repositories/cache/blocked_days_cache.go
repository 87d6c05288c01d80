package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

// RedisBlockedDaysCache stores each workspace's blocked days as a JSON array.
type RedisBlockedDaysCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ portssvc.BlockedDaysCache = (*RedisBlockedDaysCache)(nil)

func NewRedisBlockedDaysCache(client *redis.Client, ttl time.Duration) *RedisBlockedDaysCache {
	return &RedisBlockedDaysCache{client: client, ttl: ttl}
}

func blockedDaysKey(workspaceID int64) string {
	return fmt.Sprintf("blocked_days:%d", workspaceID)
}

func (c *RedisBlockedDaysCache) Get(ctx context.Context, workspaceID int64) ([]string, bool, error) {
	val, err := c.client.Get(ctx, blockedDaysKey(workspaceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get blocked days from redis: %w", err)
	}
	var days []string
	if err := json.Unmarshal(val, &days); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal blocked days: %w", err)
	}
	return days, true, nil
}

func (c *RedisBlockedDaysCache) Set(ctx context.Context, workspaceID int64, days []string) error {
	if days == nil {
		days = []string{}
	}
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to marshal blocked days: %w", err)
	}
	if err := c.client.Set(ctx, blockedDaysKey(workspaceID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set blocked days in redis: %w", err)
	}
	return nil
}

func (c *RedisBlockedDaysCache) Invalidate(ctx context.Context, workspaceID int64) error {
	if err := c.client.Del(ctx, blockedDaysKey(workspaceID)).Err(); err != nil {
		return fmt.Errorf("failed to delete blocked days from redis: %w", err)
	}
	return nil
}
