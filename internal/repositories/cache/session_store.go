package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps one hash per session. Every write refreshes the TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ portssvc.KeyValueStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(scope string) string {
	return "session:" + scope
}

func (s *RedisSessionStore) Get(ctx context.Context, scope, key string) (string, bool, error) {
	val, err := s.client.HGet(ctx, sessionKey(scope), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get session value from redis: %w", err)
	}
	return val, true, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, scope, key, value string) error {
	k := sessionKey(scope)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	if s.ttl > 0 {
		pipe.Expire(ctx, k, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set session value in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Remove(ctx context.Context, scope, key string) error {
	if err := s.client.HDel(ctx, sessionKey(scope), key).Err(); err != nil {
		return fmt.Errorf("failed to delete session value from redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetAll(ctx context.Context, scope string) (map[string]string, error) {
	vals, err := s.client.HGetAll(ctx, sessionKey(scope)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	return vals, nil
}
