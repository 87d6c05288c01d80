package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func TestRedisSessionStore(t *testing.T) {
	s, client := newTestRedis(t)
	store := NewRedisSessionStore(client, time.Hour)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "abc", "location", "Toronto"))

		got, ok, err := store.Get(ctx, "abc", "location")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Toronto", got)
		assert.Equal(t, time.Hour, s.TTL("session:abc"))
	})

	t.Run("MissingKey", func(t *testing.T) {
		got, ok, err := store.Get(ctx, "abc", "people")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("ScopesAreIsolated", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "other", "location", "Ottawa"))

		all, err := store.GetAll(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"location": "Toronto"}, all)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "abc", "location"))

		_, ok, err := store.Get(ctx, "abc", "location")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "room", "2"))
	require.NoError(t, store.Set(ctx, "s2", "room", "5"))

	got, ok, err := store.Get(ctx, "s1", "room")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", got)

	all, err := store.GetAll(ctx, "s1")
	require.NoError(t, err)
	all["room"] = "mutated"
	got, _, _ = store.Get(ctx, "s1", "room")
	assert.Equal(t, "2", got, "GetAll returns a copy")

	require.NoError(t, store.Remove(ctx, "s1", "room"))
	_, ok, _ = store.Get(ctx, "s1", "room")
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, "missing", "room"))
}

func TestRedisBlockedDaysCache(t *testing.T) {
	s, client := newTestRedis(t)
	cache := NewRedisBlockedDaysCache(client, 5*time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	days := []string{"03/01/2024", "03/02/2024"}
	require.NoError(t, cache.Set(ctx, 42, days))
	assert.Equal(t, 5*time.Minute, s.TTL("blocked_days:42"))

	got, ok, err := cache.Get(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, days, got)

	require.NoError(t, cache.Set(ctx, 7, nil))
	got, ok, err = cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)

	require.NoError(t, cache.Invalidate(ctx, 42))
	_, ok, err = cache.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisBlockedDaysCache_CorruptValue(t *testing.T) {
	s, client := newTestRedis(t)
	cache := NewRedisBlockedDaysCache(client, time.Minute)
	require.NoError(t, s.Set("blocked_days:1", "not-json"))

	_, ok, err := cache.Get(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, ok)
}
