package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notewise/internal/auth/adapters/cache"
	"notewise/internal/auth/domain/entities"
	portscache "notewise/internal/auth/ports/cache"
)

func setupCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, portscache.ProfileCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, cache.NewRedisProfileCache(client, ttl)
}

func TestProfileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, profileCache := setupCache(t, 5*time.Minute)

	user := &entities.User{
		ID:             1,
		Email:          "alice@example.com",
		Username:       "alice",
		PasswordDigest: entities.DigestFromHash("$2a$10$hash"),
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, profileCache.SetProfile(ctx, user))

	cached, err := profileCache.GetProfile(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, user.ID, cached.ID)
	assert.Equal(t, user.Email, cached.Email)
	assert.Equal(t, user.Username, cached.Username)
	assert.True(t, user.CreatedAt.Equal(cached.CreatedAt))
	// Хэш пароля в кэш не попадает.
	assert.True(t, cached.PasswordDigest.IsZero())
}

func TestProfileCacheMiss(t *testing.T) {
	ctx := context.Background()
	_, profileCache := setupCache(t, 5*time.Minute)

	cached, err := profileCache.GetProfile(ctx, 42)

	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestProfileCacheNeverStoresPasswordHash(t *testing.T) {
	ctx := context.Background()
	server, profileCache := setupCache(t, 5*time.Minute)

	user := &entities.User{
		ID:             1,
		Email:          "alice@example.com",
		Username:       "alice",
		PasswordDigest: entities.DigestFromHash("$2a$10$supersecret"),
	}
	require.NoError(t, profileCache.SetProfile(ctx, user))

	raw, err := server.Get("profile:1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "supersecret")
	assert.NotContains(t, raw, "password")
}

func TestProfileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	server, profileCache := setupCache(t, time.Minute)

	require.NoError(t, profileCache.SetProfile(ctx, &entities.User{ID: 1, Username: "alice"}))

	server.FastForward(2 * time.Minute)

	cached, err := profileCache.GetProfile(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestProfileCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	_, profileCache := setupCache(t, 5*time.Minute)

	require.NoError(t, profileCache.SetProfile(ctx, &entities.User{ID: 1, Username: "alice"}))
	require.NoError(t, profileCache.InvalidateProfile(ctx, 1))

	cached, err := profileCache.GetProfile(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestProfileCacheCorruptEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	server, profileCache := setupCache(t, 5*time.Minute)

	require.NoError(t, server.Set("profile:1", "{not-json"))

	cached, err := profileCache.GetProfile(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, cached)
}
