package mem

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokensExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewRevokedTokens()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
	require.NoError(t, store.Revoke(ctx, "jti-2", 0))

	ok, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRevokedTokens(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("set TEST_REDIS_URL to run redis integration tests")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	store := NewRedisRevokedTokens(client)
	id := uuid.NewString()

	ok, err := store.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Revoke(ctx, id, time.Minute))
	ok, err = store.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ttl, err := client.TTL(ctx, revokedKeyPrefix+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
