package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimitStore(client), mr
}

func TestRateLimitStore_Allow(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		result, err := store.Allow(ctx, "fund:10.0.0.1", 3, time.Hour)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i)
		assert.Equal(t, int64(3), result.Limit)
		assert.Equal(t, 3-i, result.Remaining)
	}

	result, err := store.Allow(ctx, "fund:10.0.0.1", 3, time.Hour)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Zero(t, result.Remaining)

	other, err := store.Allow(ctx, "fund:10.0.0.2", 3, time.Hour)
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are independent")
}

func TestRateLimitStore_WindowRollover(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	now := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return now }

	_, err := store.Allow(ctx, "payments:10.0.0.1", 1, time.Minute)
	require.NoError(t, err)
	blocked, err := store.Allow(ctx, "payments:10.0.0.1", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)
	assert.Equal(t, (now.Unix()/60+1)*60, blocked.ResetAt)
	assert.Equal(t, blocked.ResetAt-now.Unix(), blocked.RetryAfter(now))

	now = now.Add(time.Minute)
	result, err := store.Allow(ctx, "payments:10.0.0.1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRateLimitStore_SetsExpiry(t *testing.T) {
	store, mr := newTestStore(t)

	now := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return now }

	_, err := store.Allow(context.Background(), "fund:10.0.0.1", 5, time.Hour)
	require.NoError(t, err)

	key := "sps:ratelimit:fund:10.0.0.1:472222"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour+time.Second, mr.TTL(key))
}

func TestRateLimitStore_InvalidWindow(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Allow(context.Background(), "k", 1, 500*time.Millisecond)
	assert.Error(t, err)
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Allow(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
}

func TestRateLimitResult_RetryAfterFloor(t *testing.T) {
	r := RateLimitResult{ResetAt: 100}
	assert.Equal(t, int64(1), r.RetryAfter(time.Unix(200, 0)))
}
