package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisKV instance
func setupTestRedis(t *testing.T) (*RedisKV, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisKV(client), mr
}

func TestRedisKV_SetGet(t *testing.T) {
	kv, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", `{"email":"user@example.com"}`))

	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"email":"user@example.com"}`, value)
}

func TestRedisKV_GetMissing(t *testing.T) {
	kv, _ := setupTestRedis(t)

	_, err := kv.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisKV_Delete(t *testing.T) {
	kv, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisKV_DeleteMissingIsNoError(t *testing.T) {
	kv, _ := setupTestRedis(t)
	assert.NoError(t, kv.Delete(context.Background(), "missing"))
}

func TestRedisKV_NoExpiry(t *testing.T) {
	kv, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v"))
	assert.Zero(t, mr.TTL("k"), "remembered records must not expire on their own")
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v"))
	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
