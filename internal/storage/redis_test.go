package storage

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisClient(client)
}

func TestRedisGetAbsent(t *testing.T) {
	r := newTestRedis(t)

	_, found, err := r.Get(context.Background(), TasksKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t)

	require.NoError(t, r.Set(ctx, BoardKey, []byte(`{"id":"default"}`)))

	value, found, err := r.Get(ctx, BoardKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"id":"default"}`, string(value))
}

func TestRedisKeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := NewRedisClient(client)
	require.NoError(t, r.Set(ctx, TasksKey, []byte("[]")))

	assert.True(t, mr.Exists("pano:tasks"))
	assert.False(t, mr.Exists("tasks"))
}
