package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the app's documents inside a shared redis instance
const keyPrefix = "pano:"

// Redis is a Blob backend over a redis instance, for users who keep their
// board on a server they already run. Same contract as SQLite.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a redis-backed blob store for the given address
func NewRedis(addr string) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// NewRedisClient wraps an existing client
func NewRedisClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

func (r *Redis) Close() error { return r.client.Close() }
