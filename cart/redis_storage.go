package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage snapshots the cart into Redis, keyed per session so a cart
// survives process restarts without being shared across sessions.
type RedisStorage struct {
	Client *redis.Client
	// Prefix namespaces the snapshot key, typically the session ID.
	Prefix string
	// TTL of zero keeps snapshots until overwritten.
	TTL time.Duration
}

func (r RedisStorage) Load(key string) ([]byte, error) {
	data, err := r.Client.Get(context.Background(), r.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (r RedisStorage) Save(key string, data []byte) error {
	return r.Client.Set(context.Background(), r.Prefix+key, data, r.TTL).Err()
}
