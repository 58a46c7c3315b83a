package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the expiring key store the token denylist writes to. Keys are
// namespaced by the prefix the cache was built with.
type Cache interface {
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache dials redisURL (a redis:// URL or a bare host:port) and pings it
// before returning. Every key is stored under prefix.
func NewRedisCache(redisURL, prefix string) (Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opt.Addr, err)
	}

	return NewFromClient(client, prefix), nil
}

// NewFromClient wraps an existing client. Closing the cache closes the client.
func NewFromClient(client *redis.Client, prefix string) Cache {
	return &redisCache{client: client, prefix: prefix}
}

// SetWithTTL refuses a non-positive ttl so nothing is ever stored forever
func (r *redisCache) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("cache: ttl for %q must be positive, got %s", key, ttl)
	}
	return r.client.Set(ctx, r.prefix+key, value, ttl).Err()
}

func (r *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
