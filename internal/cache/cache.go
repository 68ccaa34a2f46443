package cache

import (
	"context"
	"encoding/json"
	"time"

	"storefront-admin/internal/config"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache stores JSON-encoded values by key.
type Cache interface {
	// Get decodes the value stored at key into dest. It reports false when the key is absent.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value at key with the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Incr atomically increments the integer at key and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}

// RedisCache implements Cache on a Redis client.
type RedisCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// Connect creates a Redis client from configuration and verifies it with PING.
func Connect(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	logger.Info().Str("addr", cfg.Address).Int("db", cfg.DB).Msg("connected to redis")

	return NewRedisCache(client, logger), nil
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, logger zerolog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger.With().Str("component", "redis-cache").Logger(),
	}
}

// Get decodes the JSON value at key into dest.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to get key %s", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrapf(err, "failed to unmarshal value for key %s", key)
	}

	c.logger.Debug().Str("key", key).Msg("cache hit")
	return true, nil
}

// Set stores value at key as JSON.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set key %s", key)
	}

	c.logger.Debug().Str("key", key).Dur("ttl", ttl).Msg("cache set")
	return nil
}

// Delete removes keys. Missing keys are not an error.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete keys %v", keys)
	}

	c.logger.Debug().Strs("keys", keys).Msg("cache invalidated")
	return nil
}

// Incr atomically increments the counter at key. A missing key starts at zero.
func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment key %s", key)
	}
	return n, nil
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Nop is a Cache that never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Nop) Delete(context.Context, ...string) error { return nil }
func (Nop) Incr(context.Context, string) (int64, error) { return 0, nil }
