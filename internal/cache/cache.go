// Package cache provides an optional Redis-backed cache for raw upstream
// responses. A nil *Cache is valid and behaves as a cache that never hits,
// so callers need no conditional wiring when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache reads and writes JSON blobs in Redis with a per-entry TTL.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates a Redis cache from a redis:// URL and verifies the connection.
func New(redisURL string, redisPassword string, logger *slog.Logger) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	if redisPassword != "" {
		opt.Password = redisPassword
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Cache{
		client: client,
		logger: logger.With("component", "cache"),
	}, nil
}

// Get unmarshals the cached value for key into dest. Returns false on a
// miss or on any Redis or decode failure; a degraded cache never fails the
// enclosing request.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	jsonBytes, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache_get_failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(jsonBytes, dest); err != nil {
		c.logger.Debug("cache_decode_failed", "key", key, "error", err)
		return false
	}

	return true
}

// Set stores value under key with the given TTL. Failures are logged and
// swallowed.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}

	jsonBytes, err := json.Marshal(value)
	if err != nil {
		c.logger.Debug("cache_encode_failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, jsonBytes, ttl).Err(); err != nil {
		c.logger.Debug("cache_set_failed", "key", key, "error", err)
	}
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
