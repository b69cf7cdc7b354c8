package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/redis/go-redis/v9"
)

// DefaultOptionsKey is the redis key holding the serialized picker list
const DefaultOptionsKey = "pantry:ingredient-options"

// RedisIngredientOptionsCache stores the picker list in redis so every
// server instance sees the same invalidation
type RedisIngredientOptionsCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisIngredientOptionsCache connects to redis and verifies it with a ping
func NewRedisIngredientOptionsCache(ctx context.Context, cfg RedisConfig) (*RedisIngredientOptionsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	return NewRedisIngredientOptionsCacheWithClient(client, "", cfg.TTL), nil
}

// NewRedisIngredientOptionsCacheWithClient wraps an existing client
func NewRedisIngredientOptionsCacheWithClient(client *redis.Client, key string, ttl time.Duration) *RedisIngredientOptionsCache {
	if key == "" {
		key = DefaultOptionsKey
	}
	return &RedisIngredientOptionsCache{client: client, key: key, ttl: ttl}
}

// Get returns the cached list; a missing key is a miss, not an error
func (c *RedisIngredientOptionsCache) Get(ctx context.Context) ([]catalog.IngredientOption, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read ingredient options: %w", err)
	}

	var options []catalog.IngredientOption
	if err := json.Unmarshal(raw, &options); err != nil {
		// A payload we cannot read is dropped and treated as a miss
		_ = c.client.Del(ctx, c.key).Err()
		return nil, false, nil
	}
	return options, true, nil
}

// Set replaces the cached list. A zero TTL keeps it until invalidated.
func (c *RedisIngredientOptionsCache) Set(ctx context.Context, options []catalog.IngredientOption) error {
	if options == nil {
		options = []catalog.IngredientOption{}
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to encode ingredient options: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store ingredient options: %w", err)
	}
	return nil
}

// Invalidate removes the cached list
func (c *RedisIngredientOptionsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate ingredient options: %w", err)
	}
	return nil
}

// Ping checks the redis connection, used by the health endpoint
func (c *RedisIngredientOptionsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the redis client
func (c *RedisIngredientOptionsCache) Close() error {
	return c.client.Close()
}

var _ catalog.IngredientOptionsCache = (*RedisIngredientOptionsCache)(nil)
