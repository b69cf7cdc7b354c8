package cache

import (
	"context"
	"fmt"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Backend names reported by the factory
const (
	BackendRedis    = "redis"
	BackendInMemory = "memory"
)

// OptionsCache is an ingredient options cache owning a closable resource
type OptionsCache interface {
	catalog.IngredientOptionsCache
	Close() error
}

// OptionsCacheFactory builds the ingredient options cache from configuration
type OptionsCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// OptionsCacheFactoryOption is a functional option for configuring the factory
type OptionsCacheFactoryOption func(*OptionsCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) OptionsCacheFactoryOption {
	return func(f *OptionsCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable redis degrades to the
// in-memory cache. Default is true.
func WithInMemoryFallback(allow bool) OptionsCacheFactoryOption {
	return func(f *OptionsCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewOptionsCacheFactory creates a new factory
func NewOptionsCacheFactory(cfg config.RedisConfig, opts ...OptionsCacheFactoryOption) *OptionsCacheFactory {
	f := &OptionsCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateRedisCache connects a redis-backed cache
func (f *OptionsCacheFactory) CreateRedisCache(ctx context.Context) (*RedisIngredientOptionsCache, error) {
	return NewRedisIngredientOptionsCache(ctx, RedisConfig{
		Addr:     f.redisConfig.Addr(),
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
		TTL:      f.redisConfig.TTL,
	})
}

// CreateInMemoryCache creates a per-process cache
func (f *OptionsCacheFactory) CreateInMemoryCache() *InMemoryIngredientOptionsCache {
	return NewInMemoryIngredientOptionsCache(f.redisConfig.TTL)
}

// CreateCache returns the redis cache when redis is enabled and reachable,
// and the in-memory cache otherwise. The second value names the backend.
func (f *OptionsCacheFactory) CreateCache(ctx context.Context) (OptionsCache, string, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory ingredient options cache")
		return f.CreateInMemoryCache(), BackendInMemory, nil
	}

	c, err := f.CreateRedisCache(ctx)
	if err == nil {
		f.logger.Info("Using Redis ingredient options cache", zap.String("addr", f.redisConfig.Addr()))
		return c, BackendRedis, nil
	}

	if !f.allowInMemoryFallback {
		return nil, "", fmt.Errorf("redis required for ingredient options cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory ingredient options cache. "+
		"Ingredient writes on other instances will not invalidate it.",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), BackendInMemory, nil
}
