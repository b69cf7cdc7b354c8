package cache

import (
	"context"
	"testing"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// unreachableRedis points at a port nothing listens on
func unreachableRedis() config.RedisConfig {
	return config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1, TTL: time.Minute}
}

func TestOptionsCacheFactory_RedisDisabled(t *testing.T) {
	f := NewOptionsCacheFactory(config.RedisConfig{Enabled: false})

	c, backend, err := f.CreateCache(context.Background())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, BackendInMemory, backend)
	assert.IsType(t, &InMemoryIngredientOptionsCache{}, c)
}

func TestOptionsCacheFactory_FallsBackWhenRedisUnreachable(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := NewOptionsCacheFactory(unreachableRedis(), WithLogger(zap.New(core)))

	c, backend, err := f.CreateCache(context.Background())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, BackendInMemory, backend)
	assert.Equal(t, 1, logs.FilterMessageSnippet("falling back").Len())
}

func TestOptionsCacheFactory_NoFallback(t *testing.T) {
	f := NewOptionsCacheFactory(unreachableRedis(), WithInMemoryFallback(false))

	c, _, err := f.CreateCache(context.Background())
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestOptionsCacheFactory_InMemoryUsesConfiguredTTL(t *testing.T) {
	f := NewOptionsCacheFactory(config.RedisConfig{TTL: 3 * time.Minute})
	assert.Equal(t, 3*time.Minute, f.CreateInMemoryCache().ttl)
}
