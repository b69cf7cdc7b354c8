package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
)

// InMemoryIngredientOptionsCache keeps the picker list in process memory.
// Invalidation is only seen by this instance.
type InMemoryIngredientOptionsCache struct {
	mu        sync.RWMutex
	options   []catalog.IngredientOption
	filled    bool
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemoryIngredientOptionsCache creates an empty cache; ttl 0 never expires
func NewInMemoryIngredientOptionsCache(ttl time.Duration) *InMemoryIngredientOptionsCache {
	return &InMemoryIngredientOptionsCache{ttl: ttl, now: time.Now}
}

// Get returns a copy of the cached list
func (c *InMemoryIngredientOptionsCache) Get(_ context.Context) ([]catalog.IngredientOption, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.filled {
		return nil, false, nil
	}
	if c.ttl > 0 && !c.now().Before(c.expiresAt) {
		return nil, false, nil
	}

	out := make([]catalog.IngredientOption, len(c.options))
	copy(out, c.options)
	return out, true, nil
}

// Set stores a copy of options
func (c *InMemoryIngredientOptionsCache) Set(_ context.Context, options []catalog.IngredientOption) error {
	stored := make([]catalog.IngredientOption, len(options))
	copy(stored, options)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.options = stored
	c.filled = true
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

// Invalidate drops the cached list
func (c *InMemoryIngredientOptionsCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.options = nil
	c.filled = false
	return nil
}

var _ catalog.IngredientOptionsCache = (*InMemoryIngredientOptionsCache)(nil)

// Close is a no-op
func (c *InMemoryIngredientOptionsCache) Close() error {
	return nil
}
