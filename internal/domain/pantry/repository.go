package pantry

import (
	"context"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
)

// PantryItemRepository defines read and soft-delete access to pantry stock
type PantryItemRepository interface {
	// FindByID returns an active item, or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*PantryItem, error)

	// FindByIDIncludingDeleted also returns soft-deleted items
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*PantryItem, error)

	// FindAll returns one page of items matching the query
	FindAll(ctx context.Context, query StockQuery, filter shared.Filter) ([]PantryItem, error)

	// Count counts items matching the query
	Count(ctx context.Context, query StockQuery) (int64, error)

	// FindByOwner returns every active item of an owner, expiry ascending
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]PantryItem, error)

	// FindExpiringWithin returns items expiring between today and today+days
	FindExpiringWithin(ctx context.Context, today time.Time, days, limit int) ([]PantryItem, error)

	// FindRecentlyExpired returns expired items, most recent expiry first
	FindRecentlyExpired(ctx context.Context, today time.Time, limit int) ([]PantryItem, error)

	// CountStats computes the total/expired/expiring-soon counters
	CountStats(ctx context.Context, ownerID *uuid.UUID, today time.Time) (Stats, error)

	// CountByOwners returns active item counts keyed by owner
	CountByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// SoftDelete sets the deletion marker; missing or deleted items yield shared.ErrNotFound
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
