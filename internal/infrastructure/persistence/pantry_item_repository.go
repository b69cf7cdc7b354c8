package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPantryItemRepository implements PantryItemRepository using GORM
type GormPantryItemRepository struct {
	db *gorm.DB
}

// NewGormPantryItemRepository creates a new GormPantryItemRepository
func NewGormPantryItemRepository(db *gorm.DB) *GormPantryItemRepository {
	return &GormPantryItemRepository{db: db}
}

// withRefs preloads the ingredient and owner used for display names
func withRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Ingredient").Preload("Profile")
}

// FindByID finds an active pantry item by its ID
func (r *GormPantryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.PantryItem, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// FindByIDIncludingDeleted finds a pantry item whether or not it was deleted
func (r *GormPantryItemRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*pantry.PantryItem, error) {
	return r.first(r.db.WithContext(ctx).Unscoped(), id)
}

func (r *GormPantryItemRepository) first(db *gorm.DB, id uuid.UUID) (*pantry.PantryItem, error) {
	var model models.PantryItemModel
	if err := db.Scopes(withRefs).First(&model, "pantry_items.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("pantry item")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of active items matching the stock query
func (r *GormPantryItemRepository) FindAll(ctx context.Context, query pantry.StockQuery, filter shared.Filter) ([]pantry.PantryItem, error) {
	db := r.db.WithContext(ctx).
		Model(&models.PantryItemModel{}).
		Scopes(withRefs, stockQueryScope(query))

	if field := ValidateSortField(filter.OrderBy, PantryItemSortFields, ""); field != "" {
		db = db.Order("pantry_items." + field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		db = db.Scopes(expiryAscNullsLast)
	}

	var rows []models.PantryItemModel
	if err := db.Scopes(paginate(filter)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return pantryItemsToDomain(rows), nil
}

// Count counts active items matching the stock query
func (r *GormPantryItemRepository) Count(ctx context.Context, query pantry.StockQuery) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PantryItemModel{}).
		Scopes(stockQueryScope(query)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByOwner returns every active item of one owner, expiry ascending
func (r *GormPantryItemRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]pantry.PantryItem, error) {
	var rows []models.PantryItemModel
	if err := r.db.WithContext(ctx).
		Scopes(withRefs, expiryAscNullsLast).
		Where("pantry_items.profile_id = ?", ownerID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return pantryItemsToDomain(rows), nil
}

// FindExpiringWithin returns up to limit items expiring in [today, today+days]
func (r *GormPantryItemRepository) FindExpiringWithin(ctx context.Context, today time.Time, days, limit int) ([]pantry.PantryItem, error) {
	from := shared.DateOf(today)
	to := shared.AddDays(from, days)

	var rows []models.PantryItemModel
	if err := r.db.WithContext(ctx).
		Scopes(withRefs).
		Where("pantry_items.expiry_date IS NOT NULL").
		Where("pantry_items.expiry_date >= ? AND pantry_items.expiry_date <= ?", from, to).
		Order("pantry_items.expiry_date ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return pantryItemsToDomain(rows), nil
}

// FindRecentlyExpired returns up to limit expired items, latest expiry first
func (r *GormPantryItemRepository) FindRecentlyExpired(ctx context.Context, today time.Time, limit int) ([]pantry.PantryItem, error) {
	var rows []models.PantryItemModel
	if err := r.db.WithContext(ctx).
		Scopes(withRefs).
		Where("pantry_items.expiry_date IS NOT NULL").
		Where("pantry_items.expiry_date < ?", shared.DateOf(today)).
		Order("pantry_items.expiry_date DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return pantryItemsToDomain(rows), nil
}

// CountStats runs one COUNT per counter, each built from the same predicate
// the listing uses for that status.
func (r *GormPantryItemRepository) CountStats(ctx context.Context, ownerID *uuid.UUID, today time.Time) (pantry.Stats, error) {
	base := pantry.StockQuery{OwnerID: ownerID, Today: shared.DateOf(today)}

	var stats pantry.Stats
	var err error
	if stats.Total, err = r.Count(ctx, base); err != nil {
		return pantry.Stats{}, err
	}
	if stats.Expired, err = r.Count(ctx, base.WithStatus(pantry.StatusFilterExpired)); err != nil {
		return pantry.Stats{}, err
	}
	if stats.ExpiringSoon, err = r.Count(ctx, base.WithStatus(pantry.StatusFilterExpiringSoon)); err != nil {
		return pantry.Stats{}, err
	}
	return stats, nil
}

// CountByOwners returns active item counts for the given owners. Owners
// without items are absent from the map.
func (r *GormPantryItemRepository) CountByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ProfileID uuid.UUID
		Count     int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.PantryItemModel{}).
		Select("profile_id, COUNT(*) AS count").
		Where("profile_id IN ?", ownerIDs).
		Group("profile_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ProfileID] = row.Count
	}
	return counts, nil
}

// SoftDelete sets deleted_at on an active item
func (r *GormPantryItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PantryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("pantry item")
	}
	return nil
}

func pantryItemsToDomain(rows []models.PantryItemModel) []pantry.PantryItem {
	out := make([]pantry.PantryItem, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// Ensure GormPantryItemRepository implements PantryItemRepository
var _ pantry.PantryItemRepository = (*GormPantryItemRepository)(nil)
