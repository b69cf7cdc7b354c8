package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/domain/shopping"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShoppingListRepository implements ShoppingListRepository using GORM
type GormShoppingListRepository struct {
	db *gorm.DB
}

// NewGormShoppingListRepository creates a new GormShoppingListRepository
func NewGormShoppingListRepository(db *gorm.DB) *GormShoppingListRepository {
	return &GormShoppingListRepository{db: db}
}

// FindByID loads a list with its items, purchased items last
func (r *GormShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.WeeklyShoppingList, error) {
	var model models.WeeklyShoppingListModel
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_items.is_purchased ASC").Order("shopping_list_items.created_at ASC")
		}).
		Preload("Items.Ingredient").
		Preload("Items.SourceRecipe").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("shopping list")
		}
		return nil, err
	}
	list := model.ToDomain()
	if list.Items == nil {
		list.Items = []shopping.Item{}
	}
	return list, nil
}

// FindAll returns one page of lists with item counters filled from a
// single grouped query.
func (r *GormShoppingListRepository) FindAll(ctx context.Context, ownerID *uuid.UUID, page, pageSize int) ([]shopping.WeeklyShoppingList, error) {
	filter := shared.Filter{Page: page, PageSize: pageSize}

	var rows []models.WeeklyShoppingListModel
	if err := r.db.WithContext(ctx).
		Model(&models.WeeklyShoppingListModel{}).
		Preload("Profile").
		Scopes(ownerScope(ownerID), paginate(filter)).
		Order("week_start DESC").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []shopping.WeeklyShoppingList{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	counters, err := r.itemCounters(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]shopping.WeeklyShoppingList, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
		c := counters[rows[i].ID]
		out[i].TotalItems = c.Total
		out[i].PurchasedItems = c.Purchased
	}
	return out, nil
}

// Count counts lists, optionally of one owner
func (r *GormShoppingListRepository) Count(ctx context.Context, ownerID *uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WeeklyShoppingListModel{}).
		Scopes(ownerScope(ownerID)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes the list and its items in one transaction
func (r *GormShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&models.ShoppingListItemModel{}).Error; err != nil {
			return fmt.Errorf("delete shopping list items: %w", err)
		}
		result := tx.Delete(&models.WeeklyShoppingListModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NotFound("shopping list")
		}
		return nil
	})
}

type itemCounter struct {
	ListID    uuid.UUID
	Total     int
	Purchased int
}

func (r *GormShoppingListRepository) itemCounters(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID]itemCounter, error) {
	var rows []itemCounter
	if err := r.db.WithContext(ctx).
		Model(&models.ShoppingListItemModel{}).
		Select("list_id, COUNT(*) AS total, SUM(CASE WHEN is_purchased THEN 1 ELSE 0 END) AS purchased").
		Where("list_id IN ?", listIDs).
		Group("list_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counters := make(map[uuid.UUID]itemCounter, len(rows))
	for _, row := range rows {
		counters[row.ListID] = row
	}
	return counters, nil
}

func ownerScope(ownerID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == nil {
			return db
		}
		return db.Where("profile_id = ?", *ownerID)
	}
}

// Ensure GormShoppingListRepository implements ShoppingListRepository
var _ shopping.ShoppingListRepository = (*GormShoppingListRepository)(nil)
