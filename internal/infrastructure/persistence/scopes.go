package persistence

import (
	"strings"

	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"gorm.io/gorm"
)

// paginate applies offset/limit from the filter's page and page size
func paginate(filter shared.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(filter.Offset()).Limit(filter.Limit())
	}
}

// likePattern builds a lowercase substring pattern for LOWER(col) LIKE ?.
// The pattern is folded with full Unicode rules. Postgres LOWER() folds the
// column the same way; sqlite's LOWER() folds ASCII only, so non-ASCII
// searches there match case-sensitively.
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

// stockQueryScope translates a StockQuery into SQL over pantry_items.
// Soft-deleted rows are excluded by gorm's DeletedAt scope on the model.
func stockQueryScope(q pantry.StockQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.OwnerID != nil {
			db = db.Where("pantry_items.profile_id = ?", *q.OwnerID)
		}

		if q.Search != "" {
			db = db.Where(
				"EXISTS (SELECT 1 FROM ingredients WHERE ingredients.id = pantry_items.ingredient_id "+
					"AND ingredients.deleted_at IS NULL AND LOWER(ingredients.name) LIKE ?)",
				likePattern(q.Search),
			)
		}

		if b, ok := q.Bounds(); ok {
			db = db.Where(expiryBoundsClause(db, b))
		}
		return db
	}
}

// expiryBoundsClause renders DateBounds as a grouped condition so the
// IS NULL alternative of the safe bucket never leaks into sibling filters.
func expiryBoundsClause(db *gorm.DB, b pantry.DateBounds) *gorm.DB {
	cond := db.Session(&gorm.Session{NewDB: true})
	ranged := db.Session(&gorm.Session{NewDB: true}).Where("pantry_items.expiry_date IS NOT NULL")
	if b.Before != nil {
		ranged = ranged.Where("pantry_items.expiry_date < ?", *b.Before)
	}
	if b.From != nil {
		ranged = ranged.Where("pantry_items.expiry_date >= ?", *b.From)
	}
	if b.To != nil {
		ranged = ranged.Where("pantry_items.expiry_date <= ?", *b.To)
	}
	if b.After != nil {
		ranged = ranged.Where("pantry_items.expiry_date > ?", *b.After)
	}

	cond = cond.Where(ranged)
	if b.IncludeNull {
		cond = cond.Or("pantry_items.expiry_date IS NULL")
	}
	return cond
}

// expiryAscNullsLast orders by expiry date with undated items last. The
// IS NULL key works on both postgres and sqlite.
func expiryAscNullsLast(db *gorm.DB) *gorm.DB {
	return db.
		Order("pantry_items.expiry_date IS NULL").
		Order("pantry_items.expiry_date ASC").
		Order("pantry_items.created_at ASC")
}
