package models

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// SoftDeleteModel extends BaseModel with a gorm-managed deletion marker.
// Queries through gorm skip rows whose deleted_at is set unless Unscoped.
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// DeletedAtPtr returns the deletion marker as a nullable time
func (m *SoftDeleteModel) DeletedAtPtr() *time.Time {
	if !m.DeletedAt.Valid {
		return nil
	}
	t := m.DeletedAt.Time
	return &t
}

// SetDeletedAt copies a nullable domain marker into the model
func (m *SoftDeleteModel) SetDeletedAt(t *time.Time) {
	if t == nil {
		m.DeletedAt = gorm.DeletedAt{}
		return
	}
	m.DeletedAt = gorm.DeletedAt{Time: *t, Valid: true}
}

// datePtr normalizes a nullable calendar date to midnight UTC
func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := shared.DateOf(*t)
	return &d
}

// All returns every model in dependency order, for AutoMigrate in local
// sqlite databases and tests. Postgres schemas come from migrations/.
func All() []interface{} {
	return []interface{}{
		&ProfileModel{},
		&IngredientModel{},
		&PantryItemModel{},
		&RecipeModel{},
		&RecipeIngredientModel{},
		&RecipeMatchModel{},
		&MealPlanModel{},
		&MealPlanRecipeModel{},
		&WeeklyShoppingListModel{},
		&ShoppingListItemModel{},
	}
}
