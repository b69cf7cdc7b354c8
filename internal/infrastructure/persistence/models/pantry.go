package models

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PantryItemModel is the persistence model for pantry stock
type PantryItemModel struct {
	SoftDeleteModel
	ProfileID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Unit         string          `gorm:"type:varchar(20)"`
	PurchaseDate *time.Time      `gorm:"type:date"`
	ExpiryDate   *time.Time      `gorm:"type:date;index"`
	Note         string          `gorm:"type:text"`
	ImageURL     string          `gorm:"type:text"`

	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
	Profile    *ProfileModel    `gorm:"foreignKey:ProfileID"`
}

// TableName returns the table name for GORM
func (PantryItemModel) TableName() string {
	return "pantry_items"
}

// ToDomain converts the persistence model to a domain PantryItem. Joined
// ingredient and profile rows become read-side references.
func (m *PantryItemModel) ToDomain() *pantry.PantryItem {
	item := &pantry.PantryItem{
		BaseEntity:   m.BaseModel.ToDomain(),
		ProfileID:    m.ProfileID,
		IngredientID: m.IngredientID,
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		PurchaseDate: datePtr(m.PurchaseDate),
		ExpiryDate:   datePtr(m.ExpiryDate),
		Note:         m.Note,
		ImageURL:     m.ImageURL,
		DeletedAt:    m.DeletedAtPtr(),
	}
	if m.Ingredient != nil {
		item.Ingredient = &pantry.IngredientRef{
			ID:       m.Ingredient.ID,
			Name:     m.Ingredient.Name,
			Category: m.Ingredient.Category,
		}
	}
	if m.Profile != nil {
		item.Owner = &pantry.OwnerRef{ID: m.Profile.ID, Name: m.Profile.Name}
	}
	return item
}

// FromDomain populates the persistence model from a domain PantryItem
func (m *PantryItemModel) FromDomain(p *pantry.PantryItem) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.SetDeletedAt(p.DeletedAt)
	m.ProfileID = p.ProfileID
	m.IngredientID = p.IngredientID
	m.Quantity = p.Quantity
	m.Unit = p.Unit
	m.PurchaseDate = datePtr(p.PurchaseDate)
	m.ExpiryDate = datePtr(p.ExpiryDate)
	m.Note = p.Note
	m.ImageURL = p.ImageURL
}

// PantryItemModelFromDomain creates a persistence model from a domain PantryItem
func PantryItemModelFromDomain(p *pantry.PantryItem) *PantryItemModel {
	m := &PantryItemModel{}
	m.FromDomain(p)
	return m
}
