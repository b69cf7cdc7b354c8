package models

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeeklyShoppingListModel is the persistence model for shopping lists
type WeeklyShoppingListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255)"`
	WeekStart time.Time `gorm:"type:date;not null;index"`
	CreatedAt time.Time `gorm:"not null"`

	Profile *ProfileModel           `gorm:"foreignKey:ProfileID"`
	Items   []ShoppingListItemModel `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (WeeklyShoppingListModel) TableName() string {
	return "weekly_shopping_lists"
}

// ToDomain converts the model; counters are derived when items were loaded
func (m *WeeklyShoppingListModel) ToDomain() *shopping.WeeklyShoppingList {
	list := &shopping.WeeklyShoppingList{
		ID:          m.ID,
		ProfileID:   m.ProfileID,
		ProfileName: "N/A",
		Title:       m.Title,
		WeekStart:   *datePtr(&m.WeekStart),
		CreatedAt:   m.CreatedAt,
	}
	if m.Profile != nil && m.Profile.Name != "" {
		list.ProfileName = m.Profile.Name
	}
	if m.Items != nil {
		list.Items = make([]shopping.Item, len(m.Items))
		for i := range m.Items {
			list.Items[i] = m.Items[i].ToDomain()
		}
		list.RecountItems()
	}
	return list
}

// ShoppingListItemModel is one line of a shopping list
type ShoppingListItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	ListID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	IngredientID   *uuid.UUID      `gorm:"type:uuid;index"`
	MealPlanID     *uuid.UUID      `gorm:"type:uuid"`
	SourceRecipeID *uuid.UUID      `gorm:"type:uuid"`
	SourceName     string          `gorm:"type:varchar(255)"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`
	Unit           string          `gorm:"type:varchar(20)"`
	IsPurchased    bool            `gorm:"not null;default:false"`
	CreatedAt      time.Time       `gorm:"not null"`

	Ingredient   *IngredientModel `gorm:"foreignKey:IngredientID"`
	SourceRecipe *RecipeModel     `gorm:"foreignKey:SourceRecipeID"`
}

// TableName returns the table name for GORM
func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}

// ToDomain converts the persistence model to a domain Item
func (m *ShoppingListItemModel) ToDomain() shopping.Item {
	item := shopping.Item{
		ID:             m.ID,
		IngredientID:   m.IngredientID,
		MealPlanID:     m.MealPlanID,
		SourceRecipeID: m.SourceRecipeID,
		SourceName:     m.SourceName,
		Quantity:       m.Quantity,
		Unit:           m.Unit,
		IsPurchased:    m.IsPurchased,
		CreatedAt:      m.CreatedAt,
	}
	if m.Ingredient != nil {
		item.IngredientName = m.Ingredient.Name
	}
	if m.SourceRecipe != nil {
		item.SourceRecipe = m.SourceRecipe.Title
	}
	return item
}
