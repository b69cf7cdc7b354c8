package shopping

import (
	"context"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one line of a weekly shopping list
type Item struct {
	ID             uuid.UUID
	IngredientID   *uuid.UUID
	IngredientName string
	MealPlanID     *uuid.UUID
	SourceRecipeID *uuid.UUID
	SourceRecipe   string
	SourceName     string
	Quantity       decimal.Decimal
	Unit           string
	IsPurchased    bool
	CreatedAt      time.Time
}

// DisplayName prefers the ingredient name, then the free-text source name
func (i Item) DisplayName() string {
	if i.IngredientName != "" {
		return i.IngredientName
	}
	if i.SourceName != "" {
		return i.SourceName
	}
	return "N/A"
}

// WeeklyShoppingList groups the items a profile plans to buy in one week
type WeeklyShoppingList struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	ProfileName string
	Title       string
	WeekStart   time.Time
	CreatedAt   time.Time
	Items       []Item

	// Counters are filled by listings that do not load Items
	TotalItems     int
	PurchasedItems int
}

// RecountItems derives the counters from the loaded items
func (l *WeeklyShoppingList) RecountItems() {
	l.TotalItems = len(l.Items)
	l.PurchasedItems = 0
	for _, it := range l.Items {
		if it.IsPurchased {
			l.PurchasedItems++
		}
	}
}

// ProgressPercent is the rounded share of purchased items, 0 for empty lists
func (l *WeeklyShoppingList) ProgressPercent() int {
	return shared.Percent(l.PurchasedItems, l.TotalItems)
}

// ShoppingListRepository reads and deletes shopping lists
type ShoppingListRepository interface {
	// FindByID returns a list with its items
	FindByID(ctx context.Context, id uuid.UUID) (*WeeklyShoppingList, error)

	// FindAll returns one page, week_start descending, counters filled
	FindAll(ctx context.Context, ownerID *uuid.UUID, page, pageSize int) ([]WeeklyShoppingList, error)

	// Count counts lists, optionally of one owner
	Count(ctx context.Context, ownerID *uuid.UUID) (int64, error)

	// Delete physically removes a list and its items
	Delete(ctx context.Context, id uuid.UUID) error
}
