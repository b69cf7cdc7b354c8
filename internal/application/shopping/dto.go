package shopping

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/domain/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilter narrows the shopping list listing
type ListFilter struct {
	OwnerID *uuid.UUID
	Page    int
}

// ShoppingListResponse is a list row with its progress
type ShoppingListResponse struct {
	ID              uuid.UUID `json:"id"`
	ProfileID       uuid.UUID `json:"profile_id"`
	ProfileName     string    `json:"profile_name"`
	Title           string    `json:"title"`
	WeekStart       string    `json:"week_start"`
	TotalItems      int       `json:"total_items"`
	PurchasedItems  int       `json:"purchased_items"`
	ProgressPercent int       `json:"progress_percent"`
	CreatedAt       time.Time `json:"created_at"`
}

// ItemResponse is one line of a shopping list
type ItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	IngredientID   *uuid.UUID      `json:"ingredient_id"`
	Name           string          `json:"name"`
	SourceRecipeID *uuid.UUID      `json:"source_recipe_id"`
	SourceRecipe   string          `json:"source_recipe"`
	MealPlanID     *uuid.UUID      `json:"meal_plan_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	IsPurchased    bool            `json:"is_purchased"`
}

// ShoppingListDetailResponse is a list with its items
type ShoppingListDetailResponse struct {
	ShoppingListResponse
	Items []ItemResponse `json:"items"`
}

func toShoppingListResponse(l *shopping.WeeklyShoppingList) ShoppingListResponse {
	name := l.ProfileName
	if name == "" {
		name = "N/A"
	}
	return ShoppingListResponse{
		ID:              l.ID,
		ProfileID:       l.ProfileID,
		ProfileName:     name,
		Title:           l.Title,
		WeekStart:       l.WeekStart.Format(shared.DateLayout),
		TotalItems:      l.TotalItems,
		PurchasedItems:  l.PurchasedItems,
		ProgressPercent: l.ProgressPercent(),
		CreatedAt:       l.CreatedAt,
	}
}

func toItemResponses(items []shopping.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ItemResponse{
			ID:             it.ID,
			IngredientID:   it.IngredientID,
			Name:           it.DisplayName(),
			SourceRecipeID: it.SourceRecipeID,
			SourceRecipe:   it.SourceRecipe,
			MealPlanID:     it.MealPlanID,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			IsPurchased:    it.IsPurchased,
		}
	}
	return out
}
