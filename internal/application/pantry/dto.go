package pantry

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilter narrows the pantry listing
type ListFilter struct {
	Status  string
	OwnerID *uuid.UUID
	Search  string
	Page    int
}

// ItemResponse is a pantry item with its expiry classification
type ItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProfileID       uuid.UUID       `json:"profile_id"`
	OwnerName       string          `json:"owner_name"`
	IngredientID    uuid.UUID       `json:"ingredient_id"`
	IngredientName  string          `json:"ingredient_name"`
	Category        string          `json:"category"`
	CategoryLabel   string          `json:"category_label"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	PurchaseDate    *string         `json:"purchase_date"`
	ExpiryDate      *string         `json:"expiry_date"`
	DaysUntilExpiry *int            `json:"days_until_expiry"`
	ExpiryStatus    string          `json:"expiry_status"`
	ExpiryLabel     string          `json:"expiry_label"`
	StatusClass     string          `json:"status_class"`
	Note            string          `json:"note"`
	ImageURL        string          `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ListResponse is one page of pantry items plus the counters for the same
// owner scope
type ListResponse struct {
	Items []ItemResponse `json:"items"`
	Stats pantry.Stats   `json:"stats"`
}

// ToItemResponse converts a domain PantryItem classified against today
func ToItemResponse(p *pantry.PantryItem, today time.Time) ItemResponse {
	c := p.Classify(today)

	var category catalog.IngredientCategory
	if p.Ingredient != nil {
		category = catalog.IngredientCategory(p.Ingredient.Category)
	}

	return ItemResponse{
		ID:              p.ID,
		ProfileID:       p.ProfileID,
		OwnerName:       p.OwnerName(),
		IngredientID:    p.IngredientID,
		IngredientName:  p.IngredientName(),
		Category:        string(category),
		CategoryLabel:   category.Label(),
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		PurchaseDate:    shared.FormatDate(p.PurchaseDate),
		ExpiryDate:      shared.FormatDate(p.ExpiryDate),
		DaysUntilExpiry: c.DaysUntilExpiry,
		ExpiryStatus:    string(c.Status),
		ExpiryLabel:     c.Label,
		StatusClass:     c.StatusClass,
		Note:            p.Note,
		ImageURL:        p.ImageURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain PantryItems
func ToItemResponses(items []pantry.PantryItem, today time.Time) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i], today)
	}
	return out
}
