package profile

import (
	"time"

	pantryapp "github.com/fridgetofork/pantry-admin/internal/application/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/profile"
	"github.com/google/uuid"
)

// ListFilter narrows the profile listing
type ListFilter struct {
	Search string
	Page   int
}

// ProfileResponse is a profile row
type ProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url"`
	PantryItemCount int64     `json:"pantry_item_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProfileDetailResponse is a profile with its stock and counters
type ProfileDetailResponse struct {
	ProfileResponse
	PantryItems []pantryapp.ItemResponse `json:"pantry_items"`
	Stats       pantry.Stats             `json:"stats"`
}

// RecipeMatchResponse is one recipe the profile can (partly) cook
type RecipeMatchResponse struct {
	RecipeID             uuid.UUID `json:"recipe_id"`
	RecipeTitle          string    `json:"recipe_title"`
	TotalIngredients     int       `json:"total_ingredients"`
	AvailableIngredients int       `json:"available_ingredients"`
	MissingIngredients   int       `json:"missing_ingredients"`
	MatchPercent         int       `json:"match_percent"`
}

// ToProfileResponse converts a domain Profile
func ToProfileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Name:            p.DisplayName(),
		AvatarURL:       p.AvatarURL,
		PantryItemCount: p.PantryItemCount,
		CreatedAt:       p.CreatedAt,
	}
}

// ToRecipeMatchResponses converts match rows, keeping their order
func ToRecipeMatchResponses(matches []catalog.RecipeMatch) []RecipeMatchResponse {
	out := make([]RecipeMatchResponse, len(matches))
	for i, m := range matches {
		title := m.RecipeTitle
		if title == "" {
			title = catalog.MissingIngredientName
		}
		out[i] = RecipeMatchResponse{
			RecipeID:             m.RecipeID,
			RecipeTitle:          title,
			TotalIngredients:     m.TotalIngredients,
			AvailableIngredients: m.AvailableIngredients,
			MissingIngredients:   m.MissingIngredients,
			MatchPercent:         m.MatchPercent(),
		}
	}
	return out
}
