package catalog

import (
	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
)

// ToIngredientResponse converts a domain Ingredient
func ToIngredientResponse(i *catalog.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:             i.ID,
		Name:           i.Name,
		NameNormalized: i.NameNormalized,
		Category:       string(i.Category),
		CategoryLabel:  i.Category.Label(),
		Unit:           string(i.Unit),
		UnitLabel:      i.Unit.Label(),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// ToIngredientResponses converts a slice of domain Ingredients
func ToIngredientResponses(items []catalog.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, len(items))
	for i := range items {
		out[i] = ToIngredientResponse(&items[i])
	}
	return out
}

// ToIngredientOptions projects ingredients onto the picker shape
func ToIngredientOptions(items []catalog.Ingredient) []catalog.IngredientOption {
	out := make([]catalog.IngredientOption, len(items))
	for i, ing := range items {
		out[i] = catalog.IngredientOption{ID: ing.ID, Name: ing.Name, Unit: ing.Unit}
	}
	return out
}

// ToRecipeListResponse converts a domain Recipe to its listing row
func ToRecipeListResponse(r *catalog.Recipe) RecipeListResponse {
	return RecipeListResponse{
		ID:                 r.ID,
		Title:              r.Title,
		CookingTimeMinutes: r.CookingTimeMinutes,
		Servings:           r.Servings,
		Difficulty:         string(r.Difficulty),
		DifficultyLabel:    r.Difficulty.Label(),
		Cuisine:            r.Cuisine,
		MealType:           string(r.MealType),
		MealTypeLabel:      r.MealType.Label(),
		ImageURL:           r.ImageURL,
		IngredientCount:    r.IngredientCount,
		CreatedAt:          r.CreatedAt,
	}
}

// ToRecipeListResponses converts a slice of domain Recipes
func ToRecipeListResponses(recipes []catalog.Recipe) []RecipeListResponse {
	out := make([]RecipeListResponse, len(recipes))
	for i := range recipes {
		out[i] = ToRecipeListResponse(&recipes[i])
	}
	return out
}

// ToRecipeResponse converts a domain Recipe with its lines
func ToRecipeResponse(r *catalog.Recipe) RecipeResponse {
	lines := make([]RecipeLineResponse, len(r.Ingredients))
	for i, l := range r.Ingredients {
		name := l.IngredientName
		if name == "" {
			name = catalog.MissingIngredientName
		}
		lines[i] = RecipeLineResponse{
			IngredientID:   l.IngredientID,
			IngredientName: name,
			Quantity:       l.Quantity,
			Unit:           l.Unit,
		}
	}

	list := ToRecipeListResponse(r)
	list.IngredientCount = int64(len(lines))
	return RecipeResponse{
		RecipeListResponse: list,
		Description:        r.Description,
		Instructions:       r.Instructions,
		VideoURL:           r.VideoURL,
		SourceURL:          r.SourceURL,
		Ingredients:        lines,
		UpdatedAt:          r.UpdatedAt,
	}
}
