package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientListFilter narrows the ingredient listing
type IngredientListFilter struct {
	Search   string
	Category string
	Page     int
}

// IngredientRequest is the body of ingredient create and update
type IngredientRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Category string `json:"category" binding:"omitempty,oneof=dairy meat vegetable grain other"`
	Unit     string `json:"unit" binding:"omitempty,oneof=g ml piece fruit"`
}

// IngredientResponse represents an ingredient in API responses
type IngredientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NameNormalized string    `json:"name_normalized"`
	Category       string    `json:"category"`
	CategoryLabel  string    `json:"category_label"`
	Unit           string    `json:"unit"`
	UnitLabel      string    `json:"unit_label"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecipeListFilter narrows the recipe listing
type RecipeListFilter struct {
	Search     string
	MealType   string
	Difficulty string
	Page       int
}

// RecipeLineInput is one submitted ingredient line. A blank ingredient id
// or a non-positive quantity drops the line.
type RecipeLineInput struct {
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit" binding:"max=20"`
}

// RecipeRequest is the body of recipe create and update. Update replaces
// every field and the full line set.
type RecipeRequest struct {
	Title              string            `json:"title" binding:"required,max=255"`
	Description        string            `json:"description"`
	Instructions       string            `json:"instructions"`
	CookingTimeMinutes *int              `json:"cooking_time_minutes" binding:"omitempty,min=1"`
	Servings           *int              `json:"servings" binding:"omitempty,min=1"`
	Difficulty         string            `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Cuisine            string            `json:"cuisine" binding:"max=100"`
	MealType           string            `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner"`
	ImageURL           string            `json:"image_url" binding:"omitempty,url"`
	VideoURL           string            `json:"video_url" binding:"omitempty,url"`
	SourceURL          string            `json:"source_url" binding:"omitempty,url"`
	Ingredients        []RecipeLineInput `json:"ingredients" binding:"dive"`
}

// RecipeLineResponse is one ingredient line of a recipe
type RecipeLineResponse struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// RecipeListResponse is a recipe row of the listing
type RecipeListResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	CookingTimeMinutes *int      `json:"cooking_time_minutes"`
	Servings           *int      `json:"servings"`
	Difficulty         string    `json:"difficulty"`
	DifficultyLabel    string    `json:"difficulty_label"`
	Cuisine            string    `json:"cuisine"`
	MealType           string    `json:"meal_type"`
	MealTypeLabel      string    `json:"meal_type_label"`
	ImageURL           string    `json:"image_url"`
	IngredientCount    int64     `json:"ingredient_count"`
	CreatedAt          time.Time `json:"created_at"`
}

// RecipeResponse is a recipe with its lines
type RecipeResponse struct {
	RecipeListResponse
	Description  string               `json:"description"`
	Instructions string               `json:"instructions"`
	VideoURL     string               `json:"video_url"`
	SourceURL    string               `json:"source_url"`
	Ingredients  []RecipeLineResponse `json:"ingredients"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
