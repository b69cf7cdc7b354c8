package catalog

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxRecipeTitleLength = 255
	MaxCuisineLength     = 100
	// DefaultLineUnit is used for recipe lines submitted without a unit
	DefaultLineUnit = "g"
)

// Difficulty rates how hard a recipe is to cook
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the closed set in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// IsValid reports whether d is known; empty means unspecified
func (d Difficulty) IsValid() bool {
	if d == "" {
		return true
	}
	_, ok := difficultyLabels[d]
	return ok
}

// MealType is the meal slot a recipe or plan belongs to
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// MealTypes lists the closed set in display order
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

// IsValid reports whether m is known; empty means unspecified
func (m MealType) IsValid() bool {
	if m == "" {
		return true
	}
	_, ok := mealTypeLabels[m]
	return ok
}

// RecipeDetails holds the editable scalar fields of a recipe
type RecipeDetails struct {
	Title              string
	Description        string
	Instructions       string
	CookingTimeMinutes *int
	Servings           *int
	Difficulty         Difficulty
	Cuisine            string
	MealType           MealType
	ImageURL           string
	VideoURL           string
	SourceURL          string
}

// RecipeIngredient is one ingredient line of a recipe
type RecipeIngredient struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
	Unit         string

	// IngredientName is filled on reads; MissingIngredientName when the
	// ingredient has been soft-deleted.
	IngredientName string
}

// MissingIngredientName is shown for lines whose ingredient is gone
const MissingIngredientName = "N/A"

// Recipe is a curated cooking recipe with its ingredient lines
type Recipe struct {
	shared.BaseEntity
	RecipeDetails
	Ingredients []RecipeIngredient
	DeletedAt   *time.Time

	// IngredientCount is filled by listings that do not load lines
	IngredientCount int64
}

// NewRecipe creates a validated recipe
func NewRecipe(details RecipeDetails, lines []RecipeIngredient) (*Recipe, error) {
	r := &Recipe{BaseEntity: shared.NewBaseEntity()}
	if err := r.apply(details); err != nil {
		return nil, err
	}
	r.ReplaceIngredients(lines)
	return r, nil
}

// Update replaces the scalar fields and, wholesale, the ingredient lines
func (r *Recipe) Update(details RecipeDetails, lines []RecipeIngredient) error {
	if err := r.apply(details); err != nil {
		return err
	}
	r.ReplaceIngredients(lines)
	r.Touch()
	return nil
}

// ReplaceIngredients swaps the line set. Lines without an ingredient or with
// a non-positive quantity are dropped; a blank unit becomes DefaultLineUnit.
func (r *Recipe) ReplaceIngredients(lines []RecipeIngredient) {
	kept := make([]RecipeIngredient, 0, len(lines))
	for _, l := range lines {
		if l.IngredientID == uuid.Nil || !l.Quantity.IsPositive() {
			continue
		}
		l.Unit = strings.TrimSpace(l.Unit)
		if l.Unit == "" {
			l.Unit = DefaultLineUnit
		}
		kept = append(kept, l)
	}
	r.Ingredients = kept
	r.IngredientCount = int64(len(kept))
}

// IngredientIDs returns the distinct ingredient ids referenced by the lines
func (r *Recipe) IngredientIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(r.Ingredients))
	ids := make([]uuid.UUID, 0, len(r.Ingredients))
	for _, l := range r.Ingredients {
		if _, ok := seen[l.IngredientID]; ok {
			continue
		}
		seen[l.IngredientID] = struct{}{}
		ids = append(ids, l.IngredientID)
	}
	return ids
}

// IsDeleted reports whether the recipe carries a deletion marker
func (r *Recipe) IsDeleted() bool {
	return r.DeletedAt != nil
}

func (r *Recipe) apply(d RecipeDetails) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Cuisine = strings.TrimSpace(d.Cuisine)

	if d.Title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Recipe title cannot be empty")
	}
	if utf8.RuneCountInString(d.Title) > MaxRecipeTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Recipe title cannot exceed 255 characters")
	}
	if utf8.RuneCountInString(d.Cuisine) > MaxCuisineLength {
		return shared.NewDomainError("INVALID_CUISINE", "Cuisine cannot exceed 100 characters")
	}
	if d.CookingTimeMinutes != nil && *d.CookingTimeMinutes < 1 {
		return shared.NewDomainError("INVALID_COOKING_TIME", "Cooking time must be at least 1 minute")
	}
	if d.Servings != nil && *d.Servings < 1 {
		return shared.NewDomainError("INVALID_SERVINGS", "Servings must be at least 1")
	}
	if !d.Difficulty.IsValid() {
		return shared.NewDomainError("INVALID_DIFFICULTY", "Difficulty must be one of: easy, medium, hard")
	}
	if !d.MealType.IsValid() {
		return shared.NewDomainError("INVALID_MEAL_TYPE", "Meal type must be one of: breakfast, lunch, dinner")
	}
	for field, raw := range map[string]string{"image_url": d.ImageURL, "video_url": d.VideoURL, "source_url": d.SourceURL} {
		if !isOptionalURL(raw) {
			return shared.NewDomainError("INVALID_URL", field+" must be a valid URL")
		}
	}

	r.RecipeDetails = d
	return nil
}

func isOptionalURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
