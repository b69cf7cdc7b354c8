package catalog

import (
	"context"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
)

// IngredientRepository defines persistence for ingredients
type IngredientRepository interface {
	// FindByID returns an active ingredient, or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*Ingredient, error)

	// FindAll lists active ingredients; Search and Filters["category"] apply
	FindAll(ctx context.Context, filter shared.Filter) ([]Ingredient, error)

	// Count counts active ingredients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindAllOrderedByName returns every active ingredient by name
	FindAllOrderedByName(ctx context.Context) ([]Ingredient, error)

	// ExistingIDs returns the subset of ids that resolve to active ingredients
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

	// CountByCategory groups active ingredients by category
	CountByCategory(ctx context.Context) ([]CategoryCount, error)

	// Save creates or updates an ingredient
	Save(ctx context.Context, ingredient *Ingredient) error

	// SoftDelete sets the deletion marker
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// RecipeRepository defines persistence for recipes and their lines
type RecipeRepository interface {
	// FindByID returns an active recipe with its lines
	FindByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindAll lists active recipes with IngredientCount filled. Search
	// matches the title; Filters["meal_type"] and Filters["difficulty"] apply.
	FindAll(ctx context.Context, filter shared.Filter) ([]Recipe, error)

	// Count counts active recipes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a recipe and replaces its lines in one transaction
	Save(ctx context.Context, recipe *Recipe) error

	// SoftDelete sets the deletion marker
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// RecipeMatchRepository reads the per-profile recipe match table
type RecipeMatchRepository interface {
	// FindByProfile returns the profile's matches, best match first
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]RecipeMatch, error)
}
