package catalog

import (
	"context"
	"strings"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// RecipeService handles recipe curation
type RecipeService struct {
	recipes     catalog.RecipeRepository
	ingredients catalog.IngredientRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipes catalog.RecipeRepository, ingredients catalog.IngredientRepository) *RecipeService {
	return &RecipeService{recipes: recipes, ingredients: ingredients}
}

// List returns one page of recipes, newest first
func (s *RecipeService) List(ctx context.Context, filter RecipeListFilter) ([]RecipeListResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	domainFilter.OrderBy = "created_at"
	domainFilter.OrderDir = shared.OrderDesc
	domainFilter.Search = filter.Search

	if filter.MealType != "" {
		mt := catalog.MealType(filter.MealType)
		if !mt.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_MEAL_TYPE", "Meal type must be one of: breakfast, lunch, dinner")
		}
		domainFilter.Filters["meal_type"] = string(mt)
	}
	if filter.Difficulty != "" {
		d := catalog.Difficulty(filter.Difficulty)
		if !d.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_DIFFICULTY", "Difficulty must be one of: easy, medium, hard")
		}
		domainFilter.Filters["difficulty"] = string(d)
	}

	recipes, err := s.recipes.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.recipes.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToRecipeListResponses(recipes), total, nil
}

// GetByID returns a recipe with its ingredient lines
func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (*RecipeResponse, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRecipeResponse(recipe)
	return &resp, nil
}

// Create adds a recipe together with its lines
func (s *RecipeService) Create(ctx context.Context, req RecipeRequest) (*RecipeResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "recipe", "create")
	defer span.End()

	lines, err := s.resolveLines(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}
	recipe, err := catalog.NewRecipe(req.details(), lines)
	if err != nil {
		return nil, err
	}
	if err := s.recipes.Save(ctx, recipe); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, "recipe.id", recipe.ID.String(), "recipe.lines", len(recipe.Ingredients))

	return s.GetByID(ctx, recipe.ID)
}

// Update replaces every field of a recipe and its full line set
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, req RecipeRequest) (*RecipeResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "recipe", "update", "recipe.id", id.String())
	defer span.End()

	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := s.resolveLines(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}
	if err := recipe.Update(req.details(), lines); err != nil {
		return nil, err
	}
	if err := s.recipes.Save(ctx, recipe); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return s.GetByID(ctx, recipe.ID)
}

// Delete soft-deletes a recipe
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "recipe", "delete", "recipe.id", id.String())
	defer span.End()

	return s.recipes.SoftDelete(ctx, id)
}

// resolveLines parses the submitted lines and checks that every referenced
// ingredient is active. Blank rows of the form are dropped silently.
func (s *RecipeService) resolveLines(ctx context.Context, inputs []RecipeLineInput) ([]catalog.RecipeIngredient, error) {
	lines := make([]catalog.RecipeIngredient, 0, len(inputs))
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		raw := strings.TrimSpace(in.IngredientID)
		if raw == "" || !in.Quantity.IsPositive() {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INGREDIENT", "Ingredient id "+raw+" is not a valid UUID")
		}
		lines = append(lines, catalog.RecipeIngredient{IngredientID: id, Quantity: in.Quantity, Unit: in.Unit})
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return lines, nil
	}

	existing, err := s.ingredients.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return nil, shared.NewDomainError("INVALID_INGREDIENT", "Ingredient "+id.String()+" does not exist")
		}
	}
	return lines, nil
}

func (r RecipeRequest) details() catalog.RecipeDetails {
	return catalog.RecipeDetails{
		Title:              r.Title,
		Description:        r.Description,
		Instructions:       r.Instructions,
		CookingTimeMinutes: r.CookingTimeMinutes,
		Servings:           r.Servings,
		Difficulty:         catalog.Difficulty(r.Difficulty),
		Cuisine:            r.Cuisine,
		MealType:           catalog.MealType(r.MealType),
		ImageURL:           r.ImageURL,
		VideoURL:           r.VideoURL,
		SourceURL:          r.SourceURL,
	}
}
