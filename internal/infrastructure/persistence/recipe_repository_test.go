package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipe(t *testing.T, title string, mealType catalog.MealType, lines ...catalog.RecipeIngredient) *catalog.Recipe {
	t.Helper()
	r, err := catalog.NewRecipe(catalog.RecipeDetails{
		Title:      title,
		Difficulty: catalog.DifficultyEasy,
		MealType:   mealType,
	}, lines)
	require.NoError(t, err)
	return r
}

func line(id uuid.UUID, qty int64) catalog.RecipeIngredient {
	return catalog.RecipeIngredient{IngredientID: id, Quantity: decimal.NewFromInt(qty), Unit: "g"}
}

func TestGormRecipeRepository_SaveReplacesLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()
	egg := seedIngredient(t, db, "Egg", "other")
	milk := seedIngredient(t, db, "Milk", "dairy")
	flour := seedIngredient(t, db, "Flour", "grain")

	recipe := newRecipe(t, "Pancakes", catalog.MealTypeBreakfast, line(egg.ID, 2), line(milk.ID, 200))
	require.NoError(t, repo.Save(ctx, recipe))

	got, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "Egg", got.Ingredients[0].IngredientName)
	assert.Equal(t, "Milk", got.Ingredients[1].IngredientName)

	require.NoError(t, got.Update(got.RecipeDetails, []catalog.RecipeIngredient{line(flour.ID, 150)}))
	require.NoError(t, repo.Save(ctx, got))

	reloaded, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Ingredients, 1)
	assert.Equal(t, flour.ID, reloaded.Ingredients[0].IngredientID)
	assert.True(t, decimal.NewFromInt(150).Equal(reloaded.Ingredients[0].Quantity))

	var lines int64
	require.NoError(t, db.Model(&models.RecipeIngredientModel{}).Where("recipe_id = ?", recipe.ID).Count(&lines).Error)
	assert.Equal(t, int64(1), lines, "old lines are removed")
}

func TestGormRecipeRepository_DeletedIngredientReadsAsMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()
	egg := seedIngredient(t, db, "Egg", "other")

	recipe := newRecipe(t, "Boiled egg", catalog.MealTypeBreakfast, line(egg.ID, 1))
	require.NoError(t, repo.Save(ctx, recipe))
	require.NoError(t, NewGormIngredientRepository(db).SoftDelete(ctx, egg.ID))

	got, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, catalog.MissingIngredientName, got.Ingredients[0].IngredientName)
}

func TestGormRecipeRepository_FindAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()
	egg := seedIngredient(t, db, "Egg", "other")
	rice := seedIngredient(t, db, "Rice", "grain")

	require.NoError(t, repo.Save(ctx, newRecipe(t, "Fried rice", catalog.MealTypeLunch, line(egg.ID, 1), line(rice.ID, 200))))
	require.NoError(t, repo.Save(ctx, newRecipe(t, "Omelette", catalog.MealTypeBreakfast, line(egg.ID, 3))))
	require.NoError(t, repo.Save(ctx, newRecipe(t, "Plain rice", catalog.MealTypeLunch)))

	f := shared.DefaultFilter()
	f.Filters["meal_type"] = "lunch"
	f.Search = "RICE"
	recipes, err := repo.FindAll(ctx, f)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	counts := map[string]int64{}
	for _, r := range recipes {
		counts[r.Title] = r.IngredientCount
	}
	assert.Equal(t, map[string]int64{"Fried rice": 2, "Plain rice": 0}, counts)

	total, err := repo.Count(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGormRecipeRepository_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()
	recipe := newRecipe(t, "Toast", catalog.MealTypeBreakfast)
	require.NoError(t, repo.Save(ctx, recipe))

	require.NoError(t, repo.SoftDelete(ctx, recipe.ID))
	_, err := repo.FindByID(ctx, recipe.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.True(t, errors.Is(repo.SoftDelete(ctx, recipe.ID), shared.ErrNotFound))

	count, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGormRecipeMatchRepository_FindByProfile(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedProfile(t, db, "Lan")
	recipes := NewGormRecipeRepository(db)

	soup := newRecipe(t, "Soup", catalog.MealTypeDinner)
	salad := newRecipe(t, "Salad", catalog.MealTypeLunch)
	require.NoError(t, recipes.Save(ctx, soup))
	require.NoError(t, recipes.Save(ctx, salad))

	require.NoError(t, db.Create(&[]models.RecipeMatchModel{
		{ID: uuid.New(), ProfileID: owner.ID, RecipeID: soup.ID, TotalIngredients: 4, AvailableIngredients: 1, MissingIngredients: 3},
		{ID: uuid.New(), ProfileID: owner.ID, RecipeID: salad.ID, TotalIngredients: 4, AvailableIngredients: 3, MissingIngredients: 1},
		{ID: uuid.New(), ProfileID: uuid.New(), RecipeID: salad.ID, TotalIngredients: 4, AvailableIngredients: 4},
	}).Error)

	matches, err := NewGormRecipeMatchRepository(db).FindByProfile(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Salad", matches[0].RecipeTitle)
	assert.Equal(t, 75, matches[0].MatchPercent())
	assert.Equal(t, 25, matches[1].MatchPercent())
}
