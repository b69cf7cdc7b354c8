package handler

import (
	"context"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/profile"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/domain/shopping"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockIngredientRepository implements catalog.IngredientRepository for testing
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Ingredient, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIngredientRepository) FindAllOrderedByName(ctx context.Context) ([]catalog.Ingredient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockIngredientRepository) CountByCategory(ctx context.Context) ([]catalog.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.CategoryCount), args.Error(1)
}

func (m *MockIngredientRepository) Save(ctx context.Context, ingredient *catalog.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPantryItemRepository implements pantry.PantryItemRepository for testing
type MockPantryItemRepository struct {
	mock.Mock
}

func (m *MockPantryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.PantryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*pantry.PantryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) FindAll(ctx context.Context, query pantry.StockQuery, filter shared.Filter) ([]pantry.PantryItem, error) {
	args := m.Called(ctx, query, filter)
	return args.Get(0).([]pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) Count(ctx context.Context, query pantry.StockQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPantryItemRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]pantry.PantryItem, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) FindExpiringWithin(ctx context.Context, today time.Time, days, limit int) ([]pantry.PantryItem, error) {
	args := m.Called(ctx, today, days, limit)
	return args.Get(0).([]pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) FindRecentlyExpired(ctx context.Context, today time.Time, limit int) ([]pantry.PantryItem, error) {
	args := m.Called(ctx, today, limit)
	return args.Get(0).([]pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) CountStats(ctx context.Context, ownerID *uuid.UUID, today time.Time) (pantry.Stats, error) {
	args := m.Called(ctx, ownerID, today)
	return args.Get(0).(pantry.Stats), args.Error(1)
}

func (m *MockPantryItemRepository) CountByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, ownerIDs)
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockPantryItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMealPlanRepository implements mealplan.MealPlanRepository for testing
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealplan.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) FindAll(ctx context.Context, query mealplan.ListQuery, page, pageSize int) ([]mealplan.MealPlan, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]mealplan.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) Count(ctx context.Context, query mealplan.ListQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMealPlanRepository) CountByStatus(ctx context.Context) (mealplan.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(mealplan.StatusCounts), args.Error(1)
}

func (m *MockMealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShoppingListRepository implements shopping.ShoppingListRepository for testing
type MockShoppingListRepository struct {
	mock.Mock
}

func (m *MockShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.WeeklyShoppingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.WeeklyShoppingList), args.Error(1)
}

func (m *MockShoppingListRepository) FindAll(ctx context.Context, ownerID *uuid.UUID, page, pageSize int) ([]shopping.WeeklyShoppingList, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]shopping.WeeklyShoppingList), args.Error(1)
}

func (m *MockShoppingListRepository) Count(ctx context.Context, ownerID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository implements profile.ProfileRepository for testing
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]profile.Profile, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]profile.Profile, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uuid.UUID]profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecipeMatchRepository implements catalog.RecipeMatchRepository for testing
type MockRecipeMatchRepository struct {
	mock.Mock
}

func (m *MockRecipeMatchRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]catalog.RecipeMatch, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]catalog.RecipeMatch), args.Error(1)
}

// MockRecipeRepository implements catalog.RecipeRepository for testing
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Recipe, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) Save(ctx context.Context, recipe *catalog.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
