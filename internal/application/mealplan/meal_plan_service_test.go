package mealplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestMealPlanService_List(t *testing.T) {
	repo := new(MockMealPlanRepository)
	service := NewMealPlanService(repo)
	ctx := context.Background()
	owner := uuid.New()

	query := mock.MatchedBy(func(q mealplan.ListQuery) bool {
		return q.OwnerID != nil && *q.OwnerID == owner &&
			q.Status == mealplan.StatusDone && q.MealType == catalog.MealTypeLunch &&
			q.DateFrom.Format(shared.DateLayout) == "2024-05-01" &&
			q.DateTo.Format(shared.DateLayout) == "2024-05-31"
	})
	plan := mealplan.MealPlan{
		ID:          uuid.New(),
		ProfileID:   owner,
		PlannedDate: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		MealType:    catalog.MealTypeLunch,
		Status:      mealplan.StatusDone,
	}
	repo.On("FindAll", ctx, query, 3, shared.DefaultPageSize).Return([]mealplan.MealPlan{plan}, nil)
	repo.On("Count", ctx, query).Return(int64(41), nil)
	repo.On("CountByStatus", ctx).Return(mealplan.StatusCounts{Total: 50, Planned: 20, Done: 25, Skipped: 5}, nil)

	resp, total, err := service.List(ctx, ListFilter{
		OwnerID:  &owner,
		Status:   "done",
		MealType: "lunch",
		DateFrom: "2024-05-01",
		DateTo:   "2024-05-31",
		Page:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(41), total)
	assert.Equal(t, int64(25), resp.Counts.Done)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2024-05-03", resp.Items[0].PlannedDate)
	assert.Equal(t, "Done", resp.Items[0].StatusLabel)
	assert.Equal(t, "status-safe", resp.Items[0].StatusClass)
	assert.Equal(t, "N/A", resp.Items[0].ProfileName)
	repo.AssertExpectations(t)
}

func TestMealPlanService_List_InvalidFilters(t *testing.T) {
	service := NewMealPlanService(new(MockMealPlanRepository))

	tests := []struct {
		name   string
		filter ListFilter
		code   string
	}{
		{"status", ListFilter{Status: "eaten"}, "INVALID_STATUS"},
		{"meal type", ListFilter{MealType: "supper"}, "INVALID_MEAL_TYPE"},
		{"date", ListFilter{DateFrom: "01/05/2024"}, "INVALID_DATE"},
		{"range", ListFilter{DateFrom: "2024-05-02", DateTo: "2024-05-01"}, "INVALID_DATE_RANGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.List(context.Background(), tt.filter)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}

func TestMealPlanService_GetByID(t *testing.T) {
	repo := new(MockMealPlanRepository)
	service := NewMealPlanService(repo)
	ctx := context.Background()

	plan := &mealplan.MealPlan{
		ID:          uuid.New(),
		ProfileName: "Mai",
		PlannedDate: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		MealType:    catalog.MealTypeDinner,
		Status:      mealplan.StatusPlanned,
		Recipes: []mealplan.PlannedRecipe{
			{RecipeID: uuid.New(), Title: "Pho", Servings: 2, Position: 0, Lines: []catalog.RecipeIngredient{
				{IngredientID: uuid.New(), IngredientName: "Beef", Quantity: decimal.NewFromInt(300), Unit: "g"},
				{IngredientID: uuid.New(), Quantity: decimal.NewFromInt(1), Unit: "piece"},
			}},
			{RecipeID: uuid.New(), Position: 1},
		},
	}
	repo.On("FindByID", ctx, plan.ID).Return(plan, nil)

	resp, err := service.GetByID(ctx, plan.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.RecipeCount)
	assert.Equal(t, "status-warning", resp.StatusClass)
	require.Len(t, resp.Recipes, 2)
	assert.Equal(t, "Beef", resp.Recipes[0].Lines[0].IngredientName)
	assert.Equal(t, "N/A", resp.Recipes[0].Lines[1].IngredientName)
	assert.Equal(t, "N/A", resp.Recipes[1].Title)
}

func TestMealPlanService_Delete(t *testing.T) {
	repo := new(MockMealPlanRepository)
	service := NewMealPlanService(repo)
	id := uuid.New()

	repo.On("Delete", mock.Anything, id).Return(shared.NotFound("meal plan"))

	err := service.Delete(context.Background(), id)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
