package handler

import (
	"net/http"
	"testing"
	"time"

	mealplanapp "github.com/fridgetofork/pantry-admin/internal/application/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMealPlanRouter(repo *MockMealPlanRepository) *gin.Engine {
	h := NewMealPlanHandler(mealplanapp.NewMealPlanService(repo))

	r := gin.New()
	r.GET("/meal-plans", h.List)
	r.GET("/meal-plans/:id", h.GetByID)
	r.DELETE("/meal-plans/:id", h.Delete)
	return r
}

func TestMealPlanHandler_List(t *testing.T) {
	repo := new(MockMealPlanRepository)
	r := setupMealPlanRouter(repo)

	owner := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	query := mock.MatchedBy(func(q mealplan.ListQuery) bool {
		return q.OwnerID != nil && *q.OwnerID == owner &&
			q.Status == mealplan.StatusPlanned &&
			q.MealType == catalog.MealTypeDinner &&
			q.DateFrom != nil && q.DateFrom.Equal(from) &&
			q.DateTo != nil && q.DateTo.Equal(to)
	})
	plans := []mealplan.MealPlan{{
		ID:          uuid.New(),
		ProfileID:   owner,
		ProfileName: "Ana",
		PlannedDate: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		MealType:    catalog.MealTypeDinner,
		Status:      mealplan.StatusPlanned,
	}}
	repo.On("FindAll", mock.Anything, query, 1, shared.DefaultPageSize).Return(plans, nil)
	repo.On("Count", mock.Anything, query).Return(int64(1), nil)
	repo.On("CountByStatus", mock.Anything).Return(mealplan.StatusCounts{Total: 9, Planned: 4, Done: 3, Skipped: 2}, nil)

	w := serve(r, http.MethodGet,
		"/meal-plans?owner_id="+owner.String()+"&status=planned&meal_type=dinner&date_from=2026-03-01&date_to=2026-03-31", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, int64(1), resp.Meta.Total)

	data := resp.Data.(map[string]interface{})
	counts := data["counts"].(map[string]interface{})
	assert.Equal(t, float64(9), counts["total"])
	assert.Equal(t, float64(2), counts["skipped"])

	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "2026-03-20", items[0].(map[string]interface{})["planned_date"])
	repo.AssertExpectations(t)
}

func TestMealPlanHandler_ListValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "unknown status", query: "?status=eaten"},
		{name: "unknown meal type", query: "?meal_type=brunch"},
		{name: "malformed date", query: "?date_from=03/01/2026"},
		{name: "inverted range", query: "?date_from=2026-03-10&date_to=2026-03-01"},
		{name: "malformed owner", query: "?owner_id=nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMealPlanRepository)
			r := setupMealPlanRouter(repo)

			w := serve(r, http.MethodGet, "/meal-plans"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, dto.ErrCodeValidation, decodeResponse(t, w).Error.Code)
			repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestMealPlanHandler_GetByIDAndDelete(t *testing.T) {
	repo := new(MockMealPlanRepository)
	r := setupMealPlanRouter(repo)

	plan := &mealplan.MealPlan{
		ID:          uuid.New(),
		ProfileID:   uuid.New(),
		PlannedDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		MealType:    catalog.MealTypeLunch,
		Status:      mealplan.StatusDone,
	}
	missing := uuid.New()
	repo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	repo.On("Delete", mock.Anything, plan.ID).Return(nil)
	repo.On("Delete", mock.Anything, missing).Return(shared.ErrNotFound)

	w := serve(r, http.MethodGet, "/meal-plans/"+plan.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "done", data["status"])
	assert.Equal(t, "lunch", data["meal_type"])

	w = serve(r, http.MethodDelete, "/meal-plans/"+plan.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, http.MethodDelete, "/meal-plans/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
