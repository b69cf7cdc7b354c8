package handler

import (
	"net/http"
	"testing"
	"time"

	pantryapp "github.com/fridgetofork/pantry-admin/internal/application/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var handlerToday = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func setupPantryRouter(repo *MockPantryItemRepository) *gin.Engine {
	svc := pantryapp.NewPantryService(repo, shared.FixedClock{At: handlerToday.Add(9 * time.Hour)})
	h := NewPantryItemHandler(svc)

	r := gin.New()
	r.GET("/pantry-items", h.List)
	r.GET("/pantry-items/stats", h.Stats)
	r.GET("/pantry-items/:id", h.GetByID)
	r.DELETE("/pantry-items/:id", h.Delete)
	return r
}

func pantryItemExpiringIn(days int) pantry.PantryItem {
	expiry := handlerToday.AddDate(0, 0, days)
	return pantry.PantryItem{
		BaseEntity:   shared.NewBaseEntity(),
		ProfileID:    uuid.New(),
		IngredientID: uuid.New(),
		Quantity:     decimal.NewFromInt(2),
		Unit:         "piece",
		ExpiryDate:   &expiry,
		Ingredient:   &pantry.IngredientRef{Name: "Eggs", Category: "other"},
		Owner:        &pantry.OwnerRef{Name: "Ana"},
	}
}

func ownerIs(owner uuid.UUID) interface{} {
	return mock.MatchedBy(func(id *uuid.UUID) bool { return id != nil && *id == owner })
}

func TestPantryItemHandler_ListByOwnerAlias(t *testing.T) {
	repo := new(MockPantryItemRepository)
	r := setupPantryRouter(repo)

	owner := uuid.New()
	byOwner := mock.MatchedBy(func(q pantry.StockQuery) bool {
		return q.OwnerID != nil && *q.OwnerID == owner && q.Status == pantry.StatusFilterExpiringSoon && q.Today.Equal(handlerToday)
	})
	repo.On("FindAll", mock.Anything, byOwner, mock.Anything).Return([]pantry.PantryItem{pantryItemExpiringIn(2)}, nil)
	repo.On("Count", mock.Anything, byOwner).Return(int64(1), nil)
	repo.On("CountStats", mock.Anything, ownerIs(owner), handlerToday).
		Return(pantry.Stats{Total: 5, Expired: 1, ExpiringSoon: 2}, nil)

	w := serve(r, http.MethodGet, "/pantry-items?status=expiring_soon&user_id="+owner.String(), "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, int64(1), resp.Meta.Total)

	data := resp.Data.(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(5), stats["total"])
	assert.Equal(t, float64(1), stats["expired"])
	assert.Equal(t, float64(2), stats["expiring_soon"])

	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, string(pantry.ExpiryStatusExpiringSoon), item["expiry_status"])
	assert.Equal(t, float64(2), item["days_until_expiry"])
	assert.Equal(t, "Eggs", item["ingredient_name"])
	repo.AssertExpectations(t)
}

func TestPantryItemHandler_ListValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "malformed owner", query: "?owner_id=abc", field: "owner_id"},
		{name: "malformed alias", query: "?user_id=abc", field: "user_id"},
		{name: "unknown status", query: "?status=rotten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPantryItemRepository)
			r := setupPantryRouter(repo)

			w := serve(r, http.MethodGet, "/pantry-items"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeResponse(t, w)
			assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
			if tt.field != "" {
				require.NotEmpty(t, resp.Error.Details)
				assert.Equal(t, tt.field, resp.Error.Details[0].Field)
			}
			repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPantryItemHandler_Stats(t *testing.T) {
	repo := new(MockPantryItemRepository)
	r := setupPantryRouter(repo)

	repo.On("CountStats", mock.Anything, (*uuid.UUID)(nil), handlerToday).
		Return(pantry.Stats{Total: 12, Expired: 3, ExpiringSoon: 4}, nil)

	w := serve(r, http.MethodGet, "/pantry-items/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(12), data["total"])
	assert.Equal(t, float64(3), data["expired"])
	assert.Equal(t, float64(4), data["expiring_soon"])
}

func TestPantryItemHandler_GetByID(t *testing.T) {
	repo := new(MockPantryItemRepository)
	r := setupPantryRouter(repo)

	item := pantryItemExpiringIn(-1)
	deleted := uuid.New()
	repo.On("FindByID", mock.Anything, item.ID).Return(&item, nil)
	repo.On("FindByID", mock.Anything, deleted).Return(nil, shared.ErrNotFound)

	w := serve(r, http.MethodGet, "/pantry-items/"+item.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, string(pantry.ExpiryStatusExpired), data["expiry_status"])
	assert.Equal(t, "2026-03-14", data["expiry_date"])

	w = serve(r, http.MethodGet, "/pantry-items/"+deleted.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPantryItemHandler_Delete(t *testing.T) {
	repo := new(MockPantryItemRepository)
	r := setupPantryRouter(repo)

	id := uuid.New()
	repo.On("SoftDelete", mock.Anything, id).Return(nil).Once()
	repo.On("SoftDelete", mock.Anything, id).Return(shared.ErrNotFound)

	w := serve(r, http.MethodDelete, "/pantry-items/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, http.MethodDelete, "/pantry-items/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)
}
