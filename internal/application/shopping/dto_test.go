package shopping

import (
	"testing"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToShoppingListResponse_MissingProfile(t *testing.T) {
	list := &shopping.WeeklyShoppingList{
		ID:             uuid.New(),
		Title:          "Week 7",
		WeekStart:      time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
		TotalItems:     4,
		PurchasedItems: 1,
	}

	resp := toShoppingListResponse(list)

	assert.Equal(t, "N/A", resp.ProfileName)
	assert.Equal(t, "2024-02-12", resp.WeekStart)
	assert.Equal(t, 25, resp.ProgressPercent)
}

func TestToItemResponses(t *testing.T) {
	ingredientID := uuid.New()
	items := []shopping.Item{
		{ID: uuid.New(), IngredientID: &ingredientID, IngredientName: "Rice", Quantity: decimal.NewFromInt(2), Unit: "kg", IsPurchased: true},
	}

	out := toItemResponses(items)

	require.Len(t, out, 1)
	assert.Equal(t, &ingredientID, out[0].IngredientID)
	assert.Equal(t, "Rice", out[0].Name)
	assert.Equal(t, "kg", out[0].Unit)
	assert.True(t, out[0].IsPurchased)
	assert.True(t, decimal.NewFromInt(2).Equal(out[0].Quantity))
	assert.Empty(t, toItemResponses(nil))
}
