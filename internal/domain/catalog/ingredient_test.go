package catalog

import (
	"strings"
	"testing"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIngredient(t *testing.T) {
	t.Run("creates ingredient with normalized name", func(t *testing.T) {
		ing, err := NewIngredient("  Thịt heo ", CategoryMeat, UnitGram)
		require.NoError(t, err)
		assert.NotEmpty(t, ing.ID)
		assert.Equal(t, "Thịt heo", ing.Name)
		assert.Equal(t, "thit heo", ing.NameNormalized)
		assert.Equal(t, CategoryMeat, ing.Category)
		assert.Equal(t, UnitGram, ing.Unit)
		assert.False(t, ing.IsDeleted())
	})

	t.Run("category and unit are optional", func(t *testing.T) {
		ing, err := NewIngredient("Salt", "", "")
		require.NoError(t, err)
		assert.Equal(t, UncategorizedLabel, ing.Category.Label())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewIngredient("   ", CategoryOther, UnitGram)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewIngredient(strings.Repeat("a", 256), CategoryOther, UnitGram)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 255")
	})

	t.Run("fails with unknown category", func(t *testing.T) {
		_, err := NewIngredient("Milk", "beverage", UnitMilliliter)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_CATEGORY", de.Code)
	})

	t.Run("fails with unknown unit", func(t *testing.T) {
		_, err := NewIngredient("Milk", CategoryDairy, "litre")
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_UNIT", de.Code)
	})
}

func TestIngredient_Update(t *testing.T) {
	ing, err := NewIngredient("Sữa", CategoryDairy, UnitMilliliter)
	require.NoError(t, err)
	before := ing.UpdatedAt

	require.NoError(t, ing.Update("Sữa chua", CategoryDairy, UnitPiece))
	assert.Equal(t, "sua chua", ing.NameNormalized)
	assert.Equal(t, UnitPiece, ing.Unit)
	assert.False(t, ing.UpdatedAt.Before(before))

	err = ing.Update("", CategoryDairy, UnitPiece)
	require.Error(t, err)
	assert.Equal(t, "Sữa chua", ing.Name)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Grain / Nut", CategoryGrain.Label())
	assert.Equal(t, "mystery", IngredientCategory("mystery").Label())
	assert.Equal(t, "milliliter", UnitMilliliter.Label())
	assert.Equal(t, "Medium", DifficultyMedium.Label())
	assert.Equal(t, NoValueLabel, Difficulty("").Label())
	assert.Equal(t, "Dinner", MealTypeDinner.Label())
	assert.Equal(t, NoValueLabel, MealType("").Label())

	for _, c := range IngredientCategories {
		assert.NotEqual(t, string(c), c.Label(), "category %s has no label", c)
	}
	for _, m := range MealTypes {
		assert.True(t, m.IsValid())
	}
}
