// Package enums exposes every closed enumeration with its display labels.
package enums

import (
	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
)

// Option is one value of an enumeration
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog maps enumeration names to their options in display order
type Catalog map[string][]Option

// All returns every enumeration served by GET /enums
func All() Catalog {
	return Catalog{
		"ingredient_category": options(catalog.IngredientCategories, catalog.IngredientCategory.Label),
		"ingredient_unit":     options(catalog.IngredientUnits, catalog.IngredientUnit.Label),
		"difficulty":          options(catalog.Difficulties, catalog.Difficulty.Label),
		"meal_type":           options(catalog.MealTypes, catalog.MealType.Label),
		"meal_plan_status":    options(mealplan.Statuses, mealplan.Status.Label),
		"pantry_status": {
			{Value: string(pantry.StatusFilterExpired), Label: "Expired"},
			{Value: string(pantry.StatusFilterExpiringSoon), Label: "Expiring soon"},
			{Value: string(pantry.StatusFilterSafe), Label: "Safe"},
		},
	}
}

func options[T ~string](values []T, label func(T) string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: string(v), Label: label(v)}
	}
	return out
}
