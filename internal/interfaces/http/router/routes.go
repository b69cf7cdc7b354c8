package router

import "github.com/fridgetofork/pantry-admin/internal/interfaces/http/handler"

// Handlers are the endpoint handlers mounted under the API base path
type Handlers struct {
	Dashboard    *handler.DashboardHandler
	Ingredient   *handler.IngredientHandler
	PantryItem   *handler.PantryItemHandler
	Profile      *handler.ProfileHandler
	Recipe       *handler.RecipeHandler
	MealPlan     *handler.MealPlanHandler
	ShoppingList *handler.ShoppingListHandler
}

// APIGroups builds one route group per resource of the admin API
func APIGroups(h Handlers) []*DomainGroup {
	dashboard := NewDomainGroup("dashboard", "/dashboard").
		GET("", h.Dashboard.Get)

	enums := NewDomainGroup("enums", "/enums").
		GET("", h.Dashboard.Enums)

	ingredients := NewDomainGroup("ingredients", "/ingredients").
		GET("", h.Ingredient.List).
		GET("/options", h.Ingredient.Options).
		GET("/:id", h.Ingredient.GetByID).
		POST("", h.Ingredient.Create).
		PUT("/:id", h.Ingredient.Update).
		DELETE("/:id", h.Ingredient.Delete)

	pantryItems := NewDomainGroup("pantry-items", "/pantry-items").
		GET("", h.PantryItem.List).
		GET("/stats", h.PantryItem.Stats).
		GET("/:id", h.PantryItem.GetByID).
		DELETE("/:id", h.PantryItem.Delete)

	profiles := NewDomainGroup("profiles", "/profiles").
		GET("", h.Profile.List).
		GET("/:id", h.Profile.GetByID).
		GET("/:id/recipe-matches", h.Profile.RecipeMatches)

	recipes := NewDomainGroup("recipes", "/recipes").
		GET("", h.Recipe.List).
		GET("/:id", h.Recipe.GetByID).
		POST("", h.Recipe.Create).
		PUT("/:id", h.Recipe.Update).
		DELETE("/:id", h.Recipe.Delete)

	mealPlans := NewDomainGroup("meal-plans", "/meal-plans").
		GET("", h.MealPlan.List).
		GET("/:id", h.MealPlan.GetByID).
		DELETE("/:id", h.MealPlan.Delete)

	shoppingLists := NewDomainGroup("shopping-lists", "/shopping-lists").
		GET("", h.ShoppingList.List).
		GET("/:id", h.ShoppingList.GetByID).
		DELETE("/:id", h.ShoppingList.Delete)

	return []*DomainGroup{dashboard, enums, ingredients, pantryItems, profiles, recipes, mealPlans, shoppingLists}
}
