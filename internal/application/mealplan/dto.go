package mealplan

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilter carries the raw listing query values
type ListFilter struct {
	OwnerID  *uuid.UUID
	Status   string
	MealType string
	DateFrom string
	DateTo   string
	Page     int
}

// MealPlanResponse is a meal plan row
type MealPlanResponse struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	ProfileName   string    `json:"profile_name"`
	PlannedDate   string    `json:"planned_date"`
	MealType      string    `json:"meal_type"`
	MealTypeLabel string    `json:"meal_type_label"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	StatusClass   string    `json:"status_class"`
	RecipeCount   int       `json:"recipe_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// PlannedRecipeLine is one ingredient line of a planned recipe
type PlannedRecipeLine struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// PlannedRecipeResponse is a recipe scheduled into the plan
type PlannedRecipeResponse struct {
	RecipeID uuid.UUID           `json:"recipe_id"`
	Title    string              `json:"title"`
	Servings int                 `json:"servings"`
	Position int                 `json:"position"`
	Lines    []PlannedRecipeLine `json:"ingredients"`
}

// MealPlanDetailResponse is a plan with its recipes
type MealPlanDetailResponse struct {
	MealPlanResponse
	Recipes []PlannedRecipeResponse `json:"recipes"`
}

// ListResponse is one page of plans plus the global status breakdown
type ListResponse struct {
	Items  []MealPlanResponse    `json:"items"`
	Counts mealplan.StatusCounts `json:"counts"`
}

// ToMealPlanResponse converts a domain MealPlan
func ToMealPlanResponse(m *mealplan.MealPlan) MealPlanResponse {
	name := m.ProfileName
	if name == "" {
		name = "N/A"
	}
	return MealPlanResponse{
		ID:            m.ID,
		ProfileID:     m.ProfileID,
		ProfileName:   name,
		PlannedDate:   m.PlannedDate.Format(shared.DateLayout),
		MealType:      string(m.MealType),
		MealTypeLabel: m.MealType.Label(),
		Status:        string(m.Status),
		StatusLabel:   m.Status.Label(),
		StatusClass:   m.Status.Class(),
		RecipeCount:   len(m.Recipes),
		CreatedAt:     m.CreatedAt,
	}
}

// ToMealPlanDetailResponse converts a domain MealPlan with its recipes
func ToMealPlanDetailResponse(m *mealplan.MealPlan) MealPlanDetailResponse {
	recipes := make([]PlannedRecipeResponse, len(m.Recipes))
	for i, r := range m.Recipes {
		lines := make([]PlannedRecipeLine, len(r.Lines))
		for j, l := range r.Lines {
			name := l.IngredientName
			if name == "" {
				name = catalog.MissingIngredientName
			}
			lines[j] = PlannedRecipeLine{
				IngredientID:   l.IngredientID,
				IngredientName: name,
				Quantity:       l.Quantity,
				Unit:           l.Unit,
			}
		}
		title := r.Title
		if title == "" {
			title = catalog.MissingIngredientName
		}
		recipes[i] = PlannedRecipeResponse{
			RecipeID: r.RecipeID,
			Title:    title,
			Servings: r.Servings,
			Position: r.Position,
			Lines:    lines,
		}
	}
	return MealPlanDetailResponse{
		MealPlanResponse: ToMealPlanResponse(m),
		Recipes:          recipes,
	}
}
