package models

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/google/uuid"
)

// MealPlanModel is the persistence model for meal plans
type MealPlanModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PlannedDate time.Time `gorm:"type:date;not null;index"`
	MealType    string    `gorm:"type:varchar(20);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'planned';index"`
	CreatedAt   time.Time `gorm:"not null"`

	Profile *ProfileModel         `gorm:"foreignKey:ProfileID"`
	Recipes []MealPlanRecipeModel `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// ToDomain converts the persistence model to a domain MealPlan
func (m *MealPlanModel) ToDomain() *mealplan.MealPlan {
	plan := &mealplan.MealPlan{
		ID:          m.ID,
		ProfileID:   m.ProfileID,
		ProfileName: "N/A",
		PlannedDate: *datePtr(&m.PlannedDate),
		MealType:    catalog.MealType(m.MealType),
		Status:      mealplan.Status(m.Status),
		CreatedAt:   m.CreatedAt,
	}
	if m.Profile != nil && m.Profile.Name != "" {
		plan.ProfileName = m.Profile.Name
	}
	for i := range m.Recipes {
		plan.Recipes = append(plan.Recipes, m.Recipes[i].ToDomain())
	}
	return plan
}

// MealPlanRecipeModel links a recipe into a meal plan
type MealPlanRecipeModel struct {
	MealPlanID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Servings   int       `gorm:"not null;default:1"`
	Position   int       `gorm:"not null;default:0"`

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// TableName returns the table name for GORM
func (MealPlanRecipeModel) TableName() string {
	return "meal_plan_recipes"
}

// ToDomain converts the link; a soft-deleted recipe reads as "N/A"
func (m *MealPlanRecipeModel) ToDomain() mealplan.PlannedRecipe {
	pr := mealplan.PlannedRecipe{
		RecipeID: m.RecipeID,
		Title:    catalog.MissingIngredientName,
		Servings: m.Servings,
		Position: m.Position,
	}
	if m.Recipe != nil {
		pr.Title = m.Recipe.Title
		for i := range m.Recipe.Ingredients {
			pr.Lines = append(pr.Lines, m.Recipe.Ingredients[i].ToDomain())
		}
	}
	return pr
}
