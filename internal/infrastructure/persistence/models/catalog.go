package models

import (
	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientModel is the persistence model for ingredients
type IngredientModel struct {
	SoftDeleteModel
	Name           string `gorm:"type:varchar(255);not null"`
	NameNormalized string `gorm:"type:varchar(255);index"`
	Category       string `gorm:"type:varchar(20);index"`
	Unit           string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (IngredientModel) TableName() string {
	return "ingredients"
}

// ToDomain converts the persistence model to a domain Ingredient
func (m *IngredientModel) ToDomain() *catalog.Ingredient {
	return &catalog.Ingredient{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		NameNormalized: m.NameNormalized,
		Category:       catalog.IngredientCategory(m.Category),
		Unit:           catalog.IngredientUnit(m.Unit),
		DeletedAt:      m.DeletedAtPtr(),
	}
}

// FromDomain populates the persistence model from a domain Ingredient
func (m *IngredientModel) FromDomain(i *catalog.Ingredient) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.SetDeletedAt(i.DeletedAt)
	m.Name = i.Name
	m.NameNormalized = i.NameNormalized
	m.Category = string(i.Category)
	m.Unit = string(i.Unit)
}

// IngredientModelFromDomain creates a persistence model from a domain Ingredient
func IngredientModelFromDomain(i *catalog.Ingredient) *IngredientModel {
	m := &IngredientModel{}
	m.FromDomain(i)
	return m
}

// RecipeModel is the persistence model for recipes
type RecipeModel struct {
	SoftDeleteModel
	Title              string `gorm:"type:varchar(255);not null"`
	Description        string `gorm:"type:text"`
	Instructions       string `gorm:"type:text"`
	CookingTimeMinutes *int
	Servings           *int
	Difficulty         string `gorm:"type:varchar(20);index"`
	Cuisine            string `gorm:"type:varchar(100)"`
	MealType           string `gorm:"type:varchar(20);index"`
	ImageURL           string `gorm:"type:text"`
	VideoURL           string `gorm:"type:text"`
	SourceURL          string `gorm:"type:text"`

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (RecipeModel) TableName() string {
	return "recipes"
}

// ToDomain converts the persistence model to a domain Recipe. Lines are
// included when they were preloaded.
func (m *RecipeModel) ToDomain() *catalog.Recipe {
	r := &catalog.Recipe{
		BaseEntity: m.BaseModel.ToDomain(),
		RecipeDetails: catalog.RecipeDetails{
			Title:              m.Title,
			Description:        m.Description,
			Instructions:       m.Instructions,
			CookingTimeMinutes: m.CookingTimeMinutes,
			Servings:           m.Servings,
			Difficulty:         catalog.Difficulty(m.Difficulty),
			Cuisine:            m.Cuisine,
			MealType:           catalog.MealType(m.MealType),
			ImageURL:           m.ImageURL,
			VideoURL:           m.VideoURL,
			SourceURL:          m.SourceURL,
		},
		DeletedAt: m.DeletedAtPtr(),
	}
	if len(m.Ingredients) > 0 {
		r.Ingredients = make([]catalog.RecipeIngredient, len(m.Ingredients))
		for i := range m.Ingredients {
			r.Ingredients[i] = m.Ingredients[i].ToDomain()
		}
		r.IngredientCount = int64(len(m.Ingredients))
	}
	return r
}

// FromDomain populates the persistence model from a domain Recipe. Lines
// are converted separately with RecipeIngredientModelsFromDomain.
func (m *RecipeModel) FromDomain(r *catalog.Recipe) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.SetDeletedAt(r.DeletedAt)
	m.Title = r.Title
	m.Description = r.Description
	m.Instructions = r.Instructions
	m.CookingTimeMinutes = r.CookingTimeMinutes
	m.Servings = r.Servings
	m.Difficulty = string(r.Difficulty)
	m.Cuisine = r.Cuisine
	m.MealType = string(r.MealType)
	m.ImageURL = r.ImageURL
	m.VideoURL = r.VideoURL
	m.SourceURL = r.SourceURL
}

// RecipeModelFromDomain creates a persistence model from a domain Recipe
func RecipeModelFromDomain(r *catalog.Recipe) *RecipeModel {
	m := &RecipeModel{}
	m.FromDomain(r)
	return m
}

// RecipeIngredientModel is one ingredient line of a recipe
type RecipeIngredientModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	RecipeID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Unit         string          `gorm:"type:varchar(20);not null;default:'g'"`
	Position     int             `gorm:"not null;default:0"`

	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName returns the table name for GORM
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// ToDomain converts the line; a missing ingredient reads as "N/A"
func (m *RecipeIngredientModel) ToDomain() catalog.RecipeIngredient {
	name := catalog.MissingIngredientName
	if m.Ingredient != nil && m.Ingredient.Name != "" {
		name = m.Ingredient.Name
	}
	return catalog.RecipeIngredient{
		IngredientID:   m.IngredientID,
		Quantity:       m.Quantity,
		Unit:           m.Unit,
		IngredientName: name,
	}
}

// RecipeIngredientModelsFromDomain converts a recipe's lines, keeping their order
func RecipeIngredientModelsFromDomain(r *catalog.Recipe) []RecipeIngredientModel {
	lines := make([]RecipeIngredientModel, len(r.Ingredients))
	for i, l := range r.Ingredients {
		lines[i] = RecipeIngredientModel{
			ID:           uuid.New(),
			RecipeID:     r.ID,
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
			Position:     i,
		}
	}
	return lines
}

// RecipeMatchModel maps the user_recipe_matches table
type RecipeMatchModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfileID            uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID             uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalIngredients     int       `gorm:"not null;default:0"`
	AvailableIngredients int       `gorm:"not null;default:0"`
	MissingIngredients   int       `gorm:"not null;default:0"`

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// TableName returns the table name for GORM
func (RecipeMatchModel) TableName() string {
	return "user_recipe_matches"
}

// ToDomain converts the persistence model to a domain RecipeMatch
func (m *RecipeMatchModel) ToDomain() catalog.RecipeMatch {
	title := catalog.MissingIngredientName
	if m.Recipe != nil {
		title = m.Recipe.Title
	}
	return catalog.RecipeMatch{
		ID:                   m.ID,
		ProfileID:            m.ProfileID,
		RecipeID:             m.RecipeID,
		RecipeTitle:          title,
		TotalIngredients:     m.TotalIngredients,
		AvailableIngredients: m.AvailableIngredients,
		MissingIngredients:   m.MissingIngredients,
	}
}
