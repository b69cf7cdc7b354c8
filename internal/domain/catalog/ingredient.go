package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
)

// MaxIngredientNameLength is the maximum length of an ingredient name
const MaxIngredientNameLength = 255

// IngredientCategory groups ingredients on the catalog screens
type IngredientCategory string

const (
	CategoryDairy     IngredientCategory = "dairy"
	CategoryMeat      IngredientCategory = "meat"
	CategoryVegetable IngredientCategory = "vegetable"
	CategoryGrain     IngredientCategory = "grain"
	CategoryOther     IngredientCategory = "other"
)

// IngredientCategories lists the closed set of categories in display order
var IngredientCategories = []IngredientCategory{
	CategoryDairy, CategoryMeat, CategoryVegetable, CategoryGrain, CategoryOther,
}

// IngredientUnit is the default measuring unit of an ingredient
type IngredientUnit string

const (
	UnitGram       IngredientUnit = "g"
	UnitMilliliter IngredientUnit = "ml"
	UnitPiece      IngredientUnit = "piece"
	UnitFruit      IngredientUnit = "fruit"
)

// IngredientUnits lists the closed set of units in display order
var IngredientUnits = []IngredientUnit{UnitGram, UnitMilliliter, UnitPiece, UnitFruit}

// IsValid reports whether c is a known category. The empty category is
// allowed and means "uncategorized".
func (c IngredientCategory) IsValid() bool {
	if c == "" {
		return true
	}
	_, ok := categoryLabels[c]
	return ok
}

// IsValid reports whether u is a known unit; empty is allowed
func (u IngredientUnit) IsValid() bool {
	if u == "" {
		return true
	}
	_, ok := unitLabels[u]
	return ok
}

// Ingredient is a reference-data entry curated by staff
type Ingredient struct {
	shared.BaseEntity
	Name           string
	NameNormalized string
	Category       IngredientCategory
	Unit           IngredientUnit
	DeletedAt      *time.Time
}

// NewIngredient creates a validated ingredient and derives its normalized name
func NewIngredient(name string, category IngredientCategory, unit IngredientUnit) (*Ingredient, error) {
	ing := &Ingredient{BaseEntity: shared.NewBaseEntity()}
	if err := ing.apply(name, category, unit); err != nil {
		return nil, err
	}
	return ing, nil
}

// Update replaces the editable fields and refreshes the normalized name
func (i *Ingredient) Update(name string, category IngredientCategory, unit IngredientUnit) error {
	if err := i.apply(name, category, unit); err != nil {
		return err
	}
	i.Touch()
	return nil
}

func (i *Ingredient) apply(name string, category IngredientCategory, unit IngredientUnit) error {
	name = strings.TrimSpace(name)
	if err := validateIngredientName(name); err != nil {
		return err
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Category must be one of: "+joinCategories())
	}
	if !unit.IsValid() {
		return shared.NewDomainError("INVALID_UNIT", "Unit must be one of: "+joinUnits())
	}
	i.Name = name
	i.NameNormalized = NormalizeName(name)
	i.Category = category
	i.Unit = unit
	return nil
}

// IsDeleted reports whether the ingredient carries a deletion marker
func (i *Ingredient) IsDeleted() bool {
	return i.DeletedAt != nil
}

func validateIngredientName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Ingredient name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxIngredientNameLength {
		return shared.NewDomainError("INVALID_NAME", "Ingredient name cannot exceed 255 characters")
	}
	return nil
}

func joinCategories() string {
	parts := make([]string, len(IngredientCategories))
	for i, c := range IngredientCategories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func joinUnits() string {
	parts := make([]string, len(IngredientUnits))
	for i, u := range IngredientUnits {
		parts[i] = string(u)
	}
	return strings.Join(parts, ", ")
}

// CategoryCount is one row of the ingredient-per-category breakdown
type CategoryCount struct {
	Category IngredientCategory
	Count    int64
}
