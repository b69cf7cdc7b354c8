package catalog

import (
	"context"

	"github.com/google/uuid"
)

// IngredientOption is one entry of the ingredient picker on the recipe form
type IngredientOption struct {
	ID   uuid.UUID      `json:"id"`
	Name string         `json:"name"`
	Unit IngredientUnit `json:"unit,omitempty"`
}

// IngredientOptionsCache holds the picker list between ingredient writes.
// Get reports a miss with ok == false and a nil error.
type IngredientOptionsCache interface {
	Get(ctx context.Context) (options []IngredientOption, ok bool, err error)
	Set(ctx context.Context, options []IngredientOption) error
	Invalidate(ctx context.Context) error
}
