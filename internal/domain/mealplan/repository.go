package mealplan

import (
	"context"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/google/uuid"
)

// ListQuery narrows the meal plan listing. Date bounds are inclusive.
type ListQuery struct {
	OwnerID  *uuid.UUID
	Status   Status
	MealType catalog.MealType
	DateFrom *time.Time
	DateTo   *time.Time
}

// MealPlanRepository reads and deletes meal plans
type MealPlanRepository interface {
	// FindByID returns a plan with its recipes ordered by position
	FindByID(ctx context.Context, id uuid.UUID) (*MealPlan, error)

	// FindAll returns one page, planned_date descending then meal_type
	FindAll(ctx context.Context, query ListQuery, page, pageSize int) ([]MealPlan, error)

	// Count counts plans matching the query
	Count(ctx context.Context, query ListQuery) (int64, error)

	// CountByStatus counts every plan grouped by status
	CountByStatus(ctx context.Context) (StatusCounts, error)

	// Delete physically removes a plan and its recipe links
	Delete(ctx context.Context, id uuid.UUID) error
}
