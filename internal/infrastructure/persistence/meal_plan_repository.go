package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMealPlanRepository implements MealPlanRepository using GORM
type GormMealPlanRepository struct {
	db *gorm.DB
}

// NewGormMealPlanRepository creates a new GormMealPlanRepository
func NewGormMealPlanRepository(db *gorm.DB) *GormMealPlanRepository {
	return &GormMealPlanRepository{db: db}
}

// FindByID loads a plan with its recipes in position order. Each recipe
// brings its ingredient lines.
func (r *GormMealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	var model models.MealPlanModel
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order("meal_plan_recipes.position ASC")
		}).
		Preload("Recipes.Recipe").
		Preload("Recipes.Recipe.Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Recipes.Recipe.Ingredients.Ingredient").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("meal plan")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page ordered by planned_date desc then meal_type
func (r *GormMealPlanRepository) FindAll(ctx context.Context, query mealplan.ListQuery, page, pageSize int) ([]mealplan.MealPlan, error) {
	filter := shared.Filter{Page: page, PageSize: pageSize}

	var rows []models.MealPlanModel
	if err := r.db.WithContext(ctx).
		Model(&models.MealPlanModel{}).
		Preload("Profile").
		Scopes(mealPlanQuery(query), paginate(filter)).
		Order("planned_date DESC").
		Order("meal_type ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]mealplan.MealPlan, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Count counts plans matching the query
func (r *GormMealPlanRepository) Count(ctx context.Context, query mealplan.ListQuery) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MealPlanModel{}).
		Scopes(mealPlanQuery(query)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts every plan grouped by status
func (r *GormMealPlanRepository) CountByStatus(ctx context.Context) (mealplan.StatusCounts, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.MealPlanModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return mealplan.StatusCounts{}, err
	}

	var counts mealplan.StatusCounts
	for _, row := range rows {
		counts.Add(mealplan.Status(row.Status), row.Count)
	}
	return counts, nil
}

// Delete removes the plan and its recipe links in one transaction
func (r *GormMealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", id).Delete(&models.MealPlanRecipeModel{}).Error; err != nil {
			return fmt.Errorf("delete meal plan recipes: %w", err)
		}
		result := tx.Delete(&models.MealPlanModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NotFound("meal plan")
		}
		return nil
	})
}

func mealPlanQuery(q mealplan.ListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.OwnerID != nil {
			db = db.Where("meal_plans.profile_id = ?", *q.OwnerID)
		}
		if q.Status != "" {
			db = db.Where("meal_plans.status = ?", string(q.Status))
		}
		if q.MealType != "" {
			db = db.Where("meal_plans.meal_type = ?", string(q.MealType))
		}
		if q.DateFrom != nil {
			db = db.Where("meal_plans.planned_date >= ?", shared.DateOf(*q.DateFrom))
		}
		if q.DateTo != nil {
			db = db.Where("meal_plans.planned_date <= ?", shared.DateOf(*q.DateTo))
		}
		return db
	}
}

// Ensure GormMealPlanRepository implements MealPlanRepository
var _ mealplan.MealPlanRepository = (*GormMealPlanRepository)(nil)
