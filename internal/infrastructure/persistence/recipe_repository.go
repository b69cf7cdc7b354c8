package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRecipeRepository implements RecipeRepository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// FindByID loads an active recipe with its lines in position order
func (r *GormRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Recipe, error) {
	var model models.RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Ingredients.Ingredient").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("recipe")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists one page of active recipes together with their line counts
func (r *GormRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Recipe, error) {
	var rows []models.RecipeModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RecipeModel{}), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []catalog.Recipe{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	counts, err := r.lineCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	recipes := make([]catalog.Recipe, len(rows))
	for i := range rows {
		recipes[i] = *rows[i].ToDomain()
		recipes[i].IngredientCount = counts[rows[i].ID]
	}
	return recipes, nil
}

// Count counts active recipes matching the filter
func (r *GormRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.RecipeModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save upserts the recipe row and replaces every line in one transaction
func (r *GormRecipeRepository) Save(ctx context.Context, recipe *catalog.Recipe) error {
	model := models.RecipeModelFromDomain(recipe)
	lines := models.RecipeIngredientModelsFromDomain(recipe)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return fmt.Errorf("save recipe: %w", err)
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredientModel{}).Error; err != nil {
			return fmt.Errorf("clear recipe lines: %w", err)
		}
		if len(lines) == 0 {
			return nil
		}
		if err := tx.Omit(clause.Associations).Create(&lines).Error; err != nil {
			return fmt.Errorf("insert recipe lines: %w", err)
		}
		return nil
	})
}

// SoftDelete marks an active recipe as deleted. Its lines stay untouched.
func (r *GormRecipeRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("recipe")
	}
	return nil
}

func (r *GormRecipeRepository) lineCounts(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		RecipeID uuid.UUID
		Count    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.RecipeIngredientModel{}).
		Select("recipe_id, COUNT(*) AS count").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.RecipeID] = row.Count
	}
	return counts, nil
}

func (r *GormRecipeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	sortField := ValidateSortField(filter.OrderBy, RecipeSortFields, "created_at")
	return query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir)).Scopes(paginate(filter))
}

func (r *GormRecipeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", likePattern(filter.Search))
	}
	for key, value := range filter.Filters {
		switch key {
		case "meal_type":
			query = query.Where("meal_type = ?", value)
		case "difficulty":
			query = query.Where("difficulty = ?", value)
		}
	}
	return query
}

// Ensure GormRecipeRepository implements RecipeRepository
var _ catalog.RecipeRepository = (*GormRecipeRepository)(nil)

// GormRecipeMatchRepository reads precomputed match rows
type GormRecipeMatchRepository struct {
	db *gorm.DB
}

// NewGormRecipeMatchRepository creates a new GormRecipeMatchRepository
func NewGormRecipeMatchRepository(db *gorm.DB) *GormRecipeMatchRepository {
	return &GormRecipeMatchRepository{db: db}
}

// FindByProfile returns the profile's matches ordered by match percent,
// highest first. Ties keep the recipe title order.
func (r *GormRecipeMatchRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]catalog.RecipeMatch, error) {
	var rows []models.RecipeMatchModel
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("profile_id = ?", profileID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	matches := make([]catalog.RecipeMatch, len(rows))
	for i := range rows {
		matches[i] = rows[i].ToDomain()
	}
	catalog.SortMatches(matches)
	return matches, nil
}

// Ensure GormRecipeMatchRepository implements RecipeMatchRepository
var _ catalog.RecipeMatchRepository = (*GormRecipeMatchRepository)(nil)
