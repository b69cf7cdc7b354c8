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
)

// GormIngredientRepository implements IngredientRepository using GORM
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewGormIngredientRepository creates a new GormIngredientRepository
func NewGormIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

// FindByID finds an active ingredient by its ID
func (r *GormIngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Ingredient, error) {
	var model models.IngredientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("ingredient")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds one page of active ingredients
func (r *GormIngredientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Ingredient, error) {
	var rows []models.IngredientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.IngredientModel{}), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return ingredientsToDomain(rows), nil
}

// Count counts active ingredients matching the filter
func (r *GormIngredientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.IngredientModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAllOrderedByName returns every active ingredient, ascending by name
func (r *GormIngredientRepository) FindAllOrderedByName(ctx context.Context) ([]catalog.Ingredient, error) {
	var rows []models.IngredientModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return ingredientsToDomain(rows), nil
}

// ExistingIDs returns the subset of ids that resolve to active ingredients
func (r *GormIngredientRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	var found []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// CountByCategory groups active ingredients by category
func (r *GormIngredientRepository) CountByCategory(ctx context.Context) ([]catalog.CategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make([]catalog.CategoryCount, len(rows))
	for i, row := range rows {
		counts[i] = catalog.CategoryCount{Category: catalog.IngredientCategory(row.Category), Count: row.Count}
	}
	return counts, nil
}

// Save creates or updates an ingredient
func (r *GormIngredientRepository) Save(ctx context.Context, ingredient *catalog.Ingredient) error {
	model := models.IngredientModelFromDomain(ingredient)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("save ingredient: %w", err)
	}
	return nil
}

// SoftDelete marks an active ingredient as deleted
func (r *GormIngredientRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.IngredientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("ingredient")
	}
	return nil
}

// applyFilter applies filter options, ordering and pagination
func (r *GormIngredientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	sortField := ValidateSortField(filter.OrderBy, IngredientSortFields, "name")
	sortDir := "ASC"
	if filter.OrderBy != "" {
		sortDir = ValidateSortOrder(filter.OrderDir)
	}
	return query.Order(sortField + " " + sortDir).Scopes(paginate(filter))
}

// applyFilterWithoutPagination applies search and category only
func (r *GormIngredientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", likePattern(filter.Search))
	}

	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "unit":
			query = query.Where("unit = ?", value)
		}
	}
	return query
}

func ingredientsToDomain(rows []models.IngredientModel) []catalog.Ingredient {
	out := make([]catalog.Ingredient, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// Ensure GormIngredientRepository implements IngredientRepository
var _ catalog.IngredientRepository = (*GormIngredientRepository)(nil)
