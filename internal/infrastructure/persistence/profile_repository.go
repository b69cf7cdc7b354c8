package persistence

import (
	"context"
	"errors"

	"github.com/fridgetofork/pantry-admin/internal/domain/profile"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID finds a profile by its ID
func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("profile")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists one page of profiles, newest first by default
func (r *GormProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]profile.Profile, error) {
	query := r.db.WithContext(ctx).Model(&models.ProfileModel{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", likePattern(filter.Search))
	}
	sortField := ValidateSortField(filter.OrderBy, ProfileSortFields, "created_at")

	var rows []models.ProfileModel
	if err := query.
		Order(sortField + " " + ValidateSortOrder(filter.OrderDir)).
		Scopes(paginate(filter)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]profile.Profile, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// FindByIDs returns the existing profiles among ids, keyed by id
func (r *GormProfileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]profile.Profile, error) {
	found := make(map[uuid.UUID]profile.Profile, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var rows []models.ProfileModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		found[rows[i].ID] = *rows[i].ToDomain()
	}
	return found, nil
}

// Count counts all profiles
func (r *GormProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProfileModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormProfileRepository implements ProfileRepository
var _ profile.ProfileRepository = (*GormProfileRepository)(nil)
