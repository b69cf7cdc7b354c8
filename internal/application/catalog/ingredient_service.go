package catalog

import (
	"context"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/logger"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngredientService handles ingredient reference data
type IngredientService struct {
	repo  catalog.IngredientRepository
	cache catalog.IngredientOptionsCache
}

// NewIngredientService creates a new IngredientService. cache may be nil,
// in which case Options always reads the database.
func NewIngredientService(repo catalog.IngredientRepository, cache catalog.IngredientOptionsCache) *IngredientService {
	return &IngredientService{repo: repo, cache: cache}
}

// List returns one page of ingredients and the match count
func (s *IngredientService) List(ctx context.Context, filter IngredientListFilter) ([]IngredientResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	domainFilter.Search = filter.Search
	if filter.Category != "" {
		category := catalog.IngredientCategory(filter.Category)
		if !category.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_CATEGORY", "Unknown ingredient category")
		}
		domainFilter.Filters["category"] = string(category)
	}

	items, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToIngredientResponses(items), total, nil
}

// GetByID returns one active ingredient
func (s *IngredientService) GetByID(ctx context.Context, id uuid.UUID) (*IngredientResponse, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToIngredientResponse(ing)
	return &resp, nil
}

// Create adds an ingredient
func (s *IngredientService) Create(ctx context.Context, req IngredientRequest) (*IngredientResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ingredient", "create")
	defer span.End()

	ing, err := catalog.NewIngredient(req.Name, catalog.IngredientCategory(req.Category), catalog.IngredientUnit(req.Unit))
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, ing); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, "ingredient.id", ing.ID.String())
	s.invalidateOptions(ctx)

	resp := ToIngredientResponse(ing)
	return &resp, nil
}

// Update replaces the editable fields of an ingredient
func (s *IngredientService) Update(ctx context.Context, id uuid.UUID, req IngredientRequest) (*IngredientResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ingredient", "update", "ingredient.id", id.String())
	defer span.End()

	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ing.Update(req.Name, catalog.IngredientCategory(req.Category), catalog.IngredientUnit(req.Unit)); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, ing); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.invalidateOptions(ctx)

	resp := ToIngredientResponse(ing)
	return &resp, nil
}

// Delete soft-deletes an ingredient. Recipe lines and pantry items keep
// their reference and render the name as N/A.
func (s *IngredientService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "ingredient", "delete", "ingredient.id", id.String())
	defer span.End()

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidateOptions(ctx)
	return nil
}

// Options returns every active ingredient ordered by name for the recipe
// form picker. Cache failures are logged and fall through to the database.
func (s *IngredientService) Options(ctx context.Context) ([]catalog.IngredientOption, error) {
	if s.cache != nil {
		options, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.L(ctx).Warn("ingredient options cache read failed", zap.Error(err))
		} else if ok {
			return options, nil
		}
	}

	items, err := s.repo.FindAllOrderedByName(ctx)
	if err != nil {
		return nil, err
	}
	options := ToIngredientOptions(items)

	if s.cache != nil {
		if err := s.cache.Set(ctx, options); err != nil {
			logger.L(ctx).Warn("ingredient options cache write failed", zap.Error(err))
		}
	}
	return options, nil
}

func (s *IngredientService) invalidateOptions(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.L(ctx).Warn("ingredient options cache invalidation failed", zap.Error(err))
	}
}
