// Package pantry holds the read and soft-delete use cases over pantry stock.
package pantry

import (
	"context"

	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// PantryService lists, shows and soft-deletes pantry items
type PantryService struct {
	repo  pantry.PantryItemRepository
	clock shared.Clock
}

// NewPantryService creates a new PantryService
func NewPantryService(repo pantry.PantryItemRepository, clock shared.Clock) *PantryService {
	return &PantryService{repo: repo, clock: clock}
}

// List returns one page of items, the total match count and the stats of
// the owner scope. Stats ignore the status and search filters.
func (s *PantryService) List(ctx context.Context, filter ListFilter) (*ListResponse, int64, error) {
	status, err := pantry.ParseStatusFilter(filter.Status)
	if err != nil {
		return nil, 0, err
	}

	query := pantry.NewStockQuery(s.clock).WithStatus(status).WithSearch(filter.Search)
	if filter.OwnerID != nil {
		query = query.WithOwner(*filter.OwnerID)
	}

	page := shared.DefaultFilter()
	if filter.Page > 0 {
		page.Page = filter.Page
	}

	items, err := s.repo.FindAll(ctx, query, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	stats, err := s.repo.CountStats(ctx, filter.OwnerID, query.Today)
	if err != nil {
		return nil, 0, err
	}

	return &ListResponse{
		Items: ToItemResponses(items, query.Today),
		Stats: stats,
	}, total, nil
}

// GetByID returns one active item
func (s *PantryService) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToItemResponse(item, shared.Today(s.clock))
	return &resp, nil
}

// Stats returns the counters, optionally for one owner
func (s *PantryService) Stats(ctx context.Context, ownerID *uuid.UUID) (pantry.Stats, error) {
	return s.repo.CountStats(ctx, ownerID, shared.Today(s.clock))
}

// Delete soft-deletes an item. The row stays with deleted_at set.
func (s *PantryService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "pantry", "delete", "pantry_item.id", id.String())
	defer span.End()

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}
