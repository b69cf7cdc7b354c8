package shopping

import (
	"context"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/domain/shopping"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// ShoppingListService lists, shows and deletes weekly shopping lists
type ShoppingListService struct {
	repo shopping.ShoppingListRepository
}

// NewShoppingListService creates a new ShoppingListService
func NewShoppingListService(repo shopping.ShoppingListRepository) *ShoppingListService {
	return &ShoppingListService{repo: repo}
}

// List returns one page of lists, most recent week first
func (s *ShoppingListService) List(ctx context.Context, filter ListFilter) ([]ShoppingListResponse, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	lists, err := s.repo.FindAll(ctx, filter.OwnerID, page, shared.DefaultPageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter.OwnerID)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ShoppingListResponse, len(lists))
	for i := range lists {
		out[i] = toShoppingListResponse(&lists[i])
	}
	return out, total, nil
}

// GetByID returns a list with its items
func (s *ShoppingListService) GetByID(ctx context.Context, id uuid.UUID) (*ShoppingListDetailResponse, error) {
	list, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	list.RecountItems()

	return &ShoppingListDetailResponse{
		ShoppingListResponse: toShoppingListResponse(list),
		Items:                toItemResponses(list.Items),
	}, nil
}

// Delete removes a list and its items
func (s *ShoppingListService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "shopping_list", "delete", "shopping_list.id", id.String())
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}
