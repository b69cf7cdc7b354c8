package profile

import (
	"context"

	pantryapp "github.com/fridgetofork/pantry-admin/internal/application/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/profile"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
)

// ProfileService shows end-user profiles with their stock
type ProfileService struct {
	profiles profile.ProfileRepository
	items    pantry.PantryItemRepository
	matches  catalog.RecipeMatchRepository
	clock    shared.Clock
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profiles profile.ProfileRepository,
	items pantry.PantryItemRepository,
	matches catalog.RecipeMatchRepository,
	clock shared.Clock,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		items:    items,
		matches:  matches,
		clock:    clock,
	}
}

// List returns one page of profiles, newest first, with active item counts
func (s *ProfileService) List(ctx context.Context, filter ListFilter) ([]ProfileResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	domainFilter.Search = filter.Search

	profiles, err := s.profiles.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(profiles))
	for i := range profiles {
		ids[i] = profiles[i].ID
	}
	counts, err := s.items.CountByOwners(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		profiles[i].PantryItemCount = counts[profiles[i].ID]
		out[i] = ToProfileResponse(&profiles[i])
	}
	return out, total, nil
}

// GetByID returns a profile with its active items, expiry ascending, and
// the counters of that owner
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*ProfileDetailResponse, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	today := shared.Today(s.clock)
	stats, err := s.items.CountStats(ctx, &id, today)
	if err != nil {
		return nil, err
	}

	p.PantryItemCount = stats.Total
	return &ProfileDetailResponse{
		ProfileResponse: ToProfileResponse(p),
		PantryItems:     pantryapp.ToItemResponses(items, today),
		Stats:           stats,
	}, nil
}

// RecipeMatches returns the profile's recipe matches, best match first
func (s *ProfileService) RecipeMatches(ctx context.Context, id uuid.UUID) ([]RecipeMatchResponse, error) {
	if _, err := s.profiles.FindByID(ctx, id); err != nil {
		return nil, err
	}

	matches, err := s.matches.FindByProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog.SortMatches(matches)
	return ToRecipeMatchResponses(matches), nil
}
