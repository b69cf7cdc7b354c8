// Package dashboard assembles the landing screen counters and watch lists.
package dashboard

import (
	"context"

	pantryapp "github.com/fridgetofork/pantry-admin/internal/application/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/pantry"
	"github.com/fridgetofork/pantry-admin/internal/domain/profile"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
)

const (
	// WatchWindowDays is how far ahead the expiring list looks
	WatchWindowDays = 7
	// WatchListLimit caps both watch lists
	WatchListLimit = 10
)

// Totals are the headline counters
type Totals struct {
	Profiles     int64 `json:"profiles"`
	Ingredients  int64 `json:"ingredients"`
	PantryItems  int64 `json:"pantry_items"`
	Expired      int64 `json:"expired"`
	ExpiringSoon int64 `json:"expiring_soon"`
}

// CategoryCountResponse is one bar of the ingredient breakdown
type CategoryCountResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int64  `json:"count"`
}

// Response is the dashboard payload
type Response struct {
	Totals                Totals                   `json:"totals"`
	ExpiringSoon          []pantryapp.ItemResponse `json:"expiring_soon"`
	RecentlyExpired       []pantryapp.ItemResponse `json:"recently_expired"`
	IngredientsByCategory []CategoryCountResponse  `json:"ingredients_by_category"`
}

// DashboardService computes the dashboard on every request
type DashboardService struct {
	profiles    profile.ProfileRepository
	ingredients catalog.IngredientRepository
	items       pantry.PantryItemRepository
	clock       shared.Clock
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	profiles profile.ProfileRepository,
	ingredients catalog.IngredientRepository,
	items pantry.PantryItemRepository,
	clock shared.Clock,
) *DashboardService {
	return &DashboardService{
		profiles:    profiles,
		ingredients: ingredients,
		items:       items,
		clock:       clock,
	}
}

// Get builds the dashboard against today's date
func (s *DashboardService) Get(ctx context.Context) (*Response, error) {
	today := shared.Today(s.clock)

	profiles, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.ingredients.Count(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	stats, err := s.items.CountStats(ctx, nil, today)
	if err != nil {
		return nil, err
	}

	expiring, err := s.items.FindExpiringWithin(ctx, today, WatchWindowDays, WatchListLimit)
	if err != nil {
		return nil, err
	}
	expired, err := s.items.FindRecentlyExpired(ctx, today, WatchListLimit)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.ingredients.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryCountResponse, len(byCategory))
	for i, c := range byCategory {
		categories[i] = CategoryCountResponse{
			Category: string(c.Category),
			Label:    c.Category.Label(),
			Count:    c.Count,
		}
	}

	return &Response{
		Totals: Totals{
			Profiles:     profiles,
			Ingredients:  ingredients,
			PantryItems:  stats.Total,
			Expired:      stats.Expired,
			ExpiringSoon: stats.ExpiringSoon,
		},
		ExpiringSoon:          pantryapp.ToItemResponses(expiring, today),
		RecentlyExpired:       pantryapp.ToItemResponses(expired, today),
		IngredientsByCategory: categories,
	}, nil
}
