package catalog

import (
	"sort"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
)

// RecipeMatch records how much of a recipe a profile can cook from stock.
// Rows are produced by the mobile client.
type RecipeMatch struct {
	ID                   uuid.UUID
	ProfileID            uuid.UUID
	RecipeID             uuid.UUID
	RecipeTitle          string
	TotalIngredients     int
	AvailableIngredients int
	MissingIngredients   int
}

// MatchPercent returns the share of available ingredients, 0 for empty recipes
func (m RecipeMatch) MatchPercent() int {
	return MatchPercent(m.AvailableIngredients, m.TotalIngredients)
}

// MatchPercent is round(available / total * 100), 0 when total is 0
func MatchPercent(available, total int) int {
	return shared.Percent(available, total)
}

// SortMatches orders matches by match percent descending, then by title
func SortMatches(matches []RecipeMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		pi, pj := matches[i].MatchPercent(), matches[j].MatchPercent()
		if pi != pj {
			return pi > pj
		}
		return matches[i].RecipeTitle < matches[j].RecipeTitle
	})
}
