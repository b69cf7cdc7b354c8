package mealplan

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
)

// Status is the lifecycle state of a meal plan. Any state may be set from
// any other; the mobile client owns transitions.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
)

// Statuses lists the closed set in display order
var Statuses = []Status{StatusPlanned, StatusDone, StatusSkipped}

var statusLabels = map[Status]string{
	StatusPlanned: "Planned",
	StatusDone:    "Done",
	StatusSkipped: "Skipped",
}

var statusClasses = map[Status]string{
	StatusPlanned: "status-warning",
	StatusDone:    "status-safe",
	StatusSkipped: "status-neutral",
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display name of the status
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	if s == "" {
		return catalog.NoValueLabel
	}
	return string(s)
}

// Class returns the presentation class of the status
func (s Status) Class() string {
	if c, ok := statusClasses[s]; ok {
		return c
	}
	return "status-neutral"
}

// ParseStatus validates a status value
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", shared.NewDomainError("INVALID_STATUS", "Status must be one of: planned, done, skipped")
	}
	return st, nil
}

// PlannedRecipe is a recipe scheduled into a meal plan
type PlannedRecipe struct {
	RecipeID uuid.UUID
	Title    string
	Servings int
	Position int
	Lines    []catalog.RecipeIngredient
}

// MealPlan is one meal slot of a profile on a calendar date
type MealPlan struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	ProfileName string
	PlannedDate time.Time
	MealType    catalog.MealType
	Status      Status
	CreatedAt   time.Time
	Recipes     []PlannedRecipe
}

// SetStatus moves the plan to any valid status
func (m *MealPlan) SetStatus(s Status) error {
	if !s.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of: planned, done, skipped")
	}
	m.Status = s
	return nil
}

// StatusCounts is the per-status breakdown shown above the plan listing
type StatusCounts struct {
	Total   int64 `json:"total"`
	Planned int64 `json:"planned"`
	Done    int64 `json:"done"`
	Skipped int64 `json:"skipped"`
}

// Add records n plans in status s
func (c *StatusCounts) Add(s Status, n int64) {
	c.Total += n
	switch s {
	case StatusPlanned:
		c.Planned += n
	case StatusDone:
		c.Done += n
	case StatusSkipped:
		c.Skipped += n
	}
}
