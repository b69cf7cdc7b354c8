package pantry

import (
	"strings"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
)

// StatusFilter selects items by expiry bucket
type StatusFilter string

const (
	StatusFilterAny          StatusFilter = ""
	StatusFilterExpired      StatusFilter = "expired"
	StatusFilterExpiringSoon StatusFilter = "expiring_soon"
	// StatusFilterSafe matches SAFE items and items without an expiry date
	StatusFilterSafe StatusFilter = "safe"
)

// ParseStatusFilter validates a status filter value
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.TrimSpace(s)); f {
	case StatusFilterAny, StatusFilterExpired, StatusFilterExpiringSoon, StatusFilterSafe:
		return f, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", "Status must be one of: expired, expiring_soon, safe")
	}
}

// StockQuery describes a filtered view over active pantry items. Today is
// captured when the query is built and both the SQL translation and Matches
// evaluate against it.
type StockQuery struct {
	Status  StatusFilter
	OwnerID *uuid.UUID
	Search  string
	Today   time.Time
}

// NewStockQuery creates a query evaluated against the clock's current date
func NewStockQuery(clock shared.Clock) StockQuery {
	return StockQuery{Today: shared.Today(clock)}
}

// WithStatus returns a copy restricted to the given bucket filter
func (q StockQuery) WithStatus(f StatusFilter) StockQuery {
	q.Status = f
	return q
}

// WithOwner returns a copy restricted to one owner
func (q StockQuery) WithOwner(id uuid.UUID) StockQuery {
	q.OwnerID = &id
	return q
}

// WithSearch returns a copy with a free-text ingredient name filter
func (q StockQuery) WithSearch(s string) StockQuery {
	q.Search = strings.TrimSpace(s)
	return q
}

// DateBounds is an expiry-date predicate. A nil bound is open; From and To
// are inclusive, Before and After are strict. IncludeNull also admits items
// without an expiry date.
type DateBounds struct {
	Before      *time.Time
	From        *time.Time
	To          *time.Time
	After       *time.Time
	IncludeNull bool
}

// Bounds translates the status filter into expiry-date bounds anchored at
// q.Today. The second value is false when no status filter applies.
func (q StockQuery) Bounds() (DateBounds, bool) {
	today := shared.DateOf(q.Today)
	soonEnd := shared.AddDays(today, ExpiringSoonDays)

	switch q.Status {
	case StatusFilterExpired:
		return DateBounds{Before: &today}, true
	case StatusFilterExpiringSoon:
		return DateBounds{From: &today, To: &soonEnd}, true
	case StatusFilterSafe:
		return DateBounds{After: &soonEnd, IncludeNull: true}, true
	default:
		return DateBounds{}, false
	}
}

// Matches evaluates the query against a single item in memory
func (q StockQuery) Matches(item *PantryItem) bool {
	if item == nil || item.IsDeleted() {
		return false
	}
	if q.OwnerID != nil && item.ProfileID != *q.OwnerID {
		return false
	}
	if q.Search != "" {
		if item.Ingredient == nil ||
			!strings.Contains(strings.ToLower(item.Ingredient.Name), strings.ToLower(q.Search)) {
			return false
		}
	}

	status := item.Classify(q.Today).Status
	switch q.Status {
	case StatusFilterExpired:
		return status == ExpiryStatusExpired
	case StatusFilterExpiringSoon:
		return status == ExpiryStatusExpiringSoon
	case StatusFilterSafe:
		return status == ExpiryStatusSafe || status == ExpiryStatusNone
	default:
		return true
	}
}
