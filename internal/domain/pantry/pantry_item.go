package pantry

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MissingReference is shown in place of an ingredient or owner name that no
// longer resolves to an active record.
const MissingReference = "N/A"

// PantryItem is one unit of stock owned by a profile. Items are written by
// the mobile client; the back-office only reads and soft-deletes them.
type PantryItem struct {
	shared.BaseEntity
	ProfileID    uuid.UUID
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
	Unit         string
	PurchaseDate *time.Time
	ExpiryDate   *time.Time
	Note         string
	ImageURL     string
	DeletedAt    *time.Time

	// Read-side references, filled when the repository joins them
	Ingredient *IngredientRef
	Owner      *OwnerRef
}

// IngredientRef is the slice of an ingredient shown alongside stock
type IngredientRef struct {
	ID       uuid.UUID
	Name     string
	Category string
}

// OwnerRef is the slice of a profile shown alongside stock
type OwnerRef struct {
	ID   uuid.UUID
	Name string
}

// IsDeleted reports whether the item carries a deletion marker
func (p *PantryItem) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Classify evaluates the item's expiry date against today
func (p *PantryItem) Classify(today time.Time) Classification {
	return Classify(p.ExpiryDate, today)
}

// IsExpired reports whether the item is in the EXPIRED bucket
func (p *PantryItem) IsExpired(today time.Time) bool {
	return p.Classify(today).Status == ExpiryStatusExpired
}

// IsExpiringSoon reports whether the item is in the EXPIRING_SOON bucket
func (p *PantryItem) IsExpiringSoon(today time.Time) bool {
	return p.Classify(today).Status == ExpiryStatusExpiringSoon
}

// IngredientName returns the joined ingredient name or MissingReference
func (p *PantryItem) IngredientName() string {
	if p.Ingredient == nil || p.Ingredient.Name == "" {
		return MissingReference
	}
	return p.Ingredient.Name
}

// OwnerName returns the joined owner name or MissingReference
func (p *PantryItem) OwnerName() string {
	if p.Owner == nil || p.Owner.Name == "" {
		return MissingReference
	}
	return p.Owner.Name
}
