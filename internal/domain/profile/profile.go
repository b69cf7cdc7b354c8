package profile

import (
	"context"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/google/uuid"
)

// Profile is an end-user account of the mobile client. Its id is issued
// externally; profiles are never created or deleted here.
type Profile struct {
	ID        uuid.UUID
	Name      string
	AvatarURL string
	CreatedAt time.Time

	// PantryItemCount is the number of active pantry items, filled on listings
	PantryItemCount int64
}

// DisplayName returns the profile name or a placeholder
func (p *Profile) DisplayName() string {
	if p.Name == "" {
		return "N/A"
	}
	return p.Name
}

// ProfileRepository reads profiles
type ProfileRepository interface {
	// FindByID returns a profile, or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindAll lists profiles, newest first unless the filter says otherwise
	FindAll(ctx context.Context, filter shared.Filter) ([]Profile, error)

	// FindByIDs returns the profiles that exist among ids, keyed by id
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Profile, error)

	// Count counts all profiles
	Count(ctx context.Context) (int64, error)
}
