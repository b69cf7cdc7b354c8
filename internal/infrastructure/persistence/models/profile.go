package models

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/profile"
	"github.com/google/uuid"
)

// ProfileModel is the persistence model for profiles. Ids are issued by the
// mobile client's identity provider, never generated here.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255)"`
	AvatarURL string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain Profile
func (m *ProfileModel) ToDomain() *profile.Profile {
	return &profile.Profile{
		ID:        m.ID,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
	}
}

// ProfileModelFromDomain creates a persistence model from a domain Profile
func ProfileModelFromDomain(p *profile.Profile) *ProfileModel {
	return &ProfileModel{
		ID:        p.ID,
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
}
