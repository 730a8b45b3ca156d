package repository

import "github.com/tumaini/duka-api/internal/domain/entity"

// ProfileView is a profile joined with its organization and location display
// fields, as the session/profile endpoints present it.
type ProfileView struct {
	Profile      entity.Profile
	OrgName      string
	LocationName string
	LocationType string
}

// ProfileRepository defines the persistence port for Profile (DIP).
// Single-row reads return (nil, nil) when no row matches.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, error)
	// GetViewByID joins organization name and location name/type.
	GetViewByID(id string) (*ProfileView, error)
	Update(profile *entity.Profile) error
	ListByOrganization(orgID string, limit, offset int) ([]*entity.Profile, error)
}
