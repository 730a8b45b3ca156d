package repository

import "github.com/tumaini/duka-api/internal/domain/entity"

// LocationRepository defines the persistence port for Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	ListByOrganization(orgID string, limit, offset int) ([]*entity.Location, error)
}
