package repository

import "github.com/tumaini/duka-api/internal/domain/entity"

// OrganizationRepository defines the persistence port for Organization.
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
}
