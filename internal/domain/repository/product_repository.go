package repository

import "github.com/tumaini/duka-api/internal/domain/entity"

// ProductRepository defines the persistence port for Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByOrganization(orgID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
