package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/domain/entity"
)

// InventoryItem is one inventory row joined with product and location
// display fields, as the org-wide inventory listing presents it.
type InventoryItem struct {
	ProductID    string
	ProductName  string
	Unit         string
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
	LocationID   string
	LocationName string
	LocationType string
	Quantity     decimal.Decimal
	UpdatedAt    time.Time
}

// InventoryRepository defines the port for reading/updating stock per
// product+location. The mutating methods are used inside transactions.
type InventoryRepository interface {
	// Get returns the row, or a zero-quantity row when absent.
	Get(productID, locationID string) (*entity.InventoryRow, error)
	// GetForUpdate locks the row for update (SELECT FOR UPDATE).
	GetForUpdate(productID, locationID string) (*entity.InventoryRow, error)
	Upsert(row *entity.InventoryRow) error
	// ListByOrganization joins product and location display fields.
	ListByOrganization(orgID string) ([]InventoryItem, error)
}
