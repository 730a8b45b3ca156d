package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRow is the current quantity of one product at one location.
// Keyed (product_id, location_id); the organization scope rides on the
// product.
type InventoryRow struct {
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
