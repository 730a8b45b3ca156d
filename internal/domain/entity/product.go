package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item of the organization. SellingPrice is what the
// bar/store charges; CostPrice is the purchase cost. Stock lives per
// location in InventoryRow.
type Product struct {
	ID           string
	OrgID        string
	Name         string
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
	Unit         string // piece, bottle, kg, crate...
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
