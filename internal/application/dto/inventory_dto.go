package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse one joined inventory row in GET /api/inventory.
type InventoryItemResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Unit         string          `json:"unit"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	LocationType string          `json:"location_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TransferRequest body for POST /api/inventory/transfers.
type TransferRequest struct {
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// SaleItemRequest one cart line of a sale. Name and unit price come from the
// till so the bar can sell at an adjusted price.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleRequest body for POST /api/sales.
type SaleRequest struct {
	LocationID string            `json:"location_id"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleResponse result of a completed sale.
type SaleResponse struct {
	Reference string          `json:"reference"`
	Total     decimal.Decimal `json:"total"`
	Display   string          `json:"display"` // e.g. "TZS 12,500"
}
