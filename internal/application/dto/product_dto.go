package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Unit         string          `json:"unit"`
}

// UpdateProductRequest body for PUT /api/products/:id. Nil fields are left
// unchanged.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
}

// ProductResponse one product.
type ProductResponse struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"org_id"`
	Name         string          `json:"name"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Unit         string          `json:"unit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
