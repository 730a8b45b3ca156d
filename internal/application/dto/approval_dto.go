package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalRequestBody body for POST /api/approvals/requests: a transfer a
// staff member wants a manager to sign off.
type ApprovalRequestBody struct {
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// ApprovalResponseBody body for POST /api/approvals/:id/respond.
type ApprovalResponseBody struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// TransactionResponse one audit record (approval queue, histories).
type TransactionResponse struct {
	ID             string          `json:"id"`
	Reference      string          `json:"reference"`
	ProductID      string          `json:"product_id"`
	FromLocationID *string         `json:"from_location_id,omitempty"`
	ToLocationID   *string         `json:"to_location_id,omitempty"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalValue     decimal.Decimal `json:"total_value"`
	PerformedBy    string          `json:"performed_by"`
	RespondedBy    *string         `json:"responded_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
