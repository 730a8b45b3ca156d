package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. A transfer request sits in the approval queue as
// TxTypeRequest until a manager flips it to approved/rejected.
const (
	TxTypeTransfer = "transfer"
	TxTypeSale     = "sale"
	TxTypeRequest  = "request"
	TxTypeApproved = "approved"
	TxTypeRejected = "rejected"
)

// Transaction is the immutable audit record for a stock-affecting event.
// Reference groups the lines of one sale (or ties a transfer's record to its
// operation) the way a till groups the lines of one receipt.
type Transaction struct {
	ID             string
	OrgID          string
	Reference      string
	ProductID      string
	FromLocationID *string
	ToLocationID   *string
	Type           string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	TotalValue     decimal.Decimal // zero for transfers: internal movements are cost-neutral
	PerformedBy    string
	RespondedBy    *string // approvals only
	CreatedAt      time.Time
}
