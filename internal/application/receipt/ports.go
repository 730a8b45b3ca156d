package receipt

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Line one printed receipt line.
type Line struct {
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Document everything the renderer needs for one receipt.
type Document struct {
	Reference    string
	OrgName      string
	LocationName string
	SoldAt       time.Time
	SoldBy       string
	Lines        []Line
	Total        decimal.Decimal
}

// Generator renders a receipt document to PDF bytes.
type Generator interface {
	GenerateReceiptPDF(ctx context.Context, doc *Document) ([]byte, error)
}
