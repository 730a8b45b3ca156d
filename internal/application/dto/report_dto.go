package dto

import "github.com/shopspring/decimal"

// SalesReportRow one line of GET /api/reports/sales.
type SalesReportRow struct {
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	SaleCount    int             `json:"sale_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Display      string          `json:"display"`
}
