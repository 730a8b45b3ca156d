package reports

import (
	"context"
	"time"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/domain/repository"
	"github.com/tumaini/duka-api/pkg/format"
)

// SalesUseCase aggregates committed sales per location; the heavy lifting is
// a single SQL aggregation in the repository.
type SalesUseCase struct {
	txnRepo repository.TransactionRepository
}

// NewSalesUseCase builds the use case.
func NewSalesUseCase(txnRepo repository.TransactionRepository) *SalesUseCase {
	return &SalesUseCase{txnRepo: txnRepo}
}

// SalesByLocation totals sale transactions per location in the window.
// locationID empty means all locations; nil bounds mean open-ended.
func (uc *SalesUseCase) SalesByLocation(_ context.Context, orgID, locationID string, from, to *time.Time) ([]dto.SalesReportRow, error) {
	rows, err := uc.txnRepo.SalesTotalsByLocation(orgID, locationID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesReportRow{
			LocationID:   r.LocationID,
			LocationName: r.LocationName,
			SaleCount:    r.SaleCount,
			TotalValue:   r.TotalValue,
			Display:      format.Currency(r.TotalValue),
		})
	}
	return out, nil
}
