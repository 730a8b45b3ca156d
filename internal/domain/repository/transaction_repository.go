package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/domain/entity"
)

// SalesByLocation is one row of the sales report aggregation.
type SalesByLocation struct {
	LocationID   string
	LocationName string
	SaleCount    int
	TotalValue   decimal.Decimal
}

// TransactionRepository defines the persistence port for the audit log.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByReference(orgID, reference string) ([]*entity.Transaction, error)
	ListByType(orgID, txType string, limit, offset int) ([]*entity.Transaction, error)
	// UpdateStatus flips the type marker of an approval request and records
	// who responded.
	UpdateStatus(id, newType, respondedBy string) error
	// SalesTotalsByLocation aggregates sale transactions per location in the
	// given window.
	SalesTotalsByLocation(orgID, locationID string, from, to *time.Time) ([]SalesByLocation, error)
}
