package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

// SaleUseCase processes a bar/till cart against one location. The whole cart
// runs inside one DB transaction: if any line is short, nothing commits.
type SaleUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(txRunner TxRunner, locationRepo repository.LocationRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, locationRepo: locationRepo}
}

// SaleItem one cart line. Name and UnitPrice come from the till.
type SaleItem struct {
	ProductID string
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// SaleResult outcome of a committed sale.
type SaleResult struct {
	Reference string
	Total     decimal.Decimal
}

// ProcessSale iterates the cart in input order; per line it locks the stock
// row, fails with an insufficient-stock error naming the item if short,
// decrements and appends one sale transaction with value = price x quantity.
// All lines share one Reference. Returns the summed total.
func (uc *SaleUseCase) ProcessSale(ctx context.Context, orgID, locationID, userID string, items []SaleItem) (*SaleResult, error) {
	if locationID == "" || len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil || location.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	for _, it := range items {
		if it.ProductID == "" || !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	reference := uuid.New().String()
	total := decimal.Zero

	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.TransactionRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, it := range items {
			product, err := productRepo.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.OrgID != orgID {
				return domain.ErrNotFound
			}

			row, err := invRepo.GetForUpdate(it.ProductID, locationID)
			if err != nil {
				return err
			}
			if row.Quantity.LessThan(it.Quantity) {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, itemName(it, product))
			}
			row.Quantity = row.Quantity.Sub(it.Quantity)
			row.UpdatedAt = now
			if err := invRepo.Upsert(row); err != nil {
				return err
			}

			lineValue := it.UnitPrice.Mul(it.Quantity)
			if err := txnRepo.Create(&entity.Transaction{
				ID:             uuid.New().String(),
				OrgID:          orgID,
				Reference:      reference,
				ProductID:      it.ProductID,
				FromLocationID: &locationID,
				Type:           entity.TxTypeSale,
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				TotalValue:     lineValue,
				PerformedBy:    userID,
				CreatedAt:      now,
			}); err != nil {
				return err
			}
			total = total.Add(lineValue)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SaleResult{Reference: reference, Total: total}, nil
}

func itemName(it SaleItem, product *entity.Product) string {
	if it.Name != "" {
		return it.Name
	}
	return product.Name
}
