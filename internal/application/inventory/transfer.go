package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

// TransferUseCase moves stock between two locations of one organization,
// atomically: both row updates and the audit record commit together or not
// at all.
type TransferUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewTransferUseCase builds the use case.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// TransferInput input for one stock transfer.
type TransferInput struct {
	OrgID          string
	UserID         string
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
}

// Transfer locks the source row, checks stock, decrements the source,
// increments (or creates) the destination and appends exactly one transfer
// transaction — all inside one DB transaction. The transaction's total value
// is zero: internal movements are cost-neutral.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) error {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" {
		return domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}

	// Product and both locations must exist and belong to the org.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return domain.ErrNotFound
	}
	if product.OrgID != in.OrgID {
		return domain.ErrForbidden
	}
	from, _ := uc.locationRepo.GetByID(in.FromLocationID)
	to, _ := uc.locationRepo.GetByID(in.ToLocationID)
	if from == nil || to == nil || from.OrgID != in.OrgID || to.OrgID != in.OrgID {
		return domain.ErrNotFound
	}

	now := time.Now()
	reference := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		txnRepo repository.TransactionRepository,
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
	) error {
		// Lock the source row; an absent row reads as quantity zero.
		source, err := invRepo.GetForUpdate(in.ProductID, in.FromLocationID)
		if err != nil {
			return err
		}
		if source.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		source.Quantity = source.Quantity.Sub(in.Quantity)
		source.UpdatedAt = now
		if err := invRepo.Upsert(source); err != nil {
			return err
		}

		dest, err := invRepo.Get(in.ProductID, in.ToLocationID)
		if err != nil {
			return err
		}
		dest.Quantity = dest.Quantity.Add(in.Quantity)
		dest.UpdatedAt = now
		if err := invRepo.Upsert(dest); err != nil {
			return err
		}

		return txnRepo.Create(&entity.Transaction{
			ID:             uuid.New().String(),
			OrgID:          in.OrgID,
			Reference:      reference,
			ProductID:      in.ProductID,
			FromLocationID: &in.FromLocationID,
			ToLocationID:   &in.ToLocationID,
			Type:           entity.TxTypeTransfer,
			Quantity:       in.Quantity,
			UnitPrice:      decimal.Zero,
			TotalValue:     decimal.Zero,
			PerformedBy:    in.UserID,
			CreatedAt:      now,
		})
	})
}
