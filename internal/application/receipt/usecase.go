package receipt

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

// UseCase assembles a sale's transactions back into a printable receipt and
// hands it to the PDF generator.
type UseCase struct {
	txnRepo      repository.TransactionRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	orgRepo      repository.OrganizationRepository
	profileRepo  repository.ProfileRepository
	generator    Generator
}

// NewUseCase builds the use case.
func NewUseCase(
	txnRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	orgRepo repository.OrganizationRepository,
	profileRepo repository.ProfileRepository,
	generator Generator,
) *UseCase {
	return &UseCase{
		txnRepo:      txnRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		orgRepo:      orgRepo,
		profileRepo:  profileRepo,
		generator:    generator,
	}
}

// GenerateForSale renders the receipt for one committed sale reference.
// Returns ErrNotFound when the reference has no sale lines for the org.
func (uc *UseCase) GenerateForSale(ctx context.Context, orgID, reference string) ([]byte, error) {
	txns, err := uc.txnRepo.ListByReference(orgID, reference)
	if err != nil {
		return nil, err
	}

	doc := &Document{Reference: reference, Total: decimal.Zero}
	for _, txn := range txns {
		if txn.Type != entity.TxTypeSale {
			continue
		}
		product, err := uc.productRepo.GetByID(txn.ProductID)
		if err != nil {
			return nil, err
		}
		name := txn.ProductID
		if product != nil {
			name = product.Name
		}
		doc.Lines = append(doc.Lines, Line{
			ProductName: name,
			Quantity:    txn.Quantity,
			UnitPrice:   txn.UnitPrice,
			LineTotal:   txn.TotalValue,
		})
		doc.Total = doc.Total.Add(txn.TotalValue)
		if doc.SoldAt.IsZero() {
			doc.SoldAt = txn.CreatedAt
		}
		if doc.SoldBy == "" {
			if seller, err := uc.profileRepo.GetByID(txn.PerformedBy); err == nil && seller != nil {
				doc.SoldBy = seller.FullName
			}
		}
		if doc.LocationName == "" && txn.FromLocationID != nil {
			if loc, err := uc.locationRepo.GetByID(*txn.FromLocationID); err == nil && loc != nil {
				doc.LocationName = loc.Name
			}
		}
	}
	if len(doc.Lines) == 0 {
		return nil, domain.ErrNotFound
	}

	if org, err := uc.orgRepo.GetByID(orgID); err == nil && org != nil {
		doc.OrgName = org.Name
	}

	return uc.generator.GenerateReceiptPDF(ctx, doc)
}
