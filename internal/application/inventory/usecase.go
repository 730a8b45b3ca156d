package inventory

import (
	"context"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

// ListUseCase serves the org-wide inventory read: every row joined with
// product and location display fields.
type ListUseCase struct {
	invRepo repository.InventoryRepository
}

// NewListUseCase builds the use case.
func NewListUseCase(invRepo repository.InventoryRepository) *ListUseCase {
	return &ListUseCase{invRepo: invRepo}
}

// GetInventory returns all inventory rows of the organization. Storage
// errors propagate to the caller.
func (uc *ListUseCase) GetInventory(_ context.Context, orgID string) ([]dto.InventoryItemResponse, error) {
	items, err := uc.invRepo.ListByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItemResponse{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Unit:         it.Unit,
			SellingPrice: it.SellingPrice,
			CostPrice:    it.CostPrice,
			LocationID:   it.LocationID,
			LocationName: it.LocationName,
			LocationType: it.LocationType,
			Quantity:     it.Quantity,
			UpdatedAt:    it.UpdatedAt,
		})
	}
	return out, nil
}
