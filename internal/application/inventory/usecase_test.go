package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tumaini/duka-api/internal/domain/entity"
)

func TestGetInventory_ReturnsJoinedRowsForOrgOnly(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	store.products[prodBeer] = &entity.Product{
		ID: prodBeer, OrgID: testOrgID, Name: "Beer", Unit: "bottle",
		SellingPrice: decimal.NewFromInt(2500), CreatedAt: now, UpdatedAt: now,
	}
	store.products["prod-foreign"] = &entity.Product{ID: "prod-foreign", OrgID: "org-other", Name: "Juice"}
	store.locations[locBar] = &entity.Location{ID: locBar, OrgID: testOrgID, Name: "CAMP BAR", Type: entity.LocationTypeCamp}
	store.setStock(prodBeer, locBar, 24)
	store.setStock("prod-foreign", locBar, 9)

	uc := NewListUseCase(&fakeInvRepo{store: store})
	items, err := uc.GetInventory(context.Background(), testOrgID)
	require.NoError(t, err)
	require.Len(t, items, 1, "other organizations' stock stays invisible")

	item := items[0]
	assert.Equal(t, prodBeer, item.ProductID)
	assert.Equal(t, "Beer", item.ProductName)
	assert.Equal(t, "CAMP BAR", item.LocationName)
	assert.Equal(t, entity.LocationTypeCamp, item.LocationType)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(24)))
}

func TestGetInventory_EmptyOrgIsEmptyList(t *testing.T) {
	uc := NewListUseCase(&fakeInvRepo{store: newFakeStore()})
	items, err := uc.GetInventory(context.Background(), testOrgID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
