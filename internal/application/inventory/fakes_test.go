package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

// fakeStore in-memory backing state shared by the fake repositories.
type fakeStore struct {
	stock     map[string]decimal.Decimal // "productID|locationID" -> quantity
	txns      []*entity.Transaction
	products  map[string]*entity.Product
	locations map[string]*entity.Location
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stock:     map[string]decimal.Decimal{},
		products:  map[string]*entity.Product{},
		locations: map[string]*entity.Location{},
	}
}

func stockKey(productID, locationID string) string {
	return productID + "|" + locationID
}

func (s *fakeStore) setStock(productID, locationID string, qty int64) {
	s.stock[stockKey(productID, locationID)] = decimal.NewFromInt(qty)
}

func (s *fakeStore) getStock(productID, locationID string) decimal.Decimal {
	return s.stock[stockKey(productID, locationID)]
}

// fakeTxRunner imitates the DB transaction: it snapshots the store before
// running fn and restores the snapshot when fn fails.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	txnRepo repository.TransactionRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	stockSnapshot := make(map[string]decimal.Decimal, len(r.store.stock))
	for k, v := range r.store.stock {
		stockSnapshot[k] = v
	}
	txnSnapshot := len(r.store.txns)

	err := fn(&fakeTxnRepo{store: r.store}, &fakeInvRepo{store: r.store}, &fakeProductRepo{store: r.store})
	if err != nil {
		r.store.stock = stockSnapshot
		r.store.txns = r.store.txns[:txnSnapshot]
	}
	return err
}

// fakeInvRepo inventory over the store map. Absent rows read as zero.
type fakeInvRepo struct {
	store *fakeStore
}

func (f *fakeInvRepo) Get(productID, locationID string) (*entity.InventoryRow, error) {
	return &entity.InventoryRow{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   f.store.getStock(productID, locationID),
	}, nil
}

func (f *fakeInvRepo) GetForUpdate(productID, locationID string) (*entity.InventoryRow, error) {
	return f.Get(productID, locationID)
}

func (f *fakeInvRepo) Upsert(row *entity.InventoryRow) error {
	f.store.stock[stockKey(row.ProductID, row.LocationID)] = row.Quantity
	return nil
}

func (f *fakeInvRepo) ListByOrganization(orgID string) ([]repository.InventoryItem, error) {
	var items []repository.InventoryItem
	for key, qty := range f.store.stock {
		productID, locationID, ok := strings.Cut(key, "|")
		if !ok {
			continue
		}
		product := f.store.products[productID]
		if product == nil || product.OrgID != orgID {
			continue
		}
		item := repository.InventoryItem{
			ProductID:   productID,
			ProductName: product.Name,
			LocationID:  locationID,
			Quantity:    qty,
		}
		if loc := f.store.locations[locationID]; loc != nil {
			item.LocationName = loc.Name
			item.LocationType = loc.Type
		}
		items = append(items, item)
	}
	return items, nil
}

// fakeTxnRepo transaction log over the store slice.
type fakeTxnRepo struct {
	store *fakeStore
}

func (f *fakeTxnRepo) Create(tx *entity.Transaction) error {
	cp := *tx
	f.store.txns = append(f.store.txns, &cp)
	return nil
}

func (f *fakeTxnRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range f.store.txns {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTxnRepo) ListByReference(orgID, reference string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.store.txns {
		if t.OrgID == orgID && t.Reference == reference {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTxnRepo) ListByType(orgID, txType string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.store.txns {
		if t.OrgID == orgID && t.Type == txType {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTxnRepo) UpdateStatus(id, newType, respondedBy string) error {
	for _, t := range f.store.txns {
		if t.ID == id {
			t.Type = newType
			t.RespondedBy = &respondedBy
			return nil
		}
	}
	return nil
}

func (f *fakeTxnRepo) SalesTotalsByLocation(orgID, locationID string, from, to *time.Time) ([]repository.SalesByLocation, error) {
	totals := map[string]*repository.SalesByLocation{}
	for _, t := range f.store.txns {
		if t.OrgID != orgID || t.Type != entity.TxTypeSale || t.FromLocationID == nil {
			continue
		}
		loc := *t.FromLocationID
		if locationID != "" && loc != locationID {
			continue
		}
		if from != nil && t.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !t.CreatedAt.Before(*to) {
			continue
		}
		row, ok := totals[loc]
		if !ok {
			row = &repository.SalesByLocation{LocationID: loc, TotalValue: decimal.Zero}
			if l := f.store.locations[loc]; l != nil {
				row.LocationName = l.Name
			}
			totals[loc] = row
		}
		row.SaleCount++
		row.TotalValue = row.TotalValue.Add(t.TotalValue)
	}
	out := make([]repository.SalesByLocation, 0, len(totals))
	for _, row := range totals {
		out = append(out, *row)
	}
	return out, nil
}

// fakeProductRepo product catalogue over the store map.
type fakeProductRepo struct {
	store *fakeStore
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	f.store.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.store.products[id], nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	f.store.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.store.products {
		if p.OrgID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.store.products, id)
	return nil
}

// fakeLocationRepo locations over the store map.
type fakeLocationRepo struct {
	store *fakeStore
}

func (f *fakeLocationRepo) Create(location *entity.Location) error {
	f.store.locations[location.ID] = location
	return nil
}

func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.store.locations[id], nil
}

func (f *fakeLocationRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range f.store.locations {
		if l.OrgID == orgID {
			out = append(out, l)
		}
	}
	return out, nil
}
