package approval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

const (
	testOrgID     = "org-1"
	testStaffID   = "user-staff"
	testManagerID = "user-manager"
	testProduct   = "prod-rice"
	locMain       = "loc-main"
	locKitchen    = "loc-kitchen"
)

// fakeTxnRepo in-memory transaction log. listErr forces ListByType to fail.
type fakeTxnRepo struct {
	txns    []*entity.Transaction
	listErr error
}

func (f *fakeTxnRepo) Create(tx *entity.Transaction) error {
	cp := *tx
	f.txns = append(f.txns, &cp)
	return nil
}

func (f *fakeTxnRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range f.txns {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTxnRepo) ListByReference(orgID, reference string) ([]*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTxnRepo) ListByType(orgID, txType string, limit, offset int) ([]*entity.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.Transaction
	for _, t := range f.txns {
		if t.OrgID == orgID && t.Type == txType {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTxnRepo) UpdateStatus(id, newType, respondedBy string) error {
	for _, t := range f.txns {
		if t.ID == id {
			t.Type = newType
			t.RespondedBy = &respondedBy
			return nil
		}
	}
	return nil
}

func (f *fakeTxnRepo) SalesTotalsByLocation(orgID, locationID string, from, to *time.Time) ([]repository.SalesByLocation, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error  { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { f.locations[l.ID] = l; return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Location, error) {
	return nil, nil
}

func newTestUseCase(txnRepo *fakeTxnRepo) *UseCase {
	return NewUseCase(
		txnRepo,
		&fakeProductRepo{products: map[string]*entity.Product{
			testProduct: {ID: testProduct, OrgID: testOrgID, Name: "Rice"},
		}},
		&fakeLocationRepo{locations: map[string]*entity.Location{
			locMain:    {ID: locMain, OrgID: testOrgID, Name: "MAIN STORE", Type: entity.LocationTypeMain},
			locKitchen: {ID: locKitchen, OrgID: testOrgID, Name: "KITCHEN", Type: entity.LocationTypeKitchen},
		}},
	)
}

func validRequestBody() dto.ApprovalRequestBody {
	return dto.ApprovalRequestBody{
		ProductID:      testProduct,
		FromLocationID: locMain,
		ToLocationID:   locKitchen,
		Quantity:       decimal.NewFromInt(5),
	}
}

func TestRequestTransfer_CreatesPendingRecord(t *testing.T) {
	txnRepo := &fakeTxnRepo{}
	uc := newTestUseCase(txnRepo)

	out, err := uc.RequestTransfer(context.Background(), testOrgID, testStaffID, validRequestBody())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.TxTypeRequest, out.Type)
	assert.Equal(t, testStaffID, out.PerformedBy)
	assert.Nil(t, out.RespondedBy)
	assert.True(t, out.TotalValue.IsZero(), "a request moves no stock and carries no value")

	require.Len(t, txnRepo.txns, 1)
	assert.Equal(t, entity.TxTypeRequest, txnRepo.txns[0].Type)
}

func TestRequestTransfer_RejectsInvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeTxnRepo{})

	in := validRequestBody()
	in.ToLocationID = in.FromLocationID
	_, err := uc.RequestTransfer(context.Background(), testOrgID, testStaffID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequestBody()
	in.Quantity = decimal.Zero
	_, err = uc.RequestTransfer(context.Background(), testOrgID, testStaffID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRequestTransfer_UnknownProduct_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeTxnRepo{})

	in := validRequestBody()
	in.ProductID = "prod-ghost"
	_, err := uc.RequestTransfer(context.Background(), testOrgID, testStaffID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPending_ListsOnlyOpenRequests(t *testing.T) {
	txnRepo := &fakeTxnRepo{}
	uc := newTestUseCase(txnRepo)

	_, err := uc.RequestTransfer(context.Background(), testOrgID, testStaffID, validRequestBody())
	require.NoError(t, err)
	_, err = uc.RequestTransfer(context.Background(), testOrgID, testStaffID, validRequestBody())
	require.NoError(t, err)

	require.NoError(t, uc.Respond(context.Background(), testOrgID, txnRepo.txns[0].ID, entity.TxTypeApproved, testManagerID))

	pending, err := uc.Pending(context.Background(), testOrgID, 20, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1, "responded requests leave the queue")
	assert.Equal(t, txnRepo.txns[1].ID, pending[0].ID)
}

func TestPending_SurfacesStorageError(t *testing.T) {
	boom := errors.New("connection reset")
	uc := newTestUseCase(&fakeTxnRepo{listErr: boom})

	_, err := uc.Pending(context.Background(), testOrgID, 20, 0)
	require.Error(t, err, "a storage failure must not read as an empty queue")
	assert.ErrorIs(t, err, boom)
}

func TestRespond_ApprovesAndRecordsResponder(t *testing.T) {
	txnRepo := &fakeTxnRepo{}
	uc := newTestUseCase(txnRepo)

	out, err := uc.RequestTransfer(context.Background(), testOrgID, testStaffID, validRequestBody())
	require.NoError(t, err)

	require.NoError(t, uc.Respond(context.Background(), testOrgID, out.ID, entity.TxTypeApproved, testManagerID))

	stored, err := txnRepo.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TxTypeApproved, stored.Type)
	require.NotNil(t, stored.RespondedBy)
	assert.Equal(t, testManagerID, *stored.RespondedBy)
}

func TestRespond_RejectsBadStatus(t *testing.T) {
	uc := newTestUseCase(&fakeTxnRepo{})
	err := uc.Respond(context.Background(), testOrgID, "any", "maybe", testManagerID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRespond_AlreadyResponded_Conflict(t *testing.T) {
	txnRepo := &fakeTxnRepo{}
	uc := newTestUseCase(txnRepo)

	out, err := uc.RequestTransfer(context.Background(), testOrgID, testStaffID, validRequestBody())
	require.NoError(t, err)
	require.NoError(t, uc.Respond(context.Background(), testOrgID, out.ID, entity.TxTypeRejected, testManagerID))

	err = uc.Respond(context.Background(), testOrgID, out.ID, entity.TxTypeApproved, testManagerID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRespond_ForeignOrg_NotFound(t *testing.T) {
	txnRepo := &fakeTxnRepo{}
	uc := newTestUseCase(txnRepo)

	out, err := uc.RequestTransfer(context.Background(), testOrgID, testStaffID, validRequestBody())
	require.NoError(t, err)

	err = uc.Respond(context.Background(), "org-other", out.ID, entity.TxTypeApproved, testManagerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
