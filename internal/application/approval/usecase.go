package approval

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

// UseCase manages the transfer-approval queue: staff file a request record,
// managers flip it to approved or rejected. Responding never moves stock;
// the approved transfer is carried out as a normal transfer afterwards.
type UseCase struct {
	txnRepo      repository.TransactionRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewUseCase builds the use case.
func NewUseCase(
	txnRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{txnRepo: txnRepo, productRepo: productRepo, locationRepo: locationRepo}
}

// RequestTransfer records a pending transfer request. No stock moves.
func (uc *UseCase) RequestTransfer(_ context.Context, orgID, userID string, in dto.ApprovalRequestBody) (*dto.TransactionResponse, error) {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OrgID != orgID {
		return nil, domain.ErrForbidden
	}
	from, _ := uc.locationRepo.GetByID(in.FromLocationID)
	to, _ := uc.locationRepo.GetByID(in.ToLocationID)
	if from == nil || to == nil || from.OrgID != orgID || to.OrgID != orgID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	txn := &entity.Transaction{
		ID:             uuid.New().String(),
		OrgID:          orgID,
		Reference:      uuid.New().String(),
		ProductID:      in.ProductID,
		FromLocationID: &in.FromLocationID,
		ToLocationID:   &in.ToLocationID,
		Type:           entity.TxTypeRequest,
		Quantity:       in.Quantity,
		UnitPrice:      decimal.Zero,
		TotalValue:     decimal.Zero,
		PerformedBy:    userID,
		CreatedAt:      now,
	}
	if err := uc.txnRepo.Create(txn); err != nil {
		return nil, err
	}
	return toTransactionResponse(txn), nil
}

// Pending lists the organization's open requests. A storage failure is
// returned as an error, never collapsed into an empty list.
func (uc *UseCase) Pending(_ context.Context, orgID string, limit, offset int) ([]dto.TransactionResponse, error) {
	list, err := uc.txnRepo.ListByType(orgID, entity.TxTypeRequest, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, txn := range list {
		out = append(out, *toTransactionResponse(txn))
	}
	return out, nil
}

// Respond updates the request's type marker to approved/rejected and records
// who responded. Only open requests can be responded to.
func (uc *UseCase) Respond(_ context.Context, orgID, id, status, userID string) error {
	if status != entity.TxTypeApproved && status != entity.TxTypeRejected {
		return domain.ErrInvalidInput
	}
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return err
	}
	if txn == nil || txn.OrgID != orgID {
		return domain.ErrNotFound
	}
	if txn.Type != entity.TxTypeRequest {
		return domain.ErrConflict
	}
	return uc.txnRepo.UpdateStatus(id, status, userID)
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:             t.ID,
		Reference:      t.Reference,
		ProductID:      t.ProductID,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		Type:           t.Type,
		Quantity:       t.Quantity,
		UnitPrice:      t.UnitPrice,
		TotalValue:     t.TotalValue,
		PerformedBy:    t.PerformedBy,
		RespondedBy:    t.RespondedBy,
		CreatedAt:      t.CreatedAt,
	}
}
