package inventory

import (
	"context"

	"github.com/tumaini/duka-api/internal/domain/repository"
)

// TxRunner runs a function inside one database transaction, handing it
// repositories bound to that transaction. It is what makes transfers and
// sales all-or-nothing.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.TransactionRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
