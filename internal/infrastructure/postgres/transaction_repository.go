package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implements the TransactionRepository port over PostgreSQL
// (usable with pool or tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository builds the audit log adapter. Pass a pool or a tx
// (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, org_id, reference, product_id, from_location_id, to_location_id,
	type, quantity, unit_price, total_value, performed_by, responded_by, created_at`

// Create appends a transaction to the audit log.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.OrgID, tx.Reference, tx.ProductID, tx.FromLocationID, tx.ToLocationID,
		tx.Type, tx.Quantity, tx.UnitPrice, tx.TotalValue, tx.PerformedBy, tx.RespondedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by id; (nil, nil) when absent.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	tx, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

// ListByReference fetches every transaction sharing a reference, scoped to
// the organization.
func (r *TransactionRepo) ListByReference(orgID, reference string) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE org_id = $1 AND reference = $2 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orgID, reference)
	if err != nil {
		return nil, fmt.Errorf("list transactions by reference: %w", err)
	}
	return collectTransactions(rows)
}

// ListByType fetches the organization's transactions of one type, newest
// first, with pagination.
func (r *TransactionRepo) ListByType(orgID, txType string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE org_id = $1 AND type = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, orgID, txType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions by type: %w", err)
	}
	return collectTransactions(rows)
}

// UpdateStatus flips the type marker of an approval request and records who
// responded.
func (r *TransactionRepo) UpdateStatus(id, newType, respondedBy string) error {
	query := `UPDATE transactions SET type = $2, responded_by = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, newType, respondedBy)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	return nil
}

// SalesTotalsByLocation aggregates sale transactions per selling location.
// locationID narrows to one location when non-empty; from/to bound the
// window when non-nil.
func (r *TransactionRepo) SalesTotalsByLocation(orgID, locationID string, from, to *time.Time) ([]repository.SalesByLocation, error) {
	query := `
		SELECT t.from_location_id, l.name, COUNT(*), COALESCE(SUM(t.total_value), 0)
		FROM transactions t
		JOIN locations l ON l.id = t.from_location_id
		WHERE t.org_id = $1 AND t.type = 'sale'
		  AND ($2 = '' OR t.from_location_id = $2)
		  AND ($3::timestamptz IS NULL OR t.created_at >= $3)
		  AND ($4::timestamptz IS NULL OR t.created_at < $4)
		GROUP BY t.from_location_id, l.name
		ORDER BY l.name`
	rows, err := r.q.Query(context.Background(), query, orgID, locationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("aggregate sales by location: %w", err)
	}
	defer rows.Close()
	var out []repository.SalesByLocation
	for rows.Next() {
		var s repository.SalesByLocation
		if err := rows.Scan(&s.LocationID, &s.LocationName, &s.SaleCount, &s.TotalValue); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.OrgID, &t.Reference, &t.ProductID, &t.FromLocationID, &t.ToLocationID,
		&t.Type, &t.Quantity, &t.UnitPrice, &t.TotalValue, &t.PerformedBy, &t.RespondedBy, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
