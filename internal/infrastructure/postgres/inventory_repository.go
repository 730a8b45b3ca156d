package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements the InventoryRepository port over PostgreSQL
// (usable with pool or tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the stock adapter. Pass a pool or a tx
// (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get fetches the current stock of a product at a location. An absent row
// comes back as quantity zero, so "missing" and "short" share one path.
func (r *InventoryRepo) Get(productID, locationID string) (*entity.InventoryRow, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND location_id = $2`
	var row entity.InventoryRow
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&row.ProductID, &row.LocationID, &row.Quantity, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRow{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get inventory row: %w", err)
	}
	return &row, nil
}

// GetForUpdate fetches the stock row and locks it (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(productID, locationID string) (*entity.InventoryRow, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var row entity.InventoryRow
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&row.ProductID, &row.LocationID, &row.Quantity, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRow{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get inventory row for update: %w", err)
	}
	return &row, nil
}

// Upsert inserts or updates the quantity for (product, location).
func (r *InventoryRepo) Upsert(row *entity.InventoryRow) error {
	query := `
		INSERT INTO inventory (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, row.ProductID, row.LocationID, row.Quantity)
	if err != nil {
		return fmt.Errorf("upsert inventory row: %w", err)
	}
	return nil
}

// ListByOrganization fetches every inventory row of the organization joined
// with product and location display fields.
func (r *InventoryRepo) ListByOrganization(orgID string) ([]repository.InventoryItem, error) {
	query := `
		SELECT i.product_id, p.name, p.unit, p.selling_price, p.cost_price,
		       i.location_id, l.name, l.type, i.quantity, i.updated_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN locations l ON l.id = i.location_id
		WHERE p.org_id = $1
		ORDER BY l.name, p.name`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var items []repository.InventoryItem
	for rows.Next() {
		var it repository.InventoryItem
		if err := rows.Scan(
			&it.ProductID, &it.ProductName, &it.Unit, &it.SellingPrice, &it.CostPrice,
			&it.LocationID, &it.LocationName, &it.LocationType, &it.Quantity, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
