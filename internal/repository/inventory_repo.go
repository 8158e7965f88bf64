package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hotelops/internal/models"
)

type InventorySQLite struct {
	db *sql.DB
}

func NewInventorySQLite(db *sql.DB) *InventorySQLite { return &InventorySQLite{db: db} }

var _ InventoryRepo = (*InventorySQLite)(nil)

const selectInventoryColumns = `id, property_id, name, category, quantity, min_stock, unit, created_at, updated_at`

func (r *InventorySQLite) Create(ctx context.Context, it models.InventoryItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory (`+selectInventoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		it.ID,
		it.PropertyID,
		it.Name,
		it.Category,
		it.Quantity,
		it.MinStock,
		it.Unit,
		it.CreatedAt.UTC(),
		it.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert inventory item %q: %w", it.Name, err)
	}
	return nil
}

func (r *InventorySQLite) List(ctx context.Context, propertyID string) ([]models.InventoryItem, error) {
	return r.list(ctx,
		`SELECT `+selectInventoryColumns+` FROM inventory WHERE property_id = ? ORDER BY name`,
		propertyID)
}

// Adjust changes quantity by delta, guarded against going negative so
// concurrent decrements cannot oversell stock.
func (r *InventorySQLite) Adjust(ctx context.Context, id string, delta int, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory SET quantity = quantity + ?, updated_at = ?
		WHERE id = ? AND quantity + ? >= 0
	`, delta, at.UTC(), id, delta)
	if err != nil {
		return false, fmt.Errorf("adjust inventory item %q by %d: %w", id, delta, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *InventorySQLite) ListLowStock(ctx context.Context, propertyID string) ([]models.InventoryItem, error) {
	return r.list(ctx,
		`SELECT `+selectInventoryColumns+` FROM inventory WHERE property_id = ? AND quantity <= min_stock ORDER BY name`,
		propertyID)
}

func (r *InventorySQLite) list(ctx context.Context, q string, args ...any) ([]models.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	out := make([]models.InventoryItem, 0, 32)
	for rows.Next() {
		var (
			it       models.InventoryItem
			category sql.NullString
			unit     sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.PropertyID, &it.Name, &category, &it.Quantity, &it.MinStock, &unit, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Category = category.String
		it.Unit = unit.String
		it.CreatedAt = it.CreatedAt.UTC()
		it.UpdatedAt = it.UpdatedAt.UTC()
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
