package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el stock de un producto. Si no hay fila devuelve una por defecto
// en cero, para que el caller no distinga "sin fila" de "stock cero".
func (r *InventoryRepo) Get(productID string) (*entity.Inventory, error) {
	return r.get(productID, false)
}

// GetForUpdate igual que Get pero con SELECT FOR UPDATE: bloquea la fila hasta
// el fin de la transacción. Llamar solo dentro de una tx.
func (r *InventoryRepo) GetForUpdate(productID string) (*entity.Inventory, error) {
	return r.get(productID, true)
}

func (r *InventoryRepo) get(productID string, forUpdate bool) (*entity.Inventory, error) {
	query := `SELECT product_id, quantity, min_stock, max_stock, updated_at
		FROM inventory WHERE product_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ProductID, &inv.Quantity, &inv.MinStock, &inv.MaxStock, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Inventory{ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Upsert inserta o actualiza la fila de stock de un producto.
func (r *InventoryRepo) Upsert(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, quantity, min_stock, max_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			min_stock = EXCLUDED.min_stock,
			max_stock = EXCLUDED.max_stock,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		inv.ProductID, inv.Quantity, inv.MinStock, inv.MaxStock, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// List lista niveles de stock con paginación.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT product_id, quantity, min_stock, max_stock, updated_at
		FROM inventory ORDER BY product_id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListLow lista los productos en o por debajo de su stock mínimo.
func (r *InventoryRepo) ListLow() ([]*entity.Inventory, error) {
	query := `SELECT i.product_id, i.quantity, i.min_stock, i.max_stock, i.updated_at
		FROM inventory i JOIN products p ON p.id = i.product_id
		WHERE p.active AND i.quantity <= i.min_stock
		ORDER BY i.quantity`
	return r.list(query)
}

func (r *InventoryRepo) list(query string, args ...any) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ProductID, &inv.Quantity, &inv.MinStock, &inv.MaxStock, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
