package repository

import "github.com/jhoicas/maderas-pos/internal/domain/entity"

// InventoryRepository define el puerto para consultar/actualizar el stock por producto.
// Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Get(productID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); serializa
	// ventas y ajustes concurrentes sobre el mismo producto.
	GetForUpdate(productID string) (*entity.Inventory, error)
	Upsert(inv *entity.Inventory) error
	List(limit, offset int) ([]*entity.Inventory, error)
	ListLow() ([]*entity.Inventory, error)
}
