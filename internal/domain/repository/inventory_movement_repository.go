package repository

import (
	"time"

	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para el log de movimientos.
// El log es append-only: solo Create y lecturas.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	List(from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	// ListByReference devuelve los movimientos asociados a una venta.
	ListByReference(reference string) ([]*entity.InventoryMovement, error)
}
