package entity

import "time"

// Inventory representa el stock actual de un producto (relación 1:1 con Product).
// Quantity solo se muta vía venta, cancelación o ajuste manual, siempre junto a un
// InventoryMovement en la misma transacción.
type Inventory struct {
	ProductID string
	Quantity  int
	MinStock  int
	MaxStock  int
	UpdatedAt time.Time
}

// IsLow indica si el stock está en o por debajo del mínimo configurado.
func (i *Inventory) IsLow() bool {
	return i.Quantity <= i.MinStock
}
