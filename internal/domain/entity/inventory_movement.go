package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn         = "in"         // entrada: compra, ajuste positivo o cancelación de venta
	MovementTypeOut        = "out"        // salida: venta o ajuste negativo
	MovementTypeAdjustment = "adjustment" // ajuste de conteo físico
)

// InventoryMovement es el registro de auditoría de cada cambio de stock.
// Es append-only: nunca se actualiza ni se borra. Quantity siempre es positiva;
// la dirección la da Type. Reference lleva el ID de la venta cuando aplica.
type InventoryMovement struct {
	ID        string
	ProductID string
	Type      string // in, out, adjustment
	Quantity  int
	Reference string // ID de venta, vacío en ajustes manuales
	Reason    string // texto libre en ajustes; descripción del origen en automáticos
	CreatedBy string // UserID
	CreatedAt time.Time
}
