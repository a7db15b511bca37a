package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del depósito (tabla, listón, tablero, herraje).
// Cost es costo promedio ponderado recalculado en entradas de stock; el stock vive en Inventory (1:1).
// La baja es lógica: Active=false deja de venderse pero conserva historial.
type Product struct {
	ID          string
	CategoryID  string // vacío si no tiene categoría asignada
	SKU         string // código único
	Name        string
	Description string
	Unit        string // unidad de venta: "unidad", "m", "m2", "paquete"
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo promedio ponderado
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
