package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/:product_id/add|remove.
// UnitCost (opcional, solo en entradas) recalcula el costo promedio ponderado.
type AdjustStockRequest struct {
	Quantity int              `json:"quantity"`
	Reason   string           `json:"reason"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
}

// InventoryLevelResponse stock actual de un producto.
type InventoryLevelResponse struct {
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku,omitempty"`
	Name      string    `json:"name,omitempty"`
	Quantity  int       `json:"quantity"`
	MinStock  int       `json:"min_stock"`
	MaxStock  int       `json:"max_stock"`
	Low       bool      `json:"low"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MovementResponse entrada del log de movimientos.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reference string    `json:"reference,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
