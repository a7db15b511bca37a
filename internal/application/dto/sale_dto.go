package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea solicitada en una venta: producto y cantidad.
// El precio no viaja en el request; se toma el precio vigente del producto.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest body para POST /api/sales.
// Status opcional: "completed" (por defecto, venta de mostrador) o "pending"
// (ticket en espera, no descuenta inventario hasta completarse).
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id,omitempty"`
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	Discount      decimal.Decimal   `json:"discount"`
	Tax           decimal.Decimal   `json:"tax"`
	Notes         string            `json:"notes,omitempty"`
	Status        string            `json:"status,omitempty"`
}

// UpdateSaleStatusRequest body para PATCH /api/sales/:id/status.
type UpdateSaleStatusRequest struct {
	Status string `json:"status"`
}

// SaleItemResponse línea de venta persistida, con precio congelado.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	SaleID        string             `json:"sale_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	UserID        string             `json:"user_id"`
	Status        string             `json:"status"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Tax           decimal.Decimal    `json:"tax"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	ItemsCount    int                `json:"items_count"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas (cabeceras, sin líneas).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
