package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPending   = "pending"   // ticket en espera, sin impacto en inventario
	SaleStatusCompleted = "completed" // cobrada, inventario descontado
	SaleStatusCancelled = "cancelled" // anulada; si venía de completed, inventario restaurado
)

// Métodos de pago aceptados en mostrador.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentCredit   = "credit"
)

// Sale representa la cabecera de una venta de mostrador.
// Invariante: TotalAmount = Subtotal - Discount + Tax.
type Sale struct {
	ID            string
	CustomerID    string // vacío para venta de mostrador sin cliente
	UserID        string // cajero que registró la venta
	Status        string // pending, completed, cancelled
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem representa una línea de venta. UnitPrice es una fotografía del precio
// del producto al momento de la venta; TotalPrice = Quantity × UnitPrice.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// ValidStatus indica si s es un estado de venta conocido.
func ValidStatus(s string) bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod indica si m es un método de pago aceptado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCredit:
		return true
	}
	return false
}

// ValidStatusTransition define el ciclo de vida de la venta:
// pending -> completed, pending -> cancelled, completed -> cancelled.
// Una venta cancelada es terminal; cancelar dos veces no es válido.
func ValidStatusTransition(from, to string) bool {
	switch {
	case from == SaleStatusPending && to == SaleStatusCompleted:
		return true
	case from == SaleStatusPending && to == SaleStatusCancelled:
		return true
	case from == SaleStatusCompleted && to == SaleStatusCancelled:
		return true
	}
	return false
}
