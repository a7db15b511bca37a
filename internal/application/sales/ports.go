package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para venta, cancelación y completado:
// cualquier error dentro de fn hace rollback de todo lo escrito.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptLine línea del ticket: datos del producto ya resueltos para impresión.
type ReceiptLine struct {
	SKU        string
	Name       string
	Unit       string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// ReceiptData todo lo necesario para renderizar el ticket de una venta.
type ReceiptData struct {
	Sale     *entity.Sale
	Customer *entity.Customer // nil en venta de mostrador sin cliente
	Lines    []ReceiptLine
}

// ReceiptGenerator renderiza el ticket de venta (PDF en la implementación actual).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data *ReceiptData) ([]byte, error)
}
