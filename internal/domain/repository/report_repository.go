package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesRow totales de venta agregados por día (solo ventas completadas).
type DailySalesRow struct {
	Day           time.Time
	SalesCount    int
	UnitsSold     int
	GrossTotal    decimal.Decimal // suma de subtotales
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	NetTotal      decimal.Decimal // suma de total_amount
}

// TopProductRow producto ordenado por unidades vendidas en un rango.
type TopProductRow struct {
	ProductID string
	SKU       string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
}

// LowStockRow producto en o por debajo de su stock mínimo.
type LowStockRow struct {
	ProductID string
	SKU       string
	Name      string
	Quantity  int
	MinStock  int
}

// ReportRepository consultas de solo lectura para reportes. A diferencia de los
// repos transaccionales, recibe ctx porque son agregaciones potencialmente largas
// que deben respetar el timeout del request.
type ReportRepository interface {
	SalesByDay(ctx context.Context, from, to time.Time) ([]DailySalesRow, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductRow, error)
	LowStock(ctx context.Context) ([]LowStockRow, error)
}
