package dto

import "github.com/shopspring/decimal"

// DailySalesDTO fila del reporte de ventas por día.
type DailySalesDTO struct {
	Day           string          `json:"day"` // YYYY-MM-DD
	SalesCount    int             `json:"sales_count"`
	UnitsSold     int             `json:"units_sold"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
}

// SalesReportResponse reporte de ventas por rango de fechas.
type SalesReportResponse struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Days       []DailySalesDTO `json:"days"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// TopProductDTO fila del reporte de productos más vendidos.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// LowStockDTO fila del reporte de stock bajo.
type LowStockDTO struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"min_stock"`
}
