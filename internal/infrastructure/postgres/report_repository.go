package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones de solo lectura para reportes. Siempre sobre el pool,
// nunca dentro de una transacción.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesByDay agrega las ventas completadas por día calendario en [from, to].
func (r *ReportRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]repository.DailySalesRow, error) {
	// Se agrega por venta antes de agrupar por día para no multiplicar los
	// totales de cabecera por el número de líneas.
	query := `
		WITH per_sale AS (
			SELECT s.id,
			       date_trunc('day', s.created_at) AS day,
			       s.subtotal, s.discount, s.tax, s.total_amount,
			       (SELECT COALESCE(SUM(si.quantity), 0) FROM sale_items si WHERE si.sale_id = s.id) AS units
			FROM sales s
			WHERE s.status = 'completed' AND s.created_at >= $1 AND s.created_at <= $2
		)
		SELECT day, COUNT(*), SUM(units), SUM(subtotal), SUM(discount), SUM(tax), SUM(total_amount)
		FROM per_sale GROUP BY day ORDER BY day`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySalesRow
	for rows.Next() {
		var row repository.DailySalesRow
		if err := rows.Scan(&row.Day, &row.SalesCount, &row.UnitsSold,
			&row.GrossTotal, &row.DiscountTotal, &row.TaxTotal, &row.NetTotal); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TopProducts devuelve los productos con más unidades vendidas en el rango.
func (r *ReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductRow, error) {
	query := `
		SELECT p.id, p.sku, p.name,
		       SUM(si.quantity) AS units,
		       SUM(si.total_price) AS revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.status = 'completed' AND s.created_at >= $1 AND s.created_at <= $2
		GROUP BY p.id, p.sku, p.name
		ORDER BY units DESC
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// LowStock lista los productos activos en o por debajo de su stock mínimo.
func (r *ReportRepo) LowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, i.quantity, i.min_stock
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE p.active AND i.quantity <= i.min_stock
		ORDER BY i.quantity`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Quantity, &row.MinStock); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
