package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase reportes de solo lectura: ventas por día, productos más vendidos y
// stock bajo. Solo cuentan ventas completadas.
type UseCase struct {
	reportRepo repository.ReportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo}
}

// SalesByDay agrega las ventas completadas por día en [from, to].
// Fechas en formato YYYY-MM-DD; to por defecto hoy, from por defecto to-30d.
func (uc *UseCase) SalesByDay(ctx context.Context, fromStr, toStr string) (*dto.SalesReportResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.SalesByDay(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesReportResponse{
		From: from.Format(dateLayout),
		To:   to.Format(dateLayout),
		Days: make([]dto.DailySalesDTO, 0, len(rows)),
	}
	grand := decimal.Zero
	for _, r := range rows {
		resp.Days = append(resp.Days, dto.DailySalesDTO{
			Day:           r.Day.Format(dateLayout),
			SalesCount:    r.SalesCount,
			UnitsSold:     r.UnitsSold,
			GrossTotal:    r.GrossTotal,
			DiscountTotal: r.DiscountTotal,
			TaxTotal:      r.TaxTotal,
			NetTotal:      r.NetTotal,
		})
		grand = grand.Add(r.NetTotal)
	}
	resp.GrandTotal = grand
	return resp, nil
}

// TopProducts devuelve los productos más vendidos (por unidades) en el rango.
func (uc *UseCase) TopProducts(ctx context.Context, fromStr, toStr string, limit int) ([]dto.TopProductDTO, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	rows, err := uc.reportRepo.TopProducts(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID: r.ProductID,
			SKU:       r.SKU,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue,
		})
	}
	return out, nil
}

// LowStock lista los productos activos en o por debajo de su mínimo.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	rows, err := uc.reportRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockDTO{
			ProductID: r.ProductID,
			SKU:       r.SKU,
			Name:      r.Name,
			Quantity:  r.Quantity,
			MinStock:  r.MinStock,
		})
	}
	return out, nil
}

// parseRange interpreta el rango de fechas. to se extiende al final del día para
// que el rango sea inclusivo.
func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	to := now
	if toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha 'to' inválida, se espera YYYY-MM-DD", domain.ErrInvalidInput)
		}
		to = t
	}
	to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())

	from := to.AddDate(0, 0, -30)
	if fromStr != "" {
		f, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha 'from' inválida, se espera YYYY-MM-DD", domain.ErrInvalidInput)
		}
		from = time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, f.Location())
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: 'from' posterior a 'to'", domain.ErrInvalidInput)
	}
	return from, to, nil
}
