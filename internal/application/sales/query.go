package sales

import (
	"context"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// SaleQueryUseCase lecturas de ventas (detalle y listados).
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// GetSale obtiene una venta por ID con sus líneas.
func (uc *SaleQueryUseCase) GetSale(_ context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// ListSales lista cabeceras de venta con filtros de estado, cliente y rango de fechas.
func (uc *SaleQueryUseCase) ListSales(_ context.Context, f repository.SaleFilter) (*dto.SaleListResponse, error) {
	if f.Status != "" && !entity.ValidStatus(f.Status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.saleRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SaleResponse{
			SaleID:        s.ID,
			CustomerID:    s.CustomerID,
			UserID:        s.UserID,
			Status:        s.Status,
			Subtotal:      s.Subtotal,
			Discount:      s.Discount,
			Tax:           s.Tax,
			TotalAmount:   s.TotalAmount,
			PaymentMethod: s.PaymentMethod,
			Notes:         s.Notes,
			CreatedAt:     s.CreatedAt,
			UpdatedAt:     s.UpdatedAt,
		})
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}
