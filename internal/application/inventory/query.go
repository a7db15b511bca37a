package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// StockQueryUseCase lecturas de inventario: niveles, bajos de stock, movimientos.
type StockQueryUseCase struct {
	invRepo     repository.InventoryRepository
	movRepo     repository.InventoryMovementRepository
	productRepo repository.ProductRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{invRepo: invRepo, movRepo: movRepo, productRepo: productRepo}
}

// GetLevel devuelve el stock actual de un producto.
func (uc *StockQueryUseCase) GetLevel(ctx context.Context, productID string) (*dto.InventoryLevelResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.invRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	return toLevelResponse(inv, product), nil
}

// ListLevels devuelve los niveles de stock paginados.
func (uc *StockQueryUseCase) ListLevels(ctx context.Context, page dto.PageRequest) ([]dto.InventoryLevelResponse, error) {
	page.DefaultPage()
	invs, err := uc.invRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.withProductInfo(invs)
}

// ListLow devuelve los productos en o por debajo de su stock mínimo.
func (uc *StockQueryUseCase) ListLow(ctx context.Context) ([]dto.InventoryLevelResponse, error) {
	invs, err := uc.invRepo.ListLow()
	if err != nil {
		return nil, err
	}
	return uc.withProductInfo(invs)
}

// ListMovements devuelve el log de movimientos, opcionalmente filtrado por
// producto y rango de fechas.
func (uc *StockQueryUseCase) ListMovements(ctx context.Context, productID string, from, to *time.Time, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()

	var (
		movements []*entity.InventoryMovement
		err       error
	)
	if productID != "" {
		movements, err = uc.movRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	} else {
		movements, err = uc.movRepo.List(from, to, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(movements)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range movements {
		resp.Items = append(resp.Items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reference: m.Reference,
			Reason:    m.Reason,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return resp, nil
}

func (uc *StockQueryUseCase) withProductInfo(invs []*entity.Inventory) ([]dto.InventoryLevelResponse, error) {
	out := make([]dto.InventoryLevelResponse, 0, len(invs))
	for _, inv := range invs {
		product, err := uc.productRepo.GetByID(inv.ProductID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toLevelResponse(inv, product))
	}
	return out, nil
}
