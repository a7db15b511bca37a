package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	domaininv "github.com/jhoicas/maderas-pos/internal/domain/inventory"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// AdjustStockUseCase maneja los ajustes manuales de stock (entradas y salidas
// fuera del flujo de venta): recepción de mercadería, mermas, conteos físicos.
type AdjustStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, productRepo: productRepo}
}

// AddStock registra una entrada manual de stock. Si la entrada trae costo
// unitario, recalcula el costo promedio ponderado del producto.
func (uc *AdjustStockUseCase) AddStock(ctx context.Context, userID, productID string, in *dto.AdjustStockRequest) (*dto.InventoryLevelResponse, error) {
	if err := validateAdjustment(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var result *entity.Inventory
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if in.UnitCost != nil {
			newCost := domaininv.WeightedAverageCost(inv.Quantity, product.Cost, in.Quantity, *in.UnitCost)
			if err := productRepo.UpdateCost(productID, newCost); err != nil {
				return err
			}
		}
		now := time.Now()
		inv.Quantity += in.Quantity
		inv.UpdatedAt = now
		if err := invRepo.Upsert(inv); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.InventoryMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      entity.MovementTypeIn,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			CreatedBy: userID,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLevelResponse(result, product), nil
}

// RemoveStock registra una salida manual de stock (merma, rotura, consumo interno).
// No permite dejar el stock en negativo.
func (uc *AdjustStockUseCase) RemoveStock(ctx context.Context, userID, productID string, in *dto.AdjustStockRequest) (*dto.InventoryLevelResponse, error) {
	if err := validateAdjustment(in); err != nil {
		return nil, err
	}
	if in.UnitCost != nil {
		return nil, fmt.Errorf("%w: unit_cost solo aplica a entradas", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var result *entity.Inventory
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if inv.Quantity < in.Quantity {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Requested: in.Quantity,
				Available: inv.Quantity,
			}
		}
		now := time.Now()
		inv.Quantity -= in.Quantity
		inv.UpdatedAt = now
		if err := invRepo.Upsert(inv); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.InventoryMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      entity.MovementTypeOut,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			CreatedBy: userID,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLevelResponse(result, product), nil
}

func validateAdjustment(in *dto.AdjustStockRequest) error {
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Reason) == "" {
		return fmt.Errorf("%w: el motivo del ajuste es obligatorio", domain.ErrInvalidInput)
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return fmt.Errorf("%w: el costo unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toLevelResponse(inv *entity.Inventory, product *entity.Product) *dto.InventoryLevelResponse {
	resp := &dto.InventoryLevelResponse{
		ProductID: inv.ProductID,
		Quantity:  inv.Quantity,
		MinStock:  inv.MinStock,
		MaxStock:  inv.MaxStock,
		Low:       inv.IsLow(),
		UpdatedAt: inv.UpdatedAt,
	}
	if product != nil {
		resp.SKU = product.SKU
		resp.Name = product.Name
	}
	return resp
}
