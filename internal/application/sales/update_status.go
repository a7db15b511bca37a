package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// UpdateStatusUseCase gestiona el ciclo de vida de la venta:
// pending -> completed (descuenta stock), pending/completed -> cancelled.
// La cancelación de una venta completada es la inversa exacta de la creación:
// restaura cada línea y registra un movimiento "in" compensatorio.
type UpdateStatusUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewUpdateStatusUseCase construye el caso de uso.
func NewUpdateStatusUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// UpdateStatus aplica la transición de estado. La venta se relee y bloquea dentro
// de la transacción (SELECT FOR UPDATE sobre la cabecera) para que la verificación
// de transición y el efecto sobre inventario sean atómicos frente a concurrencia.
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, userID, saleID, newStatus string) (*dto.SaleResponse, error) {
	if saleID == "" || !entity.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	// Lectura previa barata para responder 404 sin abrir transacción.
	existing, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	var sale *entity.Sale
	var items []*entity.SaleItem

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		var err error
		sale, err = saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if !entity.ValidStatusTransition(sale.Status, newStatus) {
			return domain.ErrInvalidTransition
		}

		items, err = saleRepo.GetItems(saleID)
		if err != nil {
			return err
		}

		now := time.Now()
		switch {
		case sale.Status == entity.SaleStatusPending && newStatus == entity.SaleStatusCompleted:
			// Completar un ticket en espera descuenta stock con el mismo
			// contrato que la creación (bloqueo, verificación, movimiento out).
			if err := deductStock(invRepo, movRepo, sale, items, userID, now); err != nil {
				return err
			}
		case sale.Status == entity.SaleStatusCompleted && newStatus == entity.SaleStatusCancelled:
			if err := restoreStock(invRepo, movRepo, sale, items, userID, now); err != nil {
				return err
			}
			// pending -> cancelled: sin efecto sobre inventario (nunca se descontó).
		}

		sale.Status = newStatus
		sale.UpdatedAt = now
		return saleRepo.UpdateStatus(saleID, newStatus, now)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

// restoreStock devuelve al inventario la cantidad original de cada línea y
// registra un movimiento "in" compensatorio con la venta como referencia.
// Inversa de deductStock; misma disciplina de bloqueo por fila.
func restoreStock(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	sale *entity.Sale,
	items []*entity.SaleItem,
	userID string,
	now time.Time,
) error {
	for _, item := range items {
		inv, err := invRepo.GetForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		inv.Quantity += item.Quantity
		inv.UpdatedAt = now
		if err := invRepo.Upsert(inv); err != nil {
			return err
		}
		mov := &entity.InventoryMovement{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			Type:      entity.MovementTypeIn,
			Quantity:  item.Quantity,
			Reference: sale.ID,
			Reason:    "cancelación de venta",
			CreatedBy: userID,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
	}
	return nil
}
