package inventory

import (
	"context"

	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// TxRunner ejecuta un ajuste de stock dentro de una transacción de BD. El
// movimiento y la actualización de stock se escriben juntos o no se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
