package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// CreateSaleUseCase crea una venta y descuenta el inventario en una sola transacción.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CreateSale valida las líneas, congela precios, descuenta stock con bloqueo de fila
// y persiste cabecera, líneas y movimientos "out" (referencia = ID de venta) en una
// transacción. Cualquier falla (ej: stock insuficiente en la línea 3) revierte todo.
//
// Una venta "pending" (ticket en espera) se persiste sin tocar inventario; el
// descuento ocurre al pasarla a "completed".
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.SaleStatusCompleted
	}
	if status != entity.SaleStatusCompleted && status != entity.SaleStatusPending {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.LessThan(decimal.Zero) || in.Tax.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Validar cliente si viene informado
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Validar productos y congelar precios (fuera de la tx, solo lectura).
	// El stock se verifica dentro de la tx, bajo bloqueo de fila.
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, seen := productsByID[item.ProductID]; seen {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
	}

	now := time.Now()
	saleID := uuid.New().String() // referencia en inventory_movements.reference

	var subtotal decimal.Decimal
	items := make([]*entity.SaleItem, 0, len(in.Items))
	for _, req := range in.Items {
		product := productsByID[req.ProductID]
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		items = append(items, &entity.SaleItem{
			ID:         uuid.New().String(),
			SaleID:     saleID,
			ProductID:  req.ProductID,
			Quantity:   req.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	total := subtotal.Sub(in.Discount).Add(in.Tax)
	if total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	sale := &entity.Sale{
		ID:            saleID,
		CustomerID:    in.CustomerID,
		UserID:        userID,
		Status:        status,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		Tax:           in.Tax,
		TotalAmount:   total,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		// 1) Solo una venta completada descuenta stock; un ticket pendiente no.
		if status == entity.SaleStatusCompleted {
			if err := deductStock(invRepo, movRepo, sale, items, userID, now); err != nil {
				return err
			}
		}
		// 2) Cabecera y líneas
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

// deductStock bloquea la fila de inventario de cada línea (SELECT FOR UPDATE),
// verifica disponibilidad, resta y registra un movimiento "out" por línea con la
// venta como referencia. Se ejecuta dentro de la transacción del caller.
func deductStock(
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
		if inv.Quantity < item.Quantity {
			return &domain.InsufficientStockError{
				ProductID: item.ProductID,
				Requested: item.Quantity,
				Available: inv.Quantity,
			}
		}
		inv.Quantity -= item.Quantity
		inv.UpdatedAt = now
		if err := invRepo.Upsert(inv); err != nil {
			return err
		}
		mov := &entity.InventoryMovement{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			Type:      entity.MovementTypeOut,
			Quantity:  item.Quantity,
			Reference: sale.ID,
			Reason:    "venta",
			CreatedBy: userID,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
	}
	return nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		SaleID:        sale.ID,
		CustomerID:    sale.CustomerID,
		UserID:        sale.UserID,
		Status:        sale.Status,
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		Tax:           sale.Tax,
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		Notes:         sale.Notes,
		ItemsCount:    len(items),
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return resp
}
