package sales

import (
	"context"

	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// ReceiptUseCase genera el ticket PDF de una venta.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// GenerateReceipt arma los datos de impresión (venta, cliente, líneas con nombre y
// unidad del producto) y delega el render al generador.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}

	data := &ReceiptData{Sale: sale, Lines: make([]ReceiptLine, 0, len(items))}
	if sale.CustomerID != "" {
		// El cliente puede haber sido dado de baja después de la venta; el
		// ticket se imprime igual, sin sus datos.
		data.Customer, _ = uc.customerRepo.GetByID(sale.CustomerID)
	}
	for _, item := range items {
		line := ReceiptLine{
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
		if p, err := uc.productRepo.GetByID(item.ProductID); err == nil && p != nil {
			line.SKU = p.SKU
			line.Name = p.Name
			line.Unit = p.Unit
		}
		data.Lines = append(data.Lines, line)
	}

	return uc.generator.GenerateReceipt(ctx, data)
}
