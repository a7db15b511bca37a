package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/application/sales"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de CreateSaleUseCase sobre el store en memoria (ver fakes_test.go).
//
// La propiedad central que se verifica es la atomicidad: una venta que falla en
// cualquier punto (stock insuficiente, total negativo, cliente inexistente) no
// deja rastro en ventas, líneas, inventario ni movimientos.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID     = "11111111-1111-1111-1111-111111111111"
	testCustomerID = "22222222-2222-2222-2222-222222222222"
)

func seedProduct(store *memStore, id, sku string, price float64, stock int) {
	store.products[id] = &entity.Product{
		ID:     id,
		SKU:    sku,
		Name:   "Tabla pino " + sku,
		Unit:   "unidad",
		Price:  decimal.NewFromFloat(price),
		Active: true,
	}
	store.inventory[id] = &entity.Inventory{ProductID: id, Quantity: stock, MinStock: 5}
}

func newCreateSaleUC(store *memStore) *sales.CreateSaleUseCase {
	return sales.NewCreateSaleUseCase(
		&memTxRunner{store: store},
		&memCustomerRepo{store: store},
		&memProductRepo{store: store},
	)
}

func TestCreateSale_DescuentaStockYRegistraMovimiento(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	uc := newCreateSaleUC(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 30}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.SaleStatusCompleted, resp.Status, "sin status explícito la venta debe quedar completed")
	assert.Equal(t, 70, store.inventory["prod-1"].Quantity, "stock 100 - venta 30 debe dejar 70")

	// Venta y líneas persistidas
	sale := store.sales[resp.SaleID]
	require.NotNil(t, sale, "la cabecera debe quedar persistida")
	require.Len(t, store.saleItems[resp.SaleID], 1)

	// Movimiento "out" referenciando la venta
	movs := store.movementsByReference(resp.SaleID)
	require.Len(t, movs, 1, "debe registrarse un movimiento por línea")
	assert.Equal(t, entity.MovementTypeOut, movs[0].Type)
	assert.Equal(t, 30, movs[0].Quantity, "la cantidad del movimiento siempre es positiva")
	assert.Equal(t, "venta", movs[0].Reason)
	assert.Equal(t, testUserID, movs[0].CreatedBy)
}

func TestCreateSale_CongelaPrecioVigente(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 50)
	uc := newCreateSaleUC(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 4}},
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	// El precio viaja en el producto, nunca en el request
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.NewFromFloat(12500)),
		"la línea debe congelar el precio vigente del producto")
	assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.NewFromFloat(50000)),
		"total de línea = cantidad x precio unitario")

	// Un cambio de precio posterior no afecta la venta ya registrada
	store.products["prod-1"].Price = decimal.NewFromFloat(99999)
	item := store.saleItems[resp.SaleID][0]
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromFloat(12500)))
}

func TestCreateSale_TotalConDescuentoEImpuesto(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "TAB-MDF-18", 100, 50)
	uc := newCreateSaleUC(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 3}},
		PaymentMethod: entity.PaymentTransfer,
		Discount:      decimal.NewFromFloat(50),
		Tax:           decimal.NewFromFloat(30),
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromFloat(300)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromFloat(280)),
		"total = subtotal - descuento + impuesto (300 - 50 + 30)")
}

func TestCreateSale_TotalNegativo_Rechazada(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "TAB-MDF-18", 100, 50)
	uc := newCreateSaleUC(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
		Discount:      decimal.NewFromFloat(500), // mayor que el subtotal
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, store.sales, "una venta rechazada no deja cabecera")
	assert.Equal(t, 50, store.inventory["prod-1"].Quantity, "el stock no debe moverse")
}

func TestCreateSale_StockInsuficiente_NoDejaRastro(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 5)
	uc := newCreateSaleUC(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 10}},
		PaymentMethod: entity.PaymentCash,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr), "el error debe detallar producto y cantidades")
	assert.Equal(t, "prod-1", stockErr.ProductID)
	assert.Equal(t, 10, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)

	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
	assert.Equal(t, 5, store.inventory["prod-1"].Quantity)
}

// TestCreateSale_FallaEnSegundaLinea_RevierteLaPrimera cubre el caso crítico de
// atomicidad multilínea: la línea 1 alcanza a descontar stock dentro de la tx,
// pero la línea 2 falla y todo debe volver atrás.
func TestCreateSale_FallaEnSegundaLinea_RevierteLaPrimera(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	seedProduct(store, "prod-2", "TAB-MDF-18", 48000, 2)
	uc := newCreateSaleUC(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: 30},
			{ProductID: "prod-2", Quantity: 10}, // solo hay 2
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 100, store.inventory["prod-1"].Quantity,
		"el descuento de la primera línea debe revertirse")
	assert.Equal(t, 2, store.inventory["prod-2"].Quantity)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}

func TestCreateSale_Pending_NoTocaInventario(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	uc := newCreateSaleUC(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 30}},
		PaymentMethod: entity.PaymentCash,
		Status:        entity.SaleStatusPending,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusPending, resp.Status)
	assert.Equal(t, 100, store.inventory["prod-1"].Quantity,
		"un ticket en espera no descuenta stock")
	assert.Empty(t, store.movements)
	require.NotNil(t, store.sales[resp.SaleID], "el ticket sí queda persistido")
}

func TestCreateSale_ClienteInexistente_Retorna404(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	uc := newCreateSaleUC(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID:    testCustomerID,
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.sales)
}

func TestCreateSale_ProductoInactivo_Rechazado(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	store.products["prod-1"].Active = false
	uc := newCreateSaleUC(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrNotFound, "un producto dado de baja no puede venderse")
}

func TestCreateSale_ValidacionesDeEntrada(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	uc := newCreateSaleUC(store)

	tests := []struct {
		name   string
		userID string
		req    dto.CreateSaleRequest
	}{
		{
			name:   "sin líneas",
			userID: testUserID,
			req:    dto.CreateSaleRequest{PaymentMethod: entity.PaymentCash},
		},
		{
			name:   "sin usuario",
			userID: "",
			req: dto.CreateSaleRequest{
				Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 1}},
				PaymentMethod: entity.PaymentCash,
			},
		},
		{
			name:   "cantidad cero",
			userID: testUserID,
			req: dto.CreateSaleRequest{
				Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 0}},
				PaymentMethod: entity.PaymentCash,
			},
		},
		{
			name:   "método de pago desconocido",
			userID: testUserID,
			req: dto.CreateSaleRequest{
				Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 1}},
				PaymentMethod: "cheque",
			},
		},
		{
			name:   "descuento negativo",
			userID: testUserID,
			req: dto.CreateSaleRequest{
				Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 1}},
				PaymentMethod: entity.PaymentCash,
				Discount:      decimal.NewFromFloat(-10),
			},
		},
		{
			name:   "status desconocido",
			userID: testUserID,
			req: dto.CreateSaleRequest{
				Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 1}},
				PaymentMethod: entity.PaymentCash,
				Status:        "draft",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateSale(context.Background(), tt.userID, tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, store.sales, "ninguna venta inválida debe persistirse")
}
