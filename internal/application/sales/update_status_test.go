package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/application/sales"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de vida de la venta: completar un ticket pendiente, cancelar,
// y el rechazo de transiciones inválidas (incluida la doble cancelación).
// ──────────────────────────────────────────────────────────────────────────────

func newStatusUC(store *memStore) *sales.UpdateStatusUseCase {
	return sales.NewUpdateStatusUseCase(&memTxRunner{store: store}, &memSaleRepo{store: store})
}

// mustCreateSale registra una venta por el camino real del caso de uso, para que
// los tests de transición partan del mismo estado que produce la creación.
func mustCreateSale(t *testing.T, store *memStore, status string, productID string, qty int) *dto.SaleResponse {
	t.Helper()
	uc := newCreateSaleUC(store)
	resp, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: productID, Quantity: qty}},
		PaymentMethod: entity.PaymentCash,
		Status:        status,
	})
	require.NoError(t, err)
	return resp
}

func TestUpdateStatus_PendingACompleted_DescuentaStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	sale := mustCreateSale(t, store, entity.SaleStatusPending, "prod-1", 30)
	require.Equal(t, 100, store.inventory["prod-1"].Quantity, "precondición: el ticket no descontó")

	uc := newStatusUC(store)
	resp, err := uc.UpdateStatus(context.Background(), testUserID, sale.SaleID, entity.SaleStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.Equal(t, 70, store.inventory["prod-1"].Quantity, "completar el ticket descuenta el stock")

	movs := store.movementsByReference(sale.SaleID)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeOut, movs[0].Type)
	assert.Equal(t, "venta", movs[0].Reason)
}

func TestUpdateStatus_CompletedACancelled_RestauraStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	sale := mustCreateSale(t, store, entity.SaleStatusCompleted, "prod-1", 30)
	require.Equal(t, 70, store.inventory["prod-1"].Quantity)

	uc := newStatusUC(store)
	resp, err := uc.UpdateStatus(context.Background(), testUserID, sale.SaleID, entity.SaleStatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCancelled, resp.Status)
	assert.Equal(t, 100, store.inventory["prod-1"].Quantity, "cancelar restaura la cantidad original")

	// La auditoría conserva ambos lados: el "out" de la venta y el "in" compensatorio
	movs := store.movementsByReference(sale.SaleID)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementTypeOut, movs[0].Type)
	assert.Equal(t, entity.MovementTypeIn, movs[1].Type)
	assert.Equal(t, 30, movs[1].Quantity)
	assert.Equal(t, "cancelación de venta", movs[1].Reason)
}

func TestUpdateStatus_PendingACancelled_SinEfectoEnInventario(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	sale := mustCreateSale(t, store, entity.SaleStatusPending, "prod-1", 30)

	uc := newStatusUC(store)
	resp, err := uc.UpdateStatus(context.Background(), testUserID, sale.SaleID, entity.SaleStatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCancelled, resp.Status)
	assert.Equal(t, 100, store.inventory["prod-1"].Quantity,
		"cancelar un ticket que nunca descontó no debe sumar stock")
	assert.Empty(t, store.movements)
}

func TestUpdateStatus_TransicionesInvalidas(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)

	completed := mustCreateSale(t, store, entity.SaleStatusCompleted, "prod-1", 5)
	cancelled := mustCreateSale(t, store, entity.SaleStatusCompleted, "prod-1", 5)

	uc := newStatusUC(store)
	_, err := uc.UpdateStatus(context.Background(), testUserID, cancelled.SaleID, entity.SaleStatusCancelled)
	require.NoError(t, err)
	stockAfterCancel := store.inventory["prod-1"].Quantity

	tests := []struct {
		name   string
		saleID string
		to     string
	}{
		{"completed a pending", completed.SaleID, entity.SaleStatusPending},
		{"cancelled a completed", cancelled.SaleID, entity.SaleStatusCompleted},
		{"doble cancelación", cancelled.SaleID, entity.SaleStatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.UpdateStatus(context.Background(), testUserID, tt.saleID, tt.to)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}

	assert.Equal(t, stockAfterCancel, store.inventory["prod-1"].Quantity,
		"una doble cancelación no puede restaurar stock dos veces")
}

func TestUpdateStatus_VentaInexistente_Retorna404(t *testing.T) {
	store := newMemStore()
	uc := newStatusUC(store)

	_, err := uc.UpdateStatus(context.Background(), testUserID, "33333333-3333-3333-3333-333333333333", entity.SaleStatusCancelled)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_StatusDesconocido_Rechazado(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	sale := mustCreateSale(t, store, entity.SaleStatusPending, "prod-1", 1)

	uc := newStatusUC(store)
	_, err := uc.UpdateStatus(context.Background(), testUserID, sale.SaleID, "refunded")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestUpdateStatus_CompletarSinStock_MantienePendiente: entre que el ticket se
// creó y se intenta completar, otra venta consumió el stock. El completado debe
// fallar con el detalle del faltante y dejar el ticket como estaba.
func TestUpdateStatus_CompletarSinStock_MantienePendiente(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "prod-1", "MAD-PINO-2X4", 12500, 100)
	sale := mustCreateSale(t, store, entity.SaleStatusPending, "prod-1", 30)

	// Otra venta se lleva casi todo el stock
	store.inventory["prod-1"].Quantity = 10

	uc := newStatusUC(store)
	_, err := uc.UpdateStatus(context.Background(), testUserID, sale.SaleID, entity.SaleStatusCompleted)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, entity.SaleStatusPending, store.sales[sale.SaleID].Status,
		"el ticket debe seguir pendiente tras el fallo")
	assert.Equal(t, 10, store.inventory["prod-1"].Quantity)
	assert.Empty(t, store.movements)
}
