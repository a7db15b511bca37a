package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.SaleStatusPending, entity.SaleStatusCompleted, true},
		{entity.SaleStatusPending, entity.SaleStatusCancelled, true},
		{entity.SaleStatusCompleted, entity.SaleStatusCancelled, true},
		// cancelled es terminal
		{entity.SaleStatusCancelled, entity.SaleStatusPending, false},
		{entity.SaleStatusCancelled, entity.SaleStatusCompleted, false},
		{entity.SaleStatusCancelled, entity.SaleStatusCancelled, false},
		// no se puede "des-completar"
		{entity.SaleStatusCompleted, entity.SaleStatusPending, false},
		{entity.SaleStatusCompleted, entity.SaleStatusCompleted, false},
		{entity.SaleStatusPending, entity.SaleStatusPending, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.ValidStatusTransition(c.from, c.to),
			"transición %s -> %s", c.from, c.to)
	}
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, entity.ValidPaymentMethod(entity.PaymentCash))
	assert.True(t, entity.ValidPaymentMethod(entity.PaymentCredit))
	assert.False(t, entity.ValidPaymentMethod("bitcoin"))
	assert.False(t, entity.ValidPaymentMethod(""))
}

func TestInventoryIsLow(t *testing.T) {
	inv := &entity.Inventory{ProductID: "p1", Quantity: 5, MinStock: 10}
	assert.True(t, inv.IsLow())
	inv.Quantity = 10
	assert.True(t, inv.IsLow())
	inv.Quantity = 11
	assert.False(t, inv.IsLow())
}
