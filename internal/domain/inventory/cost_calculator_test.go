package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/maderas-pos/internal/domain/inventory"
)

func TestWeightedAverageCost(t *testing.T) {
	tests := []struct {
		name        string
		currentQty  int
		currentCost float64
		inQty       int
		inCost      float64
		want        float64
	}{
		{"mitad y mitad", 10, 100, 10, 200, 150},
		{"entrada domina", 1, 100, 99, 200, 199},
		{"stock inicial cero", 0, 0, 50, 120, 120},
		{"mismo costo", 30, 80, 20, 80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.WeightedAverageCost(
				tt.currentQty, decimal.NewFromFloat(tt.currentCost),
				tt.inQty, decimal.NewFromFloat(tt.inCost),
			)
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)),
				"esperado %v, obtenido %s", tt.want, got)
		})
	}
}

// Sin stock ni entrada no hay base para promediar; el costo queda en cero.
func TestWeightedAverageCost_SinUnidades_RetornaCero(t *testing.T) {
	got := inventory.WeightedAverageCost(0, decimal.NewFromFloat(100), 0, decimal.NewFromFloat(200))
	assert.True(t, got.Equal(decimal.Zero))
}
