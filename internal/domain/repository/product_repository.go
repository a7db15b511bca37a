package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

// ProductFilter filtros para listar productos.
// Search se compara contra el nombre normalizado (ver pkg/normalize).
type ProductFilter struct {
	Search     string
	CategoryID string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCost(productID string, cost decimal.Decimal) error
	List(f ProductFilter) ([]*entity.Product, error)
	// Deactivate baja lógica: active=false, el producto deja de venderse.
	Deactivate(id string, at time.Time) error
}
