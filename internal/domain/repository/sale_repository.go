package repository

import (
	"time"

	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

// SaleFilter filtros para listar ventas.
type SaleFilter struct {
	Status     string
	CustomerID string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) para que dos
	// cancelaciones concurrentes no restauren el stock dos veces.
	GetForUpdate(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
	List(f SaleFilter) ([]*entity.Sale, error)
}
