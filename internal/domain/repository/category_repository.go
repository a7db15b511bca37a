package repository

import (
	"time"

	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(activeOnly bool) ([]*entity.Category, error)
	Deactivate(id string, at time.Time) error
}
