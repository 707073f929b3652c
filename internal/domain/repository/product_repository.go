package repository

import "github.com/jcastro/llantera-api/internal/domain/entity"

// ProductFilter filtros para el listado de productos.
type ProductFilter struct {
	Category1ID string
	Category2ID string
	Category3ID string
	Keyword     string // ya normalizado con pkg/search.Fold
}

// ProductRepository define el puerto de persistencia del catálogo.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(f ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	Update(p *entity.Product) error
	Delete(id string) error
	CountByCategory(categoryID string) (int, error)
}
