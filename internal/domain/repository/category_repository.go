package repository

import "github.com/jcastro/llantera-api/internal/domain/entity"

// CategoryRepository define el puerto del árbol de categorías (tres niveles).
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// ListByLevel lista categorías activas de un nivel; parentID vacío para nivel 1.
	ListByLevel(level int, parentID string) ([]*entity.Category, error)
	// ListActive devuelve todas las categorías activas (para armar el árbol).
	ListActive() ([]*entity.Category, error)
	Update(c *entity.Category) error
	Delete(id string) error
	CountChildren(id string) (int, error)
}
