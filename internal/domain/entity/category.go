package entity

import "time"

// Niveles del árbol de categorías.
const (
	CategoryLevelMin = 1
	CategoryLevelMax = 3
)

// Estados de categoría.
const (
	CategoryActive   = "active"
	CategoryInactive = "inactive"
)

// Category es un nodo del árbol de categorías de tres niveles
// (nivel 1 = rin, nivel 2 = especificación, nivel 3 = marca).
// ParentID es vacío en el nivel 1.
type Category struct {
	ID        string
	Level     int
	ParentID  string
	Name      string
	SortOrder int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
