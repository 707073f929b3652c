package dto

// CreateCategoryRequest entrada para crear una categoría.
// Level 1 (rin) no lleva padre; niveles 2 (medida) y 3 (marca) sí.
type CreateCategoryRequest struct {
	Level     int    `json:"level" validate:"required,min=1,max=3"`
	ParentID  string `json:"parent_id" validate:"omitempty,uuid"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest entrada para renombrar/reordenar/activar una categoría.
type UpdateCategoryRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	SortOrder *int    `json:"sort_order"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string `json:"id"`
	Level     int    `json:"level"`
	ParentID  string `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	Status    string `json:"status"`
}

// CategoryNode nodo del árbol de categorías con sus hijos anidados.
type CategoryNode struct {
	CategoryResponse
	Children []CategoryNode `json:"children,omitempty"`
}

// CategoryTreeResponse árbol completo rin > medida > marca.
type CategoryTreeResponse struct {
	Tree []CategoryNode `json:"tree"`
}
