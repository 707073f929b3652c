package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Model       string          `json:"model" validate:"omitempty,max=100"`
	Category1ID string          `json:"category1_id" validate:"omitempty,uuid"`
	Category2ID string          `json:"category2_id" validate:"omitempty,uuid"`
	Category3ID string          `json:"category3_id" validate:"omitempty,uuid"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Model       *string          `json:"model" validate:"omitempty,max=100"`
	Category1ID *string          `json:"category1_id"`
	Category2ID *string          `json:"category2_id"`
	Category3ID *string          `json:"category3_id"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Description *string          `json:"description"`
}

// ProductFilterRequest filtros de listado: categorías y búsqueda por texto.
type ProductFilterRequest struct {
	Category1ID string `query:"category1_id"`
	Category2ID string `query:"category2_id"`
	Category3ID string `query:"category3_id"`
	Keyword     string `query:"keyword"`
	PageRequest
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Model       string          `json:"model"`
	Category1ID string          `json:"category1_id,omitempty"`
	Category2ID string          `json:"category2_id,omitempty"`
	Category3ID string          `json:"category3_id,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductDetailResponse producto con sus códigos de barras asociados.
type ProductDetailResponse struct {
	ProductResponse
	Barcodes []BarcodeResponse `json:"barcodes"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
