package dto

import "time"

// CreateBarcodeRequest entrada para dar de alta un código de barras.
type CreateBarcodeRequest struct {
	Code         string `json:"code" validate:"required,min=1,max=100"`
	ProductID    string `json:"product_id" validate:"required,uuid"`
	Stock        int    `json:"stock" validate:"min=0"`
	Location     string `json:"location" validate:"omitempty,max=100"`
	SupplierCode string `json:"supplier_code" validate:"omitempty,max=100"`
	Remark       string `json:"remark" validate:"omitempty,max=255"`
}

// UpdateBarcodeRequest entrada para actualizar metadatos de un código.
// El stock NO se edita por aquí: solo el motor de movimientos lo toca.
type UpdateBarcodeRequest struct {
	Location     *string `json:"location" validate:"omitempty,max=100"`
	SupplierCode *string `json:"supplier_code" validate:"omitempty,max=100"`
	Remark       *string `json:"remark" validate:"omitempty,max=255"`
}

// BarcodeFilterRequest filtros de listado de códigos.
type BarcodeFilterRequest struct {
	ProductID string `query:"product_id"`
	Keyword   string `query:"keyword"`
	PageRequest
}

// BarcodeResponse salida de un código de barras con su producto asociado.
type BarcodeResponse struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	ProductID    string     `json:"product_id"`
	ProductName  string     `json:"product_name,omitempty"`
	ProductModel string     `json:"product_model,omitempty"`
	ProductImage string     `json:"product_image,omitempty"`
	Stock        int        `json:"stock"`
	Location     string     `json:"location,omitempty"`
	SupplierCode string     `json:"supplier_code,omitempty"`
	Remark       string     `json:"remark,omitempty"`
	LastInbound  *time.Time `json:"last_inbound_time,omitempty"`
	LastOutbound *time.Time `json:"last_outbound_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BarcodeListResponse lista paginada de códigos.
type BarcodeListResponse struct {
	Items []BarcodeResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
