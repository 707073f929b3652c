package dto

import "time"

// RecordFilterRequest filtros para listar registros del libro de movimientos.
// Kind vacío devuelve entradas y salidas mezcladas por fecha.
type RecordFilterRequest struct {
	Kind       string `query:"kind" validate:"omitempty,oneof=inbound outbound"`
	Barcode    string `query:"barcode"`
	OperatorID string `query:"operator_id"`
	From       string `query:"from"` // YYYY-MM-DD
	To         string `query:"to"`
	PageRequest
}

// RecordResponse un asiento del libro: quién movió qué, cuánto y cuándo.
type RecordResponse struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	Barcode           string    `json:"barcode"`
	ProductName       string    `json:"product_name,omitempty"`
	ProductModel      string    `json:"product_model,omitempty"`
	Quantity          int       `json:"quantity"`
	OperatorID        string    `json:"operator_id"`
	OperatorName      string    `json:"operator_name"`
	Remark            string    `json:"remark,omitempty"`
	LicensePlate      string    `json:"license_plate,omitempty"`
	LicensePlateImage string    `json:"license_plate_image,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// RecordListResponse lista paginada de asientos.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
