package dto

// InboundRequest body para POST /api/inventory/inbound.
type InboundRequest struct {
	Barcode  string `json:"barcode" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Remark   string `json:"remark" validate:"omitempty,max=255"`
}

// OutboundRequest body para POST /api/inventory/outbound.
// La placa del vehículo acompaña a toda salida; la foto es opcional.
type OutboundRequest struct {
	Barcode           string `json:"barcode" validate:"required"`
	Quantity          int    `json:"quantity" validate:"required,gt=0"`
	LicensePlate      string `json:"license_plate" validate:"omitempty,max=20"`
	LicensePlateImage string `json:"license_plate_image" validate:"omitempty,max=255"`
	Remark            string `json:"remark" validate:"omitempty,max=255"`
}

// BatchItemRequest un renglón dentro de un lote.
type BatchItemRequest struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
	Remark   string `json:"remark,omitempty"`
}

// BatchInboundRequest body para POST /api/inventory/batch-inbound.
type BatchInboundRequest struct {
	Items []BatchItemRequest `json:"items" validate:"required,min=1"`
}

// BatchOutboundRequest body para POST /api/inventory/batch-outbound.
// Una sola placa (y foto) para todos los renglones del lote.
type BatchOutboundRequest struct {
	Items             []BatchItemRequest `json:"items" validate:"required,min=1"`
	LicensePlate      string             `json:"license_plate" validate:"omitempty,max=20"`
	LicensePlateImage string             `json:"license_plate_image" validate:"omitempty,max=255"`
}

// MovementResponse salida de un movimiento individual confirmado.
type MovementResponse struct {
	RecordID string `json:"record_id"`
	Barcode  string `json:"barcode"`
	NewStock int    `json:"new_stock"`
}

// FailedItemDTO renglón rechazado dentro de un lote, con su motivo.
type FailedItemDTO struct {
	Barcode string `json:"barcode"`
	Reason  string `json:"reason"`
}

// BatchResponse salida de un lote: conteos y renglones rechazados.
type BatchResponse struct {
	SuccessCount int             `json:"success_count"`
	FailedCount  int             `json:"failed_count"`
	FailedItems  []FailedItemDTO `json:"failed_items"`
}
