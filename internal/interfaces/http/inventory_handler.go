package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/application/ledger"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de entradas y salidas (protegido).
type InventoryHandler struct {
	uc *ledger.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Inbound godoc
// @Summary      Registrar una entrada
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundRequest  true  "barcode, quantity, remark"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/inbound [post]
func (h *InventoryHandler) Inbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.register(c, ledger.MovementInput{
		Barcode:  in.Barcode,
		Quantity: in.Quantity,
		Kind:     entity.MovementInbound,
		Remark:   in.Remark,
	})
}

// Outbound godoc
// @Summary      Registrar una salida
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundRequest  true  "barcode, quantity, license_plate, remark"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/outbound [post]
func (h *InventoryHandler) Outbound(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.register(c, ledger.MovementInput{
		Barcode:           in.Barcode,
		Quantity:          in.Quantity,
		Kind:              entity.MovementOutbound,
		Remark:            in.Remark,
		LicensePlate:      in.LicensePlate,
		LicensePlateImage: in.LicensePlateImage,
	})
}

func (h *InventoryHandler) register(c *fiber.Ctx, input ledger.MovementInput) error {
	input.Operator = ledger.Operator{ID: GetUserID(c), Name: GetUsername(c)}
	result, err := h.uc.RecordMovement(c.Context(), input)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		RecordID: result.RecordID,
		Barcode:  input.Barcode,
		NewStock: result.NewStock,
	})
}

// BatchInbound godoc
// @Summary      Registrar un lote de entradas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchInboundRequest  true  "items"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/batch-inbound [post]
func (h *InventoryHandler) BatchInbound(c *fiber.Ctx) error {
	var in dto.BatchInboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.registerBatch(c, ledger.BatchInput{
		Kind:  entity.MovementInbound,
		Items: toBatchItems(in.Items),
	})
}

// BatchOutbound godoc
// @Summary      Registrar un lote de salidas
// @Description  Todos los renglones comparten la misma placa del vehículo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchOutboundRequest  true  "items, license_plate"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/batch-outbound [post]
func (h *InventoryHandler) BatchOutbound(c *fiber.Ctx) error {
	var in dto.BatchOutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.registerBatch(c, ledger.BatchInput{
		Kind:              entity.MovementOutbound,
		Items:             toBatchItems(in.Items),
		LicensePlate:      in.LicensePlate,
		LicensePlateImage: in.LicensePlateImage,
	})
}

func (h *InventoryHandler) registerBatch(c *fiber.Ctx, input ledger.BatchInput) error {
	input.Operator = ledger.Operator{ID: GetUserID(c), Name: GetUsername(c)}
	out, err := h.uc.RecordBatch(c.Context(), input)
	if err != nil {
		return movementError(c, err)
	}
	failed := make([]dto.FailedItemDTO, 0, len(out.FailedItems))
	for _, f := range out.FailedItems {
		failed = append(failed, dto.FailedItemDTO{Barcode: f.Barcode, Reason: f.Reason})
	}
	return c.JSON(dto.BatchResponse{
		SuccessCount: out.SuccessCount,
		FailedCount:  out.FailedCount,
		FailedItems:  failed,
	})
}

// movementError traduce los errores del motor de movimientos a HTTP.
// El conflicto de stock devuelve el mensaje con el stock actual.
func movementError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el código de barras no existe"})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	return internalError(c, err)
}

func toBatchItems(items []dto.BatchItemRequest) []ledger.BatchItem {
	out := make([]ledger.BatchItem, 0, len(items))
	for _, it := range items {
		out = append(out, ledger.BatchItem{Barcode: it.Barcode, Quantity: it.Quantity, Remark: it.Remark})
	}
	return out
}
