package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/application/usecase"
	"github.com/jcastro/llantera-api/internal/domain"
)

// BarcodeHandler administración y consulta de códigos de barras.
type BarcodeHandler struct {
	uc *usecase.BarcodeUseCase
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(uc *usecase.BarcodeUseCase) *BarcodeHandler {
	return &BarcodeHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un código de barras
// @Tags         barcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBarcodeRequest  true  "code, product_id, stock inicial"
// @Success      201   {object}  dto.BarcodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/barcodes [post]
func (h *BarcodeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBarcodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos o producto inexistente"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Scan godoc
// @Summary      Consultar un código de barras con su producto
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código escaneado"
// @Success      200   {object}  dto.BarcodeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/barcodes/scan/{code} [get]
func (h *BarcodeHandler) Scan(c *fiber.Ctx) error {
	out, err := h.uc.Scan(c.Params("code"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código vacío"})
		}
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el código de barras no existe"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar códigos de barras
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "filtrar por producto"
// @Param        keyword     query  string  false  "buscar por código, nombre o modelo"
// @Success      200   {object}  dto.BarcodeListResponse
// @Router       /api/barcodes [get]
func (h *BarcodeHandler) List(c *fiber.Ctx) error {
	var in dto.BarcodeFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar metadatos de un código (no el stock)
// @Tags         barcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true   "ID del código"
// @Param        body  body  dto.UpdateBarcodeRequest  true  "location, supplier_code, remark"
// @Success      200   {object}  dto.BarcodeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/barcodes/{id} [put]
func (h *BarcodeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBarcodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el código de barras no existe"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un código de barras
// @Description  Se rechaza mientras el código conserve stock.
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del código"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/barcodes/{id} [delete]
func (h *BarcodeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el código de barras no existe"})
		}
		if err == domain.ErrHasStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_STOCK", Message: "el código aún tiene stock registrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"message": "código eliminado"})
}
