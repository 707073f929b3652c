package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/application/usecase"
	"github.com/jcastro/llantera-api/internal/domain"
)

// RecordHandler consultas del libro de movimientos.
type RecordHandler struct {
	uc *usecase.RecordUseCase
}

// NewRecordHandler construye el handler.
func NewRecordHandler(uc *usecase.RecordUseCase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// List godoc
// @Summary      Listar asientos del libro
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        kind         query  string  false  "inbound | outbound (vacío = ambos)"
// @Param        barcode      query  string  false  "filtrar por código"
// @Param        operator_id  query  string  false  "filtrar por operador"
// @Param        from         query  string  false  "desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.RecordListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/records [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	var in dto.RecordFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar asientos a Excel
// @Tags         records
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        kind  query  string  false  "inbound | outbound (vacío = ambos)"
// @Param        from  query  string  false  "desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "hasta (YYYY-MM-DD)"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/records/export [get]
func (h *RecordHandler) Export(c *fiber.Ctx) error {
	var in dto.RecordFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	data, err := h.uc.Export(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
		}
		return internalError(c, err)
	}
	filename := "movimientos-" + time.Now().Format("20060102-150405") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
