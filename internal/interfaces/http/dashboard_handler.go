package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/llantera-api/internal/application/usecase"
)

// DashboardHandler métricas del panel.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      KPIs generales del almacén
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Trend godoc
// @Summary      Entradas y salidas de los últimos 7 días
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.TrendDTO
// @Router       /api/dashboard/trend [get]
func (h *DashboardHandler) Trend(c *fiber.Ctx) error {
	out, err := h.uc.Trend(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Top 10 de productos por salidas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200   {array}   dto.TopProductDTO
// @Router       /api/dashboard/top-products [get]
func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
