package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/filtros-erp/internal/application/dashboard"
	"github.com/jhoicas/filtros-erp/internal/application/dto"
)

// DashboardHandler expone los agregados de la pantalla principal.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del tablero
// @Description  Conteos de órdenes y compras por estado, ítems bajo stock de
//
//	seguridad y total vendido en el mes en curso.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
