package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
)

// DashboardHandler maneja el resumen general.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve conteos, ventas del día, avance de metas y ventanas de
// campañas. Se recalcula en cada petición sobre el snapshot vigente.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(summary)
}
