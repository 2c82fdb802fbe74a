package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
)

// InventoryReportHandler maneja el reporte de valorización de inventario.
type InventoryReportHandler struct {
	uc *usecase.InventoryReportUseCase
}

// NewInventoryReportHandler construye el handler.
func NewInventoryReportHandler(uc *usecase.InventoryReportUseCase) *InventoryReportHandler {
	return &InventoryReportHandler{uc: uc}
}

// GetReport devuelve totales, secciones mostrador/mayorista y series de
// gráficos. Un inventario vacío produce un reporte en ceros, no error.
// GET /api/reports/inventory
func (h *InventoryReportHandler) GetReport(c *fiber.Ctx) error {
	rep, err := h.uc.Report(c.Context())
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(rep)
}
