package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
)

// StaffHandler maneja la vista operativa del día.
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Today devuelve ventas y citas de hoy, avisos y totales. El query filtra las
// filas visibles sin alterar los totales.
// GET /api/staff/today?q=
func (h *StaffHandler) Today(c *fiber.Ctx) error {
	day, err := h.uc.Today(c.Context(), c.Query("q"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(day)
}
