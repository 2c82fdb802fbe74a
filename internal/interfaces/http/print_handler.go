package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/application/printing"
	"github.com/jhoicas/comercio-dashboard/internal/domain"
)

// PrintHandler maneja la impresión de facturas del día.
type PrintHandler struct {
	uc *printing.UseCase
}

// NewPrintHandler construye el handler.
func NewPrintHandler(uc *printing.UseCase) *PrintHandler {
	return &PrintHandler{uc: uc}
}

// Invoice devuelve el PDF de la factura. Venta inexistente → 404; fallo del
// renderizador → 502 sin bytes parciales.
// GET /api/sales/:id/print
func (h *PrintHandler) Invoice(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}

	data, err := h.uc.PrintInvoice(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrPrintUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PRINT_UNAVAILABLE", Message: err.Error()})
		}
		return upstreamError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
