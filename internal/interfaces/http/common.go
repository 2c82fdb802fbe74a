package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/domain"
)

// upstreamError mapea los fallos de lectura/mutación contra el servicio de
// registros: el texto del upstream se releva tal cual con 502, el resto es 500.
func upstreamError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
