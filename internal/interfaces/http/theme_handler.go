package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/application/theme"
)

// ThemeHandler maneja el estado de presentación global.
type ThemeHandler struct {
	store *theme.Store
}

// NewThemeHandler construye el handler.
func NewThemeHandler(store *theme.Store) *ThemeHandler {
	return &ThemeHandler{store: store}
}

// Get devuelve el tema vigente.
// GET /api/theme
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.FromTheme(h.store.Current()))
}

// Put superpone la petición sobre el tema vigente (los campos omitidos se
// conservan), normaliza el resultado, lo persiste en el servicio de registros
// y notifica a los suscriptores. Si persistir falla, el tema vigente no cambia.
// PUT /api/theme
func (h *ThemeHandler) Put(c *fiber.Ctx) error {
	var in dto.ThemeDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	applied, err := h.store.Apply(c.Context(), in.MergeInto(h.store.Current()))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(dto.FromTheme(applied))
}
