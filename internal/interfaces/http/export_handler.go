package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/application/export"
	"github.com/jhoicas/comercio-dashboard/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler maneja la descarga del reporte diario.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// DailyReport descarga el libro XLSX del día como adjunto. Si no hay ventas
// ni citas responde 409 con aviso y sin documento.
// GET /api/reports/daily/export
func (h *ExportHandler) DailyReport(c *fiber.Ctx) error {
	fileName, data, err := h.uc.DailyReport(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNothingToExport) {
			return c.Status(fiber.StatusConflict).JSON(dto.NoticeResponse{Notice: "لا توجد بيانات للتصدير"})
		}
		return upstreamError(c, err)
	}

	// El nombre lleva la fecha localizada; se escapa para el header.
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename*=UTF-8''"+url.PathEscape(fileName))
	return c.Send(data)
}
