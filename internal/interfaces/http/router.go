package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-dashboard/internal/application/auth"
	"github.com/jhoicas/comercio-dashboard/internal/application/export"
	"github.com/jhoicas/comercio-dashboard/internal/application/printing"
	"github.com/jhoicas/comercio-dashboard/internal/application/theme"
	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *usecase.DashboardUseCase
	InventoryUC *usecase.InventoryReportUseCase
	ProductUC   *usecase.ProductUseCase
	StaffUC     *usecase.StaffUseCase
	ExportUC    *export.UseCase
	PrintUC     *printing.UseCase
	LoginUC     *auth.LoginUseCase
	ThemeStore  *theme.Store
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.LoginUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Reportes
	inventoryHandler := NewInventoryReportHandler(deps.InventoryUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/reports/inventory", inventoryHandler.GetReport)
	protected.Get("/reports/daily/export", exportHandler.DailyReport)

	// Catálogo: lectura para todo el personal, mutaciones solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Post("/", RequireAdmin(), productHandler.Create)
	products.Put("/:id", RequireAdmin(), productHandler.Update)
	products.Delete("/:id", RequireAdmin(), productHandler.Delete)

	// Vista del día del personal
	staffHandler := NewStaffHandler(deps.StaffUC)
	protected.Get("/staff/today", staffHandler.Today)

	// Impresión de facturas
	printHandler := NewPrintHandler(deps.PrintUC)
	protected.Get("/sales/:id/print", printHandler.Invoice)

	// Tema
	themeHandler := NewThemeHandler(deps.ThemeStore)
	protected.Get("/theme", themeHandler.Get)
	protected.Put("/theme", themeHandler.Put)
}
