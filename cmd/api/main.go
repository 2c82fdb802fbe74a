package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/comercio-dashboard/internal/application/auth"
	"github.com/jhoicas/comercio-dashboard/internal/application/export"
	"github.com/jhoicas/comercio-dashboard/internal/application/printing"
	"github.com/jhoicas/comercio-dashboard/internal/application/theme"
	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/comercio-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/comercio-dashboard/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/comercio-dashboard/internal/interfaces/http"
	"github.com/jhoicas/comercio-dashboard/pkg/config"
	"github.com/jhoicas/comercio-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando aplicación")

	// Cliente y caché del servicio de registros
	client := remote.NewClient(cfg.Upstream)
	cache := remote.NewCache(client, remote.DefaultPolicy(cfg.Upstream))
	store := remote.NewStore(cache, client)

	formatter := money.NewFormatter(
		cfg.Format.SummaryFractionDigits,
		cfg.Format.ReportFractionDigits,
	)

	// Casos de uso
	dashboardUC := usecase.NewDashboardUseCase(store, formatter, cfg.KPI)
	inventoryUC := usecase.NewInventoryReportUseCase(store, formatter)
	productUC := usecase.NewProductUseCase(store, store, formatter)
	staffUC := usecase.NewStaffUseCase(store, formatter)
	exportUC := export.NewUseCase(store, excel.NewWorkbookWriter(), formatter)
	printUC := printing.NewUseCase(store, infrapdf.NewInvoiceRenderer(), formatter)
	loginUC := auth.NewLoginUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Tema: estado explícito sembrado desde el upstream si existe
	themeStore := theme.NewStore(store)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), cfg.Upstream.Timeout)
	themeStore.Seed(seedCtx, store)
	seedCancel()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio Dashboard API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		InventoryUC: inventoryUC,
		ProductUC:   productUC,
		StaffUC:     staffUC,
		ExportUC:    exportUC,
		PrintUC:     printUC,
		LoginUC:     loginUC,
		ThemeStore:  themeStore,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
