package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/observability"
	infrapdf "github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/pdf"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/postgres"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/storage"
	httpRouter "github.com/cindychcheng/paintpro-manager-sub001/internal/interfaces/http"
	"github.com/cindychcheng/paintpro-manager-sub001/pkg/config"
	"github.com/cindychcheng/paintpro-manager-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	estimateRepo := postgres.NewEstimateRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	logoStore, err := storage.NewDiskLogoStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("uploads directory")
	}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	clientUC := usecase.NewClientUseCase(clientRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo)
	estimateUC := usecase.NewEstimateUseCase(estimateRepo, clientRepo, txRunner)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, logoStore)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)
	pdfUC := usecase.NewPDFUseCase(invoiceRepo, clientRepo, settingsRepo, pdfGenerator)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log, metrics))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PaintPro Manager API",
	}))

	// Uploaded logos are served straight from disk under UPLOADS_BASE_URL.
	app.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		InvoiceUC:   invoiceUC,
		EstimateUC:  estimateUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		PDFUC:       pdfUC,
		Metrics:     metrics,
		DB:          pool,
		AppName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
