package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/observability"
)

// Pinger reports database reachability for the health probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ClientUC    *usecase.ClientUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	EstimateUC  *usecase.EstimateUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *usecase.DashboardUseCase
	PDFUC       *usecase.PDFUseCase
	Metrics     *observability.Metrics
	DB          Pinger // nil skips the ping (tests)
	AppName     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health (also hit by external monitoring)
	api.Get("/health", func(c *fiber.Ctx) error {
		if deps.DB != nil {
			if err := deps.DB.Ping(c.Context()); err != nil {
				return fail(c, fiber.StatusServiceUnavailable, "database unreachable")
			}
		}
		return ok(c, fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Patch("/:id", clientHandler.Update)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC, deps.Metrics)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id", invoiceHandler.Update)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Estimates
	estimates := api.Group("/estimates")
	estimateHandler := NewEstimateHandler(deps.EstimateUC)
	estimates.Post("/", estimateHandler.Create)
	estimates.Get("/", estimateHandler.List)
	estimates.Get("/:id", estimateHandler.GetByID)
	estimates.Patch("/:id", estimateHandler.Update)
	estimates.Post("/:id/convert", estimateHandler.Convert)

	// Company settings (single row; POST and PUT both upsert)
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.Metrics)
	settings := api.Group("/company-settings")
	settings.Get("/", settingsHandler.Get)
	settings.Post("/", settingsHandler.Save)
	settings.Put("/", settingsHandler.Save)

	api.Post("/upload-logo", settingsHandler.UploadLogo)

	// Quality checklists (stub)
	qualityHandler := NewQualityHandler()
	api.Get("/quality", qualityHandler.List)
	api.Post("/quality", qualityHandler.Create)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)
}
