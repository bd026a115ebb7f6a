package routes

import (
	"context"

	"app/database"
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.GetDB().Ping(context.Background()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "Database ping failed"})
		}
		return c.JSON(fiber.Map{"success": true})
	})

	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Dashboard Routes ---
	dashboard := api.Group("/dashboard", middleware.JWTMiddleware)
	dashboard.Get("/invoices", handlers.HandleGetInvoiceDashboard) // Must be before /:section
	dashboard.Get("/movement-errors", handlers.HandleGetMovementErrors)
	dashboard.Get("/:section", handlers.HandleGetDashboard)
	dashboard.Put("/:section/filter", handlers.HandleUpdateDashboardFilter)
	dashboard.Post("/:section/filter/clear", handlers.HandleClearDashboardFilter)

	// --- Record Entry Routes ---
	records := api.Group("/records", middleware.JWTMiddleware)
	records.Put("/deliveries", handlers.HandleUpsertDelivery)
	records.Put("/collections", handlers.HandleUpsertCollection)
	records.Put("/gateway", handlers.HandleUpsertGatewayTransfer)
	records.Post("/invoices", handlers.HandleCreateInvoice)

	// --- Insight Routes ---
	insights := api.Group("/insights", middleware.JWTMiddleware)
	insights.Post("/restock", handlers.HandleGetRestockAdvisory)
}
