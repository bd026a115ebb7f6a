package handlers

import (
	"context"
	"log"

	"app/analytics"
	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleUpsertDelivery records one courier's counts for one day. The courier
// name is canonicalized before it hits storage so the dashboards never see
// synonym drift.
func HandleUpsertDelivery(c *fiber.Ctx) error {
	var req models.DeliveryUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}
	if req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Category is required"})
	}
	if req.OrderCount < 0 || req.CartonCount < 0 || req.PalletCount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Counts must be non-negative"})
	}

	category := analytics.CanonicalCategory(req.Category)
	record, err := database.UpsertDelivery(context.Background(), date, category, req.OrderCount, req.CartonCount, req.PalletCount)
	if err != nil {
		log.Printf("❌ [RECORDS] Failed to upsert delivery %s/%s: %v", req.Date, category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save delivery record"})
	}

	if d := dashboardFor("deliveries"); d != nil {
		d.Invalidate()
	}
	return c.JSON(fiber.Map{"success": true, "data": record})
}

// HandleUpsertCollection records one day's collection counts.
func HandleUpsertCollection(c *fiber.Ctx) error {
	var req models.CollectionUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}
	if req.OrderCount < 0 || req.CartonCount < 0 || req.PalletCount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Counts must be non-negative"})
	}

	record, err := database.UpsertCollection(context.Background(), date, req.OrderCount, req.CartonCount, req.PalletCount)
	if err != nil {
		log.Printf("❌ [RECORDS] Failed to upsert collection %s: %v", req.Date, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save collection record"})
	}

	if d := dashboardFor("collections"); d != nil {
		d.Invalidate()
	}
	return c.JSON(fiber.Map{"success": true, "data": record})
}

// HandleUpsertGatewayTransfer records one day's gateway pallet movements.
func HandleUpsertGatewayTransfer(c *fiber.Ctx) error {
	var req models.GatewayUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}
	if req.PalletsToGateway < 0 || req.PalletsToMain < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Pallet counts must be non-negative"})
	}

	record, err := database.UpsertGatewayTransfer(context.Background(), date, req.PalletsToGateway, req.PalletsToMain, req.Total)
	if err != nil {
		log.Printf("❌ [RECORDS] Failed to upsert gateway transfer %s: %v", req.Date, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save gateway transfer"})
	}

	if d := dashboardFor("gateway"); d != nil {
		d.Invalidate()
	}
	return c.JSON(fiber.Map{"success": true, "data": record})
}
