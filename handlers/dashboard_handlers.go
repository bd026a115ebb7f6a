package handlers

import (
	"log"

	"app/models"

	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboard returns the current aggregation snapshot and filter
// state for one dashboard section (deliveries, collections, gateway).
func HandleGetDashboard(c *fiber.Ctx) error {
	section := c.Params("section")
	d := dashboardFor(section)
	if d == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Unknown dashboard section"})
	}

	snapshot := d.Snapshot()
	if snapshot.Partial {
		log.Printf("⚠️  [DASHBOARD] %s: serving partial data", section)
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"filter": d.Filter(),
		"result": snapshot,
	}})
}

// HandleUpdateDashboardFilter applies one filter mutation to a section.
// Recomputation is debounced; the response carries the filter state the
// mutation left behind, not a fresh aggregation.
func HandleUpdateDashboardFilter(c *fiber.Ctx) error {
	section := c.Params("section")
	d := dashboardFor(section)
	if d == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Unknown dashboard section"})
	}

	var req models.FilterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	filter, err := d.Apply(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	log.Printf("📊 [DASHBOARD] %s: filter %s applied", section, req.Action)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"filter": filter}})
}

// HandleClearDashboardFilter resets a section to its default week view.
func HandleClearDashboardFilter(c *fiber.Ctx) error {
	section := c.Params("section")
	d := dashboardFor(section)
	if d == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Unknown dashboard section"})
	}

	filter, err := d.Apply(models.FilterUpdateRequest{Action: "clear"})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"filter": filter}})
}
