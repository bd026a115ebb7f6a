package handlers

import (
	"context"
	"log"
	"strconv"

	"app/database"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetMovementErrors lists warehouse movement errors, newest first, with
// optional date-range and error-type filters, plus per-day counts for the
// small chart above the table.
func HandleGetMovementErrors(c *fiber.Ctx) error {
	rng := utils.DateRange{From: c.Query("startDate"), To: c.Query("endDate")}
	errorType := c.Query("errorType")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "25"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 25
	}

	ctx := context.Background()
	records, total, err := database.SelectMovementErrors(ctx, rng, errorType, (page-1)*pageSize, pageSize)
	if err != nil {
		log.Printf("❌ [MOVEMENT ERRORS] Query error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch movement errors"})
	}

	days, err := database.SelectMovementErrorDays(ctx, rng)
	if err != nil {
		// The table is still useful without the chart.
		log.Printf("⚠️  [MOVEMENT ERRORS] Daily counts query failed: %v", err)
		days = nil
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"errors":     records,
		"byDay":      days,
		"pagination": utils.CreatePagination(total, page, pageSize),
	}})
}
