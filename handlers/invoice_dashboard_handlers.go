package handlers

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"app/analytics"
	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// HandleGetInvoiceDashboard aggregates issued invoices over a date range:
// overall count and amount, plus per-month figures for the chart. Defaults to
// the trailing twelve months.
func HandleGetInvoiceDashboard(c *fiber.Ctx) error {
	now := time.Now()
	startDateStr := c.Query("startDate", now.AddDate(-1, 0, 0).Format(utils.ISODay))
	endDateStr := c.Query("endDate", now.Format(utils.ISODay))

	if _, err := utils.ParseDate(startDateStr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid startDate format"})
	}
	if _, err := utils.ParseDate(endDateStr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid endDate format"})
	}

	rng := utils.DateRange{From: startDateStr, To: endDateStr}
	records, complete := analytics.FetchAll(context.Background(), "invoices", func(ctx context.Context, offset, limit int) ([]models.InvoiceRecord, error) {
		return database.SelectInvoicePage(ctx, rng, offset, limit)
	})
	if !complete {
		log.Printf("⚠️  [INVOICES] Serving partial invoice data for %s..%s", startDateStr, endDateStr)
	}

	total := decimal.Zero
	type monthCell struct {
		count  int
		amount decimal.Decimal
	}
	months := make(map[string]*monthCell)
	for _, r := range records {
		total = total.Add(r.Amount)
		key := utils.MonthKey(r.Date.Format(utils.ISODay))
		cell := months[key]
		if cell == nil {
			cell = &monthCell{amount: decimal.Zero}
			months[key] = cell
		}
		cell.count++
		cell.amount = cell.amount.Add(r.Amount)
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := models.InvoiceDashboard{
		Range:        fmt.Sprintf("%s..%s", startDateStr, endDateStr),
		InvoiceCount: len(records),
		TotalAmount:  total.StringFixed(2),
		Months:       make([]models.InvoiceMonth, 0, len(keys)),
	}
	for _, k := range keys {
		out.Months = append(out.Months, models.InvoiceMonth{
			Month:        utils.MonthLabel(k),
			InvoiceCount: months[k].count,
			TotalAmount:  months[k].amount.StringFixed(2),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": out})
}

// HandleCreateInvoice records one issued invoice with a generated
// sequential invoice number.
func HandleCreateInvoice(c *fiber.Ctx) error {
	var req models.InvoiceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid amount"})
	}

	ctx := context.Background()
	invoiceNumber, err := utils.GenerateInvoiceNumber(ctx, database.GetDB())
	if err != nil {
		log.Printf("❌ [INVOICES] Failed to generate invoice number: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate invoice number"})
	}

	record, err := database.InsertInvoice(ctx, invoiceNumber, date, amount)
	if err != nil {
		log.Printf("❌ [INVOICES] Failed to insert invoice %s: %v", invoiceNumber, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save invoice"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": record})
}
