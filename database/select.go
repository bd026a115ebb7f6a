package database

import (
	"context"
	"database/sql"
	"fmt"

	"app/models"
	"app/utils"
)

// rangeClause appends inclusive date-range conditions for the given column.
// Either bound may be empty (unbounded on that side).
func rangeClause(column string, rng utils.DateRange, args []interface{}) (string, []interface{}) {
	clause := ""
	if rng.From != "" {
		args = append(args, rng.From)
		clause += fmt.Sprintf(" AND %s >= $%d", column, len(args))
	}
	if rng.To != "" {
		args = append(args, rng.To)
		clause += fmt.Sprintf(" AND %s <= $%d", column, len(args))
	}
	return clause, args
}

// SelectDeliveryPage returns one page of delivery rows within the range,
// ordered by date ascending. The backend caps each call at the given limit;
// callers that need the full range go through analytics.FetchAll.
func SelectDeliveryPage(ctx context.Context, rng utils.DateRange, offset, limit int) ([]models.DeliveryRecord, error) {
	query := `
        SELECT id, delivery_date, category, order_count, carton_count, pallet_count, created_at, updated_at
        FROM deliveries
        WHERE 1=1
    `
	args := []interface{}{}
	clause, args := rangeClause("delivery_date", rng, args)
	query += clause

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY delivery_date ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.DeliveryRecord, 0)
	for rows.Next() {
		var r models.DeliveryRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Category, &r.OrderCount, &r.CartonCount, &r.PalletCount, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SelectCollectionPage returns one page of collection rows within the range,
// ordered by date ascending.
func SelectCollectionPage(ctx context.Context, rng utils.DateRange, offset, limit int) ([]models.CollectionRecord, error) {
	query := `
        SELECT id, collection_date, order_count, carton_count, pallet_count, created_at, updated_at
        FROM collections
        WHERE 1=1
    `
	args := []interface{}{}
	clause, args := rangeClause("collection_date", rng, args)
	query += clause

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY collection_date ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.CollectionRecord, 0)
	for rows.Next() {
		var r models.CollectionRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.OrderCount, &r.CartonCount, &r.PalletCount, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SelectGatewayPage returns one page of gateway transfer rows within the
// range, ordered by date ascending.
func SelectGatewayPage(ctx context.Context, rng utils.DateRange, offset, limit int) ([]models.GatewayTransferRecord, error) {
	query := `
        SELECT id, transfer_date, pallets_to_gateway, pallets_to_main, total, created_at, updated_at
        FROM gateway_transfers
        WHERE 1=1
    `
	args := []interface{}{}
	clause, args := rangeClause("transfer_date", rng, args)
	query += clause

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY transfer_date ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.GatewayTransferRecord, 0)
	for rows.Next() {
		var r models.GatewayTransferRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.PalletsToGateway, &r.PalletsToMain, &r.Total, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		// Older rows were written without the denormalized total.
		if r.Total == 0 {
			r.Total = r.PalletsToGateway + r.PalletsToMain
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SelectInvoicePage returns one page of invoice rows within the range,
// ordered by date ascending.
func SelectInvoicePage(ctx context.Context, rng utils.DateRange, offset, limit int) ([]models.InvoiceRecord, error) {
	query := `
        SELECT id, invoice_number, invoice_date, amount, created_at
        FROM invoices
        WHERE 1=1
    `
	args := []interface{}{}
	clause, args := rangeClause("invoice_date", rng, args)
	query += clause

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY invoice_date ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.InvoiceRecord, 0)
	for rows.Next() {
		var r models.InvoiceRecord
		if err := rows.Scan(&r.ID, &r.InvoiceNumber, &r.Date, &r.Amount, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SelectMovementErrors returns one page of movement errors, newest first,
// optionally restricted to an error type, plus the total row count for
// pagination.
func SelectMovementErrors(ctx context.Context, rng utils.DateRange, errorType string, offset, limit int) ([]models.MovementErrorRecord, int, error) {
	base := ` FROM movement_errors WHERE 1=1`
	args := []interface{}{}
	clause, args := rangeClause("error_date", rng, args)
	base += clause
	if errorType != "" {
		args = append(args, errorType)
		base += fmt.Sprintf(" AND error_type = $%d", len(args))
	}

	var total int
	if err := GetDB().QueryRow(ctx, "SELECT COUNT(*)"+base, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := "SELECT id, error_date, error_type, note, created_at" + base +
		fmt.Sprintf(" ORDER BY error_date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]models.MovementErrorRecord, 0)
	for rows.Next() {
		var r models.MovementErrorRecord
		var note sql.NullString
		if err := rows.Scan(&r.ID, &r.Date, &r.ErrorType, &note, &r.CreatedAt); err != nil {
			return nil, 0, err
		}
		r.Note = utils.NullStringToStringPtr(note)
		records = append(records, r)
	}
	return records, total, rows.Err()
}

// SelectMovementErrorDays returns per-day error counts within the range,
// ascending by date, for the movement-errors chart.
func SelectMovementErrorDays(ctx context.Context, rng utils.DateRange) ([]models.MovementErrorDay, error) {
	query := `
        SELECT to_char(error_date, 'YYYY-MM-DD'), COUNT(*)
        FROM movement_errors
        WHERE 1=1
    `
	args := []interface{}{}
	clause, args := rangeClause("error_date", rng, args)
	query += clause
	query += " GROUP BY 1 ORDER BY 1 ASC"

	rows, err := GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]models.MovementErrorDay, 0)
	for rows.Next() {
		var d models.MovementErrorDay
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
