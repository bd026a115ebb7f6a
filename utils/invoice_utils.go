package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
)

// InvoiceQuerier is the single-row query surface invoice numbering needs.
// Both *pgxpool.Pool and pgx.Tx satisfy it.
type InvoiceQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// GenerateInvoiceNumber issues the next console invoice number in the form
// INV-YYYYMM-NNNN. The sequence restarts each month and continues from the
// highest number already stored.
func GenerateInvoiceNumber(ctx context.Context, db InvoiceQuerier) (string, error) {
	prefix := fmt.Sprintf("INV-%s-", time.Now().Format("200601"))

	query := `
        SELECT invoice_number
        FROM invoices
        WHERE invoice_number LIKE $1
        ORDER BY invoice_number DESC
        LIMIT 1
    `
	var last string
	err := db.QueryRow(ctx, query, prefix+"%").Scan(&last)
	if err == pgx.ErrNoRows {
		return fmt.Sprintf("%s%04d", prefix, 1), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query last invoice number: %w", err)
	}

	var seq int
	if _, err := fmt.Sscanf(last, prefix+"%d", &seq); err != nil {
		// An unparseable stored number restarts the month's sequence.
		return fmt.Sprintf("%s%04d", prefix, 1), nil
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}
