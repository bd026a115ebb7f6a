package database

import (
	"context"
	"time"

	"app/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertDelivery records one courier's counts for one day. The conflict key
// is (delivery_date, category); re-submitting a day overwrites the counts.
func UpsertDelivery(ctx context.Context, date time.Time, category string, orders, cartons, pallets int) (models.DeliveryRecord, error) {
	query := `
        INSERT INTO deliveries (id, delivery_date, category, order_count, carton_count, pallet_count)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (delivery_date, category) DO UPDATE SET
            order_count = EXCLUDED.order_count,
            carton_count = EXCLUDED.carton_count,
            pallet_count = EXCLUDED.pallet_count,
            updated_at = NOW()
        RETURNING id, delivery_date, category, order_count, carton_count, pallet_count, created_at, updated_at
    `
	var r models.DeliveryRecord
	err := GetDB().QueryRow(ctx, query, uuid.NewString(), date, category, orders, cartons, pallets).Scan(
		&r.ID, &r.Date, &r.Category, &r.OrderCount, &r.CartonCount, &r.PalletCount, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// UpsertCollection records one day's collection counts, keyed on the date.
func UpsertCollection(ctx context.Context, date time.Time, orders, cartons, pallets int) (models.CollectionRecord, error) {
	query := `
        INSERT INTO collections (id, collection_date, order_count, carton_count, pallet_count)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (collection_date) DO UPDATE SET
            order_count = EXCLUDED.order_count,
            carton_count = EXCLUDED.carton_count,
            pallet_count = EXCLUDED.pallet_count,
            updated_at = NOW()
        RETURNING id, collection_date, order_count, carton_count, pallet_count, created_at, updated_at
    `
	var r models.CollectionRecord
	err := GetDB().QueryRow(ctx, query, uuid.NewString(), date, orders, cartons, pallets).Scan(
		&r.ID, &r.Date, &r.OrderCount, &r.CartonCount, &r.PalletCount, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// UpsertGatewayTransfer records one day's gateway pallet movements, keyed on
// the date. The stored total is always the sum of the two legs.
func UpsertGatewayTransfer(ctx context.Context, date time.Time, toGateway, toMain, total int) (models.GatewayTransferRecord, error) {
	if total == 0 {
		total = toGateway + toMain
	}
	query := `
        INSERT INTO gateway_transfers (id, transfer_date, pallets_to_gateway, pallets_to_main, total)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (transfer_date) DO UPDATE SET
            pallets_to_gateway = EXCLUDED.pallets_to_gateway,
            pallets_to_main = EXCLUDED.pallets_to_main,
            total = EXCLUDED.total,
            updated_at = NOW()
        RETURNING id, transfer_date, pallets_to_gateway, pallets_to_main, total, created_at, updated_at
    `
	var r models.GatewayTransferRecord
	err := GetDB().QueryRow(ctx, query, uuid.NewString(), date, toGateway, toMain, total).Scan(
		&r.ID, &r.Date, &r.PalletsToGateway, &r.PalletsToMain, &r.Total, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// InsertInvoice records one issued invoice with a generated invoice number.
func InsertInvoice(ctx context.Context, invoiceNumber string, date time.Time, amount decimal.Decimal) (models.InvoiceRecord, error) {
	query := `
        INSERT INTO invoices (id, invoice_number, invoice_date, amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id, invoice_number, invoice_date, amount, created_at
    `
	var r models.InvoiceRecord
	err := GetDB().QueryRow(ctx, query, uuid.NewString(), invoiceNumber, date, amount).Scan(
		&r.ID, &r.InvoiceNumber, &r.Date, &r.Amount, &r.CreatedAt,
	)
	return r, err
}
