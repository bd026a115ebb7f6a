package handlers

import (
	"context"

	"app/analytics"
	"app/config"
	"app/database"
	"app/models"
	"app/utils"
)

// dashboards holds the per-section controllers. Each controller owns its own
// filter state, cache and snapshot; handlers only route to them.
var dashboards map[string]*analytics.Dashboard

// InitDashboards wires the dashboard controllers. Call once at startup after
// the database pool is up.
func InitDashboards() {
	dashboards = map[string]*analytics.Dashboard{
		"deliveries":  analytics.NewDashboard("deliveries", false, deliveryLoader, config.DebounceQuietPeriod, nil),
		"collections": analytics.NewDashboard("collections", false, collectionLoader, config.DebounceQuietPeriod, nil),
		"gateway":     analytics.NewDashboard("gateway", true, gatewayLoader, config.DebounceQuietPeriod, nil),
	}
}

func dashboardFor(section string) *analytics.Dashboard {
	return dashboards[section]
}

// deliveryLoader pulls every delivery row in the range and canonicalizes the
// courier name once, at ingestion.
func deliveryLoader(ctx context.Context, rng utils.DateRange) ([]analytics.Entry, bool) {
	records, complete := analytics.FetchAll(ctx, "deliveries", func(ctx context.Context, offset, limit int) ([]models.DeliveryRecord, error) {
		return database.SelectDeliveryPage(ctx, rng, offset, limit)
	})
	entries := make([]analytics.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, analytics.Entry{
			Date:     r.Date.Format(utils.ISODay),
			Category: analytics.CanonicalCategory(r.Category),
			Orders:   r.OrderCount,
			Cartons:  r.CartonCount,
			Pallets:  r.PalletCount,
		})
	}
	return entries, complete
}

// collectionLoader maps collection rows onto the single implicit
// "Collections" series.
func collectionLoader(ctx context.Context, rng utils.DateRange) ([]analytics.Entry, bool) {
	records, complete := analytics.FetchAll(ctx, "collections", func(ctx context.Context, offset, limit int) ([]models.CollectionRecord, error) {
		return database.SelectCollectionPage(ctx, rng, offset, limit)
	})
	entries := make([]analytics.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, analytics.Entry{
			Date:     r.Date.Format(utils.ISODay),
			Category: "Collections",
			Orders:   r.OrderCount,
			Cartons:  r.CartonCount,
			Pallets:  r.PalletCount,
		})
	}
	return entries, complete
}

// gatewayLoader splits each transfer row into its two directions so the
// shared bucketing produces one series per leg.
func gatewayLoader(ctx context.Context, rng utils.DateRange) ([]analytics.Entry, bool) {
	records, complete := analytics.FetchAll(ctx, "gateway_transfers", func(ctx context.Context, offset, limit int) ([]models.GatewayTransferRecord, error) {
		return database.SelectGatewayPage(ctx, rng, offset, limit)
	})
	entries := make([]analytics.Entry, 0, len(records)*2)
	for _, r := range records {
		day := r.Date.Format(utils.ISODay)
		entries = append(entries,
			analytics.Entry{Date: day, Category: "To Gateway", Pallets: r.PalletsToGateway},
			analytics.Entry{Date: day, Category: "To Main Warehouse", Pallets: r.PalletsToMain},
		)
	}
	return entries, complete
}
