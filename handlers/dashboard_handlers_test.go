package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/analytics"
	"app/config"
	"app/middleware"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func dashboardApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api/v1/dashboard", middleware.JWTMiddleware)
	api.Get("/:section", HandleGetDashboard)
	api.Put("/:section/filter", HandleUpdateDashboardFilter)
	api.Post("/:section/filter/clear", HandleClearDashboardFilter)
	return app
}

// installTestDashboards swaps the controller registry for one backed by a
// static in-memory loader, restoring the previous registry on cleanup.
func installTestDashboards(t *testing.T, entries []analytics.Entry) {
	t.Helper()
	prev := dashboards
	loader := func(ctx context.Context, rng utils.DateRange) ([]analytics.Entry, bool) {
		return entries, true
	}
	dashboards = map[string]*analytics.Dashboard{
		"deliveries": analytics.NewDashboard("deliveries", false, loader, time.Millisecond, nil),
	}
	t.Cleanup(func() { dashboards = prev })
}

func TestDashboardRequiresAuth(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = config.Config{JWTSecret: "test-secret"}
	defer func() { config.AppConfig = prev }()

	app := dashboardApp()
	req := httptest.NewRequest("GET", "/api/v1/dashboard/deliveries", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardUnknownSection(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = config.Config{JWTSecret: "test-secret"}
	defer func() { config.AppConfig = prev }()

	token, err := createJWT("ops@example.com", "operator")
	assert.NoError(t, err)

	app := dashboardApp()
	req := httptest.NewRequest("GET", "/api/v1/dashboard/restocks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardSnapshotAndFilterFlow(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = config.Config{JWTSecret: "test-secret"}
	defer func() { config.AppConfig = prev }()

	installTestDashboards(t, []analytics.Entry{
		{Date: "2025-01-06", Category: "Jet", Orders: 10},
		{Date: "2025-01-13", Category: "Jet", Orders: 5},
	})

	token, err := createJWT("ops@example.com", "operator")
	assert.NoError(t, err)
	app := dashboardApp()

	// Initial snapshot.
	req := httptest.NewRequest("GET", "/api/v1/dashboard/deliveries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Activate a year filter.
	req = httptest.NewRequest("PUT", "/api/v1/dashboard/deliveries/filter", strings.NewReader(`{"action":"year","year":2025}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data struct {
			Filter analytics.FilterState `json:"filter"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, []int{2025}, parsed.Data.Filter.Years)

	// Unknown actions are rejected.
	req = httptest.NewRequest("PUT", "/api/v1/dashboard/deliveries/filter", strings.NewReader(`{"action":"explode"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Clearing resets to the week preset.
	req = httptest.NewRequest("POST", "/api/v1/dashboard/deliveries/filter/clear", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ = io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &parsed))
	assert.Empty(t, parsed.Data.Filter.Years)
	assert.Equal(t, analytics.PresetWeek, parsed.Data.Filter.Preset)
}
