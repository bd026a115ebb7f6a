package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Warehouse records ---

// DeliveryRecord holds one courier's counts for one calendar day.
// Rows are unique per (delivery_date, category) and maintained by upsert.
type DeliveryRecord struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	OrderCount  int       `json:"orderCount"`
	CartonCount int       `json:"cartonCount"`
	PalletCount int       `json:"palletCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CollectionRecord is one day's customer-collection counts. No category
// dimension; the dashboards treat it as a single implicit series.
type CollectionRecord struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	OrderCount  int       `json:"orderCount"`
	CartonCount int       `json:"cartonCount"`
	PalletCount int       `json:"palletCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GatewayTransferRecord holds one day's pallet movements between the main
// warehouse and the gateway. Total is stored denormalized; readers trust it
// when present and recompute it when zero.
type GatewayTransferRecord struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	PalletsToGateway int       `json:"palletsToGateway"`
	PalletsToMain    int       `json:"palletsToMain"`
	Total            int       `json:"total"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// InvoiceRecord is one issued invoice, used by the invoicing dashboard.
type InvoiceRecord struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// MovementErrorRecord is one logged warehouse movement error.
type MovementErrorRecord struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	ErrorType string    `json:"errorType"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- Record entry requests ---

type DeliveryUpsertRequest struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	OrderCount  int    `json:"orderCount"`
	CartonCount int    `json:"cartonCount"`
	PalletCount int    `json:"palletCount"`
}

type CollectionUpsertRequest struct {
	Date        string `json:"date"`
	OrderCount  int    `json:"orderCount"`
	CartonCount int    `json:"cartonCount"`
	PalletCount int    `json:"palletCount"`
}

type GatewayUpsertRequest struct {
	Date             string `json:"date"`
	PalletsToGateway int    `json:"palletsToGateway"`
	PalletsToMain    int    `json:"palletsToMain"`
	// Total is optional; zero means "recompute from the two legs".
	Total int `json:"total"`
}

type InvoiceCreateRequest struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// FilterUpdateRequest is one UI filter mutation applied to a dashboard
// section. Action selects which field carries the payload.
type FilterUpdateRequest struct {
	Action   string `json:"action"` // "range", "year", "preset", "category", "table-category", "clear"
	From     string `json:"from"`
	To       string `json:"to"`
	Year     int    `json:"year"`
	Preset   string `json:"preset"`
	Category string `json:"category"`
}
