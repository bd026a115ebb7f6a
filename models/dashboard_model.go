package models

import "time"

// Totals are the three summed counters for one category (or implicit series).
type Totals struct {
	Orders  int `json:"orders"`
	Cartons int `json:"cartons"`
	Pallets int `json:"pallets"`
}

// EvolutionSeries is the chart-ready time series: one ordered label per
// bucket, and per-category value sequences aligned to those labels.
type EvolutionSeries struct {
	Labels  []string         `json:"labels"`
	Orders  map[string][]int `json:"orders"`
	Cartons map[string][]int `json:"cartons"`
	Pallets map[string][]int `json:"pallets"`
}

// KPISummary feeds the headline tiles above each dashboard chart.
type KPISummary struct {
	TotalOrders  int    `json:"totalOrders"`
	TotalCartons int    `json:"totalCartons"`
	TotalPallets int    `json:"totalPallets"`
	TopCategory  string `json:"topCategory"`
}

// TableRow is one detail-table line: a time bucket within a category.
type TableRow struct {
	Bucket   string `json:"bucket"`
	Category string `json:"category"`
	Orders   int    `json:"orders"`
	Cartons  int    `json:"cartons"`
	Pallets  int    `json:"pallets"`
}

// AggregationResult is the complete output of one dashboard recomputation.
// It is always produced fresh and swapped in whole; consumers never see a
// partially updated result.
type AggregationResult struct {
	Totals      map[string]Totals `json:"totals"`
	Evolution   EvolutionSeries   `json:"evolution"`
	TopCategory string            `json:"topCategory"`
	Granularity string            `json:"granularity"` // "day" or "month"
	Summary     KPISummary        `json:"summary"`
	Table       []TableRow        `json:"table"`
	Advisory    string            `json:"advisory,omitempty"`
	Partial     bool              `json:"partial"`
	ComputedAt  time.Time         `json:"computedAt"`
}

// InvoiceMonth is one month's invoicing figures.
type InvoiceMonth struct {
	Month        string `json:"month"` // "Jan 2025"
	InvoiceCount int    `json:"invoiceCount"`
	TotalAmount  string `json:"totalAmount"`
}

// InvoiceDashboard is the invoicing dashboard response.
type InvoiceDashboard struct {
	Range        string         `json:"range"`
	InvoiceCount int            `json:"invoiceCount"`
	TotalAmount  string         `json:"totalAmount"`
	Months       []InvoiceMonth `json:"months"`
}

// MovementErrorDay is one day's error count for the movement-errors chart.
type MovementErrorDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// --- Restock advisory (Gemini) ---

// AdvisoryPeriod defines the span of data behind a restock advisory.
type AdvisoryPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// RestockAdvisoryResponse is the AI-generated restock commentary returned to
// the console.
type RestockAdvisoryResponse struct {
	ReportName      string         `json:"reportName"`
	GeneratedAt     time.Time      `json:"generatedAt"`
	Period          AdvisoryPeriod `json:"period"`
	Summary         string         `json:"summary"`
	Recommendations []string       `json:"recommendations"`
	RiskFactors     []string       `json:"risk_factors"`
}
