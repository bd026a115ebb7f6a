package config

import "time"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret            string
	OperatorEmail        string
	OperatorPasswordHash string
	GeminiAPIKey         string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Dashboard tuning constants. The bucket-switch thresholds are carried over
// from the console's original behaviour; treat them as UI heuristics rather
// than derived values.
const (
	// FetchPageSize is the page window requested from the backend per call.
	// The backend caps result sets at 1000 rows per query, which is why the
	// bulk fetcher exists at all.
	FetchPageSize = 1000

	// FetchMaxPages is a runaway guard for the pagination loop.
	FetchMaxPages = 200

	// WeeklyBucketThresholdDays switches the detail chart from daily to
	// weekly buckets when an explicit range spans more than this many days.
	WeeklyBucketThresholdDays = 30

	// AnnualAdvisoryThresholdMonths triggers the "use annual mode" advisory
	// on ranges longer than this many months. Rendering stays monthly.
	AnnualAdvisoryThresholdMonths = 8

	// DebounceQuietPeriod coalesces rapid filter changes into one reload.
	DebounceQuietPeriod = 50 * time.Millisecond
)
