package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveRangeExplicitWins(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	for _, preset := range []string{"week", "month"} {
		rng := EffectiveRange("2024-01-01", "2024-06-30", preset, now)
		assert.Equal(t, "2024-01-01", rng.From)
		assert.Equal(t, "2024-06-30", rng.To)
	}

	// One-sided explicit bounds leave the other side unbounded.
	rng := EffectiveRange("2024-01-01", "", "week", now)
	assert.Equal(t, "2024-01-01", rng.From)
	assert.Equal(t, "", rng.To)

	rng = EffectiveRange("", "2024-06-30", "month", now)
	assert.Equal(t, "", rng.From)
	assert.Equal(t, "2024-06-30", rng.To)
}

func TestEffectiveRangeWeekPreset(t *testing.T) {
	// Thursday 2025-01-09 sits in the Monday 2025-01-06 week.
	now := time.Date(2025, 1, 9, 14, 30, 0, 0, time.UTC)
	rng := EffectiveRange("", "", "week", now)
	assert.Equal(t, "2025-01-06", rng.From)
	assert.Equal(t, "2025-01-12", rng.To)

	// Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	rng = EffectiveRange("", "", "week", sunday)
	assert.Equal(t, "2025-01-06", rng.From)

	// Monday is its own week start.
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	rng = EffectiveRange("", "", "week", monday)
	assert.Equal(t, "2025-01-06", rng.From)
}

func TestEffectiveRangeMonthPreset(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	rng := EffectiveRange("", "", "month", now)
	assert.Equal(t, "2024-02-01", rng.From)
	assert.Equal(t, "2024-02-29", rng.To) // leap year
}

func TestWeekKeyReturnsMondayAndIsIdempotent(t *testing.T) {
	days := []string{
		"2025-01-06", // Monday
		"2025-01-07",
		"2025-01-09",
		"2025-01-12", // Sunday
		"2024-12-31",
	}
	for _, day := range days {
		key := WeekKey(day)
		parsed, err := time.Parse(ISODay, key)
		assert.NoError(t, err)
		assert.Equal(t, time.Monday, parsed.Weekday(), "WeekKey(%s) = %s is not a Monday", day, key)
		assert.Equal(t, key, WeekKey(key), "WeekKey is not idempotent for %s", day)
	}

	assert.Equal(t, "2025-01-06", WeekKey("2025-01-12"))
	assert.Equal(t, "2025-01-06", WeekKey("2025-01-06"))
}

func TestMonthAndYearKeys(t *testing.T) {
	assert.Equal(t, "2025-01", MonthKey("2025-01-31"))
	assert.Equal(t, "2025", YearOf("2025-06-15"))
	assert.Equal(t, "Jan 2025", MonthLabel("2025-01"))
	assert.Equal(t, "Dec 2024", MonthLabel("2024-12"))
}

func TestMalformedDatesPassThrough(t *testing.T) {
	assert.Equal(t, "not-a-date", WeekKey("not-a-date"))
	assert.Equal(t, "not-a-date", MonthKey("not-a-date"))
	assert.Equal(t, "not-a-date", YearOf("not-a-date"))
	assert.Equal(t, "not-a-month", MonthLabel("not-a-month"))
	assert.Equal(t, 0, DaySpan("not-a-date", "2025-01-01"))
	assert.Equal(t, 0, MonthSpan("2025-01-01", ""))
}

func TestSpans(t *testing.T) {
	assert.Equal(t, 45, DaySpan("2025-01-01", "2025-02-14"))
	assert.Equal(t, 1, DaySpan("2025-01-01", "2025-01-01"))
	assert.Equal(t, 45, DaySpan("2025-02-14", "2025-01-01")) // order-insensitive

	assert.Equal(t, 9, MonthSpan("2025-01-15", "2025-09-02"))
	assert.Equal(t, 1, MonthSpan("2025-03-01", "2025-03-31"))
	assert.Equal(t, 13, MonthSpan("2024-06-10", "2025-06-10"))
}

func TestParseDateFormats(t *testing.T) {
	for _, s := range []string{
		"2025-01-06",
		"2025-01-06T09:30:00",
		"2025-01-06T09:30:00.123456",
		"2025-01-06T09:30:00Z",
	} {
		parsed, err := ParseDate(s)
		assert.NoError(t, err, "ParseDate(%s)", s)
		assert.Equal(t, "2025-01-06", parsed.Format(ISODay))
	}

	_, err := ParseDate("06/01/2025")
	assert.Error(t, err)
}
