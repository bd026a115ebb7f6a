package utils

import "time"

// ISODay is the canonical day format used for grouping keys and range bounds.
const ISODay = "2006-01-02"

// DateRange holds inclusive ISO day bounds. An empty side is unbounded.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ParseDate parses a date string, trying multiple formats.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		ISODay,
	}
	var lastErr error
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// EffectiveRange resolves the authoritative date range for a filter.
// Explicit bounds win verbatim, with the missing side left unbounded.
// Otherwise the preset is resolved against now: "month" covers the current
// calendar month, "week" the current Monday-to-Sunday week.
func EffectiveRange(from, to, preset string, now time.Time) DateRange {
	if from != "" || to != "" {
		return DateRange{From: from, To: to}
	}
	if preset == "month" {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return DateRange{From: first.Format(ISODay), To: last.Format(ISODay)}
	}
	// Week preset. Weeks start on Monday.
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	sunday := monday.AddDate(0, 0, 6)
	return DateRange{From: monday.Format(ISODay), To: sunday.Format(ISODay)}
}

// WeekKey anchors an ISO day to the Monday of its week, giving a stable
// grouping key. Unparseable input comes back unchanged.
func WeekKey(day string) string {
	t, err := ParseDate(day)
	if err != nil {
		return day
	}
	monday := t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
	return monday.Format(ISODay)
}

// MonthKey reduces an ISO day to its YYYY-MM grouping key.
func MonthKey(day string) string {
	t, err := ParseDate(day)
	if err != nil {
		return day
	}
	return t.Format("2006-01")
}

// YearOf reduces an ISO day to its YYYY key.
func YearOf(day string) string {
	t, err := ParseDate(day)
	if err != nil {
		return day
	}
	return t.Format("2006")
}

// MonthLabel renders a YYYY-MM key as a human label, e.g. "Jan 2025".
func MonthLabel(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("Jan 2006")
}

// DaySpan returns the inclusive number of days between two ISO days.
// Returns 0 when either side is missing or unparseable.
func DaySpan(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	if errA != nil || errB != nil {
		return 0
	}
	if tb.Before(ta) {
		ta, tb = tb, ta
	}
	return int(tb.Sub(ta).Hours()/24) + 1
}

// MonthSpan returns the inclusive number of calendar months touched by the
// range. Returns 0 when either side is missing or unparseable.
func MonthSpan(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	if errA != nil || errB != nil {
		return 0
	}
	if tb.Before(ta) {
		ta, tb = tb, ta
	}
	return (tb.Year()-ta.Year())*12 + int(tb.Month()) - int(ta.Month()) + 1
}
