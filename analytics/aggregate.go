package analytics

import (
	"sort"

	"app/models"
	"app/utils"
)

// Entry is one canonicalized record fed to the aggregation engine. Loaders
// produce entries with the category already canonicalized (or set to the
// domain's implicit series name), so the engine never re-normalizes.
type Entry struct {
	Date     string // ISO day
	Category string
	Orders   int
	Cartons  int
	Pallets  int
}

// Granularity is the time resolution records are bucketed at.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// NoTopCategory is returned when no category has a positive order total.
const NoTopCategory = "—"

// bucketKey reduces an ISO day to its grouping key for the granularity.
// Keys sort lexicographically in chronological order.
func bucketKey(day string, g Granularity) string {
	switch g {
	case GranularityMonth:
		return utils.MonthKey(day)
	case GranularityWeek:
		return utils.WeekKey(day)
	default:
		return day
	}
}

// bucketLabel renders a grouping key for display.
func bucketLabel(key string, g Granularity) string {
	if g == GranularityMonth {
		return utils.MonthLabel(key)
	}
	return key
}

// SumTotals sums the three counters across all entries. Entries are expected
// to already be restricted to the effective range and category selection.
func SumTotals(entries []Entry) models.Totals {
	var t models.Totals
	for _, e := range entries {
		t.Orders += e.Orders
		t.Cartons += e.Cartons
		t.Pallets += e.Pallets
	}
	return t
}

// TotalsByCategory sums the three counters per category.
func TotalsByCategory(entries []Entry) map[string]models.Totals {
	totals := make(map[string]models.Totals)
	for _, e := range entries {
		t := totals[e.Category]
		t.Orders += e.Orders
		t.Cartons += e.Cartons
		t.Pallets += e.Pallets
		totals[e.Category] = t
	}
	return totals
}

// categoryOrder lists the categories present in the data: enumerated couriers
// first in their fixed order, then anything unrecognized sorted by name.
func categoryOrder(present map[string]bool) []string {
	order := make([]string, 0, len(present))
	seen := make(map[string]bool, len(present))
	for _, c := range Categories {
		if present[c] {
			order = append(order, c)
			seen[c] = true
		}
	}
	extras := make([]string, 0)
	for c := range present {
		if !seen[c] {
			extras = append(extras, c)
		}
	}
	sort.Strings(extras)
	return append(order, extras...)
}

// Evolution buckets entries at the given granularity and emits one aligned
// value sequence per category and metric. Bucket labels come out strictly
// ascending in chronological order regardless of input order.
func Evolution(entries []Entry, g Granularity) models.EvolutionSeries {
	type cell struct{ orders, cartons, pallets int }
	buckets := make(map[string]map[string]*cell)
	present := make(map[string]bool)

	for _, e := range entries {
		key := bucketKey(e.Date, g)
		if buckets[key] == nil {
			buckets[key] = make(map[string]*cell)
		}
		c := buckets[key][e.Category]
		if c == nil {
			c = &cell{}
			buckets[key][e.Category] = c
		}
		c.orders += e.Orders
		c.cartons += e.Cartons
		c.pallets += e.Pallets
		present[e.Category] = true
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := models.EvolutionSeries{
		Labels:  make([]string, 0, len(keys)),
		Orders:  make(map[string][]int),
		Cartons: make(map[string][]int),
		Pallets: make(map[string][]int),
	}
	for _, k := range keys {
		series.Labels = append(series.Labels, bucketLabel(k, g))
	}

	for _, cat := range categoryOrder(present) {
		orders := make([]int, len(keys))
		cartons := make([]int, len(keys))
		pallets := make([]int, len(keys))
		for i, k := range keys {
			if c := buckets[k][cat]; c != nil {
				orders[i] = c.orders
				cartons[i] = c.cartons
				pallets[i] = c.pallets
			}
		}
		series.Orders[cat] = orders
		series.Cartons[cat] = cartons
		series.Pallets[cat] = pallets
	}
	return series
}

// TopCategory finds the category with the most orders. The scan walks the
// given order with a strict > comparison, so the first category encountered
// wins ties. Categories outside the order list are considered afterwards,
// sorted by name. Returns NoTopCategory when nothing has a positive total.
func TopCategory(totals map[string]models.Totals, order []string) string {
	top := NoTopCategory
	best := 0

	scan := func(cat string) {
		if t, ok := totals[cat]; ok && t.Orders > best {
			best = t.Orders
			top = cat
		}
	}
	inOrder := make(map[string]bool, len(order))
	for _, c := range order {
		inOrder[c] = true
		scan(c)
	}
	extras := make([]string, 0)
	for c := range totals {
		if !inOrder[c] {
			extras = append(extras, c)
		}
	}
	sort.Strings(extras)
	for _, c := range extras {
		scan(c)
	}
	return top
}

// DetailRows flattens entries into detail-table rows, bucketed at the given
// granularity, ordered by bucket then category.
func DetailRows(entries []Entry, g Granularity) []models.TableRow {
	type rowKey struct{ bucket, category string }
	cells := make(map[rowKey]models.Totals)
	present := make(map[string]bool)
	bucketSet := make(map[string]bool)

	for _, e := range entries {
		k := rowKey{bucketKey(e.Date, g), e.Category}
		t := cells[k]
		t.Orders += e.Orders
		t.Cartons += e.Cartons
		t.Pallets += e.Pallets
		cells[k] = t
		present[e.Category] = true
		bucketSet[k.bucket] = true
	}

	buckets := make([]string, 0, len(bucketSet))
	for b := range bucketSet {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)

	rows := make([]models.TableRow, 0, len(cells))
	for _, b := range buckets {
		for _, cat := range categoryOrder(present) {
			if t, ok := cells[rowKey{b, cat}]; ok {
				rows = append(rows, models.TableRow{
					Bucket:   bucketLabel(b, g),
					Category: cat,
					Orders:   t.Orders,
					Cartons:  t.Cartons,
					Pallets:  t.Pallets,
				})
			}
		}
	}
	return rows
}
