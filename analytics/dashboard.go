package analytics

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"app/config"
	"app/models"
	"app/utils"
)

// Loader materializes every entry matching a date range for one record
// domain, typically by paging through the backend with FetchAll. The second
// return reports whether the dataset is complete; partial data is rendered,
// not rejected.
type Loader func(ctx context.Context, rng utils.DateRange) ([]Entry, bool)

// Dashboard owns one console section's filter state, memo cache and latest
// aggregation snapshot. All three live behind one mutex: the dashboard is the
// single writer, loads run on debouncer goroutines, and stale loads are
// discarded by generation check at apply time. The chart/KPI pair and the
// detail table refresh independently so a chart-only change never re-queries
// the table's data and vice versa.
type Dashboard struct {
	mu       sync.Mutex
	name     string
	filter   *FilterState
	loader   Loader
	cache    resultCache
	snapshot *models.AggregationResult

	chart *Debouncer
	table *Debouncer

	now func() time.Time
}

// NewDashboard wires a dashboard controller for one section. quiet is the
// debounce window; now may be nil for the wall clock.
func NewDashboard(name string, multiYear bool, loader Loader, quiet time.Duration, now func() time.Time) *Dashboard {
	if now == nil {
		now = time.Now
	}
	d := &Dashboard{
		name:   name,
		filter: NewFilterState(multiYear),
		loader: loader,
		now:    now,
	}
	d.chart = NewDebouncer(quiet, d.refreshChart)
	d.table = NewDebouncer(quiet, d.refreshTable)
	return d
}

// Apply executes one UI filter mutation and schedules the affected refresh
// targets. The returned copy of the filter state is what the mutation left
// behind.
func (d *Dashboard) Apply(req models.FilterUpdateRequest) (FilterState, error) {
	d.mu.Lock()
	refreshTable := true
	switch req.Action {
	case "range":
		d.filter.SetExplicitRange(req.From, req.To)
	case "year":
		d.filter.SelectYear(req.Year)
	case "preset":
		d.filter.SetPreset(Preset(req.Preset))
	case "category":
		d.filter.ToggleCategory(req.Category)
		refreshTable = false
	case "table-category":
		d.filter.ToggleTableCategory(req.Category)
		snap := d.filter.clone()
		d.mu.Unlock()
		d.table.Trigger()
		return snap, nil
	case "clear":
		d.filter.Clear()
	default:
		snap := d.filter.clone()
		d.mu.Unlock()
		return snap, fmt.Errorf("unknown filter action %q", req.Action)
	}
	snap := d.filter.clone()
	d.mu.Unlock()

	d.chart.Trigger()
	if refreshTable {
		d.table.Trigger()
	}
	return snap, nil
}

// Filter returns a copy of the current filter state.
func (d *Dashboard) Filter() FilterState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter.clone()
}

// Snapshot returns the latest aggregation result, computing one synchronously
// on first use so the initial page load never sees an empty dashboard.
func (d *Dashboard) Snapshot() *models.AggregationResult {
	d.mu.Lock()
	snap := d.snapshot
	d.mu.Unlock()
	if snap != nil {
		return snap
	}

	d.chart.Trigger()
	d.chart.Flush()
	d.table.Trigger()
	d.table.Flush()

	d.mu.Lock()
	defer d.mu.Unlock()
	// Both initial refreshes can come back superseded when a filter change
	// fires a newer generation mid-load; serve the empty shape, never nil.
	if d.snapshot == nil {
		return d.cloneSnapshotLocked()
	}
	return d.snapshot
}

// Invalidate drops the memoized dataset and schedules a full refresh; called
// after record upserts so the dashboards reflect the write.
func (d *Dashboard) Invalidate() {
	d.mu.Lock()
	d.cache.invalidate()
	d.mu.Unlock()
	d.chart.Trigger()
	d.table.Trigger()
}

// chartGranularityLocked picks the evolution chart's bucket size: monthly
// under a year filter, monthly with an advisory for very long explicit
// ranges, daily otherwise.
func (d *Dashboard) chartGranularityLocked(rng utils.DateRange) (Granularity, string) {
	if len(d.filter.Years) > 0 {
		return GranularityMonth, ""
	}
	if rng.From != "" && rng.To != "" {
		if utils.MonthSpan(rng.From, rng.To) > config.AnnualAdvisoryThresholdMonths {
			advisory := fmt.Sprintf("Range spans more than %d months; annual mode will read better.", config.AnnualAdvisoryThresholdMonths)
			return GranularityMonth, advisory
		}
	}
	return GranularityDay, ""
}

// tableGranularityLocked picks the detail table's bucket size: monthly under
// a year filter, weekly once an explicit range exceeds the daily threshold,
// daily otherwise.
func (d *Dashboard) tableGranularityLocked(rng utils.DateRange) Granularity {
	if len(d.filter.Years) > 0 {
		return GranularityMonth
	}
	if rng.From != "" && rng.To != "" {
		if utils.DaySpan(rng.From, rng.To) > config.WeeklyBucketThresholdDays {
			return GranularityWeek
		}
	}
	return GranularityDay
}

// filterByYears drops entries outside the selected year set. The fetch spans
// min..max of the selection, so a sparse multi-year pick (say 2023 and 2025)
// would otherwise carry the gap years' records into the aggregates.
func filterByYears(entries []Entry, years []int) []Entry {
	if len(years) == 0 {
		return entries
	}
	keep := make(map[string]bool, len(years))
	for _, y := range years {
		keep[fmt.Sprintf("%04d", y)] = true
	}
	sub := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if keep[utils.YearOf(e.Date)] {
			sub = append(sub, e)
		}
	}
	return sub
}

func filterByCategory(entries []Entry, category string) []Entry {
	if category == "" {
		return entries
	}
	sub := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			sub = append(sub, e)
		}
	}
	return sub
}

// cloneSnapshotLocked copies the current snapshot so one refresh target can
// be replaced without mutating what consumers already hold.
func (d *Dashboard) cloneSnapshotLocked() *models.AggregationResult {
	if d.snapshot == nil {
		return &models.AggregationResult{
			Totals:      map[string]models.Totals{},
			TopCategory: NoTopCategory,
			Granularity: string(GranularityDay),
			Table:       []models.TableRow{},
		}
	}
	next := *d.snapshot
	return &next
}

func (d *Dashboard) refreshChart(gen uint64) {
	ctx := context.Background()

	d.mu.Lock()
	now := d.now()
	rng := d.filter.EffectiveRange(now)
	granularity, advisory := d.chartGranularityLocked(rng)
	key := keyFor(d.filter, rng, granularity)
	entries, hit := d.cache.get(key)
	category := d.filter.Category
	years := append([]int(nil), d.filter.Years...)
	d.mu.Unlock()

	complete := true
	if !hit {
		entries, complete = d.loader(ctx, rng)
		entries = filterByYears(entries, years)
	}

	sub := filterByCategory(entries, category)
	totals := TotalsByCategory(sub)
	evolution := Evolution(sub, granularity)
	top := TopCategory(totals, Categories)
	sum := SumTotals(sub)

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.chart.Fresh(gen) {
		log.Printf("📊 [DASHBOARD] %s: discarding superseded chart result (generation %d)", d.name, gen)
		return
	}
	// Only complete datasets are memoized, so a hit never masks partial data.
	if !hit && complete {
		d.cache.put(key, entries)
	}
	next := d.cloneSnapshotLocked()
	next.Totals = totals
	next.Evolution = evolution
	next.TopCategory = top
	next.Granularity = string(granularity)
	next.Summary = models.KPISummary{
		TotalOrders:  sum.Orders,
		TotalCartons: sum.Cartons,
		TotalPallets: sum.Pallets,
		TopCategory:  top,
	}
	next.Advisory = advisory
	next.Partial = !complete
	next.ComputedAt = now
	d.snapshot = next
}

func (d *Dashboard) refreshTable(gen uint64) {
	ctx := context.Background()

	d.mu.Lock()
	now := d.now()
	rng := d.filter.EffectiveRange(now)
	granularity, _ := d.chartGranularityLocked(rng)
	key := keyFor(d.filter, rng, granularity)
	tableGranularity := d.tableGranularityLocked(rng)
	entries, hit := d.cache.get(key)
	category := d.filter.TableCategory
	years := append([]int(nil), d.filter.Years...)
	d.mu.Unlock()

	complete := true
	if !hit {
		entries, complete = d.loader(ctx, rng)
		entries = filterByYears(entries, years)
	}

	rows := DetailRows(filterByCategory(entries, category), tableGranularity)

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.table.Fresh(gen) {
		log.Printf("📊 [DASHBOARD] %s: discarding superseded table result (generation %d)", d.name, gen)
		return
	}
	if !hit && complete {
		d.cache.put(key, entries)
	}
	next := d.cloneSnapshotLocked()
	next.Table = rows
	if !complete {
		next.Partial = true
	}
	next.ComputedAt = now
	d.snapshot = next
}
