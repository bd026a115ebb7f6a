package analytics

import (
	"fmt"
	"sort"
	"time"

	"app/utils"
)

// Preset is a canned relative date range resolved against the current date.
type Preset string

const (
	PresetWeek  Preset = "week"
	PresetMonth Preset = "month"
)

// Mode identifies which filter source is authoritative for the date range.
type Mode string

const (
	ModePreset Mode = "preset"
	ModeRange  Mode = "range"
	ModeYears  Mode = "years"
)

// FilterState holds one dashboard section's filter controls. The three range
// sources are mutually exclusive: activating the explicit range empties the
// year set and vice versa, and the preset only applies when both are empty.
// FilterState is not safe for concurrent use on its own; the owning Dashboard
// serializes all access.
type FilterState struct {
	ExplicitFrom string `json:"explicitFrom"`
	ExplicitTo   string `json:"explicitTo"`
	Preset       Preset `json:"preset"`
	Years        []int  `json:"years"`
	// MultiYear selects toggle-accumulate year semantics (gateway filter)
	// instead of single-select replacement (top delivery/collection filter).
	MultiYear bool `json:"multiYear"`
	// Category is the chart category selection; empty means all categories.
	Category string `json:"category"`
	// TableCategory is the detail table's drill-down selection, independent
	// of the chart selection. Empty means all categories.
	TableCategory string `json:"tableCategory"`
}

// NewFilterState returns the default dashboard filter: current week, no
// years, all categories.
func NewFilterState(multiYear bool) *FilterState {
	return &FilterState{Preset: PresetWeek, Years: []int{}, MultiYear: multiYear}
}

// Mode reports the authoritative range source under the precedence
// explicit dates > selected years > preset.
func (f *FilterState) Mode() Mode {
	if f.ExplicitFrom != "" || f.ExplicitTo != "" {
		return ModeRange
	}
	if len(f.Years) > 0 {
		return ModeYears
	}
	return ModePreset
}

// SetExplicitRange activates the explicit date range with either side
// optional. Any non-empty bound clears the year selection.
func (f *FilterState) SetExplicitRange(from, to string) {
	f.ExplicitFrom = from
	f.ExplicitTo = to
	if from != "" || to != "" {
		f.Years = f.Years[:0]
	}
}

// SelectYear toggles a year. A selected year toggles off; a new year replaces
// the prior selection unless MultiYear, where it accumulates. Any selection
// clears the explicit date range.
func (f *FilterState) SelectYear(year int) {
	for i, y := range f.Years {
		if y == year {
			f.Years = append(f.Years[:i], f.Years[i+1:]...)
			return
		}
	}
	if f.MultiYear {
		f.Years = append(f.Years, year)
		sort.Ints(f.Years)
	} else {
		f.Years = []int{year}
	}
	f.ExplicitFrom = ""
	f.ExplicitTo = ""
}

// SetPreset selects a quick period, clearing both the explicit range and the
// year selection.
func (f *FilterState) SetPreset(p Preset) {
	if p != PresetWeek && p != PresetMonth {
		p = PresetWeek
	}
	f.Preset = p
	f.ExplicitFrom = ""
	f.ExplicitTo = ""
	f.Years = f.Years[:0]
}

// Clear resets the section to its default: week preset, everything else off.
func (f *FilterState) Clear() {
	f.Preset = PresetWeek
	f.ExplicitFrom = ""
	f.ExplicitTo = ""
	f.Years = f.Years[:0]
	f.Category = ""
	f.TableCategory = ""
}

// ToggleCategory applies single-select semantics to the chart category:
// choosing a category deselects any previous one, and re-choosing the
// current one returns to "all".
func (f *FilterState) ToggleCategory(category string) {
	if f.Category == category {
		f.Category = ""
		return
	}
	f.Category = category
}

// ToggleTableCategory applies the same single-select semantics to the detail
// table's drill-down, independent of the chart selection.
func (f *FilterState) ToggleTableCategory(category string) {
	if f.TableCategory == category {
		f.TableCategory = ""
		return
	}
	f.TableCategory = category
}

// AllCategories reports whether no drill-down category is selected.
func (f *FilterState) AllCategories() bool {
	return f.Category == ""
}

// Granularity is monthly whenever a year filter is active, daily otherwise.
func (f *FilterState) Granularity() Granularity {
	if len(f.Years) > 0 {
		return GranularityMonth
	}
	return GranularityDay
}

// EffectiveRange derives the inclusive date range for the active mode. Year
// mode spans the first of January of the earliest selected year through the
// end of the latest; entries from deselected years inside that span are
// dropped after fetching. Presets resolve against now.
func (f *FilterState) EffectiveRange(now time.Time) utils.DateRange {
	switch f.Mode() {
	case ModeRange:
		return utils.DateRange{From: f.ExplicitFrom, To: f.ExplicitTo}
	case ModeYears:
		min, max := f.Years[0], f.Years[0]
		for _, y := range f.Years[1:] {
			if y < min {
				min = y
			}
			if y > max {
				max = y
			}
		}
		return utils.DateRange{
			From: fmt.Sprintf("%04d-01-01", min),
			To:   fmt.Sprintf("%04d-12-31", max),
		}
	default:
		return utils.EffectiveRange("", "", string(f.Preset), now)
	}
}

// clone returns an independent copy safe to hand out of the owning lock.
func (f *FilterState) clone() FilterState {
	c := *f
	c.Years = append([]int(nil), f.Years...)
	return c
}
