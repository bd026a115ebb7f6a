package analytics

import (
	"strconv"
	"strings"

	"app/utils"
)

// cacheKey is the value-comparable projection of the filter inputs that
// change the underlying date-range query. The drill-down category choice is
// deliberately absent: switching categories re-filters the cached base
// dataset instead of re-fetching.
type cacheKey struct {
	From          string
	To            string
	Years         string
	Granularity   Granularity
	AllCategories bool
}

// keyFor builds the memoization key for a filter and its resolved range.
func keyFor(f *FilterState, rng utils.DateRange, g Granularity) cacheKey {
	years := make([]string, 0, len(f.Years))
	for _, y := range f.Years {
		years = append(years, strconv.Itoa(y))
	}
	return cacheKey{
		From:          rng.From,
		To:            rng.To,
		Years:         strings.Join(years, ","),
		Granularity:   g,
		AllCategories: f.AllCategories(),
	}
}

// resultCache is a single-slot memo of the most recent base dataset per
// dashboard. At most one entry is retained; a changed key evicts it.
type resultCache struct {
	valid   bool
	key     cacheKey
	entries []Entry
}

func (c *resultCache) get(k cacheKey) ([]Entry, bool) {
	if c.valid && c.key == k {
		return c.entries, true
	}
	return nil, false
}

func (c *resultCache) put(k cacheKey, entries []Entry) {
	c.valid = true
	c.key = k
	c.entries = entries
}

func (c *resultCache) invalidate() {
	c.valid = false
	c.entries = nil
}
