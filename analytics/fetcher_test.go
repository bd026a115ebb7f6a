package analytics

import (
	"context"
	"errors"
	"testing"

	"app/config"

	"github.com/stretchr/testify/assert"
)

// fakePages serves a fixed total row count in backend-sized pages and counts
// the requests it sees.
func fakePages(totalRows int, calls *int) PageFunc[int] {
	return func(ctx context.Context, offset, limit int) ([]int, error) {
		*calls++
		if offset >= totalRows {
			return []int{}, nil
		}
		n := totalRows - offset
		if n > limit {
			n = limit
		}
		page := make([]int, n)
		for i := range page {
			page[i] = offset + i
		}
		return page, nil
	}
}

func TestFetchAllPagesPastRowCap(t *testing.T) {
	// 1000 + 1000 + 400: the short third page signals exhaustion.
	calls := 0
	rows, complete := FetchAll(context.Background(), "deliveries", fakePages(2400, &calls))
	assert.Equal(t, 3, calls)
	assert.Len(t, rows, 2400)
	assert.True(t, complete)
}

func TestFetchAllSinglePage(t *testing.T) {
	calls := 0
	rows, complete := FetchAll(context.Background(), "deliveries", fakePages(17, &calls))
	assert.Equal(t, 1, calls)
	assert.Len(t, rows, 17)
	assert.True(t, complete)
}

func TestFetchAllExactPageBoundary(t *testing.T) {
	// A full final page forces one more (empty) request.
	calls := 0
	rows, complete := FetchAll(context.Background(), "deliveries", fakePages(2000, &calls))
	assert.Equal(t, 3, calls)
	assert.Len(t, rows, 2000)
	assert.True(t, complete)
}

func TestFetchAllReturnsPartialOnPageError(t *testing.T) {
	calls := 0
	page := func(ctx context.Context, offset, limit int) ([]int, error) {
		calls++
		if offset > 0 {
			return nil, errors.New("connection reset")
		}
		return make([]int, limit), nil
	}
	rows, complete := FetchAll(context.Background(), "deliveries", page)
	assert.Equal(t, 2, calls)
	assert.Len(t, rows, config.FetchPageSize)
	assert.False(t, complete)
}

func TestFetchAllStopsAtPageCeiling(t *testing.T) {
	calls := 0
	page := func(ctx context.Context, offset, limit int) ([]int, error) {
		calls++
		return make([]int, limit), nil
	}
	rows, complete := FetchAll(context.Background(), "deliveries", page)
	assert.Equal(t, config.FetchMaxPages, calls)
	assert.Len(t, rows, config.FetchMaxPages*config.FetchPageSize)
	assert.False(t, complete)
}
