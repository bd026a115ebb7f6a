package analytics

import (
	"context"
	"log"

	"app/config"
)

// PageFunc returns one page of rows at the given offset, ordered by date
// ascending. It is the minimal contract the fetcher needs from the backend.
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// FetchAll materializes every row in a range by paging past the backend's
// per-call row cap. It keeps requesting full pages until a short page signals
// exhaustion. Failure modes are degraded, never fatal: a page error or the
// runaway-page ceiling stops the loop and returns whatever accumulated, with
// complete=false and a logged warning. The dashboard renders partial data
// rather than nothing.
func FetchAll[T any](ctx context.Context, table string, page PageFunc[T]) (rows []T, complete bool) {
	all := make([]T, 0)
	for pageNum := 0; ; pageNum++ {
		if pageNum >= config.FetchMaxPages {
			log.Printf("⚠️  [FETCH] %s: page ceiling (%d) reached, returning %d rows accumulated so far", table, config.FetchMaxPages, len(all))
			return all, false
		}
		batch, err := page(ctx, pageNum*config.FetchPageSize, config.FetchPageSize)
		if err != nil {
			log.Printf("⚠️  [FETCH] %s: page %d failed (%v), returning %d rows accumulated so far", table, pageNum, err, len(all))
			return all, false
		}
		all = append(all, batch...)
		if len(batch) < config.FetchPageSize {
			return all, true
		}
	}
}
