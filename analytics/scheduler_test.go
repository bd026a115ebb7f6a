package analytics

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var runs int64
	d := NewDebouncer(20*time.Millisecond, func(gen uint64) {
		atomic.AddInt64(&runs, 1)
	})

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(1), atomic.LoadInt64(&runs))
	assert.Equal(t, uint64(1), d.Latest())
}

func TestDebouncerGenerationsAdvance(t *testing.T) {
	gens := make(chan uint64, 3)
	d := NewDebouncer(time.Hour, func(gen uint64) {
		gens <- gen
	})

	for i := 0; i < 3; i++ {
		d.Trigger()
		d.Flush()
	}
	close(gens)

	var seen []uint64
	for g := range gens {
		seen = append(seen, g)
	}
	assert.Equal(t, []uint64{1, 2, 3}, seen)
	assert.True(t, d.Fresh(3))
	assert.False(t, d.Fresh(2))
}

func TestDebouncerFlushWithoutPendingIsNoop(t *testing.T) {
	var runs int64
	d := NewDebouncer(time.Hour, func(gen uint64) {
		atomic.AddInt64(&runs, 1)
	})

	d.Flush()
	assert.Equal(t, int64(0), atomic.LoadInt64(&runs))

	d.Trigger()
	d.Flush()
	d.Flush() // second flush finds nothing pending
	assert.Equal(t, int64(1), atomic.LoadInt64(&runs))
}
