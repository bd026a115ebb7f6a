package analytics

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single run after a quiet
// period. Each firing advances a monotonic generation counter and passes it
// to the run func; appliers compare that generation against Latest to discard
// results that a newer firing has superseded. Superseded work is never
// cancelled, only ignored.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
	run   func(gen uint64)
}

// NewDebouncer returns a debouncer with the given quiet period. run is called
// on its own goroutine (the timer's) once per coalesced burst.
func NewDebouncer(delay time.Duration, run func(gen uint64)) *Debouncer {
	return &Debouncer{delay: delay, run: run}
}

// Trigger (re)arms the quiet-period timer. Rapid repeated calls collapse into
// one firing after the last call.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Flush fires a pending trigger immediately. No-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil && d.timer.Stop()
	d.mu.Unlock()
	if pending {
		d.fire()
	}
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	d.gen++
	gen := d.gen
	run := d.run
	d.mu.Unlock()
	run(gen)
}

// Latest returns the newest generation handed to a run func.
func (d *Debouncer) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// Fresh reports whether a generation is still the newest one, i.e. whether
// its result may be applied to visible output.
func (d *Debouncer) Fresh(gen uint64) bool {
	return gen == d.Latest()
}
