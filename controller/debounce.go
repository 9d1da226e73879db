package controller

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// debouncer keeps one timer per player id. Scheduling while a timer is
// pending cancels it first, so a keystroke stream produces at most one
// callback per quiet period, carrying whatever the draft holds at expiry.
type debouncer struct {
	clock clock.Clock
	delay time.Duration

	mu     sync.Mutex
	timers map[string]*clock.Timer
	closed bool
}

func newDebouncer(clk clock.Clock, delay time.Duration) *debouncer {
	return &debouncer{
		clock:  clk,
		delay:  delay,
		timers: make(map[string]*clock.Timer),
	}
}

func (d *debouncer) Schedule(playerID string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if t, ok := d.timers[playerID]; ok {
		t.Stop()
	}

	var t *clock.Timer
	t = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A reschedule may have replaced this timer between expiry and
		// acquiring the lock; only the current handle gets to fire.
		if d.timers[playerID] != t {
			d.mu.Unlock()
			return
		}
		delete(d.timers, playerID)
		d.mu.Unlock()
		fn()
	})
	d.timers[playerID] = t
}

// Cancel drops the pending timer for one player, if any.
func (d *debouncer) Cancel(playerID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[playerID]; ok {
		t.Stop()
		delete(d.timers, playerID)
	}
}

// CancelAll stops every outstanding timer and refuses new ones. Called
// on engine teardown so no timer creates a save after the consumer is
// gone; a save already dispatched still completes.
func (d *debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}

func (d *debouncer) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}
