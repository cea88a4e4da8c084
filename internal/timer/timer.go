// Package timer implements the CHIP-8 delay and sound timers.
package timer

import "time"

// Rate is the number of timer units decremented per second.
const Rate = 60

// Period is the wall-clock duration of one timer unit.
const Period = time.Second / Rate

// Timers holds the delay and sound countdown counters.
type Timers struct {
	Delay byte
	Sound byte

	last time.Time
}

// New returns stopped timers synchronized to now.
func New(now time.Time) *Timers {
	return &Timers{last: now}
}

// Reset zeroes both timers and synchronizes them to now.
func (t *Timers) Reset(now time.Time) {
	t.Delay = 0
	t.Sound = 0
	t.last = now
}

// Tick decrements both timers by floor(elapsed seconds * 60) units,
// stopping at zero. It returns the number of units consumed.
func (t *Timers) Tick(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	units := int(elapsed / Period)
	t.Delay = decrement(t.Delay, units)
	t.Sound = decrement(t.Sound, units)
	return units
}

// Sync ticks the timers by the wall-clock time elapsed since the last sync.
// Only whole units are consumed, the remainder carries over to the next call.
func (t *Timers) Sync(now time.Time) {
	units := t.Tick(now.Sub(t.last))
	if units > 0 {
		t.last = t.last.Add(time.Duration(units) * Period)
	}
	if now.Before(t.last) {
		// clock went backwards
		t.last = now
	}
}

func decrement(value byte, units int) byte {
	if units >= int(value) {
		return 0
	}
	return value - byte(units)
}
