// Package fps measures the frame rate of the viewer loop.
package fps

import "time"

// Counter computes the instantaneous frame rate from the time between
// consecutive ticks.
type Counter struct {
	now  func() time.Time
	prev time.Time
}

// NewCounter creates a Counter using the wall clock.
func NewCounter() *Counter {
	return NewCounterWithClock(time.Now)
}

// NewCounterWithClock creates a Counter reading time from now.
func NewCounterWithClock(now func() time.Time) *Counter {
	return &Counter{now: now}
}

// Tick records the start of an iteration and returns the frame rate since
// the previous tick. ok is false on the first tick and whenever no time has
// elapsed, in which case fps is 0.
func (c *Counter) Tick() (fps float64, ok bool) {
	return c.TickAt(c.now())
}

// TickAt is Tick with an explicit timestamp.
func (c *Counter) TickAt(t time.Time) (float64, bool) {
	prev := c.prev
	c.prev = t

	if prev.IsZero() {
		return 0, false
	}
	return Rate(t.Sub(prev))
}

// Reset forgets the previous tick.
func (c *Counter) Reset() {
	c.prev = time.Time{}
}

// Rate converts the elapsed time of one frame to frames per second.
// It reports false for non-positive durations.
func Rate(elapsed time.Duration) (float64, bool) {
	if elapsed <= 0 {
		return 0, false
	}
	return 1 / elapsed.Seconds(), true
}
