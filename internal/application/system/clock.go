package system

import "github.com/google/uuid"

// Clock supplies monotonically increasing elapsed time and a per-frame
// delta clamped to a maximum step. It also runs one-shot deferred
// callbacks keyed to elapsed time. Callbacks are not cancelable; each
// carries the generation token of the level that scheduled it, and a
// mismatch at fire time makes it a no-op.
type Clock struct {
	elapsed  float64
	maxDelta float64
	pending  []deferred
}

type deferred struct {
	at  float64
	gen uuid.UUID
	fn  func()
}

// NewClock creates a clock with the given maximum delta step
func NewClock(maxDelta float64) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Tick advances elapsed time by dt, clamped to the maximum step.
// Returns the clamped dt actually applied.
func (c *Clock) Tick(dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	return dt
}

// Now returns the elapsed simulation time in seconds
func (c *Clock) Now() float64 {
	return c.elapsed
}

// Schedule registers fn to run once delay seconds from now, bound to
// the given level generation
func (c *Clock) Schedule(delay float64, gen uuid.UUID, fn func()) {
	c.pending = append(c.pending, deferred{
		at:  c.elapsed + delay,
		gen: gen,
		fn:  fn,
	})
}

// RunDue fires every due callback whose generation matches current.
// Due callbacks with a stale generation are dropped without running.
// Callbacks may schedule new entries; those are kept for later ticks.
func (c *Clock) RunDue(current uuid.UUID) {
	due := c.pending
	c.pending = nil
	for _, d := range due {
		if c.elapsed < d.at {
			c.pending = append(c.pending, d)
			continue
		}
		if d.gen == current {
			d.fn()
		}
	}
}

// PendingCount returns the number of callbacks not yet fired
func (c *Clock) PendingCount() int {
	return len(c.pending)
}
