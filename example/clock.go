package example

import "time"

// Clock measures frame time. It is owned by the host, never by an example,
// so examples stay free of cross-frame state.
type Clock struct {
	now  func() time.Time
	step time.Duration

	started bool
	start   time.Time
	last    time.Time
	elapsed time.Duration
	delta   time.Duration
}

// NewClock returns a Clock driven by the wall clock.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewFixedClock returns a Clock that advances by step on every Tick after
// the first, for reproducible offline rendering.
func NewFixedClock(step time.Duration) *Clock {
	return &Clock{step: step}
}

// Tick marks the start of a frame. The first Tick starts the clock at zero.
func (c *Clock) Tick() {
	if c.now == nil {
		if c.started {
			c.delta = c.step
			c.elapsed += c.step
		}
		c.started = true
		return
	}

	t := c.now()
	if !c.started {
		c.start, c.last, c.started = t, t, true
		return
	}
	c.delta = t.Sub(c.last)
	c.elapsed = t.Sub(c.start)
	c.last = t
}

// Elapsed returns the time between the first and the latest Tick.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Delta returns the time between the two latest Ticks.
func (c *Clock) Delta() time.Duration {
	return c.delta
}
