package engine

import "time"

// SimClock is simulation time, advanced only by ticks
// Pausing the match stops ticks and therefore freezes every timer keyed on this clock
type SimClock struct {
	now time.Duration
}

// NewSimClock creates a clock at zero
func NewSimClock() *SimClock {
	return &SimClock{}
}

// Now returns elapsed simulation time
func (c *SimClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward, negative deltas are ignored
func (c *SimClock) Advance(dt time.Duration) time.Duration {
	if dt > 0 {
		c.now += dt
	}
	return c.now
}

// Seconds returns elapsed simulation time in seconds
func (c *SimClock) Seconds() float64 {
	return c.now.Seconds()
}
