package shooter

import "time"

// Clock is a monotonic millisecond source. It only drives the boss attack
// cycle; every other cadence counts ticks.
type Clock interface {
	NowMS() int64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose zero is the moment of creation.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMS returns milliseconds since the clock was created.
func (c *SystemClock) NowMS() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly. Used by tests and by hosts that
// want the attack cycle to follow simulated time.
type ManualClock struct {
	ms int64
}

// NowMS returns the current manual time.
func (c *ManualClock) NowMS() int64 {
	return c.ms
}

// Advance moves the clock forward by d milliseconds.
func (c *ManualClock) Advance(d int64) {
	if d > 0 {
		c.ms += d
	}
}

// Set jumps the clock to an absolute value. Going backwards is ignored.
func (c *ManualClock) Set(ms int64) {
	if ms > c.ms {
		c.ms = ms
	}
}
