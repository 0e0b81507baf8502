package core

import "time"

// DefaultTickRate is the logical simulation rate in ticks per second.
const DefaultTickRate = 60

// SimulationClock turns wall-clock frame timestamps into fixed logical ticks.
//
// A frame is eligible for exactly one tick once more than one interval has
// elapsed since the last processed frame. The remainder of the elapsed time
// modulo the interval carries forward, so slow frames never produce a burst
// of catch-up ticks and fast frames never produce extra ones.
type SimulationClock struct {
	interval time.Duration
	last     time.Time
	started  bool
	ticks    uint64
}

// NewSimulationClock creates a clock for the given tick rate.
// Non-positive rates fall back to DefaultTickRate.
func NewSimulationClock(tickRate int) *SimulationClock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &SimulationClock{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the logical tick length.
func (c *SimulationClock) Interval() time.Duration {
	return c.interval
}

// Ticks returns the number of ticks granted so far.
func (c *SimulationClock) Ticks() uint64 {
	return c.ticks
}

// Reset anchors the clock at now, discarding any accumulated time.
// Called when the loop starts and when it resumes from a pause.
func (c *SimulationClock) Reset(now time.Time) {
	c.last = now
	c.started = true
}

// Advance reports whether the frame at now should run one simulation tick.
// The first call on an unstarted clock only anchors it.
func (c *SimulationClock) Advance(now time.Time) bool {
	if !c.started {
		c.Reset(now)
		return false
	}

	elapsed := now.Sub(c.last)
	if elapsed <= c.interval {
		return false
	}

	c.last = now.Add(-(elapsed % c.interval))
	c.ticks++
	return true
}
