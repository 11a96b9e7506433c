package world

import "time"

// CycleTimer steps an index through Phases values, once every Period of
// simulated time.
type CycleTimer struct {
	Period     time.Duration
	Phases     int
	Index      int
	LastChange time.Duration
}

func NewCycleTimer(period time.Duration, phases int) CycleTimer {
	return CycleTimer{Period: period, Phases: phases}
}

// Advance moves to the next phase when a full period has passed since the
// last change and reports whether it did. At most one step is taken per call.
func (c *CycleTimer) Advance(now time.Duration) bool {
	if c.Period <= 0 || now-c.LastChange < c.Period {
		return false
	}
	c.LastChange = now
	if c.Phases > 0 {
		c.Index = (c.Index + 1) % c.Phases
	}
	return true
}

// Reset puts the timer back to phase zero at time now.
func (c *CycleTimer) Reset(now time.Duration) {
	c.Index = 0
	c.LastChange = now
}
