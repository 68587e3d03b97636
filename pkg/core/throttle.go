package core

// Throttle converts a stream of host calls into simulation ticks: every
// Every()-th call to Tick reports true. It has no notion of wall-clock time,
// so cadence is a pure function of how often the host calls it.
type Throttle struct {
	every int
	count int
}

// NewThrottle returns a Throttle that fires once per every calls. Values
// below 1 fire on every call.
func NewThrottle(every int) *Throttle {
	if every < 1 {
		every = 1
	}
	return &Throttle{every: every}
}

// Tick records one call and reports whether a tick is due. When it is, the
// counter restarts from zero.
func (t *Throttle) Tick() bool {
	t.count++
	if t.count < t.every {
		return false
	}
	t.count = 0
	return true
}

// Count returns the number of calls accumulated since the last tick.
func (t *Throttle) Count() int { return t.count }

// Every returns the number of calls per tick.
func (t *Throttle) Every() int { return t.every }

// Reset drops any accumulated calls.
func (t *Throttle) Reset() { t.count = 0 }
