// Package clock provides the time sources that drive every engine.
package clock

import "time"

// MaxFrameDelta caps how much time a single frame may contribute to a
// countdown, so a backgrounded terminal does not drain a round at once.
const MaxFrameDelta = 200 * time.Millisecond

// Clock reports a monotonic offset from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// System is a monotonic clock anchored at construction.
type System struct {
	origin time.Time
}

// NewSystem returns a System clock starting at zero.
func NewSystem() *System {
	return &System{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (s *System) Now() time.Duration {
	return time.Since(s.origin)
}

// Manual only moves when told to.
type Manual struct {
	now time.Duration
}

// NewManual returns a Manual clock set to start.
func NewManual(start time.Duration) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Duration {
	m.now += d
	return m.now
}

// Set jumps the clock to t.
func (m *Manual) Set(t time.Duration) {
	m.now = t
}
