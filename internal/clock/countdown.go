package clock

import "time"

// Countdown is a frame-driven round clock. Each Step subtracts the time since
// the previous step, capped at MaxFrameDelta.
type Countdown struct {
	total     time.Duration
	remaining time.Duration
	last      time.Duration
	hasLast   bool
	expired   bool
}

// NewCountdown returns a countdown holding total.
func NewCountdown(total time.Duration) *Countdown {
	return &Countdown{total: total, remaining: total}
}

// Start marks now as the reference for the next step.
func (c *Countdown) Start(now time.Duration) {
	c.last = now
	c.hasLast = true
}

// Step consumes the time since the last step. expired is true only on the
// step that reaches zero.
func (c *Countdown) Step(now time.Duration) (remaining time.Duration, expired bool) {
	if c.expired {
		return 0, false
	}
	if !c.hasLast {
		c.last = now
		c.hasLast = true
		return c.remaining, false
	}
	delta := now - c.last
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > MaxFrameDelta {
		delta = MaxFrameDelta
	}
	c.remaining -= delta
	if c.remaining <= 0 {
		c.remaining = 0
		c.expired = true
		return 0, true
	}
	return c.remaining, false
}

// Pause forgets the last frame so the next step contributes nothing.
func (c *Countdown) Pause() {
	c.hasLast = false
}

// Remaining reports the time left.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Expired reports whether the countdown reached zero since the last reset.
func (c *Countdown) Expired() bool {
	return c.expired
}

// Total returns the full duration.
func (c *Countdown) Total() time.Duration {
	return c.total
}

// Reset restores the full duration and re-arms expiry.
func (c *Countdown) Reset() {
	c.remaining = c.total
	c.expired = false
	c.hasLast = false
}
