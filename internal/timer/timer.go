// Package timer provides pausable one-shot deadlines fired from the frame loop.
package timer

import "time"

// maxFirePasses bounds how many callbacks a single Group.Fire may run when
// callbacks keep arming already-due timers.
const maxFirePasses = 256

// Func is invoked with the frame time that fired the timer.
type Func func(now time.Duration)

// Timer is a one-shot deadline that can be paused and resumed. It never fires
// on its own; the owner calls Fire from its frame handler.
type Timer struct {
	fn        Func
	deadline  time.Duration
	remaining time.Duration
	armed     bool
	paused    bool
}

// Start arms fn to run delay after now, replacing any pending callback. A
// non-positive delay fires on the next Fire call.
func (t *Timer) Start(now, delay time.Duration, fn Func) {
	if delay < 0 {
		delay = 0
	}
	t.fn = fn
	t.armed = fn != nil
	if t.paused {
		t.remaining = delay
		return
	}
	t.deadline = now + delay
}

// Cancel discards the pending callback. A cancelled timer never fires.
func (t *Timer) Cancel() {
	t.fn = nil
	t.armed = false
	t.remaining = 0
}

// SetPaused freezes or resumes the timer. Pausing records the time left;
// resuming re-arms for exactly that amount. Repeated calls with the same value
// are no-ops.
func (t *Timer) SetPaused(now time.Duration, paused bool) {
	if t.paused == paused {
		return
	}
	t.paused = paused
	if !t.armed {
		return
	}
	if paused {
		t.remaining = t.deadline - now
		if t.remaining < 0 {
			t.remaining = 0
		}
		return
	}
	t.deadline = now + t.remaining
	t.remaining = 0
}

// Due reports whether the timer would fire at now.
func (t *Timer) Due(now time.Duration) bool {
	return t.armed && !t.paused && now >= t.deadline
}

// Fire runs the callback if it is due. The timer is disarmed before the
// callback runs, so the callback may re-arm it.
func (t *Timer) Fire(now time.Duration) bool {
	if !t.Due(now) {
		return false
	}
	fn := t.fn
	t.fn = nil
	t.armed = false
	fn(now)
	return true
}

// Pending reports whether a callback is armed.
func (t *Timer) Pending() bool {
	return t.armed
}

// Paused reports whether the timer is frozen.
func (t *Timer) Paused() bool {
	return t.paused
}

// Remaining reports the time until the callback fires.
func (t *Timer) Remaining(now time.Duration) time.Duration {
	if !t.armed {
		return 0
	}
	if t.paused {
		return t.remaining
	}
	if left := t.deadline - now; left > 0 {
		return left
	}
	return 0
}

// Group is a set of independent timers sharing one pause flag.
type Group struct {
	timers []*Timer
	paused bool
}

// After arms a new timer in the group. If the group is paused the timer starts
// frozen with its full delay.
func (g *Group) After(now, delay time.Duration, fn Func) *Timer {
	t := &Timer{paused: g.paused}
	t.Start(now, delay, fn)
	g.timers = append(g.timers, t)
	return t
}

// Remove cancels t and drops it from the group.
func (g *Group) Remove(t *Timer) {
	if t == nil {
		return
	}
	t.Cancel()
	g.drop(t)
}

// Clear cancels every timer in the group.
func (g *Group) Clear() {
	for _, t := range g.timers {
		t.Cancel()
	}
	g.timers = g.timers[:0]
}

// SetPaused pauses or resumes every timer in the group.
func (g *Group) SetPaused(now time.Duration, paused bool) {
	g.paused = paused
	for _, t := range g.timers {
		t.SetPaused(now, paused)
	}
}

// Paused reports the group pause flag.
func (g *Group) Paused() bool {
	return g.paused
}

// Fire runs every due timer, earliest deadline first. Timers armed by a
// callback run in the same call only if they are already due.
func (g *Group) Fire(now time.Duration) int {
	fired := 0
	for pass := 0; pass < maxFirePasses; pass++ {
		next := g.nextDue(now)
		if next == nil {
			break
		}
		next.Fire(now)
		fired++
		if !next.Pending() {
			g.drop(next)
		}
	}
	g.compact()
	return fired
}

// Len reports the number of timers still armed.
func (g *Group) Len() int {
	n := 0
	for _, t := range g.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (g *Group) nextDue(now time.Duration) *Timer {
	var next *Timer
	for _, t := range g.timers {
		if !t.Due(now) {
			continue
		}
		if next == nil || t.deadline < next.deadline {
			next = t
		}
	}
	return next
}

func (g *Group) drop(t *Timer) {
	for i, item := range g.timers {
		if item == t {
			g.timers = append(g.timers[:i], g.timers[i+1:]...)
			return
		}
	}
}

func (g *Group) compact() {
	kept := g.timers[:0]
	for _, t := range g.timers {
		if t.Pending() {
			kept = append(kept, t)
		}
	}
	g.timers = kept
}
