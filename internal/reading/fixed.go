package reading

import (
	"time"

	"github.com/verte-zerg/mindflux/internal/clock"
	"github.com/verte-zerg/mindflux/internal/timer"
)

// FixedRoundDuration is the length of a fixed-line reading round.
const FixedRoundDuration = 30 * time.Second

// Params configures a fixed-line reader.
type Params struct {
	Text      string
	CharWidth int
	WPM       int
}

// Fixed shows one line at a time at a fixed position, advancing at a pace
// derived from the words in the line and the reading speed.
type Fixed struct {
	params    Params
	lines     []string
	index     int
	running   bool
	paused    bool
	suspended bool
	countdown *clock.Countdown
	line      timer.Timer

	// OnTimeout runs once when the round countdown reaches zero.
	OnTimeout func()
}

// NewFixed returns an idle reader configured with params.
func NewFixed(params Params) *Fixed {
	f := &Fixed{countdown: clock.NewCountdown(FixedRoundDuration)}
	f.params = params
	f.lines = prepare(params.Text, params.CharWidth)
	return f
}

// Configure applies params. Any change re-wraps the text and restarts from the
// first line.
func (f *Fixed) Configure(now time.Duration, params Params) {
	if params == f.params {
		return
	}
	f.params = params
	f.lines = prepare(params.Text, params.CharWidth)
	f.index = 0
	f.line.Cancel()
	if f.running {
		f.armLine(now)
	}
}

// SetRunning starts or stops the round.
func (f *Fixed) SetRunning(now time.Duration, running bool) {
	if f.running == running {
		return
	}
	f.running = running
	f.paused = false
	f.index = 0
	f.line.Cancel()
	f.countdown.Reset()
	if !running {
		return
	}
	f.armLine(now)
	f.applyFreeze(now)
}

// SetSuspended freezes the round while the terminal is unfocused.
func (f *Fixed) SetSuspended(now time.Duration, suspended bool) {
	if f.suspended == suspended {
		return
	}
	f.suspended = suspended
	f.applyFreeze(now)
}

// SetBoard is a no-op; the line width comes from the params.
func (f *Fixed) SetBoard(width, height int) {}

// Pause freezes the line index, the in-line time and the countdown.
func (f *Fixed) Pause(now time.Duration) {
	if !f.running || f.paused {
		return
	}
	f.paused = true
	f.applyFreeze(now)
}

// Resume continues a paused round.
func (f *Fixed) Resume(now time.Duration) {
	if !f.running || !f.paused || f.countdown.Expired() {
		return
	}
	f.paused = false
	f.applyFreeze(now)
}

// TogglePause flips between Pause and Resume.
func (f *Fixed) TogglePause(now time.Duration) {
	if f.paused {
		f.Resume(now)
		return
	}
	f.Pause(now)
}

// Frame advances the countdown and the line timer.
func (f *Fixed) Frame(now time.Duration) {
	if !f.running || f.frozen() {
		return
	}
	if _, expired := f.countdown.Step(now); expired {
		f.line.Cancel()
		f.paused = true
		if f.OnTimeout != nil {
			f.OnTimeout()
		}
		return
	}
	f.line.Fire(now)
}

// CurrentLine returns the line on screen, or "" when there is no text.
func (f *Fixed) CurrentLine() string {
	if len(f.lines) == 0 {
		return ""
	}
	return f.lines[f.index]
}

// Index returns the current line index.
func (f *Fixed) Index() int { return f.index }

// Lines returns the wrapped lines.
func (f *Fixed) Lines() []string { return f.lines }

// TimeLeft returns the round time left.
func (f *Fixed) TimeLeft() time.Duration { return f.countdown.Remaining() }

// Paused reports whether the round is paused by the player.
func (f *Fixed) Paused() bool { return f.paused }

// Running reports whether a round is in progress.
func (f *Fixed) Running() bool { return f.running }

// Params returns the active params.
func (f *Fixed) Params() Params { return f.params }

// LineRemaining reports the time until the next line.
func (f *Fixed) LineRemaining(now time.Duration) time.Duration {
	return f.line.Remaining(now)
}

func (f *Fixed) frozen() bool {
	return f.paused || f.suspended
}

func (f *Fixed) applyFreeze(now time.Duration) {
	frozen := f.frozen()
	f.line.SetPaused(now, frozen)
	if frozen {
		f.countdown.Pause()
		return
	}
	f.countdown.Start(now)
}

func (f *Fixed) armLine(now time.Duration) {
	if len(f.lines) == 0 {
		return
	}
	delay := MsPerLine(WordCount(f.lines[f.index]), f.params.WPM)
	f.line.Start(now, delay, f.advance)
}

func (f *Fixed) advance(now time.Duration) {
	if !f.running || len(f.lines) == 0 {
		return
	}
	f.index = (f.index + 1) % len(f.lines)
	f.armLine(now)
}
