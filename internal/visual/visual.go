// Package visual implements the double-stimulus visual-field exercise: two
// symbol groups flash on either side of a fixation point.
package visual

import (
	"strings"
	"time"

	"github.com/verte-zerg/mindflux/internal/clock"
	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/random"
	"github.com/verte-zerg/mindflux/internal/timer"
)

// RoundDuration is the length of a round.
const RoundDuration = 45 * time.Second

const (
	vowels     = "AEIOU"
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
	letters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Mode selects the symbols and how many are shown.
type Mode string

const (
	Numbers2 Mode = "numbers-2"
	Numbers4 Mode = "numbers-4"
	Chars2   Mode = "chars-2"
	Chars4   Mode = "chars-4"
	Binary6  Mode = "binary-6"
)

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{Numbers2, Numbers4, Chars2, Chars4, Binary6}
}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// PerSide is the number of symbols on each side.
func (m Mode) PerSide() int {
	switch m {
	case Numbers4, Chars4:
		return 2
	case Binary6:
		return 3
	default:
		return 1
	}
}

// Phase is the show/blank alternation.
type Phase int

const (
	PhaseBlank Phase = iota
	PhaseShow
)

// Pair is the stimulus: one symbol group per side.
type Pair struct {
	Left  string
	Right string
}

// Params configures the engine.
type Params struct {
	SpeedLevel    int
	IntervalLevel int
	Distance      int
	Mode          Mode
	// Extended reads SpeedLevel on the 0..18 scale.
	Extended bool
}

// Engine alternates show and blank phases for a fixed round.
type Engine struct {
	params    Params
	src       random.Source
	pair      Pair
	phase     Phase
	running   bool
	paused    bool
	suspended bool
	over      bool
	width     int
	phaseTmr  timer.Timer
	countdown *clock.Countdown

	// OnRoundOver runs once when the round countdown reaches zero.
	OnRoundOver func()
	// OnShow runs every time a new pair appears.
	OnShow func(Pair)
}

// New returns an idle engine.
func New(params Params, src random.Source) *Engine {
	e := &Engine{params: normalize(params), src: src, countdown: clock.NewCountdown(RoundDuration)}
	e.pair = e.newPair()
	return e
}

// SetParams applies params. A mode change draws a new pair; timing changes
// apply from the next phase.
func (e *Engine) SetParams(params Params) {
	params = normalize(params)
	modeChanged := params.Mode != e.params.Mode
	e.params = params
	if modeChanged {
		e.pair = e.newPair()
	}
}

// Params returns the active params.
func (e *Engine) Params() Params { return e.params }

// SetRunning starts or stops the round.
func (e *Engine) SetRunning(now time.Duration, running bool) {
	if e.running == running {
		return
	}
	e.running = running
	e.paused = false
	e.over = false
	e.phaseTmr.Cancel()
	e.countdown.Reset()
	if !running {
		e.phase = PhaseBlank
		e.pair = e.newPair()
		return
	}
	e.enter(now, PhaseShow)
	e.applyFreeze(now)
}

// SetSuspended freezes the round while the terminal is unfocused.
func (e *Engine) SetSuspended(now time.Duration, suspended bool) {
	if e.suspended == suspended {
		return
	}
	e.suspended = suspended
	e.applyFreeze(now)
}

// SetBoard records the board width used for the separation.
func (e *Engine) SetBoard(width, height int) {
	e.width = width
}

// Separation is the distance between the two groups in board columns.
func (e *Engine) Separation() int {
	return int(level.SeparationRatio(e.params.Distance) * float64(e.width))
}

// Pause freezes the phase timer and the round countdown.
func (e *Engine) Pause(now time.Duration) {
	if !e.running || e.paused {
		return
	}
	e.paused = true
	e.applyFreeze(now)
}

// Resume continues a paused round with the remaining phase time.
func (e *Engine) Resume(now time.Duration) {
	if !e.running || !e.paused || e.over || e.countdown.Remaining() <= 0 {
		return
	}
	e.paused = false
	e.applyFreeze(now)
}

// TogglePause flips between Pause and Resume.
func (e *Engine) TogglePause(now time.Duration) {
	if e.paused {
		e.Resume(now)
		return
	}
	e.Pause(now)
}

// Reset restarts the round countdown and draws a new pair.
func (e *Engine) Reset(now time.Duration) {
	e.over = false
	e.paused = false
	e.phaseTmr.Cancel()
	e.countdown.Reset()
	e.pair = e.newPair()
	if !e.running {
		e.phase = PhaseBlank
		return
	}
	e.enter(now, PhaseShow)
	e.applyFreeze(now)
}

// Frame advances the countdown and the phase timer.
func (e *Engine) Frame(now time.Duration) {
	if !e.running || e.over || e.paused || e.suspended {
		return
	}
	if _, expired := e.countdown.Step(now); expired {
		e.over = true
		e.paused = true
		e.phase = PhaseBlank
		e.phaseTmr.Cancel()
		if e.OnRoundOver != nil {
			e.OnRoundOver()
		}
		return
	}
	e.phaseTmr.Fire(now)
}

// Pair returns the current stimulus.
func (e *Engine) Pair() Pair { return e.pair }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// TimeLeft returns the round time left.
func (e *Engine) TimeLeft() time.Duration { return e.countdown.Remaining() }

// Paused reports whether the player paused the round.
func (e *Engine) Paused() bool { return e.paused }

// Running reports whether a round is active.
func (e *Engine) Running() bool { return e.running }

// Over reports whether the round countdown ran out.
func (e *Engine) Over() bool { return e.over }

// PhaseRemaining reports the time left in the current phase.
func (e *Engine) PhaseRemaining(now time.Duration) time.Duration {
	return e.phaseTmr.Remaining(now)
}

// ShowDuration is the show time for the current params.
func (e *Engine) ShowDuration() time.Duration {
	if e.params.Extended {
		return level.ShowDurationExtended(e.params.SpeedLevel)
	}
	return level.ShowDuration(e.params.SpeedLevel)
}

// BlankDuration is the blank time for the current params.
func (e *Engine) BlankDuration() time.Duration {
	return level.BlankDuration(e.params.IntervalLevel)
}

func (e *Engine) enter(now time.Duration, phase Phase) {
	e.phase = phase
	if phase == PhaseShow {
		e.pair = e.newPair()
		if e.OnShow != nil {
			e.OnShow(e.pair)
		}
		e.phaseTmr.Start(now, e.ShowDuration(), func(at time.Duration) { e.enter(at, PhaseBlank) })
		return
	}
	e.phaseTmr.Start(now, e.BlankDuration(), func(at time.Duration) { e.enter(at, PhaseShow) })
}

func (e *Engine) applyFreeze(now time.Duration) {
	frozen := e.paused || e.suspended
	e.phaseTmr.SetPaused(now, frozen)
	if frozen {
		e.countdown.Pause()
		return
	}
	e.countdown.Start(now)
}

func (e *Engine) newPair() Pair {
	return Pair{Left: e.side(), Right: e.side()}
}

func (e *Engine) side() string {
	var b strings.Builder
	for i := 0; i < e.params.Mode.PerSide(); i++ {
		b.WriteString(e.token(i))
	}
	return b.String()
}

func (e *Engine) token(position int) string {
	switch e.params.Mode {
	case Binary6:
		if e.src.Float64() < 0.5 {
			return "0"
		}
		return "1"
	case Numbers2, Numbers4:
		return string(rune('0' + e.src.Intn(10)))
	case Chars4:
		if position%2 == 0 {
			return e.letterFrom(consonants)
		}
		return e.letterFrom(vowels)
	default:
		return e.letterFrom(letters)
	}
}

func (e *Engine) letterFrom(pool string) string {
	ch := string(pool[e.src.Intn(len(pool))])
	if e.src.Float64() < 0.5 {
		return strings.ToLower(ch)
	}
	return ch
}

func normalize(p Params) Params {
	if p.Extended {
		p.SpeedLevel = level.Clamp(p.SpeedLevel, 0, level.ExtendedMax)
	} else {
		p.SpeedLevel = level.Clamp9(p.SpeedLevel)
	}
	p.IntervalLevel = level.Clamp9(p.IntervalLevel)
	p.Distance = level.Clamp9(p.Distance)
	if _, ok := ParseMode(string(p.Mode)); !ok {
		p.Mode = Numbers2
	}
	return p
}
