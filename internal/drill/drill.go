// Package drill implements the mental-arithmetic drills: chain sums, running
// counts of -1/0/+1 values, and Hi-Lo card counting.
package drill

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/mindflux/internal/timer"
)

// Phase is the stage of a drill.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseShow
	PhaseAnswer
	PhaseCooldown
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseShow:
		return "show"
	case PhaseAnswer:
		return "answer"
	case PhaseCooldown:
		return "cooldown"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ErrNotAnswering is returned when an answer arrives outside the answer phase.
var ErrNotAnswering = errors.New("not waiting for an answer")

// Verdict is the evaluation of an answer.
type Verdict struct {
	Guess   int
	Want    int
	Correct bool
	// GaveUp marks a round abandoned without a guess.
	GaveUp bool
}

// String renders the verdict for the player.
func (v Verdict) String() string {
	switch {
	case v.GaveUp:
		return fmt.Sprintf("The count was %d.", v.Want)
	case v.Correct:
		return fmt.Sprintf("Correct. The answer was %d.", v.Want)
	default:
		return fmt.Sprintf("Wrong. You said %d, the answer was %d.", v.Guess, v.Want)
	}
}

// ParseAnswer reads an integer answer, ignoring surrounding spaces.
func ParseAnswer(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("enter a whole number: %w", err)
	}
	return n, nil
}

// pausable carries the timers and the two pause sources every drill shares.
type pausable struct {
	timers    timer.Group
	help      bool
	suspended bool
}

// SetHelp opens or closes the help overlay, which pauses the drill.
func (p *pausable) SetHelp(now time.Duration, open bool) {
	p.help = open
	p.timers.SetPaused(now, p.help || p.suspended)
}

// HelpOpen reports whether the help overlay is shown.
func (p *pausable) HelpOpen() bool { return p.help }

// SetSuspended pauses the drill while the terminal is unfocused.
func (p *pausable) SetSuspended(now time.Duration, suspended bool) {
	p.suspended = suspended
	p.timers.SetPaused(now, p.help || p.suspended)
}

// SetBoard is a no-op; drills render in a fixed layout.
func (p *pausable) SetBoard(width, height int) {}

// Frame fires due timers.
func (p *pausable) Frame(now time.Duration) {
	p.timers.Fire(now)
}
