package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/mindflux/internal/cue"
	"github.com/verte-zerg/mindflux/internal/model"
	"github.com/verte-zerg/mindflux/internal/random"
	"github.com/verte-zerg/mindflux/internal/shell"
	"github.com/verte-zerg/mindflux/internal/stats"
)

// gameView adapts one engine to the terminal.
type gameView interface {
	shell.Engine
	// Configure applies the shared controls.
	Configure(now time.Duration, c shell.Controls)
	// Panel lists the game's own selectors.
	Panel() shell.Panel
	// Key handles a key press and reports whether it was used.
	Key(now time.Duration, msg tea.KeyMsg) bool
	Render(now time.Duration, width, height int) string
	Status(now time.Duration) string
	// Remaining is the fraction of round time left. ok is false when the
	// game has no round clock.
	Remaining(now time.Duration) (frac float64, ok bool)
	SetHelp(now time.Duration, open bool)
	Help() string
	Keys() []key.Binding
	// Typing reports whether an answer field has focus.
	Typing() bool
}

// env is what a view needs from the program.
type env struct {
	src     random.Source
	play    model.PlayConfig
	text    string
	cue     cue.Player
	record  func(msg string, fields ...zap.Field)
	timeout func()
	// finished receives the attempts of a completed reaction round.
	finished func(attempts []stats.Attempt)
}

func newView(id shell.GameID, e env) (gameView, error) {
	switch id {
	case shell.Basic:
		return newBasicView(e), nil
	case shell.IsoDistance:
		return newIsoView(e), nil
	case shell.FixedReading:
		return newFixedView(e), nil
	case shell.ColumnReading:
		return newColumnView(e), nil
	case shell.DoubleNumber:
		return newVisualView(e), nil
	case shell.QuickReflex, shell.QuickMath, shell.GrammarMatch:
		return newReactionView(id, e), nil
	case shell.ChainSum:
		return newChainView(e), nil
	case shell.MentalCount, shell.HiLo:
		return newBlockView(id, e), nil
	}
	return nil, fmt.Errorf("unknown game %q", id)
}

// frozen combines the help overlay and terminal focus into one pause input
// for engines that only expose SetSuspended.
type frozen struct {
	help      bool
	suspended bool
}

func (f *frozen) any() bool { return f.help || f.suspended }

func stepLevel(v, delta, lo, hi int) int {
	v += delta
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fraction(left, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(left) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
