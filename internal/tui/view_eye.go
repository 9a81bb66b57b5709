package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/mindflux/internal/eye"
	"github.com/verte-zerg/mindflux/internal/shell"
)

const eyeHelp = `Keep your head still and follow the target with your eyes only.
Level sets how often the target moves. Distance sets how far it travels
in the iso distance game. A round lasts 30 seconds.`

const targetGlyph = "●"

// eyeEngine is the part of Basic and IsoDistance the view draws from.
type eyeEngine interface {
	shell.Engine
	Cell() (int, int)
	Running() bool
	TimeLeft(now time.Duration) time.Duration
}

type eyeView struct {
	engine eyeEngine
	frozen frozen
	cols   int
	rows   int
	// configure applies the shared controls to the engine.
	configure func(now time.Duration, c shell.Controls)
	status    func() string
}

func newBasicView(e env) *eyeView {
	b := eye.NewBasic(e.play.Level, eye.TerminalGeometry(), e.src)
	b.OnTimeout = e.timeout
	return &eyeView{
		engine: b,
		configure: func(now time.Duration, c shell.Controls) {
			if c.Level != b.Level() {
				b.SetLevel(now, c.Level)
			}
		},
		status: func() string { return fmt.Sprintf("Level %d", b.Level()) },
	}
}

func newIsoView(e env) *eyeView {
	iso := eye.NewIsoDistance(e.play.Level, e.play.Distance, eye.TerminalGeometry(), e.src)
	iso.OnTimeout = e.timeout
	return &eyeView{
		engine: iso,
		configure: func(_ time.Duration, c shell.Controls) {
			if c.Level != iso.Level() {
				iso.SetLevel(c.Level)
			}
			if c.Distance != iso.Distance() {
				iso.SetDistance(c.Distance)
			}
		},
		status: func() string {
			return fmt.Sprintf("Level %d · Distance %d", iso.Level(), iso.Distance())
		},
	}
}

func (v *eyeView) SetRunning(now time.Duration, running bool) { v.engine.SetRunning(now, running) }

func (v *eyeView) SetSuspended(now time.Duration, suspended bool) {
	v.frozen.suspended = suspended
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *eyeView) SetHelp(now time.Duration, open bool) {
	v.frozen.help = open
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *eyeView) SetBoard(width, height int) {
	v.cols, v.rows = width, height
	v.engine.SetBoard(width, height)
}

func (v *eyeView) Frame(now time.Duration) { v.engine.Frame(now) }

func (v *eyeView) Configure(now time.Duration, c shell.Controls) { v.configure(now, c) }

func (v *eyeView) Panel() shell.Panel { return shell.Panel{} }

func (v *eyeView) Key(time.Duration, tea.KeyMsg) bool { return false }

func (v *eyeView) Render(_ time.Duration, width, height int) string {
	c := newCanvas(width, height)
	col, row := v.engine.Cell()
	c.put(col, row, targetGlyph, targetStyle)
	if !v.engine.Running() {
		c.putCentered(width/2, height-1, "press space to start", mutedStyle)
	}
	return c.String()
}

func (v *eyeView) Status(time.Duration) string { return v.status() }

func (v *eyeView) Remaining(now time.Duration) (float64, bool) {
	if !v.engine.Running() {
		return 0, false
	}
	return fraction(v.engine.TimeLeft(now), eye.RoundDuration), true
}

func (v *eyeView) Help() string { return eyeHelp }

func (v *eyeView) Keys() []key.Binding { return nil }

func (v *eyeView) Typing() bool { return false }
