package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/shell"
	"github.com/verte-zerg/mindflux/internal/visual"
)

const visualHelp = `Fix your eyes on the cross. Two symbol groups flash on either side;
read both without moving your eyes. Speed sets the show time, interval
the blank time, distance how far apart the groups are. Press p to pause.`

const fixation = "+"

type visualView struct {
	engine *visual.Engine
	frozen frozen
	keys   keyMap
	shows  int
}

func newVisualView(e env) *visualView {
	mode, _ := visual.ParseMode(e.play.Mode)
	eng := visual.New(visual.Params{
		SpeedLevel:    e.play.Speed,
		IntervalLevel: e.play.Interval,
		Distance:      e.play.Distance,
		Mode:          mode,
		Extended:      e.play.Extended,
	}, e.src)
	eng.OnRoundOver = e.timeout
	v := &visualView{engine: eng, keys: defaultKeys()}
	eng.OnShow = func(visual.Pair) { v.shows++ }
	return v
}

func (v *visualView) SetRunning(now time.Duration, running bool) {
	if running {
		v.shows = 0
	}
	v.engine.SetRunning(now, running)
}

func (v *visualView) SetSuspended(now time.Duration, suspended bool) {
	v.frozen.suspended = suspended
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *visualView) SetHelp(now time.Duration, open bool) {
	v.frozen.help = open
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *visualView) SetBoard(width, height int) { v.engine.SetBoard(width, height) }

func (v *visualView) Frame(now time.Duration) { v.engine.Frame(now) }

func (v *visualView) Configure(_ time.Duration, c shell.Controls) {
	p := v.engine.Params()
	p.Distance = c.Distance
	v.engine.SetParams(p)
}

func (v *visualView) Panel() shell.Panel {
	p := v.engine.Params()
	maxSpeed := level.Max
	minSpeed := level.Min
	if p.Extended {
		minSpeed, maxSpeed = 0, level.ExtendedMax
	}
	return shell.Panel{Selectors: []shell.Selector{
		{
			Label: "Speed",
			Value: strconv.Itoa(p.SpeedLevel),
			Step: func(d int) bool {
				p := v.engine.Params()
				p.SpeedLevel = stepLevel(p.SpeedLevel, d, minSpeed, maxSpeed)
				v.engine.SetParams(p)
				return true
			},
		},
		{
			Label: "Interval",
			Value: strconv.Itoa(p.IntervalLevel),
			Step: func(d int) bool {
				p := v.engine.Params()
				p.IntervalLevel = stepLevel(p.IntervalLevel, d, level.Min, level.Max)
				v.engine.SetParams(p)
				return true
			},
		},
		{
			Label: "Mode",
			Value: string(p.Mode),
			Step: func(d int) bool {
				p := v.engine.Params()
				p.Mode = cycleMode(p.Mode, d)
				v.engine.SetParams(p)
				return true
			},
		},
		{
			Label: "Scale",
			Value: scaleLabel(p.Extended),
			Step: func(int) bool {
				if v.engine.Running() {
					return false
				}
				p := v.engine.Params()
				p.Extended = !p.Extended
				v.engine.SetParams(p)
				return true
			},
		},
	}}
}

func (v *visualView) Key(now time.Duration, msg tea.KeyMsg) bool {
	if key.Matches(msg, v.keys.Pause) && v.engine.Running() {
		v.engine.TogglePause(now)
		return true
	}
	return false
}

func (v *visualView) Render(_ time.Duration, width, height int) string {
	c := newCanvas(width, height)
	mid := height / 2
	center := width / 2
	c.putCentered(center, mid, fixation, mutedStyle)
	if !v.engine.Running() {
		c.putCentered(center, height-1, "press space to start", mutedStyle)
		return c.String()
	}
	if v.engine.Phase() == visual.PhaseShow {
		half := v.engine.Separation() / 2
		pair := v.engine.Pair()
		c.putCentered(center-half, mid, pair.Left, textStyle)
		c.putCentered(center+half, mid, pair.Right, textStyle)
	}
	if v.engine.Paused() {
		c.putCentered(center, height-1, "paused", accentStyle)
	}
	return c.String()
}

func (v *visualView) Status(time.Duration) string {
	return fmt.Sprintf("show %dms · blank %dms · %d shown",
		v.engine.ShowDuration().Milliseconds(), v.engine.BlankDuration().Milliseconds(), v.shows)
}

func (v *visualView) Remaining(time.Duration) (float64, bool) {
	if !v.engine.Running() {
		return 0, false
	}
	return fraction(v.engine.TimeLeft(), visual.RoundDuration), true
}

func (v *visualView) Help() string { return visualHelp }

func (v *visualView) Keys() []key.Binding { return []key.Binding{v.keys.Pause} }

func (v *visualView) Typing() bool { return false }

func cycleMode(m visual.Mode, d int) visual.Mode {
	modes := visual.Modes()
	idx := 0
	for i, mode := range modes {
		if mode == m {
			idx = i
		}
	}
	idx = (idx + d + len(modes)) % len(modes)
	return modes[idx]
}

func scaleLabel(extended bool) string {
	if extended {
		return "0-18"
	}
	return "1-9"
}
