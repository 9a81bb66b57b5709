package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/reaction"
	"github.com/verte-zerg/mindflux/internal/shell"
	"github.com/verte-zerg/mindflux/internal/stats"
)

const maxAttempts = 50

var reactionHelp = map[shell.GameID]string{
	shell.QuickReflex: `After the countdown, wait for the dot and press 0 as fast as you can.
Each attempt allows two seconds.`,
	shell.QuickMath: `Two digits flash apart. Press z if their sum is odd, x if it is even.
Distance sets how far apart they are, exposure how long they stay.`,
	shell.GrammarMatch: `An article and a noun flash apart. Press z if they agree in gender
and number, x if they do not.`,
}

// reactionGame is the surface shared by the reaction games.
type reactionGame interface {
	shell.Engine
	SetHelp(now time.Duration, open bool)
	State() reaction.State
	Config() reaction.Config
	Visible() bool
	SetAttempts(n int) bool
	Press(now time.Duration, key string) bool
}

type reactionView struct {
	id     shell.GameID
	game   reactionGame
	env    env
	answer []key.Binding
	// stimulus draws the visible stimulus centred on the canvas.
	stimulus func(c *canvas, width, mid int)
	distance func(l int) bool
	exposure func(d int) (int, bool)
}

func newReactionView(id shell.GameID, e env) *reactionView {
	v := &reactionView{id: id, env: e}
	switch id {
	case shell.QuickMath:
		g := reaction.NewQuickMath(e.src)
		g.OnTimeout, g.OnStimulus, g.OnAttempt = v.onTimeout, v.onStimulus, v.onAttempt
		g.SetDistance(e.play.Distance)
		v.game = g
		v.answer = []key.Binding{
			key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "odd")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "even")),
		}
		v.stimulus = func(c *canvas, width, mid int) {
			left, right := g.Digits()
			half := int(g.Gap() / 100 * float64(width) / 2)
			c.putCentered(width/2-half, mid, strconv.Itoa(left), textStyle)
			c.putCentered(width/2+half, mid, strconv.Itoa(right), textStyle)
		}
		v.distance = g.SetDistance
		v.exposure = func(d int) (int, bool) {
			return g.Exposure(), d == 0 || g.SetExposure(g.Exposure()+d)
		}
	case shell.GrammarMatch:
		g := reaction.NewGrammarMatch(e.src)
		g.OnTimeout, g.OnStimulus, g.OnAttempt = v.onTimeout, v.onStimulus, v.onAttempt
		g.SetDistance(e.play.Distance)
		v.game = g
		v.answer = []key.Binding{
			key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "agree")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "disagree")),
		}
		v.stimulus = func(c *canvas, width, mid int) {
			art, noun := g.Pair()
			half := int(g.Gap() / 100 * float64(width) / 2)
			c.putCentered(width/2-half, mid, art, textStyle)
			c.putCentered(width/2+half, mid, noun, textStyle)
		}
		v.distance = g.SetDistance
		v.exposure = func(d int) (int, bool) {
			return g.Exposure(), d == 0 || g.SetExposure(g.Exposure()+d)
		}
	default:
		g := reaction.NewQuickReflex(e.src)
		g.OnTimeout, g.OnStimulus, g.OnAttempt = v.onTimeout, v.onStimulus, v.onAttempt
		v.game = g
		v.answer = []key.Binding{key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "react"))}
		v.stimulus = func(c *canvas, width, mid int) {
			c.putCentered(width/2, mid, targetGlyph, goodStyle)
		}
	}
	if e.play.Attempts > 0 {
		v.game.SetAttempts(e.play.Attempts)
	}
	return v
}

func (v *reactionView) onTimeout() {
	st := v.game.State()
	if st.Summary != nil {
		v.env.record("summary",
			zap.Int("average_ms", st.Summary.AverageMs),
			zap.Float64("sd_ms", st.Summary.StdDevMs),
			zap.Int("hits", st.Summary.SuccessCount),
			zap.Int("attempts", st.Summary.Attempts),
		)
		if v.env.finished != nil {
			v.env.finished(attemptsOf(st.Results))
		}
	}
	v.env.timeout()
}

func (v *reactionView) onStimulus(int) { v.env.cue.Ping() }

func (v *reactionView) onAttempt(r reaction.Result) {
	if r.Label == reaction.TimeoutLabel {
		v.env.cue.Buzz()
	}
	v.env.record("attempt",
		zap.Int("attempt", r.Attempt),
		zap.Bool("success", r.Success),
		zap.Duration("elapsed", r.Elapsed),
		zap.String("label", r.Label),
	)
}

func (v *reactionView) SetRunning(now time.Duration, running bool) { v.game.SetRunning(now, running) }

func (v *reactionView) SetSuspended(now time.Duration, suspended bool) {
	v.game.SetSuspended(now, suspended)
}

func (v *reactionView) SetHelp(now time.Duration, open bool) { v.game.SetHelp(now, open) }

func (v *reactionView) SetBoard(width, height int) { v.game.SetBoard(width, height) }

func (v *reactionView) Frame(now time.Duration) { v.game.Frame(now) }

func (v *reactionView) Configure(_ time.Duration, c shell.Controls) {
	if v.distance != nil {
		v.distance(c.Distance)
	}
}

func (v *reactionView) Panel() shell.Panel {
	selectors := []shell.Selector{{
		Label: "Attempts",
		Value: strconv.Itoa(v.game.Config().Attempts),
		Step: func(d int) bool {
			return v.game.SetAttempts(stepLevel(v.game.Config().Attempts, d, 1, maxAttempts))
		},
	}}
	if v.exposure != nil {
		cur, _ := v.exposure(0)
		selectors = append(selectors, shell.Selector{
			Label: "Exposure",
			Value: fmt.Sprintf("%d (%dms)", cur, level.Exposure(cur).Milliseconds()),
			Step: func(d int) bool {
				_, ok := v.exposure(d)
				return ok
			},
		})
	}
	return shell.Panel{Selectors: selectors}
}

func (v *reactionView) Key(now time.Duration, msg tea.KeyMsg) bool {
	for _, b := range v.answer {
		if key.Matches(msg, b) {
			v.game.Press(now, msg.String())
			return true
		}
	}
	return false
}

func (v *reactionView) Render(_ time.Duration, width, height int) string {
	st := v.game.State()
	switch st.Phase {
	case reaction.PhaseIdle:
		c := newCanvas(width, height)
		c.putCentered(width/2, height/2, "press space to start", mutedStyle)
		return c.String()
	case reaction.PhaseFinished:
		return v.renderResults(st, width, height)
	}
	c := newCanvas(width, height)
	mid := height / 2
	c.put(0, 0, fmt.Sprintf("Attempt %d/%d", st.Attempt, v.game.Config().Attempts), mutedStyle)
	switch st.Phase {
	case reaction.PhaseCountdown:
		c.putCentered(width/2, mid, strconv.Itoa(st.Stage), accentStyle)
	case reaction.PhaseWaiting:
		c.putCentered(width/2, mid, "·", mutedStyle)
	case reaction.PhaseStimulus:
		if v.game.Visible() {
			v.stimulus(c, width, mid)
		} else {
			c.putCentered(width/2, mid, "?", mutedStyle)
		}
	}
	if last, ok := st.LastResult(); ok {
		c.putCentered(width/2, height-1, resultLine(last), resultStyle(last))
	}
	return c.String()
}

func (v *reactionView) renderResults(st reaction.State, width, height int) string {
	attempts := attemptsOf(st.Results)
	lines := []string{}
	if s := st.Summary; s != nil {
		lines = append(lines,
			accentStyle.Render(fmt.Sprintf("Average %d ms · SD %.1f ms · %d/%d correct", s.AverageMs, s.StdDevMs, s.SuccessCount, s.Attempts)),
			mutedStyle.Render("Trend "+stats.Sparkline(elapsedValues(attempts))),
			"",
		)
	}
	tableHeight := maxInt(2, height-len(lines)-1)
	t := resultsTable(attempts, tableHeight)
	lines = append(lines, t.View())
	body := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (v *reactionView) Status(time.Duration) string {
	st := v.game.State()
	return fmt.Sprintf("%s · %d recorded", st.Phase, len(st.Results))
}

func (v *reactionView) Remaining(time.Duration) (float64, bool) {
	st := v.game.State()
	if st.Phase == reaction.PhaseIdle || st.Phase == reaction.PhaseFinished {
		return 0, false
	}
	total := v.game.Config().Attempts
	return fraction(time.Duration(total-len(st.Results)), time.Duration(total)), true
}

func (v *reactionView) Help() string { return reactionHelp[v.id] }

func (v *reactionView) Keys() []key.Binding { return v.answer }

func (v *reactionView) Typing() bool { return false }

func attemptsOf(results []reaction.Result) []stats.Attempt {
	out := make([]stats.Attempt, 0, len(results))
	for _, r := range results {
		out = append(out, stats.Attempt{
			Index:     r.Attempt,
			Success:   r.Success,
			ElapsedMs: int(r.Elapsed / time.Millisecond),
			Label:     r.Label,
		})
	}
	return out
}

func elapsedValues(attempts []stats.Attempt) []float64 {
	values := make([]float64, len(attempts))
	for i, a := range attempts {
		values[i] = float64(a.ElapsedMs)
	}
	return values
}

func resultsTable(attempts []stats.Attempt, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Result", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Label", Width: 8},
	}
	rows := make([]table.Row, 0, len(attempts))
	for _, r := range stats.AttemptRows(attempts) {
		rows = append(rows, table.Row(r))
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t
}

func resultLine(r reaction.Result) string {
	return fmt.Sprintf("#%d %s %d ms", r.Attempt, r.Label, r.Elapsed.Milliseconds())
}

func resultStyle(r reaction.Result) lipgloss.Style {
	if r.Success {
		return goodStyle
	}
	return badStyle
}
