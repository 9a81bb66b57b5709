package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/mindflux/internal/drill"
	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/shell"
)

const chainHelp = `Digits flash one at a time. Add them up in your head and type the
total when they stop. Quantity sets how many digits, speed how fast.`

var blockHelp = map[shell.GameID]string{
	shell.MentalCount: `Values of -1, 0 and +1 flash one at a time. Keep a running count.
After each block type the count: enter continues, ctrl+f finishes,
ctrl+g gives up and shows the count.`,
	shell.HiLo: `Cards are dealt from a shoe. Keep the Hi-Lo count: 2 to 6 add one,
7 to 9 add nothing, tens, faces and aces take one away. After each
block type the count: enter continues, ctrl+f finishes, ctrl+g gives up.`,
}

var (
	submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer"))
	finishKey = key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "finish"))
	giveUpKey = key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "give up"))
)

func newAnswerInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "Answer: "
	input.Placeholder = "0"
	input.CharLimit = 6
	input.Cursor.SetMode(cursor.CursorStatic)
	return input
}

// answerField is the text field shared by the drill views.
type answerField struct {
	input textinput.Model
	err   string
}

// sync focuses the field while answering and clears it otherwise.
func (a *answerField) sync(answering bool) {
	if answering == a.input.Focused() {
		return
	}
	if answering {
		a.input.Reset()
		a.err = ""
		a.input.Focus()
		return
	}
	a.input.Blur()
	a.input.Reset()
}

func (a *answerField) update(msg tea.KeyMsg) {
	a.input, _ = a.input.Update(msg)
	a.err = ""
}

// result keeps a drill error for display.
func (a *answerField) result(err error) bool {
	if err == nil {
		a.err = ""
		return true
	}
	if errors.Is(err, drill.ErrNotAnswering) {
		return false
	}
	a.err = err.Error()
	return false
}

func (a *answerField) render(c *canvas, width, row int) {
	c.putCentered(width/2, row, a.input.Prompt+a.input.Value()+"_", textStyle)
	if a.err != "" {
		c.putCentered(width/2, row+2, a.err, badStyle)
	}
}

func verdictStyleOf(v drill.Verdict) lipgloss.Style {
	if v.Correct {
		return goodStyle
	}
	return badStyle
}

type chainView struct {
	env    env
	engine *drill.ChainSum
	answer answerField
}

func newChainView(e env) *chainView {
	speed := e.play.Speed
	if speed == 0 {
		speed = level.Max / 2
	}
	v := &chainView{env: e, engine: drill.NewChainSum(e.play.Level, speed, e.src), answer: answerField{input: newAnswerInput()}}
	v.engine.OnTimeout = e.timeout
	return v
}

func (v *chainView) SetRunning(now time.Duration, running bool) {
	v.engine.SetRunning(now, running)
	v.answer.sync(v.Typing())
}

func (v *chainView) SetSuspended(now time.Duration, suspended bool) {
	v.engine.SetSuspended(now, suspended)
}

func (v *chainView) SetHelp(now time.Duration, open bool) { v.engine.SetHelp(now, open) }

func (v *chainView) SetBoard(width, height int) { v.engine.SetBoard(width, height) }

func (v *chainView) Frame(now time.Duration) {
	v.engine.Frame(now)
	v.answer.sync(v.Typing())
}

func (v *chainView) Configure(time.Duration, shell.Controls) {}

func (v *chainView) Panel() shell.Panel {
	return shell.Panel{Selectors: []shell.Selector{
		{
			Label: "Quantity",
			Value: fmt.Sprintf("%d (%d digits)", v.engine.Quantity(), level.DrillCount(v.engine.Quantity())),
			Step: func(d int) bool {
				return v.engine.SetLevels(stepLevel(v.engine.Quantity(), d, level.Min, level.Max), v.engine.Speed())
			},
		},
		{
			Label: "Speed",
			Value: fmt.Sprintf("%d (%dms)", v.engine.Speed(), v.engine.Interval().Milliseconds()),
			Step: func(d int) bool {
				return v.engine.SetLevels(v.engine.Quantity(), stepLevel(v.engine.Speed(), d, level.Min, level.Max))
			},
		},
	}}
}

func (v *chainView) Key(now time.Duration, msg tea.KeyMsg) bool {
	if !v.Typing() {
		return false
	}
	if key.Matches(msg, submitKey) {
		verdict, err := v.engine.Submit(now, v.answer.input.Value())
		if v.answer.result(err) {
			recordVerdict(v.env, verdict)
		}
		return true
	}
	v.answer.update(msg)
	return true
}

func (v *chainView) Render(_ time.Duration, width, height int) string {
	c := newCanvas(width, height)
	mid := height / 2
	switch v.engine.Phase() {
	case drill.PhaseShow:
		if d := v.engine.Current(); d >= 0 {
			c.putCentered(width/2, mid, strconv.Itoa(d), accentStyle)
		}
	case drill.PhaseAnswer:
		c.putCentered(width/2, mid-2, "What is the sum?", mutedStyle)
		v.answer.render(c, width, mid)
	case drill.PhaseEnded:
		if verdict, ok := v.engine.Verdict(); ok {
			c.putCentered(width/2, mid, verdict.String(), verdictStyleOf(verdict))
		}
		c.putCentered(width/2, height-1, "press space to play again", mutedStyle)
	default:
		c.putCentered(width/2, mid, "press space to start", mutedStyle)
	}
	return c.String()
}

func (v *chainView) Status(time.Duration) string {
	shown, total := v.engine.Progress()
	return fmt.Sprintf("%s · %d/%d", v.engine.Phase(), shown, total)
}

func (v *chainView) Remaining(time.Duration) (float64, bool) {
	if v.engine.Phase() != drill.PhaseShow {
		return 0, false
	}
	shown, total := v.engine.Progress()
	return fraction(time.Duration(total-shown), time.Duration(total)), true
}

func (v *chainView) Help() string { return chainHelp }

func (v *chainView) Keys() []key.Binding { return []key.Binding{submitKey} }

func (v *chainView) Typing() bool { return v.engine.Phase() == drill.PhaseAnswer }

// blockDrill is the surface shared by the block drills.
type blockDrill interface {
	shell.Engine
	SetHelp(now time.Duration, open bool)
	SetBlockSize(n int) bool
	SetSpeed(l int) bool
	BlockSize() int
	Speed() int
	Interval() time.Duration
	GiveUp(now time.Duration) (drill.Verdict, error)
	Continue(now time.Duration, text string) (drill.Verdict, error)
	Finish(now time.Duration, text string) (drill.Verdict, error)
	Phase() drill.Phase
	Current() string
	Progress() (int, int)
	Cooldown() int
	Verdict() (drill.Verdict, bool)
}

type blockView struct {
	id     shell.GameID
	env    env
	engine blockDrill
	hilo   *drill.HiLo
	answer answerField
}

func newBlockView(id shell.GameID, e env) *blockView {
	v := &blockView{id: id, env: e, answer: answerField{input: newAnswerInput()}}
	if id == shell.HiLo {
		h := drill.NewHiLo(e.src)
		h.OnTimeout = e.timeout
		if e.play.Shoe > 0 {
			h.SetDecks(e.play.Shoe)
		}
		v.engine, v.hilo = h, h
	} else {
		m := drill.NewMentalCount(e.src)
		m.OnTimeout = e.timeout
		v.engine = m
	}
	if e.play.BlockSize > 0 {
		v.engine.SetBlockSize(e.play.BlockSize)
	}
	if e.play.Speed > 0 {
		v.engine.SetSpeed(e.play.Speed)
	}
	return v
}

func (v *blockView) SetRunning(now time.Duration, running bool) {
	v.engine.SetRunning(now, running)
	v.answer.sync(v.Typing())
}

func (v *blockView) SetSuspended(now time.Duration, suspended bool) {
	v.engine.SetSuspended(now, suspended)
}

func (v *blockView) SetHelp(now time.Duration, open bool) { v.engine.SetHelp(now, open) }

func (v *blockView) SetBoard(width, height int) { v.engine.SetBoard(width, height) }

func (v *blockView) Frame(now time.Duration) {
	v.engine.Frame(now)
	v.answer.sync(v.Typing())
}

func (v *blockView) Configure(time.Duration, shell.Controls) {}

func (v *blockView) Panel() shell.Panel {
	selectors := []shell.Selector{
		{
			Label: "Block",
			Value: strconv.Itoa(v.engine.BlockSize()),
			Step: func(d int) bool {
				return v.engine.SetBlockSize(stepIn(drill.BlockSizes(), v.engine.BlockSize(), d))
			},
		},
		{
			Label: "Speed",
			Value: fmt.Sprintf("%d (%dms)", v.engine.Speed(), v.engine.Interval().Milliseconds()),
			Step: func(d int) bool {
				return v.engine.SetSpeed(stepLevel(v.engine.Speed(), d, level.Min, level.Max))
			},
		},
	}
	if v.hilo != nil {
		selectors = append(selectors, shell.Selector{
			Label: "Decks",
			Value: strconv.Itoa(v.hilo.Decks()),
			Step: func(d int) bool {
				return v.hilo.SetDecks(stepIn(drill.ShoeSizes(), v.hilo.Decks(), d))
			},
		})
	}
	return shell.Panel{Selectors: selectors}
}

func (v *blockView) Key(now time.Duration, msg tea.KeyMsg) bool {
	if !v.Typing() {
		return false
	}
	var (
		verdict drill.Verdict
		err     error
	)
	switch {
	case key.Matches(msg, submitKey):
		verdict, err = v.engine.Continue(now, v.answer.input.Value())
	case key.Matches(msg, finishKey):
		verdict, err = v.engine.Finish(now, v.answer.input.Value())
	case key.Matches(msg, giveUpKey):
		verdict, err = v.engine.GiveUp(now)
	default:
		v.answer.update(msg)
		return true
	}
	if v.answer.result(err) {
		recordVerdict(v.env, verdict)
	}
	v.answer.sync(v.Typing())
	return true
}

func (v *blockView) Render(_ time.Duration, width, height int) string {
	c := newCanvas(width, height)
	mid := height / 2
	switch v.engine.Phase() {
	case drill.PhaseShow:
		c.putCentered(width/2, mid, v.engine.Current(), accentStyle)
	case drill.PhaseAnswer:
		c.putCentered(width/2, mid-2, "What is the count?", mutedStyle)
		v.answer.render(c, width, mid)
	case drill.PhaseCooldown:
		if verdict, ok := v.engine.Verdict(); ok {
			c.putCentered(width/2, mid-2, verdict.String(), verdictStyleOf(verdict))
		}
		c.putCentered(width/2, mid, fmt.Sprintf("next block in %d", v.engine.Cooldown()), mutedStyle)
	case drill.PhaseEnded:
		if verdict, ok := v.engine.Verdict(); ok {
			c.putCentered(width/2, mid, verdict.String(), verdictStyleOf(verdict))
		}
		c.putCentered(width/2, height-1, "press space to play again", mutedStyle)
	default:
		c.putCentered(width/2, mid, "press space to start", mutedStyle)
	}
	return c.String()
}

func (v *blockView) Status(time.Duration) string {
	shown, total := v.engine.Progress()
	status := fmt.Sprintf("%s · %d/%d", v.engine.Phase(), shown, total)
	if v.hilo != nil {
		status += fmt.Sprintf(" · %d cards left", v.hilo.Remaining())
	}
	return status
}

func (v *blockView) Remaining(time.Duration) (float64, bool) {
	if v.engine.Phase() != drill.PhaseShow {
		return 0, false
	}
	shown, total := v.engine.Progress()
	return fraction(time.Duration(total-shown), time.Duration(total)), true
}

func (v *blockView) Help() string { return blockHelp[v.id] }

func (v *blockView) Keys() []key.Binding { return []key.Binding{submitKey, finishKey, giveUpKey} }

func (v *blockView) Typing() bool { return v.engine.Phase() == drill.PhaseAnswer }

func recordVerdict(e env, v drill.Verdict) {
	e.record("verdict",
		zap.Int("guess", v.Guess),
		zap.Int("want", v.Want),
		zap.Bool("correct", v.Correct),
		zap.Bool("gave_up", v.GaveUp),
	)
}

// stepIn moves d places through the sorted options from cur.
func stepIn(options []int, cur, d int) int {
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
		}
	}
	idx = stepLevel(idx, d, 0, len(options)-1)
	return options[idx]
}
