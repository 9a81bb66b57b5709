// Package tui provides the Bubble Tea interface hosting the games.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/mindflux/internal/books"
	"github.com/verte-zerg/mindflux/internal/clock"
	"github.com/verte-zerg/mindflux/internal/cue"
	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/model"
	"github.com/verte-zerg/mindflux/internal/random"
	"github.com/verte-zerg/mindflux/internal/shell"
	"github.com/verte-zerg/mindflux/internal/stats"
)

// FrameInterval is the frame tick period.
const FrameInterval = time.Second / 60

// Rows taken by the header, progress bar, control bar and footer.
const chromeRows = 4

type frameMsg struct{}

type screen int

const (
	screenMenu screen = iota
	screenGame
)

// Options configures the program.
type Options struct {
	Play model.PlayConfig
	// Text replaces the book catalog for the reading games.
	Text   string
	Clock  clock.Clock
	Random random.Source
	Logger *zap.Logger
	Cue    cue.Player
}

// Model implements the Bubble Tea game host.
type Model struct {
	opts     Options
	clock    clock.Clock
	shell    *shell.Shell
	view     gameView
	keys     keyMap
	help     help.Model
	progress progress.Model

	screen   screen
	menuIdx  int
	focus    int
	helpOpen bool
	errMsg   string
	report   []stats.Attempt

	width  int
	height int
}

// NewModel constructs the host. A game in opts.Play opens directly.
func NewModel(opts Options) (*Model, error) {
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}
	if opts.Random == nil {
		opts.Random = random.NewTime()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Cue == nil {
		opts.Cue = cue.Nop{}
	}
	m := &Model{
		opts:     opts,
		clock:    opts.Clock,
		shell:    shell.New(opts.Logger),
		keys:     defaultKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage()),
	}
	m.shell.Apply(0, initialPatch(opts.Play))
	if opts.Play.Game == "" {
		return m, nil
	}
	id, ok := shell.ParseGame(opts.Play.Game)
	if !ok {
		return nil, fmt.Errorf("unknown game %q", opts.Play.Game)
	}
	if err := m.open(id); err != nil {
		return nil, err
	}
	return m, nil
}

// Report returns the attempts of the last completed reaction round.
func (m *Model) Report() []stats.Attempt { return m.report }

func (m *Model) setReport(attempts []stats.Attempt) { m.report = attempts }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	switch msg := msg.(type) {
	case frameMsg:
		m.shell.Frame(now)
		return m, frameTick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = maxInt(10, msg.Width-2)
		m.shell.SetBoard(m.boardSize())
		return m, nil
	case tea.FocusMsg:
		m.shell.SetSuspended(now, false)
		return m, nil
	case tea.BlurMsg:
		m.shell.SetSuspended(now, true)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.screen == screenMenu {
			return m.updateMenu(msg)
		}
		return m.updateGame(now, msg)
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	games := menuGames()
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.menuIdx = (m.menuIdx - 1 + len(games)) % len(games)
	case key.Matches(msg, m.keys.Down):
		m.menuIdx = (m.menuIdx + 1) % len(games)
	case key.Matches(msg, m.keys.Left):
		m.menuIdx = categoryStart(games, m.menuIdx, -1)
	case key.Matches(msg, m.keys.Right):
		m.menuIdx = categoryStart(games, m.menuIdx, 1)
	case key.Matches(msg, m.keys.Select):
		if err := m.open(games[m.menuIdx].id); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

func (m *Model) updateGame(now time.Duration, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpOpen {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
			m.setHelp(now, false)
		}
		return m, nil
	}
	if m.view.Typing() && !key.Matches(msg, m.keys.Back) {
		m.view.Key(now, msg)
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.close(now)
	case key.Matches(msg, m.keys.Help):
		m.setHelp(now, true)
	case key.Matches(msg, m.keys.Toggle):
		m.shell.Toggle(now)
	case key.Matches(msg, m.keys.NextCtl):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevCtl):
		m.moveFocus(-1)
	case m.view.Key(now, msg):
	case key.Matches(msg, m.keys.Left):
		m.stepFocused(-1)
	case key.Matches(msg, m.keys.Right):
		m.stepFocused(1)
	}
	return m, nil
}

// open mounts a game and fills the control slot with its panel.
func (m *Model) open(id shell.GameID) error {
	now := m.clock.Now()
	v, err := newView(id, env{
		src:      m.opts.Random,
		play:     m.playFor(),
		text:     m.opts.Text,
		cue:      m.opts.Cue,
		record:   m.shell.Record,
		timeout:  m.shell.Timeout,
		finished: m.setReport,
	})
	if err != nil {
		return err
	}
	m.view = v
	m.shell.Mount(now, id, v)
	v.Configure(now, m.shell.Controls())
	m.shell.Slot().Set(string(id), v.Panel)
	m.screen = screenGame
	m.focus = 0
	m.errMsg = ""
	if m.width > 0 {
		m.shell.SetBoard(m.boardSize())
	}
	return nil
}

func (m *Model) close(now time.Duration) {
	if m.helpOpen {
		m.setHelp(now, false)
	}
	m.shell.Slot().Clear(string(m.shell.Controls().Game))
	m.shell.Unmount(now)
	m.view = nil
	m.screen = screenMenu
}

// playFor merges the current shared controls into the start settings.
func (m *Model) playFor() model.PlayConfig {
	play := m.opts.Play
	c := m.shell.Controls()
	play.Level = c.Level
	play.Distance = c.Distance
	play.Book = c.Book
	play.WidthIdx = c.WidthIdx
	return play
}

func (m *Model) setHelp(now time.Duration, open bool) {
	m.helpOpen = open
	if m.view != nil {
		m.view.SetHelp(now, open)
	}
}

func (m *Model) boardSize() (int, int) {
	return maxInt(1, m.width), maxInt(1, m.height-chromeRows)
}

// selectors returns the shared selectors for the mounted game followed by the
// game's own panel.
func (m *Model) selectors() []shell.Selector {
	c := m.shell.Controls()
	var out []shell.Selector
	apply := func(p shell.Patch) bool {
		now := m.clock.Now()
		m.shell.Apply(now, p)
		if m.view != nil {
			m.view.Configure(now, m.shell.Controls())
		}
		return true
	}
	if usesLevel(c.Game) {
		out = append(out, shell.Selector{
			Label: "Level",
			Value: fmt.Sprintf("%d", c.Level),
			Step: func(d int) bool {
				l := c.Level + d
				return apply(shell.Patch{Level: &l})
			},
		})
	}
	if usesDistance(c.Game) {
		out = append(out, shell.Selector{
			Label: "Distance",
			Value: fmt.Sprintf("%d", c.Distance),
			Step: func(d int) bool {
				l := c.Distance + d
				return apply(shell.Patch{Distance: &l})
			},
		})
	}
	if c.Category == shell.SpeedReading {
		if m.opts.Text == "" {
			out = append(out, shell.Selector{
				Label: "Book",
				Value: c.Book,
				Step: func(d int) bool {
					b := cycleString(books.Keys(), c.Book, d)
					return apply(shell.Patch{Book: &b})
				},
			})
		}
		out = append(out, shell.Selector{
			Label: "Width",
			Value: fmt.Sprintf("%d", level.LineWidth(c.WidthIdx)),
			Step: func(d int) bool {
				w := c.WidthIdx + d
				return apply(shell.Patch{WidthIdx: &w})
			},
		})
	}
	return append(out, m.shell.Slot().Panel().Selectors...)
}

func (m *Model) moveFocus(d int) {
	n := len(m.selectors())
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = (m.focus + d + n) % n
}

func (m *Model) stepFocused(d int) {
	sel := m.selectors()
	if m.focus >= len(sel) || sel[m.focus].Step == nil {
		return
	}
	if !sel[m.focus].Step(d) {
		m.errMsg = "stop the round to change " + strings.ToLower(sel[m.focus].Label)
		return
	}
	m.errMsg = ""
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.screen == screenMenu {
		return m.renderMenu()
	}
	now := m.clock.Now()
	if m.helpOpen {
		return m.renderHelp()
	}
	boardW, boardH := m.boardSize()
	lines := []string{
		m.renderHeader(now),
		m.renderProgress(now),
		m.view.Render(now, boardW, boardH),
		m.renderControls(),
		m.help.View(gameKeys{keyMap: m.keys, extra: m.view.Keys()}),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader(now time.Duration) string {
	c := m.shell.Controls()
	g, _, _ := shell.Lookup(c.Game)
	left := accentStyle.Render(g.Title)
	state := "stopped"
	switch {
	case m.shell.Suspended():
		state = "suspended"
	case m.shell.Running():
		state = "running"
	}
	right := mutedStyle.Render(m.view.Status(now) + " · " + state)
	gap := maxInt(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderProgress(now time.Duration) string {
	frac, ok := m.view.Remaining(now)
	if !ok {
		return ""
	}
	return " " + m.progress.ViewAs(frac)
}

func (m *Model) renderControls() string {
	sel := m.selectors()
	parts := make([]string, 0, len(sel)+1)
	for i, s := range sel {
		label := s.Label + ": " + s.Value
		if i == m.focus {
			parts = append(parts, selectorOn.Render("‹ "+label+" ›"))
			continue
		}
		parts = append(parts, selectorOff.Render(label))
	}
	if m.errMsg != "" {
		parts = append(parts, badStyle.Render(m.errMsg))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderHelp() string {
	body := []string{
		accentStyle.Render("How to play"),
		"",
		textStyle.Render(m.view.Help()),
		"",
		footerStyle.Render("? or esc to close · the round is paused"),
	}
	box := modalStyle.Width(minInt(72, maxInt(20, m.width-4))).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// initialPatch carries the non-zero start settings into the shared controls.
func initialPatch(play model.PlayConfig) shell.Patch {
	var p shell.Patch
	if play.Level > 0 {
		p.Level = &play.Level
	}
	if play.Distance > 0 {
		p.Distance = &play.Distance
	}
	if play.Book != "" {
		p.Book = &play.Book
	}
	if play.WidthIdx > 0 {
		p.WidthIdx = &play.WidthIdx
	}
	return p
}

func usesLevel(id shell.GameID) bool {
	switch id {
	case shell.Basic, shell.IsoDistance, shell.FixedReading, shell.ColumnReading:
		return true
	}
	return false
}

func usesDistance(id shell.GameID) bool {
	switch id {
	case shell.IsoDistance, shell.DoubleNumber, shell.QuickMath, shell.GrammarMatch:
		return true
	}
	return false
}

func cycleString(options []string, cur string, d int) string {
	if len(options) == 0 {
		return cur
	}
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
		}
	}
	return options[(idx+d%len(options)+len(options))%len(options)]
}
