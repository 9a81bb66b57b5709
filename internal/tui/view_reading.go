package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/mindflux/internal/books"
	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/reading"
	"github.com/verte-zerg/mindflux/internal/shell"
)

const fixedHelp = `Read each line as it appears in the middle of the screen.
Level sets the reading speed in words per minute, width the line length.
Press p to pause. A round lasts 30 seconds.`

const columnHelp = `Follow the highlight across each row, left then right, from the top down.
Each cell is refilled with the next line once the highlight leaves it.
Press p to pause. The round ends with the text or after 45 seconds.`

// readingText returns the text override or the selected book.
func readingText(e env, book string) string {
	if e.text != "" {
		return e.text
	}
	return books.Text(book)
}

type fixedView struct {
	env    env
	engine *reading.Fixed
	frozen frozen
	keys   keyMap
}

func newFixedView(e env) *fixedView {
	f := reading.NewFixed(reading.Params{
		Text:      readingText(e, e.play.Book),
		CharWidth: level.LineWidth(e.play.WidthIdx),
		WPM:       level.ReadingWPM(e.play.Level),
	})
	f.OnTimeout = e.timeout
	return &fixedView{env: e, engine: f, keys: defaultKeys()}
}

func (v *fixedView) SetRunning(now time.Duration, running bool) { v.engine.SetRunning(now, running) }

func (v *fixedView) SetSuspended(now time.Duration, suspended bool) {
	v.frozen.suspended = suspended
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *fixedView) SetHelp(now time.Duration, open bool) {
	v.frozen.help = open
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *fixedView) SetBoard(width, height int) { v.engine.SetBoard(width, height) }

func (v *fixedView) Frame(now time.Duration) { v.engine.Frame(now) }

func (v *fixedView) Configure(now time.Duration, c shell.Controls) {
	v.engine.Configure(now, reading.Params{
		Text:      readingText(v.env, c.Book),
		CharWidth: level.LineWidth(c.WidthIdx),
		WPM:       level.ReadingWPM(c.Level),
	})
}

func (v *fixedView) Panel() shell.Panel { return shell.Panel{} }

func (v *fixedView) Key(now time.Duration, msg tea.KeyMsg) bool {
	if key.Matches(msg, v.keys.Pause) && v.engine.Running() {
		v.engine.TogglePause(now)
		return true
	}
	return false
}

func (v *fixedView) Render(_ time.Duration, width, height int) string {
	c := newCanvas(width, height)
	mid := height / 2
	switch {
	case !v.engine.Running():
		c.putCentered(width/2, mid, "press space to start", mutedStyle)
	case len(v.engine.Lines()) == 0:
		c.putCentered(width/2, mid, "no text", mutedStyle)
	default:
		line := fit(v.engine.CurrentLine(), width)
		c.putCentered(width/2, mid, line, textStyle)
		if v.engine.Paused() {
			c.putCentered(width/2, mid+2, "paused", accentStyle)
		}
	}
	return c.String()
}

func (v *fixedView) Status(time.Duration) string {
	p := v.engine.Params()
	return fmt.Sprintf("%d wpm · line %d/%d", p.WPM, v.engine.Index()+1, maxInt(1, len(v.engine.Lines())))
}

func (v *fixedView) Remaining(time.Duration) (float64, bool) {
	if !v.engine.Running() {
		return 0, false
	}
	return fraction(v.engine.TimeLeft(), reading.FixedRoundDuration), true
}

func (v *fixedView) Help() string { return fixedHelp }

func (v *fixedView) Keys() []key.Binding { return []key.Binding{v.keys.Pause} }

func (v *fixedView) Typing() bool { return false }

type columnView struct {
	env    env
	engine *reading.Column
	frozen frozen
	keys   keyMap
}

func newColumnView(e env) *columnView {
	c := reading.NewColumn(reading.ColumnParams{
		Text:      readingText(e, e.play.Book),
		CharWidth: level.LineWidth(e.play.WidthIdx),
		WPM:       level.ReadingWPM(e.play.Level),
	})
	c.OnTimeout = e.timeout
	return &columnView{env: e, engine: c, keys: defaultKeys()}
}

func (v *columnView) SetRunning(now time.Duration, running bool) { v.engine.SetRunning(now, running) }

func (v *columnView) SetSuspended(now time.Duration, suspended bool) {
	v.frozen.suspended = suspended
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *columnView) SetHelp(now time.Duration, open bool) {
	v.frozen.help = open
	v.engine.SetSuspended(now, v.frozen.any())
}

func (v *columnView) SetBoard(width, height int) { v.engine.SetBoard(width, height) }

func (v *columnView) Frame(now time.Duration) { v.engine.Frame(now) }

func (v *columnView) Configure(now time.Duration, c shell.Controls) {
	v.engine.Configure(now, reading.ColumnParams{
		Text:      readingText(v.env, c.Book),
		CharWidth: level.LineWidth(c.WidthIdx),
		WPM:       level.ReadingWPM(c.Level),
		Rows:      v.engine.Params().Rows,
	})
}

func (v *columnView) Panel() shell.Panel { return shell.Panel{} }

func (v *columnView) Key(now time.Duration, msg tea.KeyMsg) bool {
	if key.Matches(msg, v.keys.Pause) && v.engine.Running() {
		v.engine.TogglePause(now)
		return true
	}
	return false
}

// Render draws the grid row by row: cell i sits in column i%Columns.
func (v *columnView) Render(_ time.Duration, width, height int) string {
	c := newCanvas(width, height)
	cells := v.engine.Cells()
	if !v.engine.Running() || v.engine.Rows() == 0 {
		c.putCentered(width/2, height/2, "press space to start", mutedStyle)
		return c.String()
	}
	colWidth := width / reading.Columns
	for i := range cells {
		col := i % reading.Columns
		row := (i / reading.Columns) * reading.RowHeight
		x := col*colWidth + 1
		if v.engine.Visible(i) {
			c.put(x, row, fit(cells[i], colWidth-2), textStyle)
			continue
		}
		c.put(x, row, "·", dimLineStyle)
	}
	if v.engine.Done() {
		c.putCentered(width/2, height-1, "end of text", accentStyle)
	} else if v.engine.Paused() {
		c.putCentered(width/2, height-1, "paused", accentStyle)
	}
	return c.String()
}

func (v *columnView) Status(time.Duration) string {
	return fmt.Sprintf("%d wpm · %d rows", v.engine.Params().WPM, v.engine.Rows())
}

func (v *columnView) Remaining(time.Duration) (float64, bool) {
	if !v.engine.Running() {
		return 0, false
	}
	return fraction(v.engine.TimeLeft(), reading.ColumnRoundDuration), true
}

func (v *columnView) Help() string { return columnHelp }

func (v *columnView) Keys() []key.Binding { return []key.Binding{v.keys.Pause} }

func (v *columnView) Typing() bool { return false }
