package reading

import (
	"time"

	"github.com/verte-zerg/mindflux/internal/clock"
	"github.com/verte-zerg/mindflux/internal/timer"
)

const (
	// MaxCells caps the column grid.
	MaxCells = 20
	// Columns is the number of columns in the grid.
	Columns = 2
	// RowHeight is the number of terminal rows one grid row occupies.
	RowHeight = 2
	// ColumnRoundDuration caps a column reading round.
	ColumnRoundDuration = 45 * time.Second
)

// ColumnParams configures a column reader.
type ColumnParams struct {
	Text      string
	CharWidth int
	WPM       int
	Rows      int
}

// Column lays lines out in a two-column grid and moves a highlight across the
// cells, refilling each cell it leaves with the next unread line.
type Column struct {
	params       ColumnParams
	lines        []string
	cells        []string
	active       int
	nextLine     int
	lastLineCell int
	running      bool
	paused       bool
	suspended    bool
	done         bool
	pendingArm   bool
	tick         timer.Timer
	budget       *clock.Countdown

	// OnTimeout runs once when the text is exhausted or the round budget ends.
	OnTimeout func()
}

// NewColumn returns an idle column reader.
func NewColumn(params ColumnParams) *Column {
	c := &Column{budget: clock.NewCountdown(ColumnRoundDuration)}
	c.params = params
	c.lines = prepare(params.Text, params.CharWidth)
	c.resetGrid()
	return c
}

// Configure applies params and restarts progress when anything changed.
func (c *Column) Configure(now time.Duration, params ColumnParams) {
	if params == c.params {
		return
	}
	c.params = params
	c.lines = prepare(params.Text, params.CharWidth)
	c.resetGrid()
	c.tick.Cancel()
	if c.running && !c.done {
		c.budget.Reset()
		c.armTick(now)
		c.applyFreeze(now)
	}
}

// SetRunning starts or stops the round.
func (c *Column) SetRunning(now time.Duration, running bool) {
	if c.running == running {
		return
	}
	c.running = running
	c.paused = false
	c.done = false
	c.pendingArm = false
	c.tick.Cancel()
	c.budget.Reset()
	c.resetGrid()
	if !running {
		return
	}
	c.armTick(now)
	c.applyFreeze(now)
}

// SetSuspended freezes the round while the terminal is unfocused.
func (c *Column) SetSuspended(now time.Duration, suspended bool) {
	if c.suspended == suspended {
		return
	}
	c.suspended = suspended
	c.applyFreeze(now)
}

// SetBoard recomputes the visible rows from the board height.
func (c *Column) SetBoard(width, height int) {
	params := c.params
	params.Rows = RowsFor(height, RowHeight)
	if params == c.params {
		return
	}
	// The highlight re-arms on the next frame.
	c.params = params
	c.lines = prepare(params.Text, params.CharWidth)
	c.tick.Cancel()
	c.resetGrid()
	c.pendingArm = c.running && !c.done
}

// Pause freezes the highlight and the round budget.
func (c *Column) Pause(now time.Duration) {
	if !c.running || c.paused {
		return
	}
	c.paused = true
	c.applyFreeze(now)
}

// Resume continues a paused round.
func (c *Column) Resume(now time.Duration) {
	if !c.running || !c.paused || c.done {
		return
	}
	c.paused = false
	c.applyFreeze(now)
}

// TogglePause flips between Pause and Resume.
func (c *Column) TogglePause(now time.Duration) {
	if c.paused {
		c.Resume(now)
		return
	}
	c.Pause(now)
}

// Stop ends the round without invoking OnTimeout.
func (c *Column) Stop(now time.Duration) {
	c.SetRunning(now, false)
}

// Frame advances the budget and the highlight.
func (c *Column) Frame(now time.Duration) {
	if !c.running || c.done || c.paused || c.suspended {
		return
	}
	if c.pendingArm {
		c.pendingArm = false
		c.armTick(now)
	}
	if _, expired := c.budget.Step(now); expired {
		c.finish()
		return
	}
	c.tick.Fire(now)
}

// Cells returns the text of every grid cell.
func (c *Column) Cells() []string { return c.cells }

// Active returns the highlighted cell, or -1 when idle.
func (c *Column) Active() int {
	if !c.running || len(c.cells) == 0 {
		return -1
	}
	return c.active
}

// Visible reports whether cell i is rendered; only the highlighted cell is.
func (c *Column) Visible(i int) bool {
	return c.running && !c.done && i == c.active && len(c.cells) > 0
}

// Rows returns the current grid row count.
func (c *Column) Rows() int { return len(c.cells) / Columns }

// TimeLeft returns the remaining round budget.
func (c *Column) TimeLeft() time.Duration { return c.budget.Remaining() }

// Paused reports whether the player paused the round.
func (c *Column) Paused() bool { return c.paused }

// Running reports whether a round is in progress.
func (c *Column) Running() bool { return c.running }

// Done reports whether the round ended on its own.
func (c *Column) Done() bool { return c.done }

// Params returns the active params.
func (c *Column) Params() ColumnParams { return c.params }

func (c *Column) cellCount() int {
	n := c.params.Rows * Columns
	if n > MaxCells {
		n = MaxCells
	}
	if n < 0 {
		n = 0
	}
	return n
}

func (c *Column) resetGrid() {
	total := c.cellCount()
	c.active = 0
	c.lastLineCell = -1
	c.nextLine = 0
	if len(c.lines) == 0 || total == 0 {
		c.cells = nil
		return
	}
	c.cells = make([]string, total)
	for i := range c.cells {
		c.cells[i] = c.lines[i%len(c.lines)]
	}
	c.nextLine = total
	if len(c.lines) < total {
		c.nextLine = len(c.lines)
	}
	if len(c.lines) <= total {
		c.lastLineCell = len(c.lines) - 1
	}
}

func (c *Column) armTick(now time.Duration) {
	if len(c.cells) == 0 {
		return
	}
	c.tick.Start(now, CellInterval(c.params.CharWidth, c.params.WPM), c.advance)
}

func (c *Column) advance(now time.Duration) {
	if !c.running || c.done {
		return
	}
	prev := c.active
	if c.nextLine >= len(c.lines) && prev == c.lastLineCell {
		c.finish()
		return
	}
	c.active = (c.active + 1) % len(c.cells)
	if c.nextLine < len(c.lines) {
		c.cells[prev] = c.lines[c.nextLine]
		if c.nextLine == len(c.lines)-1 {
			c.lastLineCell = prev
		}
		c.nextLine++
	}
	c.armTick(now)
}

func (c *Column) finish() {
	if c.done {
		return
	}
	c.done = true
	c.paused = true
	c.tick.Cancel()
	if c.OnTimeout != nil {
		c.OnTimeout()
	}
}

func (c *Column) applyFreeze(now time.Duration) {
	frozen := c.paused || c.suspended
	c.tick.SetPaused(now, frozen)
	if frozen {
		c.budget.Pause()
		return
	}
	c.budget.Start(now)
}
