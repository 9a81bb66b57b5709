package eye

import (
	"time"

	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/random"
	"github.com/verte-zerg/mindflux/internal/timer"
)

// RoundDuration is the length of an eye-movement round.
const RoundDuration = 30 * time.Second

// Basic moves the target to a uniformly random position at a level-driven
// interval.
type Basic struct {
	level     int
	geo       Geometry
	grid      Grid
	bounds    Bounds
	pos       Point
	src       random.Source
	running   bool
	suspended bool
	move      timer.Timer
	kill      timer.Timer

	// OnTimeout runs once when the round time is up.
	OnTimeout func()
}

// NewBasic returns an idle engine at lvl.
func NewBasic(lvl int, geo Geometry, src random.Source) *Basic {
	b := &Basic{level: level.Clamp9(lvl), geo: geo, src: src}
	b.bounds = ComputeBounds(0, 0, geo)
	b.pos = b.bounds.Center()
	return b
}

// SetLevel changes the interval. A running engine re-arms the next move.
func (b *Basic) SetLevel(now time.Duration, lvl int) {
	b.level = level.Clamp9(lvl)
	if b.running {
		b.move.Start(now, level.EyeBasicInterval(b.level), b.step)
	}
}

// Level returns the current level.
func (b *Basic) Level() int { return b.level }

// SetRunning starts or stops the round.
func (b *Basic) SetRunning(now time.Duration, running bool) {
	if b.running == running {
		return
	}
	b.running = running
	b.move.Cancel()
	b.kill.Cancel()
	if !running {
		return
	}
	b.pos = randomPoint(b.src, b.bounds)
	b.move.Start(now, level.EyeBasicInterval(b.level), b.step)
	b.kill.Start(now, RoundDuration, b.timeout)
}

// SetSuspended stops movement while the terminal is unfocused. The round time
// keeps running.
func (b *Basic) SetSuspended(now time.Duration, suspended bool) {
	b.suspended = suspended
	b.move.SetPaused(now, suspended)
}

// SetBoard recomputes the bounds for a grid of width x height cells and
// repositions the target.
func (b *Basic) SetBoard(width, height int) {
	b.grid = Grid{Cols: width, Rows: height}
	w, h := b.grid.Board()
	b.bounds = ComputeBounds(w, h, b.geo)
	b.pos = randomPoint(b.src, b.bounds)
}

// Frame fires the kill and move timers.
func (b *Basic) Frame(now time.Duration) {
	if !b.running {
		return
	}
	b.kill.Fire(now)
	if !b.running {
		return
	}
	b.move.Fire(now)
}

// Pos returns the target centre.
func (b *Basic) Pos() Point { return b.pos }

// Cell returns the grid cell of the target.
func (b *Basic) Cell() (int, int) { return b.grid.ToCell(b.pos) }

// Bounds returns the current bounds.
func (b *Basic) Bounds() Bounds { return b.bounds }

// Running reports whether a round is active.
func (b *Basic) Running() bool { return b.running }

// TimeLeft returns the round time left.
func (b *Basic) TimeLeft(now time.Duration) time.Duration { return b.kill.Remaining(now) }

func (b *Basic) step(now time.Duration) {
	if !b.running {
		return
	}
	b.pos = randomPoint(b.src, b.bounds)
	b.move.Start(now, level.EyeBasicInterval(b.level), b.step)
}

func (b *Basic) timeout(time.Duration) {
	if !b.running {
		return
	}
	b.running = false
	b.move.Cancel()
	if b.OnTimeout != nil {
		b.OnTimeout()
	}
}

func randomPoint(src random.Source, b Bounds) Point {
	return Point{
		X: b.MinX + src.Float64()*(b.MaxX-b.MinX),
		Y: b.MinY + src.Float64()*(b.MaxY-b.MinY),
	}
}
