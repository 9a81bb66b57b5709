package eye

import (
	"math"
	"time"

	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/random"
	"github.com/verte-zerg/mindflux/internal/timer"
)

const (
	// MaxAttempts bounds the direction samples per step.
	MaxAttempts = 48
	// jitterCone is the half-width of the sampled bearing around the
	// centre-ward direction.
	jitterCone = math.Pi
)

// Step is the distance of one move at distanceLevel. The eased curve keeps
// low levels close together and spreads the high ones.
func Step(distanceLevel int, b Bounds, radius float64) float64 {
	reachX := math.Max(0, b.MaxX-b.MinX)
	reachY := math.Max(0, b.MaxY-b.MinY)
	span := math.Max(1, math.Min(reachX, reachY))
	diag := math.Hypot(reachX, reachY)

	rawMin := math.Max(radius*1.8, span*0.18)
	rawMax := math.Max(rawMin+14, math.Min(span*0.98, diag*0.8))

	t := math.Pow(float64(level.Clamp9(distanceLevel)-1)/8, 0.55)
	scaledMin := rawMin * 1.5
	scaledMax := math.Max(scaledMin, rawMax*1.05)
	return scaledMin + t*(scaledMax-scaledMin)
}

// IsoDistance moves the target a fixed distance per step, biased back toward
// the centre of the board.
type IsoDistance struct {
	level     int
	distance  int
	geo       Geometry
	grid      Grid
	bounds    Bounds
	pos       Point
	src       random.Source
	running   bool
	suspended bool
	acc       time.Duration
	last      time.Duration
	hasLast   bool
	exact     bool
	kill      timer.Timer

	// OnTimeout runs once when the round time is up.
	OnTimeout func()
}

// NewIsoDistance returns an idle engine.
func NewIsoDistance(lvl, distance int, geo Geometry, src random.Source) *IsoDistance {
	e := &IsoDistance{level: level.Clamp9(lvl), distance: level.Clamp9(distance), geo: geo, src: src}
	e.bounds = ComputeBounds(0, 0, geo)
	e.pos = e.bounds.Center()
	return e
}

// SetLevel changes the step interval and restarts the accumulator.
func (e *IsoDistance) SetLevel(lvl int) {
	e.level = level.Clamp9(lvl)
	e.acc = 0
	e.hasLast = false
}

// SetDistance changes the step distance.
func (e *IsoDistance) SetDistance(distance int) {
	e.distance = level.Clamp9(distance)
}

// Level returns the speed level.
func (e *IsoDistance) Level() int { return e.level }

// Distance returns the distance level.
func (e *IsoDistance) Distance() int { return e.distance }

// SetRunning starts the round from a random position, or stops it.
func (e *IsoDistance) SetRunning(now time.Duration, running bool) {
	if e.running == running {
		return
	}
	e.running = running
	e.kill.Cancel()
	e.acc = 0
	e.hasLast = false
	if !running {
		return
	}
	e.pos = randomPoint(e.src, e.bounds)
	e.move()
	e.kill.Start(now, RoundDuration, e.timeout)
}

// SetSuspended stops movement while the terminal is unfocused. The round time
// keeps running.
func (e *IsoDistance) SetSuspended(now time.Duration, suspended bool) {
	e.suspended = suspended
	e.acc = 0
	e.hasLast = false
}

// SetBoard recomputes the bounds and pulls the target inside them.
func (e *IsoDistance) SetBoard(width, height int) {
	e.grid = Grid{Cols: width, Rows: height}
	w, h := e.grid.Board()
	e.bounds = ComputeBounds(w, h, e.geo)
	e.pos = e.bounds.Clamp(e.pos)
}

// Frame accumulates frame time, capped at the interval, and steps each time a
// full interval has built up.
func (e *IsoDistance) Frame(now time.Duration) {
	if !e.running {
		return
	}
	e.kill.Fire(now)
	if !e.running || e.suspended {
		return
	}
	interval := level.EyeTrackInterval(e.level)
	if !e.hasLast {
		e.last = now
		e.hasLast = true
	}
	delta := now - e.last
	e.last = now
	if delta > interval {
		delta = interval
	}
	if delta < 0 {
		delta = 0
	}
	e.acc += delta
	if e.acc >= interval {
		e.acc %= interval
		e.move()
	}
}

// Pos returns the target centre.
func (e *IsoDistance) Pos() Point { return e.pos }

// Cell returns the grid cell of the target.
func (e *IsoDistance) Cell() (int, int) { return e.grid.ToCell(e.pos) }

// Bounds returns the current bounds.
func (e *IsoDistance) Bounds() Bounds { return e.bounds }

// Running reports whether a round is active.
func (e *IsoDistance) Running() bool { return e.running }

// LastStepExact reports whether the last move kept the exact step distance.
func (e *IsoDistance) LastStepExact() bool { return e.exact }

// TimeLeft returns the round time left.
func (e *IsoDistance) TimeLeft(now time.Duration) time.Duration { return e.kill.Remaining(now) }

func (e *IsoDistance) move() {
	base := e.bounds.Clamp(e.pos)
	step := Step(e.distance, e.bounds, e.geo.Radius())
	c := e.bounds.Center()
	toCenter := math.Atan2(c.Y-base.Y, c.X-base.X)

	var best Point
	bestOvershoot := math.Inf(1)
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		angle := toCenter + (e.src.Float64()-0.5)*2*jitterCone
		candidate := Point{X: base.X + math.Cos(angle)*step, Y: base.Y + math.Sin(angle)*step}
		if e.bounds.Contains(candidate) {
			e.pos = candidate
			e.exact = true
			return
		}
		if o := overshoot(candidate, e.bounds); o < bestOvershoot {
			best, bestOvershoot = candidate, o
		}
	}
	e.pos = e.bounds.Reflect(best)
	e.exact = false
}

func (e *IsoDistance) timeout(time.Duration) {
	if !e.running {
		return
	}
	e.running = false
	if e.OnTimeout != nil {
		e.OnTimeout()
	}
}

func overshoot(p Point, b Bounds) float64 {
	dx := math.Max(0, math.Max(b.MinX-p.X, p.X-b.MaxX))
	dy := math.Max(0, math.Max(b.MinY-p.Y, p.Y-b.MaxY))
	return dx + dy
}
