// Package eye implements the eye-movement exercises: a target that jumps to
// random positions, and one that moves a fixed distance per step.
package eye

import "math"

// Point is a position in board units.
type Point struct {
	X float64
	Y float64
}

// Bounds is the rectangle a target centre may occupy.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Geometry is the target size and the board margin, in board units.
type Geometry struct {
	Size   float64
	Margin float64
}

// Radius is half the target size.
func (g Geometry) Radius() float64 { return g.Size / 2 }

// TerminalGeometry is a one-cell target with a one-unit margin on a board
// measured by Grid.
func TerminalGeometry() Geometry {
	return Geometry{Size: 2, Margin: 1}
}

// ComputeBounds returns the centre bounds for a width x height board. Sizes
// too small to hold the target are raised to the minimum usable size.
func ComputeBounds(width, height float64, g Geometry) Bounds {
	minSide := g.Size + 2*g.Margin
	if width < minSide || math.IsNaN(width) {
		width = minSide
	}
	if height < minSide || math.IsNaN(height) {
		height = minSide
	}
	r := g.Radius()
	minX := g.Margin + r
	minY := g.Margin + r
	return Bounds{
		MinX: minX,
		MaxX: math.Max(minX, width-g.Margin-r),
		MinY: minY,
		MaxY: math.Max(minY, height-g.Margin-r),
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Clamp moves p to the nearest point inside b.
func (b Bounds) Clamp(p Point) Point {
	return Point{X: clamp(p.X, b.MinX, b.MaxX), Y: clamp(p.Y, b.MinY, b.MaxY)}
}

// Center returns the middle of b.
func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Reflect mirrors the coordinates of p that overshoot b back inside, then
// clamps what still does not fit.
func (b Bounds) Reflect(p Point) Point {
	p.X = reflect(p.X, b.MinX, b.MaxX)
	p.Y = reflect(p.Y, b.MinY, b.MaxY)
	return b.Clamp(p)
}

// Grid maps a terminal cell grid to board units. A cell is about twice as
// tall as it is wide, so rows count two units and distances stay isotropic.
type Grid struct {
	Cols int
	Rows int
}

// Board returns the board size in units.
func (g Grid) Board() (float64, float64) {
	return float64(g.Cols), float64(g.Rows * 2)
}

// ToCell returns the cell holding p.
func (g Grid) ToCell(p Point) (col, row int) {
	col = int(math.Round(p.X))
	row = int(math.Round(p.Y / 2))
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return col, row
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func reflect(v, lo, hi float64) float64 {
	if v > hi {
		return hi - (v - hi)
	}
	if v < lo {
		return lo + (lo - v)
	}
	return v
}
