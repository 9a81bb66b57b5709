package eye

import (
	"math"
	"testing"
)

func TestComputeBounds(t *testing.T) {
	b := ComputeBounds(100, 50, Geometry{Size: 24, Margin: 8})
	if b.MinX != 20 || b.MaxX != 80 || b.MinY != 20 || b.MaxY != 30 {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestComputeBoundsClampsTinyBoards(t *testing.T) {
	b := ComputeBounds(-5, 0, Geometry{Size: 24, Margin: 8})
	if b.MinX != b.MaxX || b.MinY != b.MaxY || b.MinX != 20 {
		t.Fatalf("expected a single valid point, got %+v", b)
	}
	if !b.Contains(b.Center()) {
		t.Fatalf("expected centre inside degenerate bounds")
	}
}

func TestReflectAndClamp(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	p := b.Reflect(Point{X: 12, Y: -3})
	if p.X != 8 || p.Y != 3 {
		t.Fatalf("expected reflected point, got %+v", p)
	}
	p = b.Reflect(Point{X: 40, Y: 5})
	if p.X != 0 {
		t.Fatalf("expected clamp after a deep overshoot, got %+v", p)
	}
}

func TestGridToCell(t *testing.T) {
	g := Grid{Cols: 80, Rows: 24}
	w, h := g.Board()
	if w != 80 || h != 48 {
		t.Fatalf("unexpected board %v x %v", w, h)
	}
	col, row := g.ToCell(Point{X: 10.4, Y: 9})
	if col != 10 || row != 5 {
		t.Fatalf("expected (10,5), got (%d,%d)", col, row)
	}
	col, row = g.ToCell(Point{X: 500, Y: -1})
	if col != 79 || row != 0 {
		t.Fatalf("expected clamped cell, got (%d,%d)", col, row)
	}
}

func TestStepEasedCurve(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}
	min := Step(1, b, 12)
	max := Step(9, b, 12)
	if math.Abs(min-32.4) > 1e-9 {
		t.Fatalf("expected 32.4 at level 1, got %v", min)
	}
	if math.Abs(max-102.9) > 1e-9 {
		t.Fatalf("expected 102.9 at level 9, got %v", max)
	}
	prev := min
	for d := 2; d <= 9; d++ {
		s := Step(d, b, 12)
		if s < prev {
			t.Fatalf("expected non-decreasing steps")
		}
		prev = s
	}
	mid := Step(5, b, 12)
	if mid-min <= max-mid {
		t.Fatalf("expected eased curve to front-load growth")
	}
}
