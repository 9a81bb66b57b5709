package eye

import (
	"math"
	"testing"
	"time"

	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/random"
)

var boardSizes = [][2]int{{80, 24}, {3, 1}, {0, 0}, {-5, 7}, {200, 60}}

func TestBasicMovesAtInterval(t *testing.T) {
	b := NewBasic(9, TerminalGeometry(), random.NewFixed(0.1, 0.9, 0.5, 0.5))
	b.SetBoard(80, 24)
	b.SetRunning(0, true)
	first := b.Pos()
	b.Frame(199 * time.Millisecond)
	if b.Pos() != first {
		t.Fatalf("expected no move before the interval")
	}
	b.Frame(200 * time.Millisecond)
	if b.Pos() == first {
		t.Fatalf("expected a move at 200ms")
	}
	if !b.Bounds().Contains(b.Pos()) {
		t.Fatalf("expected position inside bounds")
	}
}

func TestBasicSuspendKeepsRoundTime(t *testing.T) {
	b := NewBasic(1, TerminalGeometry(), random.NewFixed(0.3))
	calls := 0
	b.OnTimeout = func() { calls++ }
	b.SetBoard(40, 12)
	b.SetRunning(0, true)
	b.SetSuspended(100*time.Millisecond, true)
	pos := b.Pos()
	b.Frame(5 * time.Second)
	if b.Pos() != pos {
		t.Fatalf("expected suspended target to hold still")
	}
	b.Frame(30 * time.Second)
	if calls != 1 || b.Running() {
		t.Fatalf("expected round to end while suspended")
	}
	b.Frame(31 * time.Second)
	if calls != 1 {
		t.Fatalf("expected a single timeout")
	}
}

func TestIsoDistanceKeepsStep(t *testing.T) {
	src := random.New(42)
	e := NewIsoDistance(9, 5, TerminalGeometry(), src)
	e.SetBoard(120, 40)
	e.SetRunning(0, true)
	step := Step(5, e.Bounds(), TerminalGeometry().Radius())
	for i := 1; i <= 50; i++ {
		prev := e.Pos()
		e.Frame(time.Duration(i) * 120 * time.Millisecond)
		if i == 1 {
			continue
		}
		if !e.Bounds().Contains(e.Pos()) {
			t.Fatalf("expected position inside bounds at step %d", i)
		}
		if e.LastStepExact() {
			d := math.Hypot(e.Pos().X-prev.X, e.Pos().Y-prev.Y)
			if math.Abs(d-step) > 1e-6 {
				t.Fatalf("expected step %v, got %v", step, d)
			}
		}
	}
}

func TestIsoDistanceAccumulatorCapsDelta(t *testing.T) {
	e := NewIsoDistance(1, 1, TerminalGeometry(), random.New(1))
	e.SetBoard(120, 40)
	e.SetRunning(0, true)
	start := e.Pos()
	e.Frame(0)
	e.Frame(10 * time.Second)
	moved := e.Pos()
	if moved == start {
		t.Fatalf("expected one step after a long frame")
	}
	e.Frame(10*time.Second + 100*time.Millisecond)
	if e.Pos() != moved {
		t.Fatalf("expected capped delta to reset the accumulator")
	}
}

func TestIsoDistanceFallbackStaysInBounds(t *testing.T) {
	// Every sample points the same way, far outside a tiny board.
	e := NewIsoDistance(1, 9, TerminalGeometry(), random.NewFixed(0.5))
	e.SetBoard(8, 3)
	e.SetRunning(0, true)
	for i := 0; i < 20; i++ {
		e.Frame(time.Duration(i) * 600 * time.Millisecond)
		if !e.Bounds().Contains(e.Pos()) {
			t.Fatalf("expected fallback position inside bounds, got %+v", e.Pos())
		}
	}
}

func TestIsoDistanceTimeout(t *testing.T) {
	e := NewIsoDistance(5, 5, TerminalGeometry(), random.New(3))
	calls := 0
	e.OnTimeout = func() { calls++ }
	e.SetBoard(80, 24)
	e.SetRunning(0, true)
	e.Frame(30 * time.Second)
	e.Frame(31 * time.Second)
	if calls != 1 || e.Running() {
		t.Fatalf("expected a single timeout, got %d", calls)
	}
}

func TestBasicStaysInBoundsAcrossBoards(t *testing.T) {
	interval := level.EyeBasicInterval(9)
	for _, size := range boardSizes {
		b := NewBasic(9, TerminalGeometry(), random.New(int64(size[0]*1000+size[1])))
		for i := 0; i < 10000; i++ {
			b.SetBoard(size[0], size[1])
			if !b.Bounds().Contains(b.Pos()) {
				t.Fatalf("expected position inside bounds on %dx%d, got %+v in %+v", size[0], size[1], b.Pos(), b.Bounds())
			}
		}
		samples := 0
		for start := time.Duration(0); samples < 10000; start += RoundDuration {
			b.SetRunning(start, true)
			for now := start + interval; now < start+RoundDuration; now += interval {
				b.Frame(now)
				samples++
				if !b.Bounds().Contains(b.Pos()) {
					t.Fatalf("expected moved position inside bounds on %dx%d, got %+v", size[0], size[1], b.Pos())
				}
			}
			b.SetRunning(start+RoundDuration, false)
		}
	}
}

func TestIsoDistanceStaysInBoundsAcrossBoards(t *testing.T) {
	interval := level.EyeTrackInterval(9)
	geo := TerminalGeometry()
	for _, size := range boardSizes {
		e := NewIsoDistance(9, 5, geo, random.New(int64(size[0]*1000+size[1])))
		e.SetBoard(size[0], size[1])
		step := Step(5, e.Bounds(), geo.Radius())
		samples := 0
		for start := time.Duration(0); samples < 10000; start += RoundDuration {
			e.SetRunning(start, true)
			for now := start + interval; now < start+RoundDuration; now += interval {
				prev := e.Pos()
				e.Frame(now)
				samples++
				if !e.Bounds().Contains(e.Pos()) {
					t.Fatalf("expected position inside bounds on %dx%d, got %+v in %+v", size[0], size[1], e.Pos(), e.Bounds())
				}
				if e.Pos() == prev || !e.LastStepExact() {
					continue
				}
				got := math.Hypot(e.Pos().X-prev.X, e.Pos().Y-prev.Y)
				if math.Abs(got-step) > 1e-9 {
					t.Fatalf("expected exact step %.4f on %dx%d, got %.4f", step, size[0], size[1], got)
				}
			}
			e.SetRunning(start+RoundDuration, false)
		}
	}
}

func TestBasicStopHoldsPosition(t *testing.T) {
	b := NewBasic(9, TerminalGeometry(), random.New(11))
	calls := 0
	b.OnTimeout = func() { calls++ }
	b.SetBoard(80, 24)
	b.SetRunning(0, true)
	b.Frame(5 * time.Second)
	b.SetRunning(5*time.Second, false)
	held := b.Pos()
	for now := 5 * time.Second; now <= 40*time.Second; now += 100 * time.Millisecond {
		b.Frame(now)
	}
	if calls != 0 || b.Pos() != held {
		t.Fatalf("expected a stopped round to stay still, got %d timeouts", calls)
	}
}

func TestIsoDistanceStopHoldsPosition(t *testing.T) {
	e := NewIsoDistance(9, 5, TerminalGeometry(), random.New(11))
	calls := 0
	e.OnTimeout = func() { calls++ }
	e.SetBoard(80, 24)
	e.SetRunning(0, true)
	for now := time.Duration(0); now <= 5*time.Second; now += 100 * time.Millisecond {
		e.Frame(now)
	}
	e.SetRunning(5*time.Second, false)
	held := e.Pos()
	for now := 5 * time.Second; now <= 40*time.Second; now += 100 * time.Millisecond {
		e.Frame(now)
	}
	if calls != 0 || e.Pos() != held {
		t.Fatalf("expected a stopped round to stay still, got %d timeouts", calls)
	}
}
