package visual

import (
	"testing"
	"time"

	"github.com/verte-zerg/mindflux/internal/random"
)

func frames(e *Engine, from, to time.Duration) {
	for now := from; now <= to; now += 50 * time.Millisecond {
		e.Frame(now)
	}
}

func TestPerSide(t *testing.T) {
	cases := map[Mode]int{Numbers2: 1, Numbers4: 2, Chars2: 1, Chars4: 2, Binary6: 3}
	for mode, want := range cases {
		if got := mode.PerSide(); got != want {
			t.Fatalf("expected %d symbols per side for %s, got %d", want, mode, got)
		}
	}
}

func TestPairGeneration(t *testing.T) {
	e := New(Params{Mode: Chars4}, random.NewFixed(0, 0.9))
	p := e.Pair()
	// Values below 0.5 pick lower case.
	if len(p.Left) != 2 || p.Left[0] < 'A' || p.Left[0] > 'z' {
		t.Fatalf("unexpected left group %q", p.Left)
	}
	e.SetParams(Params{Mode: Binary6})
	if p := e.Pair(); len(p.Left) != 3 || len(p.Right) != 3 {
		t.Fatalf("expected binary groups of 3, got %+v", p)
	}
	for _, r := range e.Pair().Left {
		if r != '0' && r != '1' {
			t.Fatalf("expected binary symbols, got %q", e.Pair().Left)
		}
	}
}

func TestChars4AlternatesConsonantVowel(t *testing.T) {
	e := New(Params{Mode: Chars4}, random.NewFixed(0))
	if got := e.Pair().Left; got != "ba" {
		t.Fatalf("expected consonant then vowel, got %q", got)
	}
}

func TestPhasesAlternate(t *testing.T) {
	e := New(Params{SpeedLevel: 9, IntervalLevel: 9, Mode: Numbers2}, random.NewFixed(0.5))
	shows := 0
	e.OnShow = func(Pair) { shows++ }
	e.SetRunning(0, true)
	if e.Phase() != PhaseShow || shows != 1 {
		t.Fatalf("expected show phase on start")
	}
	frames(e, 50*time.Millisecond, 200*time.Millisecond)
	if e.Phase() != PhaseBlank {
		t.Fatalf("expected blank after 200ms show")
	}
	frames(e, 250*time.Millisecond, 550*time.Millisecond)
	if e.Phase() != PhaseShow || shows != 2 {
		t.Fatalf("expected second show after 320ms blank, shows %d", shows)
	}
}

func TestPauseResumesRemainingPhase(t *testing.T) {
	e := New(Params{SpeedLevel: 1, IntervalLevel: 1, Mode: Numbers2}, random.NewFixed(0.5))
	e.SetRunning(0, true)
	frames(e, 50*time.Millisecond, 400*time.Millisecond)
	e.Pause(400 * time.Millisecond)
	if got := e.PhaseRemaining(10 * time.Second); got != 600*time.Millisecond {
		t.Fatalf("expected 600ms left in show, got %v", got)
	}
	left := e.TimeLeft()
	frames(e, 450*time.Millisecond, 10*time.Second)
	if e.TimeLeft() != left || e.Phase() != PhaseShow {
		t.Fatalf("expected paused engine to hold")
	}
	e.Resume(10 * time.Second)
	frames(e, 10*time.Second+50*time.Millisecond, 10*time.Second+600*time.Millisecond)
	if e.Phase() != PhaseBlank {
		t.Fatalf("expected blank after remaining show time")
	}
}

func TestRoundOverOnce(t *testing.T) {
	e := New(Params{Mode: Numbers2}, random.NewFixed(0.5))
	calls := 0
	e.OnRoundOver = func() { calls++ }
	e.SetRunning(0, true)
	frames(e, 50*time.Millisecond, 50*time.Second)
	if calls != 1 || !e.Over() || e.Phase() != PhaseBlank {
		t.Fatalf("expected a single round over in blank phase, got %d", calls)
	}
	e.Resume(50 * time.Second)
	if !e.Paused() {
		t.Fatalf("expected resume to be refused after round over")
	}
	e.Reset(50 * time.Second)
	if e.Over() || e.TimeLeft() != RoundDuration || e.Phase() != PhaseShow {
		t.Fatalf("expected reset to restart the round")
	}
}

func TestSeparation(t *testing.T) {
	e := New(Params{Distance: 1, Mode: Numbers2}, random.NewFixed(0))
	e.SetBoard(100, 30)
	if got := e.Separation(); got != 12 {
		t.Fatalf("expected 12 columns, got %d", got)
	}
}

func TestExtendedSpeed(t *testing.T) {
	e := New(Params{SpeedLevel: 18, Extended: true, Mode: Numbers2}, random.NewFixed(0))
	if e.ShowDuration() != 50*time.Millisecond {
		t.Fatalf("expected 50ms show, got %v", e.ShowDuration())
	}
}

func TestRoundOverAtFortyFiveSeconds(t *testing.T) {
	e := New(Params{SpeedLevel: 5, IntervalLevel: 5, Mode: Numbers2}, random.New(2))
	over := 0
	e.OnRoundOver = func() { over++ }
	e.SetRunning(0, true)
	frames(e, 50*time.Millisecond, RoundDuration-50*time.Millisecond)
	if over != 0 || e.Over() {
		t.Fatalf("expected the round to run until %v", RoundDuration)
	}
	e.Frame(RoundDuration)
	if over != 1 || !e.Over() {
		t.Fatalf("expected round over within one frame of %v, got %d calls", RoundDuration, over)
	}
}

func TestStopSilencesRound(t *testing.T) {
	e := New(Params{SpeedLevel: 9, IntervalLevel: 9, Mode: Numbers2}, random.New(4))
	shows, over := 0, 0
	e.OnShow = func(Pair) { shows++ }
	e.OnRoundOver = func() { over++ }
	e.SetRunning(0, true)
	frames(e, 50*time.Millisecond, 10*time.Second)
	if shows < 2 {
		t.Fatalf("expected stimuli before stopping, got %d", shows)
	}
	e.SetRunning(10*time.Second, false)
	before := shows
	frames(e, 10*time.Second, 60*time.Second)
	if shows != before || over != 0 {
		t.Fatalf("expected no callbacks after stop, got %d shows and %d round ends", shows-before, over)
	}
}
