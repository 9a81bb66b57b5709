package drill

import (
	"testing"
	"time"

	"github.com/verte-zerg/mindflux/internal/random"
)

// playBlock fires frames until the block reaches the answer phase.
func playBlock(b interface {
	Frame(time.Duration)
	Phase() Phase
}, from time.Duration) time.Duration {
	now := from
	for i := 0; i < 200 && b.Phase() != PhaseAnswer; i++ {
		now += 100 * time.Millisecond
		b.Frame(now)
	}
	return now
}

func TestMentalCountBlocks(t *testing.T) {
	m := NewMentalCount(random.NewFixed(0.9))
	if !m.SetBlockSize(5) || !m.SetSpeed(9) {
		t.Fatalf("expected settings accepted while idle")
	}
	if m.SetBlockSize(7) {
		t.Fatalf("expected invalid block size rejected")
	}
	m.SetRunning(0, true)
	if m.Current() != "+1" {
		t.Fatalf("expected +1 shown, got %q", m.Current())
	}
	if m.SetSpeed(1) {
		t.Fatalf("expected settings locked while running")
	}
	now := playBlock(m, 0)
	if m.Count() != 5 {
		t.Fatalf("expected count 5, got %d", m.Count())
	}
	v, err := m.Continue(now, "5")
	if err != nil || !v.Correct || m.Phase() != PhaseCooldown {
		t.Fatalf("expected cooldown after a valid answer, got %+v %v", v, err)
	}
	for i := 1; i <= 4; i++ {
		m.Frame(now + time.Duration(i)*time.Second)
		if m.Cooldown() != CooldownSeconds-i {
			t.Fatalf("expected %d seconds left, got %d", CooldownSeconds-i, m.Cooldown())
		}
	}
	m.Frame(now + 5*time.Second)
	if m.Phase() != PhaseShow {
		t.Fatalf("expected next block after the cooldown, got %v", m.Phase())
	}
	now = playBlock(m, now+5*time.Second)
	if m.Count() != 10 {
		t.Fatalf("expected count to carry over, got %d", m.Count())
	}
	ended := 0
	m.OnTimeout = func() { ended++ }
	v, err = m.Finish(now, "9")
	if err != nil || v.Correct || ended != 1 || m.Phase() != PhaseEnded {
		t.Fatalf("expected a wrong final answer to end the drill, got %+v %v", v, err)
	}
}

func TestBlockInvalidAnswerKeepsPhase(t *testing.T) {
	m := NewMentalCount(random.NewFixed(0.5))
	m.SetBlockSize(5)
	m.SetRunning(0, true)
	now := playBlock(m, 0)
	if _, err := m.Continue(now, "x"); err == nil {
		t.Fatalf("expected parse error")
	}
	if m.Phase() != PhaseAnswer {
		t.Fatalf("expected answer phase kept")
	}
	v, err := m.GiveUp(now)
	if err != nil || !v.GaveUp || v.Want != 0 || m.Phase() != PhaseEnded {
		t.Fatalf("expected give up to end with the count, got %+v %v", v, err)
	}
}

func TestBlockAnswerOutsidePhase(t *testing.T) {
	m := NewMentalCount(random.NewFixed(0.5))
	if _, err := m.Finish(0, "1"); err != ErrNotAnswering {
		t.Fatalf("expected ErrNotAnswering, got %v", err)
	}
}

func TestHiLoValues(t *testing.T) {
	cases := map[string]int{"2": 1, "6": 1, "7": 0, "9": 0, "10": -1, "J": -1, "A": -1, "K": -1}
	for rank, want := range cases {
		if got := HiLoValue(rank); got != want {
			t.Fatalf("expected %d for %s, got %d", want, rank, got)
		}
	}
}

func TestHiLoShoeReshuffles(t *testing.T) {
	h := NewHiLo(random.New(5))
	if h.Remaining() != 52 {
		t.Fatalf("expected a 52-card shoe, got %d", h.Remaining())
	}
	if h.SetDecks(10) {
		t.Fatalf("expected 10 decks rejected")
	}
	if !h.SetDecks(18) || h.Remaining() != 18*52 {
		t.Fatalf("expected an 18-deck shoe")
	}
	h.SetDecks(1)
	sum := 0
	for i := 0; i < 52; i++ {
		_, v := h.next()
		sum += v
	}
	if sum != 0 {
		t.Fatalf("expected a balanced count over a full deck, got %d", sum)
	}
	if h.Remaining() != 0 {
		t.Fatalf("expected an exhausted shoe")
	}
	h.next()
	if h.Remaining() != 51 {
		t.Fatalf("expected a reshuffle when exhausted, got %d", h.Remaining())
	}
}

func TestHiLoCountsCards(t *testing.T) {
	h := NewHiLo(random.New(9))
	h.SetBlockSize(50)
	h.SetSpeed(9)
	h.SetRunning(0, true)
	playBlock(h, 0)
	if h.Remaining() != 2 {
		t.Fatalf("expected 50 cards dealt, %d left", h.Remaining())
	}
	if h.Count() < -50 || h.Count() > 50 {
		t.Fatalf("unexpected count %d", h.Count())
	}
}
