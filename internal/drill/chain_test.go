package drill

import (
	"testing"
	"time"

	"github.com/verte-zerg/mindflux/internal/random"
)

func TestChainSumFlow(t *testing.T) {
	c := NewChainSum(1, 1, random.NewFixed(0.35))
	ended := 0
	c.OnTimeout = func() { ended++ }
	c.SetRunning(0, true)
	if c.Phase() != PhaseShow || c.Current() != 3 {
		t.Fatalf("expected first digit shown, got %v %d", c.Phase(), c.Current())
	}
	for now := 2 * time.Second; now <= 20*time.Second; now += 2 * time.Second {
		c.Frame(now)
	}
	if c.Phase() != PhaseAnswer || c.Current() != -1 {
		t.Fatalf("expected answer phase after 10 digits, got %v", c.Phase())
	}
	if shown, total := c.Progress(); shown != 10 || total != 10 {
		t.Fatalf("unexpected progress %d/%d", shown, total)
	}
	if _, err := c.Submit(20*time.Second, "treinta"); err == nil {
		t.Fatalf("expected invalid input error")
	}
	if c.Phase() != PhaseAnswer {
		t.Fatalf("expected invalid input to keep the answer phase")
	}
	v, err := c.Submit(20*time.Second, " 30 ")
	if err != nil || !v.Correct || ended != 1 || c.Phase() != PhaseEnded {
		t.Fatalf("expected correct final answer, got %+v %v", v, err)
	}
	c.SetRunning(21*time.Second, false)
	if _, ok := c.Verdict(); !ok {
		t.Fatalf("expected stop after the end to keep the verdict")
	}
}

func TestChainSumHelpPauses(t *testing.T) {
	c := NewChainSum(1, 9, random.NewFixed(0.5))
	c.SetRunning(0, true)
	c.SetHelp(100*time.Millisecond, true)
	c.Frame(10 * time.Second)
	if shown, _ := c.Progress(); shown != 1 {
		t.Fatalf("expected no progress while help is open, got %d", shown)
	}
	c.SetHelp(10*time.Second, false)
	c.Frame(10*time.Second + 50*time.Millisecond)
	if shown, _ := c.Progress(); shown != 2 {
		t.Fatalf("expected the remaining 50ms to elapse, got %d", shown)
	}
}

func TestChainSumStopResets(t *testing.T) {
	c := NewChainSum(1, 1, random.NewFixed(0.5))
	c.SetRunning(0, true)
	c.SetRunning(time.Second, false)
	if c.Phase() != PhaseIdle || c.Current() != -1 {
		t.Fatalf("expected idle after stop")
	}
	c.Frame(10 * time.Second)
	if c.Phase() != PhaseIdle {
		t.Fatalf("expected cancelled timers to stay silent")
	}
}
