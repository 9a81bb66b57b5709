package clock

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	m := NewManual(time.Second)
	if got := m.Advance(500 * time.Millisecond); got != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %v", got)
	}
	m.Set(0)
	if m.Now() != 0 {
		t.Fatalf("expected 0 after set, got %v", m.Now())
	}
}

func TestCountdownCapsFrameDelta(t *testing.T) {
	c := NewCountdown(time.Second)
	c.Start(0)
	remaining, expired := c.Step(5 * time.Second)
	if expired {
		t.Fatalf("expected capped delta to not expire")
	}
	if remaining != time.Second-MaxFrameDelta {
		t.Fatalf("expected %v, got %v", time.Second-MaxFrameDelta, remaining)
	}
}

func TestCountdownExpiresOnce(t *testing.T) {
	c := NewCountdown(300 * time.Millisecond)
	c.Start(0)
	now := time.Duration(0)
	fired := 0
	for i := 0; i < 10; i++ {
		now += 100 * time.Millisecond
		if _, expired := c.Step(now); expired {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("expected one expiry, got %d", fired)
	}
	if c.Remaining() != 0 || !c.Expired() {
		t.Fatalf("expected expired countdown at zero")
	}
	c.Reset()
	if c.Remaining() != 300*time.Millisecond || c.Expired() {
		t.Fatalf("expected reset countdown")
	}
}

func TestCountdownPauseSkipsGap(t *testing.T) {
	c := NewCountdown(time.Second)
	c.Start(0)
	c.Step(100 * time.Millisecond)
	c.Pause()
	remaining, _ := c.Step(150 * time.Millisecond)
	if remaining != 900*time.Millisecond {
		t.Fatalf("expected first step after pause to contribute nothing, got %v", remaining)
	}
	remaining, _ = c.Step(250 * time.Millisecond)
	if remaining != 800*time.Millisecond {
		t.Fatalf("expected 800ms, got %v", remaining)
	}
}
