package timer

import (
	"testing"
	"time"
)

func TestTimerFiresAtDeadline(t *testing.T) {
	var tm Timer
	calls := 0
	tm.Start(0, 100*time.Millisecond, func(time.Duration) { calls++ })
	if tm.Fire(99 * time.Millisecond) {
		t.Fatalf("expected no fire before deadline")
	}
	if !tm.Fire(100 * time.Millisecond) {
		t.Fatalf("expected fire at deadline")
	}
	if tm.Fire(200*time.Millisecond) || calls != 1 {
		t.Fatalf("expected exactly one call, got %d", calls)
	}
}

func TestTimerCancelNeverFires(t *testing.T) {
	var tm Timer
	tm.Start(0, 10*time.Millisecond, func(time.Duration) { t.Fatalf("cancelled timer fired") })
	tm.Cancel()
	if tm.Fire(time.Second) {
		t.Fatalf("expected cancelled timer to stay silent")
	}
}

func TestTimerPauseResumePreservesRemaining(t *testing.T) {
	var tm Timer
	var firedAt time.Duration
	tm.Start(0, 1000*time.Millisecond, func(now time.Duration) { firedAt = now })
	tm.SetPaused(400*time.Millisecond, true)
	tm.SetPaused(450*time.Millisecond, true)
	if got := tm.Remaining(5 * time.Second); got != 600*time.Millisecond {
		t.Fatalf("expected 600ms remaining while paused, got %v", got)
	}
	if tm.Fire(5 * time.Second) {
		t.Fatalf("expected paused timer to not fire")
	}
	tm.SetPaused(10*time.Second, false)
	tm.SetPaused(10*time.Second, false)
	if tm.Fire(10*time.Second + 599*time.Millisecond) {
		t.Fatalf("expected no fire before remaining elapsed")
	}
	if !tm.Fire(10*time.Second + 600*time.Millisecond) {
		t.Fatalf("expected fire after remaining elapsed")
	}
	if firedAt != 10*time.Second+600*time.Millisecond {
		t.Fatalf("unexpected fire time %v", firedAt)
	}
}

func TestTimerPausedPastDeadlineFiresOnResume(t *testing.T) {
	var tm Timer
	calls := 0
	tm.Start(0, 100*time.Millisecond, func(time.Duration) { calls++ })
	tm.SetPaused(300*time.Millisecond, true)
	tm.SetPaused(400*time.Millisecond, false)
	tm.Fire(400 * time.Millisecond)
	tm.Fire(500 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected single fire on resume, got %d", calls)
	}
}

func TestTimerRestartReplacesCallback(t *testing.T) {
	var tm Timer
	got := ""
	tm.Start(0, 10*time.Millisecond, func(time.Duration) { got = "first" })
	tm.Start(0, 20*time.Millisecond, func(time.Duration) { got = "second" })
	tm.Fire(time.Second)
	if got != "second" {
		t.Fatalf("expected replaced callback, got %q", got)
	}
}

func TestGroupFiresInDeadlineOrder(t *testing.T) {
	var g Group
	order := []string{}
	g.After(0, 30*time.Millisecond, func(time.Duration) { order = append(order, "c") })
	g.After(0, 10*time.Millisecond, func(time.Duration) { order = append(order, "a") })
	g.After(0, 20*time.Millisecond, func(time.Duration) { order = append(order, "b") })
	if fired := g.Fire(time.Second); fired != 3 {
		t.Fatalf("expected 3 fired, got %d", fired)
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected order %v", order)
	}
	if g.Len() != 0 {
		t.Fatalf("expected empty group, got %d", g.Len())
	}
}

func TestGroupCallbackArmsOnlyDueTimers(t *testing.T) {
	var g Group
	calls := 0
	g.After(0, 10*time.Millisecond, func(now time.Duration) {
		calls++
		g.After(now, 0, func(time.Duration) { calls++ })
		g.After(now, time.Second, func(time.Duration) { calls++ })
	})
	g.Fire(10 * time.Millisecond)
	if calls != 2 {
		t.Fatalf("expected immediate follow-up to fire, got %d calls", calls)
	}
	if g.Len() != 1 {
		t.Fatalf("expected one pending timer, got %d", g.Len())
	}
}

func TestGroupPauseAndClear(t *testing.T) {
	var g Group
	calls := 0
	g.After(0, 100*time.Millisecond, func(time.Duration) { calls++ })
	g.SetPaused(50*time.Millisecond, true)
	late := g.After(60*time.Millisecond, 100*time.Millisecond, func(time.Duration) { calls++ })
	if !late.Paused() {
		t.Fatalf("expected timer armed during pause to start paused")
	}
	g.Fire(time.Second)
	if calls != 0 {
		t.Fatalf("expected no fire while paused")
	}
	g.SetPaused(time.Second, false)
	g.Fire(time.Second + 50*time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected first timer to fire, got %d", calls)
	}
	g.Clear()
	g.Fire(10 * time.Second)
	if calls != 1 || g.Len() != 0 {
		t.Fatalf("expected cleared group to stay silent")
	}
}
