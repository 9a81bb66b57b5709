package level

import (
	"testing"
	"time"
)

func TestClampFallsBackToMin(t *testing.T) {
	if got := Clamp9(0); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := Clamp9(-5); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := Clamp9(42); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestEyeBasicInterval(t *testing.T) {
	if got := EyeBasicInterval(1); got != time.Second {
		t.Fatalf("expected 1s, got %v", got)
	}
	if got := EyeBasicInterval(9); got != 200*time.Millisecond {
		t.Fatalf("expected 200ms, got %v", got)
	}
}

func TestLookupTables(t *testing.T) {
	if EyeTrackInterval(1) != 600*time.Millisecond || EyeTrackInterval(9) != 120*time.Millisecond {
		t.Fatalf("unexpected track intervals")
	}
	if ReadingWPM(4) != 300 {
		t.Fatalf("expected 300 wpm, got %d", ReadingWPM(4))
	}
	if ShowDuration(9) != 200*time.Millisecond || BlankDuration(1) != 1400*time.Millisecond {
		t.Fatalf("unexpected show/blank durations")
	}
	if ShowDurationExtended(0) != 1150*time.Millisecond || ShowDurationExtended(18) != 50*time.Millisecond {
		t.Fatalf("unexpected extended durations")
	}
}

func TestLineWidthDefault(t *testing.T) {
	if LineWidth(5) != 36 {
		t.Fatalf("expected 36, got %d", LineWidth(5))
	}
	if LineWidth(9) != 28 {
		t.Fatalf("expected default width 28, got %d", LineWidth(9))
	}
}

func TestDrillAndExposure(t *testing.T) {
	if DrillCount(1) != 10 || DrillCount(9) != 50 {
		t.Fatalf("unexpected drill counts")
	}
	if DrillInterval(1) != 2000*time.Millisecond || DrillInterval(9) != 150*time.Millisecond {
		t.Fatalf("unexpected drill intervals %v %v", DrillInterval(1), DrillInterval(9))
	}
	if Exposure(1) != 2000*time.Millisecond || Exposure(9) != 250*time.Millisecond {
		t.Fatalf("unexpected exposure")
	}
	if GapPercent(1) != 5 || GapPercent(9) != 90 {
		t.Fatalf("unexpected gap percent")
	}
}

func TestTablesNonIncreasing(t *testing.T) {
	for _, table := range Tables() {
		if table.Unit != "ms" {
			continue
		}
		for i := 1; i < len(table.Values); i++ {
			if table.Values[i] > table.Values[i-1] {
				t.Fatalf("expected %s to be non-increasing, got %v", table.Name, table.Values)
			}
		}
	}
}
