package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/mindflux/internal/level"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.Mean != 5 || s.StdDev != 2 {
		t.Fatalf("expected mean 5 sd 2, got %v %v", s.Mean, s.StdDev)
	}
	if s.Min != 2 || s.Max != 9 || s.Count != 8 {
		t.Fatalf("unexpected bounds %+v", s)
	}
	if empty := Summarize(nil); empty.Count != 0 || math.IsNaN(empty.Mean) {
		t.Fatalf("expected zero summary, got %+v", empty)
	}
}

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("expected extremes, got %q", got)
	}
}

func TestRenderAttempts(t *testing.T) {
	var buf bytes.Buffer
	err := RenderAttempts(&buf, []Attempt{
		{Index: 1, Success: true, ElapsedMs: 300, Label: "correct"},
		{Index: 2, Success: false, ElapsedMs: 2000, Label: "timeout"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Hits: 1/2") || !strings.Contains(out, "Mean: 1150 ms") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if !strings.Contains(out, "timeout") {
		t.Fatalf("expected labels in report")
	}
}

func TestRenderLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLevels(&buf, level.Tables()); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(level.Tables())+1 {
		t.Fatalf("expected header plus one row per table, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "eye basic interval") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}
