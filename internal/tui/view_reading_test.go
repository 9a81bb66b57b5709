package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/mindflux/internal/model"
	"github.com/verte-zerg/mindflux/internal/reading"
)

func newTestColumnView() *columnView {
	v := newColumnView(env{
		text:    "aaaa bbbb cccc dddd eeee ffff gggg hhhh",
		play:    model.PlayConfig{Level: 1, WidthIdx: 1},
		timeout: func() {},
	})
	v.engine.Configure(0, reading.ColumnParams{
		Text:      "aaaa bbbb cccc dddd eeee ffff gggg hhhh",
		CharWidth: 4,
		WPM:       200,
		Rows:      2,
	})
	return v
}

func TestColumnViewSweepsAcrossRows(t *testing.T) {
	v := newTestColumnView()
	v.SetRunning(0, true)

	lines := strings.Split(v.Render(0, 20, 6), "\n")
	if !strings.Contains(lines[0], "aaaa") {
		t.Fatalf("expected first cell on row 0, got %q", lines[0])
	}

	step := reading.CellInterval(4, 200)
	v.Frame(step)
	lines = strings.Split(v.Render(step, 20, 6), "\n")
	if !strings.Contains(lines[0], "bbbb") {
		t.Fatalf("expected second cell on row 0, got %q", lines[0])
	}
	if strings.Contains(lines[0], "aaaa") {
		t.Fatalf("expected first cell hidden after the highlight moved")
	}
	if strings.Contains(lines[2], "bbbb") {
		t.Fatalf("expected second cell not on the second grid row, got %q", lines[2])
	}
	if idx := strings.Index(lines[0], "bbbb"); idx < 10 {
		t.Fatalf("expected second cell in the right column, found at %d in %q", idx, lines[0])
	}
}

func TestColumnViewThirdCellStartsSecondRow(t *testing.T) {
	v := newTestColumnView()
	v.SetRunning(0, true)
	step := reading.CellInterval(4, 200)
	v.Frame(step)
	v.Frame(2 * step)

	lines := strings.Split(v.Render(2*step, 20, 6), "\n")
	if !strings.Contains(lines[2], "cccc") {
		t.Fatalf("expected third cell on the second grid row, got %q", lines[2])
	}
	if idx := strings.Index(lines[2], "cccc"); idx > 2 {
		t.Fatalf("expected third cell in the left column, found at %d in %q", idx, lines[2])
	}
}
