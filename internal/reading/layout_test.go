package reading

import (
	"testing"
	"time"
)

func TestBuildLinesGreedy(t *testing.T) {
	lines := BuildLines([]string{"en", "un", "lugar", "de", "la", "mancha"}, 8)
	want := []string{"en un", "lugar de", "la", "mancha"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, lines)
		}
	}
}

func TestBuildLinesLongWordStandsAlone(t *testing.T) {
	lines := BuildLines([]string{"a", "extraordinariamente", "b"}, 6)
	if len(lines) != 3 || lines[1] != "extraordinariamente" {
		t.Fatalf("expected long word on its own line, got %v", lines)
	}
}

func TestBuildLinesEdgeCases(t *testing.T) {
	if lines := BuildLines(nil, 10); len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected single empty line, got %v", lines)
	}
	if lines := BuildLines([]string{"a", "b"}, 0); len(lines) != 2 {
		t.Fatalf("expected one word per line, got %v", lines)
	}
}

func TestBuildLinesMeasuresCells(t *testing.T) {
	lines := BuildLines([]string{"日本", "語"}, 5)
	if len(lines) != 2 {
		t.Fatalf("expected wide runes to wrap, got %v", lines)
	}
}

func TestNormalizeComposes(t *testing.T) {
	decomposed := "n\u0303"
	if got := Normalize(decomposed); got != "\u00f1" {
		t.Fatalf("expected composed rune, got %q", got)
	}
}

func TestMsPerLine(t *testing.T) {
	if got := MsPerLine(5, 300); got != time.Second {
		t.Fatalf("expected 1s, got %v", got)
	}
	if got := MsPerLine(0, 0); got != time.Second {
		t.Fatalf("expected clamped 1 word at 60 wpm, got %v", got)
	}
	if got := MsPerLine(1, 6000); got != 60*time.Millisecond {
		t.Fatalf("expected 60ms floor, got %v", got)
	}
}

func TestCellInterval(t *testing.T) {
	if got := CellInterval(28, 200); got != 1680*time.Millisecond {
		t.Fatalf("expected 1680ms, got %v", got)
	}
}

func TestRowsFor(t *testing.T) {
	if RowsFor(9, 2) != 4 {
		t.Fatalf("expected 4 rows, got %d", RowsFor(9, 2))
	}
	if RowsFor(100, 2) != 10 {
		t.Fatalf("expected rows capped at 10, got %d", RowsFor(100, 2))
	}
	if RowsFor(10, 0) != 0 {
		t.Fatalf("expected 0 rows for zero row height")
	}
}
