package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Card", "Value", "Count"}
	rows := [][]string{
		{"A♠", "-1", "12"},
		{"10♥", "-1", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Card  Value  Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "A♠       -1     12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "10♥      -1      3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil lines, got %v", lines)
	}
}
