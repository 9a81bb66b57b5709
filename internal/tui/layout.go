package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	s     string
	width int
	// cont marks the trailing half of a wide rune.
	cont bool
}

// canvas is a fixed grid of terminal cells that text is placed on by
// position. Wide runes take two cells.
type canvas struct {
	width  int
	height int
	rows   [][]cell
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &canvas{width: width, height: height, rows: make([][]cell, height)}
	for i := range c.rows {
		row := make([]cell, width)
		for j := range row {
			row[j] = cell{s: " ", width: 1}
		}
		c.rows[i] = row
	}
	return c
}

// put writes text starting at col on row. Runes that do not fit are dropped.
func (c *canvas) put(col, row int, text string, style lipgloss.Style) {
	if row < 0 || row >= c.height {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col < 0 {
			col += w
			continue
		}
		if col+w > c.width {
			return
		}
		c.clearWide(row, col)
		c.rows[row][col] = cell{s: style.Render(string(r)), width: w}
		for k := 1; k < w; k++ {
			c.rows[row][col+k] = cell{cont: true}
		}
		col += w
	}
}

// putCentered writes text centred on centerCol.
func (c *canvas) putCentered(centerCol, row int, text string, style lipgloss.Style) {
	c.put(centerCol-textWidth(text)/2, row, text, style)
}

// clearWide blanks a wide rune that col would cut in half.
func (c *canvas) clearWide(row, col int) {
	line := c.rows[row]
	if line[col].cont {
		for k := col - 1; k >= 0; k-- {
			if !line[k].cont {
				line[k] = cell{s: " ", width: 1}
				break
			}
			line[k] = cell{s: " ", width: 1}
		}
	}
	if line[col].width > 1 {
		for k := col + 1; k < c.width && line[k].cont; k++ {
			line[k] = cell{s: " ", width: 1}
		}
	}
}

func (c *canvas) String() string {
	lines := make([]string, len(c.rows))
	for i, row := range c.rows {
		var b strings.Builder
		for _, item := range row {
			if item.cont {
				continue
			}
			b.WriteString(item.s)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// fit truncates s to width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// wrapWords breaks text into lines of at most width cells on spaces. A word
// longer than width is split.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}
	for _, word := range words {
		for textWidth(word) > width {
			if lineWidth > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				break
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		w := textWidth(word)
		if w == 0 {
			continue
		}
		if lineWidth > 0 && lineWidth+1+w > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
