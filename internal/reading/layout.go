// Package reading lays out text into lines and paces it for speed reading.
package reading

import (
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

const (
	minLineMs = 60
	minWPM    = 60
)

// Normalize converts raw text to Unicode NFC so accented words measure and
// compare consistently.
func Normalize(raw string) string {
	return norm.NFC.String(raw)
}

// Tokenize splits raw text on whitespace, dropping empty tokens.
func Tokenize(raw string) []string {
	return strings.Fields(raw)
}

// BuildLines packs words greedily into lines no wider than limit terminal
// cells. A word wider than limit gets a line of its own. limit <= 0 yields one
// word per line; no words yields a single empty line.
func BuildLines(words []string, limit int) []string {
	if len(words) == 0 {
		return []string{""}
	}
	if limit <= 0 {
		out := make([]string, len(words))
		copy(out, words)
		return out
	}
	lines := make([]string, 0, len(words))
	var current strings.Builder
	width := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		if width == 0 {
			current.WriteString(word)
			width = w
			continue
		}
		if width+1+w <= limit {
			current.WriteByte(' ')
			current.WriteString(word)
			width += 1 + w
			continue
		}
		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(word)
		width = w
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// MsPerLine is how long a line of wordsInLine words stays on screen at wpm.
func MsPerLine(wordsInLine, wpm int) time.Duration {
	if wordsInLine < 1 {
		wordsInLine = 1
	}
	if wpm < minWPM {
		wpm = minWPM
	}
	ms := int(math.Round(float64(wordsInLine) / float64(wpm) * 60000))
	if ms < minLineMs {
		ms = minLineMs
	}
	return time.Duration(ms) * time.Millisecond
}

// CellInterval is how long the column highlight rests on one cell, assuming
// five characters per word.
func CellInterval(charWidth, wpm int) time.Duration {
	if wpm < minWPM {
		wpm = minWPM
	}
	if charWidth < 1 {
		charWidth = 1
	}
	ms := int(math.Round(60000 * float64(charWidth) / float64(wpm*5)))
	if ms < minLineMs {
		ms = minLineMs
	}
	return time.Duration(ms) * time.Millisecond
}

// WordCount counts whitespace-separated words in line.
func WordCount(line string) int {
	return len(strings.Fields(line))
}

// RowsFor returns how many column rows fit in height, at most MaxCells/Columns.
func RowsFor(height, rowHeight int) int {
	if rowHeight <= 0 || height <= 0 {
		return 0
	}
	rows := height / rowHeight
	if max := MaxCells / Columns; rows > max {
		rows = max
	}
	return rows
}

func prepare(text string, charWidth int) []string {
	words := Tokenize(Normalize(text))
	if len(words) == 0 {
		return nil
	}
	return BuildLines(words, charWidth)
}
