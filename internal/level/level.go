// Package level maps difficulty levels to timing parameters.
package level

import (
	"math"
	"time"
)

const (
	// Min is the lowest level of the standard 1..9 scale.
	Min = 1
	// Max is the highest level of the standard 1..9 scale.
	Max = 9
	// ExtendedMax is the top of the extended show-duration scale.
	ExtendedMax = 18
	// DefaultWidthIndex selects the default line width.
	DefaultWidthIndex = 3
)

var (
	eyeTrackIntervals = []int{600, 520, 450, 380, 320, 260, 210, 160, 120}
	readingWPM        = []int{200, 230, 260, 300, 330, 360, 390, 420, 450}
	showDurations     = []int{1000, 800, 650, 520, 420, 340, 280, 240, 200}
	showExtended      = []int{1150, 1000, 800, 650, 520, 420, 340, 280, 240, 200, 175, 150, 125, 100, 90, 80, 70, 60, 50}
	blankDurations    = []int{1400, 1200, 1000, 900, 800, 650, 520, 420, 320}
	lineWidths        = map[int]int{1: 16, 2: 24, 3: 28, 4: 32, 5: 36}
)

// Clamp bounds level to [min, max]. Values below min fall back to min.
func Clamp(level, min, max int) int {
	if level < min {
		return min
	}
	if level > max {
		return max
	}
	return level
}

// Clamp9 bounds level to the standard 1..9 scale.
func Clamp9(level int) int {
	return Clamp(level, Min, Max)
}

// EyeBasicInterval is the repositioning interval of the basic eye exercise.
func EyeBasicInterval(level int) time.Duration {
	ms := 1000 - (Clamp9(level)-1)*100
	if ms < 200 {
		ms = 200
	}
	return ms2d(ms)
}

// EyeTrackInterval is the step interval of the iso-distance exercise.
func EyeTrackInterval(level int) time.Duration {
	return ms2d(eyeTrackIntervals[Clamp9(level)-1])
}

// ReadingWPM returns the reading speed in words per minute.
func ReadingWPM(level int) int {
	return readingWPM[Clamp9(level)-1]
}

// LineWidth maps a width index to a character width. Unknown indexes use the
// default width.
func LineWidth(idx int) int {
	if w, ok := lineWidths[idx]; ok {
		return w
	}
	return lineWidths[DefaultWidthIndex]
}

// WidthIndexes lists the valid width indexes in order.
func WidthIndexes() []int {
	return []int{1, 2, 3, 4, 5}
}

// ShowDuration is the stimulus show time of the double-stimulus exercise.
func ShowDuration(level int) time.Duration {
	return ms2d(showDurations[Clamp9(level)-1])
}

// ShowDurationExtended covers the 0..18 scale.
func ShowDurationExtended(level int) time.Duration {
	return ms2d(showExtended[Clamp(level, 0, ExtendedMax)])
}

// BlankDuration is the blank time between stimuli.
func BlankDuration(level int) time.Duration {
	return ms2d(blankDurations[Clamp9(level)-1])
}

// DrillCount is the number of digits shown in a chain-sum round.
func DrillCount(level int) int {
	return 10 + (Clamp9(level)-1)*5
}

// DrillInterval is the per-digit interval of a chain-sum round.
func DrillInterval(level int) time.Duration {
	return ms2d(int(math.Round(2000 - float64(Clamp9(level)-1)*(1850.0/8))))
}

// Exposure is how long a reaction stimulus stays visible.
func Exposure(level int) time.Duration {
	return ms2d(int(math.Round(lerp(2000, 250, level))))
}

// GapPercent is the horizontal separation of paired stimuli, in percent.
func GapPercent(level int) float64 {
	return lerp(5, 90, level)
}

// SeparationRatio is the double-stimulus separation as a share of board width.
func SeparationRatio(level int) float64 {
	return lerp(0.12, 0.44, level)
}

// Table is one printable row set for a level-indexed parameter.
type Table struct {
	Name   string
	Unit   string
	Values []int
}

// Tables returns the level tables over the standard scale.
func Tables() []Table {
	build := func(name, unit string, fn func(int) int) Table {
		values := make([]int, 0, Max)
		for l := Min; l <= Max; l++ {
			values = append(values, fn(l))
		}
		return Table{Name: name, Unit: unit, Values: values}
	}
	asMs := func(fn func(int) time.Duration) func(int) int {
		return func(l int) int { return int(fn(l) / time.Millisecond) }
	}
	return []Table{
		build("eye basic interval", "ms", asMs(EyeBasicInterval)),
		build("eye track interval", "ms", asMs(EyeTrackInterval)),
		build("reading speed", "wpm", ReadingWPM),
		build("show duration", "ms", asMs(ShowDuration)),
		build("blank duration", "ms", asMs(BlankDuration)),
		build("drill digits", "", DrillCount),
		build("drill interval", "ms", asMs(DrillInterval)),
		build("exposure", "ms", asMs(Exposure)),
	}
}

func lerp(from, to float64, level int) float64 {
	t := float64(Clamp9(level)-Min) / float64(Max-Min)
	return from + (to-from)*t
}

func ms2d(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
