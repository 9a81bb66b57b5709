// Package reaction implements the countdown, wait, stimulus and response cycle
// shared by the reaction-time games.
package reaction

import (
	"math"
	"time"

	"github.com/verte-zerg/mindflux/internal/stats"
)

// Phase is the stage of a reaction sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseWaiting
	PhaseStimulus
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhaseWaiting:
		return "waiting"
	case PhaseStimulus:
		return "stimulus"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// TimeoutLabel marks attempts that ran out of time.
const TimeoutLabel = "timeout"

// Config controls a reaction sequence.
type Config struct {
	Attempts       int
	WaitMin        time.Duration
	WaitMax        time.Duration
	ResponseLimit  time.Duration
	CountdownSteps int
	CountdownStep  time.Duration
}

// DefaultConfig returns the stock sequence settings.
func DefaultConfig() Config {
	return Config{
		Attempts:       10,
		WaitMin:        3000 * time.Millisecond,
		WaitMax:        9000 * time.Millisecond,
		ResponseLimit:  2000 * time.Millisecond,
		CountdownSteps: 3,
		CountdownStep:  time.Second,
	}
}

// GameConfig returns the settings used by the reaction games.
func GameConfig() Config {
	cfg := DefaultConfig()
	cfg.WaitMin = 1000 * time.Millisecond
	cfg.WaitMax = 5000 * time.Millisecond
	return cfg
}

// Normalize clamps every field into a usable range.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.Attempts < 1 {
		c.Attempts = 1
	}
	if c.ResponseLimit <= 0 {
		c.ResponseLimit = def.ResponseLimit
	}
	if c.CountdownSteps < 1 {
		c.CountdownSteps = def.CountdownSteps
	}
	if c.CountdownStep <= 0 {
		c.CountdownStep = def.CountdownStep
	}
	c.WaitMin, c.WaitMax = ClampWaitRange(c.WaitMin, c.WaitMax)
	return c
}

// ClampWaitRange orders the bounds, keeps the minimum non-negative and the
// maximum at least one millisecond above it.
func ClampWaitRange(a, b time.Duration) (time.Duration, time.Duration) {
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo+time.Millisecond {
		hi = lo + time.Millisecond
	}
	return lo, hi
}

// Result is one recorded attempt.
type Result struct {
	Attempt int
	Success bool
	Elapsed time.Duration
	Label   string
}

// Summary aggregates a finished sequence.
type Summary struct {
	AverageMs    int
	SuccessCount int
	Attempts     int
	StdDevMs     float64
}

// Summarize builds the summary of results.
func Summarize(results []Result) Summary {
	values := make([]float64, 0, len(results))
	hits := 0
	for _, r := range results {
		values = append(values, float64(r.Elapsed/time.Millisecond))
		if r.Success {
			hits++
		}
	}
	s := stats.Summarize(values)
	return Summary{
		AverageMs:    int(math.Round(s.Mean)),
		SuccessCount: hits,
		Attempts:     len(results),
		StdDevMs:     s.StdDev,
	}
}

// State is the full sequence state. Values are never mutated in place.
type State struct {
	Phase    Phase
	Attempt  int
	Stage    int
	Awaiting bool
	Results  []Result
	Summary  *Summary
}

// LastResult returns the most recent result, if any.
func (s State) LastResult() (Result, bool) {
	if len(s.Results) == 0 {
		return Result{}, false
	}
	return s.Results[len(s.Results)-1], true
}
