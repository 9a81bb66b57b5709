package drill

import (
	"time"

	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/random"
)

// ChainSum flashes a series of digits; the player types their sum.
type ChainSum struct {
	pausable
	quantity int
	speed    int
	src      random.Source
	phase    Phase
	digits   []int
	shown    int
	current  int
	total    int
	verdict  *Verdict

	// OnTimeout runs once when a valid answer ends the round.
	OnTimeout func()
}

// NewChainSum returns an idle drill.
func NewChainSum(quantity, speed int, src random.Source) *ChainSum {
	return &ChainSum{quantity: level.Clamp9(quantity), speed: level.Clamp9(speed), src: src, current: -1}
}

// SetLevels changes the digit count and speed levels while not running.
func (c *ChainSum) SetLevels(quantity, speed int) bool {
	if c.phase == PhaseShow || c.phase == PhaseAnswer {
		return false
	}
	c.quantity = level.Clamp9(quantity)
	c.speed = level.Clamp9(speed)
	return true
}

// Quantity returns the digit-count level.
func (c *ChainSum) Quantity() int { return c.quantity }

// Speed returns the speed level.
func (c *ChainSum) Speed() int { return c.speed }

// SetRunning starts a new round, or abandons one that has not ended.
func (c *ChainSum) SetRunning(now time.Duration, running bool) {
	c.timers.Clear()
	if !running {
		if c.phase != PhaseEnded {
			c.reset()
		}
		return
	}
	c.reset()
	count := level.DrillCount(c.quantity)
	c.digits = make([]int, count)
	for i := range c.digits {
		c.digits[i] = c.src.Intn(10)
		c.total += c.digits[i]
	}
	c.phase = PhaseShow
	c.tick(now)
}

// Submit checks the answer. Invalid input keeps the answer phase open.
func (c *ChainSum) Submit(now time.Duration, text string) (Verdict, error) {
	if c.phase != PhaseAnswer {
		return Verdict{}, ErrNotAnswering
	}
	guess, err := ParseAnswer(text)
	if err != nil {
		return Verdict{}, err
	}
	v := Verdict{Guess: guess, Want: c.total, Correct: guess == c.total}
	c.verdict = &v
	c.phase = PhaseEnded
	if c.OnTimeout != nil {
		c.OnTimeout()
	}
	return v, nil
}

// Phase returns the current phase.
func (c *ChainSum) Phase() Phase { return c.phase }

// Current returns the digit on screen, or -1.
func (c *ChainSum) Current() int { return c.current }

// Progress returns how many digits were shown out of the total.
func (c *ChainSum) Progress() (int, int) { return c.shown, len(c.digits) }

// Interval is the per-digit interval.
func (c *ChainSum) Interval() time.Duration { return level.DrillInterval(c.speed) }

// Verdict returns the last verdict, if any.
func (c *ChainSum) Verdict() (Verdict, bool) {
	if c.verdict == nil {
		return Verdict{}, false
	}
	return *c.verdict, true
}

func (c *ChainSum) reset() {
	c.phase = PhaseIdle
	c.digits = nil
	c.shown = 0
	c.current = -1
	c.total = 0
	c.verdict = nil
}

func (c *ChainSum) tick(now time.Duration) {
	if c.phase != PhaseShow {
		return
	}
	if c.shown >= len(c.digits) {
		c.current = -1
		c.phase = PhaseAnswer
		return
	}
	c.current = c.digits[c.shown]
	c.shown++
	c.timers.After(now, c.Interval(), c.tick)
}
