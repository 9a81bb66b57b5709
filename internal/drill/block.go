package drill

import (
	"time"

	"github.com/verte-zerg/mindflux/internal/level"
)

const (
	// CooldownSeconds is the pause between blocks.
	CooldownSeconds = 5
	cooldownTick    = time.Second
	defaultBlock    = 10
	defaultSpeed    = 5
)

// BlockSizes lists the valid block sizes.
func BlockSizes() []int {
	return []int{5, 10, 15, 20, 25, 30, 40, 50}
}

// ValidBlockSize reports whether n is one of BlockSizes.
func ValidBlockSize(n int) bool {
	for _, size := range BlockSizes() {
		if size == n {
			return true
		}
	}
	return false
}

// blocks runs the show / answer / cooldown cycle of a running count. draw
// produces the next item and its count value.
type blocks struct {
	pausable
	blockSize int
	speed     int
	phase     Phase
	shown     int
	count     int
	current   string
	cooldown  int
	verdict   *Verdict
	draw      func() (string, int)
	onStart   func()

	// OnTimeout runs once when the player finishes or gives up.
	OnTimeout func()
}

func (b *blocks) init(draw func() (string, int)) {
	b.blockSize = defaultBlock
	b.speed = defaultSpeed
	b.draw = draw
}

// SetBlockSize changes the block size while idle or ended.
func (b *blocks) SetBlockSize(n int) bool {
	if b.active() || !ValidBlockSize(n) {
		return false
	}
	b.blockSize = n
	return true
}

// SetSpeed changes the speed level while idle or ended.
func (b *blocks) SetSpeed(l int) bool {
	if b.active() {
		return false
	}
	b.speed = level.Clamp9(l)
	return true
}

// BlockSize returns the block size.
func (b *blocks) BlockSize() int { return b.blockSize }

// Speed returns the speed level.
func (b *blocks) Speed() int { return b.speed }

// Interval is the per-item interval.
func (b *blocks) Interval() time.Duration { return level.DrillInterval(b.speed) }

// SetRunning starts counting from zero, or abandons a drill that has not ended.
func (b *blocks) SetRunning(now time.Duration, running bool) {
	b.timers.Clear()
	if !running {
		if b.phase != PhaseEnded {
			b.reset()
		}
		return
	}
	b.reset()
	if b.onStart != nil {
		b.onStart()
	}
	b.startBlock(now)
}

// GiveUp ends the drill and reveals the count.
func (b *blocks) GiveUp(now time.Duration) (Verdict, error) {
	if b.phase != PhaseAnswer {
		return Verdict{}, ErrNotAnswering
	}
	v := Verdict{Want: b.count, GaveUp: true}
	b.verdict = &v
	b.finish()
	return v, nil
}

// Continue checks the running count and starts the cooldown before the next
// block.
func (b *blocks) Continue(now time.Duration, text string) (Verdict, error) {
	v, err := b.evaluate(text)
	if err != nil {
		return Verdict{}, err
	}
	b.phase = PhaseCooldown
	b.cooldown = CooldownSeconds
	b.timers.After(now, cooldownTick, b.cooldownTick)
	return v, nil
}

// Finish checks the running count and ends the drill.
func (b *blocks) Finish(now time.Duration, text string) (Verdict, error) {
	v, err := b.evaluate(text)
	if err != nil {
		return Verdict{}, err
	}
	b.finish()
	return v, nil
}

// Phase returns the current phase.
func (b *blocks) Phase() Phase { return b.phase }

// Current returns the item on screen, or "".
func (b *blocks) Current() string { return b.current }

// Progress returns the items shown in the current block and the block size.
func (b *blocks) Progress() (int, int) { return b.shown, b.blockSize }

// Cooldown returns the seconds left before the next block.
func (b *blocks) Cooldown() int { return b.cooldown }

// Count returns the running count.
func (b *blocks) Count() int { return b.count }

// Verdict returns the last verdict, if any.
func (b *blocks) Verdict() (Verdict, bool) {
	if b.verdict == nil {
		return Verdict{}, false
	}
	return *b.verdict, true
}

func (b *blocks) active() bool {
	return b.phase == PhaseShow || b.phase == PhaseAnswer || b.phase == PhaseCooldown
}

func (b *blocks) reset() {
	b.phase = PhaseIdle
	b.shown = 0
	b.count = 0
	b.current = ""
	b.cooldown = 0
	b.verdict = nil
}

func (b *blocks) evaluate(text string) (Verdict, error) {
	if b.phase != PhaseAnswer {
		return Verdict{}, ErrNotAnswering
	}
	guess, err := ParseAnswer(text)
	if err != nil {
		return Verdict{}, err
	}
	v := Verdict{Guess: guess, Want: b.count, Correct: guess == b.count}
	b.verdict = &v
	return v, nil
}

func (b *blocks) startBlock(now time.Duration) {
	b.timers.Clear()
	b.shown = 0
	b.phase = PhaseShow
	b.playNext(now)
}

func (b *blocks) playNext(now time.Duration) {
	if b.phase != PhaseShow {
		return
	}
	if b.shown >= b.blockSize {
		b.phase = PhaseAnswer
		b.current = ""
		return
	}
	item, value := b.draw()
	b.count += value
	b.shown++
	b.current = item
	b.timers.After(now, b.Interval(), b.playNext)
}

func (b *blocks) cooldownTick(now time.Duration) {
	if b.phase != PhaseCooldown {
		return
	}
	b.cooldown--
	if b.cooldown <= 0 {
		b.startBlock(now)
		return
	}
	b.timers.After(now, cooldownTick, b.cooldownTick)
}

func (b *blocks) finish() {
	b.timers.Clear()
	b.phase = PhaseEnded
	b.current = ""
	b.cooldown = 0
	if b.OnTimeout != nil {
		b.OnTimeout()
	}
}
