package shell

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine is what the shell needs from a mounted game.
type Engine interface {
	SetRunning(now time.Duration, running bool)
	SetSuspended(now time.Duration, suspended bool)
	SetBoard(width, height int)
	Frame(now time.Duration)
}

// Shell owns the running flag and the round lifecycle of the mounted engine.
// Engines report the end of a round through Timeout; the stop is applied by
// Settle once the engine has returned, never from inside the engine callback.
type Shell struct {
	controls    Controls
	engine      Engine
	slot        Slot
	logger      *zap.Logger
	roundID     string
	startedAt   time.Duration
	pendingStop bool
	suspended   bool
	width       int
	height      int
}

// New returns a shell with default controls.
func New(logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{controls: DefaultControls(), logger: logger}
}

// Controls returns the current controls.
func (s *Shell) Controls() Controls { return s.controls }

// Running reports whether a round is active.
func (s *Shell) Running() bool { return s.controls.Running }

// Slot returns the control slot.
func (s *Shell) Slot() *Slot { return &s.slot }

// Engine returns the mounted engine.
func (s *Shell) Engine() Engine { return s.engine }

// RoundID returns the id of the current or last round.
func (s *Shell) RoundID() string { return s.roundID }

// Logger returns the shell logger.
func (s *Shell) Logger() *zap.Logger { return s.logger }

// Mount stops the current round and replaces the engine. The new engine gets
// the current board and suspension state.
func (s *Shell) Mount(now time.Duration, id GameID, e Engine) {
	s.Stop(now)
	s.engine = e
	s.pendingStop = false
	s.controls = s.controls.Apply(Patch{Game: &id})
	if e == nil {
		return
	}
	if s.width > 0 || s.height > 0 {
		e.SetBoard(s.width, s.height)
	}
	if s.suspended {
		e.SetSuspended(now, true)
	}
	s.logger.Debug("game mounted", zap.String("game", string(id)))
}

// Unmount stops the round and drops the engine.
func (s *Shell) Unmount(now time.Duration) {
	s.Stop(now)
	s.engine = nil
}

// Apply updates the controls. Switching game or category stops the round; the
// Running field starts or stops it.
func (s *Shell) Apply(now time.Duration, p Patch) {
	next := s.controls.Apply(p)
	if next.Game != s.controls.Game || next.Category != s.controls.Category {
		s.Stop(now)
		next.Running = false
	}
	wantRunning := next.Running
	next.Running = s.controls.Running
	s.controls = next
	if wantRunning {
		s.Start(now)
		return
	}
	s.Stop(now)
}

// Start begins a round on the mounted engine.
func (s *Shell) Start(now time.Duration) {
	if s.controls.Running || s.engine == nil {
		return
	}
	s.controls.Running = true
	s.pendingStop = false
	s.roundID = uuid.NewString()
	s.startedAt = now
	s.logger.Info("round started",
		zap.String("round", s.roundID),
		zap.String("game", string(s.controls.Game)),
		zap.Int("level", s.controls.Level),
		zap.Int("distance", s.controls.Distance),
	)
	s.engine.SetRunning(now, true)
}

// Stop ends the round.
func (s *Shell) Stop(now time.Duration) {
	s.stop(now, "stopped")
}

// Toggle starts a stopped round or stops a running one.
func (s *Shell) Toggle(now time.Duration) {
	if s.controls.Running {
		s.Stop(now)
		return
	}
	s.Start(now)
}

// Timeout is the engine callback for a round that ended on its own.
func (s *Shell) Timeout() {
	if s.controls.Running {
		s.pendingStop = true
	}
}

// Frame advances the engine and applies a pending stop.
func (s *Shell) Frame(now time.Duration) {
	if s.engine != nil {
		s.engine.Frame(now)
	}
	s.Settle(now)
}

// Settle applies a stop requested by the engine.
func (s *Shell) Settle(now time.Duration) {
	if !s.pendingStop {
		return
	}
	s.pendingStop = false
	s.stop(now, "timeout")
}

// SetSuspended forwards the terminal focus state to the engine.
func (s *Shell) SetSuspended(now time.Duration, suspended bool) {
	if s.suspended == suspended {
		return
	}
	s.suspended = suspended
	if s.engine != nil {
		s.engine.SetSuspended(now, suspended)
	}
	s.logger.Debug("suspension changed", zap.Bool("suspended", suspended), zap.String("round", s.roundID))
}

// Suspended reports whether the terminal is unfocused.
func (s *Shell) Suspended() bool { return s.suspended }

// SetBoard forwards the board size to the engine.
func (s *Shell) SetBoard(width, height int) {
	s.width, s.height = width, height
	if s.engine != nil {
		s.engine.SetBoard(width, height)
	}
}

// Board returns the last board size.
func (s *Shell) Board() (int, int) { return s.width, s.height }

// Record logs a round event with the round id attached.
func (s *Shell) Record(msg string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("round", s.roundID), zap.String("game", string(s.controls.Game))}, fields...)
	s.logger.Info(msg, fields...)
}

func (s *Shell) stop(now time.Duration, reason string) {
	if !s.controls.Running {
		return
	}
	s.controls.Running = false
	s.logger.Info("round ended",
		zap.String("round", s.roundID),
		zap.String("game", string(s.controls.Game)),
		zap.String("reason", reason),
		zap.Duration("elapsed", now-s.startedAt),
	)
	if s.engine != nil {
		s.engine.SetRunning(now, false)
	}
}
