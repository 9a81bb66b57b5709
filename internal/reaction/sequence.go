package reaction

import (
	"time"

	"github.com/verte-zerg/mindflux/internal/random"
	"github.com/verte-zerg/mindflux/internal/timer"
)

// Sequence runs Transition against real timers.
type Sequence struct {
	cfg      Config
	src      random.Source
	state    State
	timers   timer.Group
	response *timer.Timer

	// OnStimulus runs when the stimulus appears.
	OnStimulus func(now time.Duration, attempt int)
	// OnAttemptRecorded runs after every recorded attempt.
	OnAttemptRecorded func(Result)
	// OnFinished runs once when the last attempt is recorded.
	OnFinished func(Summary)
}

// NewSequence returns an idle sequence.
func NewSequence(cfg Config, src random.Source) *Sequence {
	return &Sequence{cfg: cfg.Normalize(), src: src}
}

// SetRunning starts or stops the sequence.
func (s *Sequence) SetRunning(now time.Duration, running bool) {
	if running {
		s.dispatch(now, Start{})
		return
	}
	s.dispatch(now, Stop{})
}

// SetPaused freezes every pending timer, e.g. while help is open.
func (s *Sequence) SetPaused(now time.Duration, paused bool) {
	s.timers.SetPaused(now, paused)
}

// Paused reports whether the timers are frozen.
func (s *Sequence) Paused() bool {
	return s.timers.Paused()
}

// Respond records a response if one is awaited. The elapsed time is measured
// on the response timer, so paused time is not counted.
func (s *Sequence) Respond(now time.Duration, success bool, label string) bool {
	if s.state.Phase != PhaseStimulus || !s.state.Awaiting {
		return false
	}
	elapsed := s.cfg.ResponseLimit
	if s.response != nil {
		elapsed = s.cfg.ResponseLimit - s.response.Remaining(now)
	}
	s.dispatch(now, Respond{Success: success, Label: label, Elapsed: elapsed})
	return true
}

// Frame fires due timers.
func (s *Sequence) Frame(now time.Duration) {
	s.timers.Fire(now)
}

// State returns the current state.
func (s *Sequence) State() State {
	return s.state
}

// Config returns the normalized config.
func (s *Sequence) Config() Config {
	return s.cfg
}

// SetAttempts changes the attempt count. It is refused while a round runs.
func (s *Sequence) SetAttempts(n int) bool {
	if s.state.Phase != PhaseIdle && s.state.Phase != PhaseFinished {
		return false
	}
	s.cfg.Attempts = n
	s.cfg = s.cfg.Normalize()
	return true
}

// Awaiting reports whether a response is expected.
func (s *Sequence) Awaiting() bool {
	return s.state.Phase == PhaseStimulus && s.state.Awaiting
}

func (s *Sequence) dispatch(now time.Duration, ev Event) {
	next, effects := Transition(s.cfg, s.state, ev)
	s.state = next
	for _, eff := range effects {
		s.apply(now, eff)
	}
	if s.state.Phase == PhaseCountdown && s.state.Stage == 0 {
		wait := time.Duration(random.Between(s.src, int(s.cfg.WaitMin/time.Millisecond), int(s.cfg.WaitMax/time.Millisecond))) * time.Millisecond
		s.dispatch(now, CountdownDone{Wait: wait})
	}
}

func (s *Sequence) apply(now time.Duration, eff Effect) {
	switch e := eff.(type) {
	case ArmCountdown:
		s.timers.After(now, s.cfg.CountdownStep, func(at time.Duration) {
			s.dispatch(at, CountdownTick{})
		})
	case ArmWait:
		s.timers.After(now, e.Delay, func(at time.Duration) {
			s.dispatch(at, WaitElapsed{})
		})
	case ArmResponseLimit:
		s.response = s.timers.After(now, s.cfg.ResponseLimit, func(at time.Duration) {
			s.response = nil
			s.dispatch(at, ResponseTimeout{})
		})
	case CancelResponseLimit:
		s.timers.Remove(s.response)
		s.response = nil
	case CancelAll:
		s.timers.Clear()
		s.response = nil
	case ShowStimulus:
		if s.OnStimulus != nil {
			s.OnStimulus(now, e.Attempt)
		}
	case Recorded:
		if s.OnAttemptRecorded != nil {
			s.OnAttemptRecorded(e.Result)
		}
	case Finished:
		if s.OnFinished != nil {
			s.OnFinished(e.Summary)
		}
	}
}
