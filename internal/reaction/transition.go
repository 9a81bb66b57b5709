package reaction

import "time"

// Event drives a transition.
type Event interface{ isEvent() }

type (
	// Start begins a sequence from idle or finished.
	Start struct{}
	// Stop abandons the sequence. Finished sequences keep their results.
	Stop struct{}
	// CountdownTick consumes one countdown stage.
	CountdownTick struct{}
	// CountdownDone moves to the random wait, which lasts Wait.
	CountdownDone struct{ Wait time.Duration }
	// WaitElapsed shows the stimulus.
	WaitElapsed struct{}
	// Respond records a player response. A failed response counts Override,
	// or the response limit when Override is zero.
	Respond struct {
		Success  bool
		Label    string
		Elapsed  time.Duration
		Override time.Duration
	}
	// ResponseTimeout records a miss at the response limit.
	ResponseTimeout struct{}
)

func (Start) isEvent()           {}
func (Stop) isEvent()            {}
func (CountdownTick) isEvent()   {}
func (CountdownDone) isEvent()   {}
func (WaitElapsed) isEvent()     {}
func (Respond) isEvent()         {}
func (ResponseTimeout) isEvent() {}

// Effect is a side effect requested by a transition.
type Effect interface{ isEffect() }

type (
	ArmCountdown        struct{}
	ArmWait             struct{ Delay time.Duration }
	ArmResponseLimit    struct{}
	CancelResponseLimit struct{}
	CancelAll           struct{}
	ShowStimulus        struct{ Attempt int }
	Recorded            struct{ Result Result }
	Finished            struct{ Summary Summary }
)

func (ArmCountdown) isEffect()        {}
func (ArmWait) isEffect()             {}
func (ArmResponseLimit) isEffect()    {}
func (CancelResponseLimit) isEffect() {}
func (CancelAll) isEffect()           {}
func (ShowStimulus) isEffect()        {}
func (Recorded) isEffect()            {}
func (Finished) isEffect()            {}

// Transition computes the next state and the effects to run. Events that do
// not apply to the current phase leave the state unchanged.
func Transition(cfg Config, s State, ev Event) (State, []Effect) {
	cfg = cfg.Normalize()
	switch e := ev.(type) {
	case Start:
		if s.Phase != PhaseIdle && s.Phase != PhaseFinished {
			return s, nil
		}
		return State{Phase: PhaseCountdown, Attempt: 1, Stage: cfg.CountdownSteps},
			[]Effect{CancelAll{}, ArmCountdown{}}
	case Stop:
		if s.Phase == PhaseFinished {
			return s, []Effect{CancelAll{}}
		}
		return State{Phase: PhaseIdle}, []Effect{CancelAll{}}
	case CountdownTick:
		if s.Phase != PhaseCountdown || s.Stage <= 0 {
			return s, nil
		}
		s.Stage--
		if s.Stage > 0 {
			return s, []Effect{ArmCountdown{}}
		}
		return s, nil
	case CountdownDone:
		if s.Phase != PhaseCountdown {
			return s, nil
		}
		s.Phase = PhaseWaiting
		s.Stage = 0
		return s, []Effect{ArmWait{Delay: e.Wait}}
	case WaitElapsed:
		if s.Phase != PhaseWaiting {
			return s, nil
		}
		s.Phase = PhaseStimulus
		s.Awaiting = true
		return s, []Effect{ShowStimulus{Attempt: s.Attempt}, ArmResponseLimit{}}
	case Respond:
		if s.Phase != PhaseStimulus || !s.Awaiting {
			return s, nil
		}
		elapsed := cfg.ResponseLimit
		if e.Success {
			elapsed = e.Elapsed
			if elapsed < 0 {
				elapsed = 0
			}
			if elapsed > cfg.ResponseLimit {
				elapsed = cfg.ResponseLimit
			}
		} else if e.Override > 0 {
			elapsed = e.Override
		}
		r := Result{Attempt: s.Attempt, Success: e.Success, Elapsed: elapsed, Label: e.Label}
		next, effects := record(cfg, s, r)
		return next, append([]Effect{CancelResponseLimit{}}, effects...)
	case ResponseTimeout:
		if s.Phase != PhaseStimulus || !s.Awaiting {
			return s, nil
		}
		return record(cfg, s, Result{Attempt: s.Attempt, Elapsed: cfg.ResponseLimit, Label: TimeoutLabel})
	}
	return s, nil
}

func record(cfg Config, s State, r Result) (State, []Effect) {
	results := make([]Result, len(s.Results), len(s.Results)+1)
	copy(results, s.Results)
	results = append(results, r)
	s.Results = results
	s.Awaiting = false
	effects := []Effect{Recorded{Result: r}}
	if len(results) >= cfg.Attempts {
		summary := Summarize(results)
		s.Phase = PhaseFinished
		s.Summary = &summary
		return s, append(effects, Finished{Summary: summary})
	}
	s.Attempt++
	s.Phase = PhaseCountdown
	s.Stage = cfg.CountdownSteps
	return s, append(effects, ArmCountdown{})
}
