// Package cue plays the short audio cues of the reaction games.
package cue

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues. The zero value of Nop is silent.
type Player interface {
	Ping()
	Buzz()
	Close()
}

// Nop is a silent player.
type Nop struct{}

func (Nop) Ping()  {}
func (Nop) Buzz()  {}
func (Nop) Close() {}

// Speaker plays cues on the default audio device. The device is opened on the
// first cue; if that fails the player goes quiet for good.
type Speaker struct {
	mu     sync.Mutex
	logger *zap.Logger
	volume float64
	mixer  *beep.Mixer
	ready  bool
	failed bool
	initFn func(beep.SampleRate, int) error
	playFn func(...beep.Streamer)
}

// NewSpeaker returns a lazily initialised speaker player. Volume is linear,
// 0 mutes and 1 is full scale.
func NewSpeaker(volume float64, logger *zap.Logger) *Speaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Speaker{
		logger: logger,
		volume: volume,
		mixer:  &beep.Mixer{},
		initFn: speaker.Init,
		playFn: speaker.Play,
	}
}

// Ping plays the stimulus cue.
func (s *Speaker) Ping() { s.play(pingStreamer(sampleRate, s.volume)) }

// Buzz plays the timeout cue.
func (s *Speaker) Buzz() { s.play(buzzStreamer(sampleRate, s.volume)) }

// Enabled reports whether the device is usable.
func (s *Speaker) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.failed
}

// Close drops queued cues.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.ready = false
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open() {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) open() bool {
	if s.failed {
		return false
	}
	if s.ready {
		return true
	}
	if err := s.initFn(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		s.failed = true
		s.logger.Warn("audio disabled", zap.Error(err))
		return false
	}
	s.playFn(s.mixer)
	s.ready = true
	return true
}
