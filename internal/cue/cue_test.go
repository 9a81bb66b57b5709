package cue

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	st := newTone(100, 50*time.Millisecond, false, rate)
	buf := make([][2]float64, 40)
	n, ok := st.Stream(buf)
	if n != 40 || !ok {
		t.Fatalf("expected 40 samples, got %d %v", n, ok)
	}
	n, ok = st.Stream(buf)
	if n != 10 || !ok {
		t.Fatalf("expected 10 trailing samples, got %d %v", n, ok)
	}
	n, ok = st.Stream(buf)
	if n != 0 || ok {
		t.Fatalf("expected drained tone, got %d %v", n, ok)
	}
}

func TestToneRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, square := range []bool{false, true} {
		st := newTone(440, 20*time.Millisecond, square, rate)
		buf := make([][2]float64, 160)
		n, _ := st.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range: %v", i, buf[i])
			}
		}
	}
}

func TestFadeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	st := newFade(newTone(250, 100*time.Millisecond, true, rate), 100*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := st.Stream(buf)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Fatalf("expected silent first sample, got %v", buf[0][0])
	}
	if buf[50][0] != 1 && buf[50][0] != -1 {
		t.Fatalf("expected full scale mid sample, got %v", buf[50][0])
	}
}

func TestSpeakerDisablesOnInitFailure(t *testing.T) {
	s := NewSpeaker(0.5, nil)
	calls := 0
	s.initFn = func(beep.SampleRate, int) error {
		calls++
		return errors.New("no device")
	}
	s.playFn = func(...beep.Streamer) { t.Fatalf("expected no playback") }

	s.Ping()
	s.Buzz()
	if calls != 1 {
		t.Fatalf("expected one init attempt, got %d", calls)
	}
	if s.Enabled() {
		t.Fatalf("expected speaker disabled")
	}
	s.Close()
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Ping()
	p.Buzz()
	p.Close()
}
