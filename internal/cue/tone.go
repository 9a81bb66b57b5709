package cue

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	square   bool
	length   int
	position int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, square bool, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, square: square, length: rate.N(d), rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		if o.square {
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		}
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// fade ramps the start and end of a stream to avoid clicks.
type fade struct {
	streamer beep.Streamer
	position int
	ramp     int
	total    int
}

func newFade(s beep.Streamer, total, ramp time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, ramp: rate.N(ramp), total: rate.N(total)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.ramp > 0 {
			if f.position < f.ramp {
				gain = float64(f.position) / float64(f.ramp)
			}
			if left := f.total - f.position; left < f.ramp {
				gain = math.Max(0, float64(left)/float64(f.ramp))
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// pingStreamer is the stimulus onset cue.
func pingStreamer(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 90 * time.Millisecond
	return withVolume(newFade(newTone(880, d, false, rate), d, 10*time.Millisecond, rate), vol)
}

// buzzStreamer is the timeout cue.
func buzzStreamer(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 220 * time.Millisecond
	return withVolume(newFade(newTone(110, d, true, rate), d, 20*time.Millisecond, rate), vol*0.5)
}
