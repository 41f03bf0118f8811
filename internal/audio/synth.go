// Package audio turns simulation event notifications into short
// synthesized sound effects. Effects are built from beep streamers,
// rendered to PCM once at startup, and piped to whatever command-line
// playback tool the host provides; with no tool available the sink goes
// silent rather than failing.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator is a fixed-duration tone generator.
type oscillator struct {
	freq   float64
	phase  float64
	remain int
	wave   waveType
	rate   beep.SampleRate
}

// newOscillator returns a streamer producing duration worth of the wave.
func newOscillator(freq float64, duration time.Duration, wave waveType) beep.Streamer {
	return &oscillator{
		freq:   freq,
		remain: sampleRate.N(duration),
		wave:   wave,
		rate:   sampleRate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.remain <= 0 {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.remain--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// newEnvelope wraps s in an attack/release envelope over duration.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sampleRate.N(attack),
		release:  sampleRate.N(release),
		total:    sampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if e.release > 0 && e.pos >= e.total-e.release {
			vol = float64(e.total-e.pos) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer's loudness; vol 0 mutes it outright since
// log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
