package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-zoo/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// note is one step of a cue melody.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

// melodies maps each cue to the notes it plays.
var melodies = map[core.Cue][]note{
	core.CueMatch: {
		{freq: 523.25, dur: 70 * time.Millisecond, wave: WaveTriangle},
		{freq: 659.25, dur: 70 * time.Millisecond, wave: WaveTriangle},
		{freq: 783.99, dur: 110 * time.Millisecond, wave: WaveTriangle},
	},
	core.CueRemove: {
		{freq: 880, dur: 40 * time.Millisecond, wave: WaveSine},
	},
	core.CueSwap: {
		{freq: 330, dur: 45 * time.Millisecond, wave: WaveSquare},
		{freq: 392, dur: 45 * time.Millisecond, wave: WaveSquare},
	},
	core.CueReady: {
		{freq: 392, dur: 90 * time.Millisecond, wave: WaveSine},
		{freq: 523.25, dur: 140 * time.Millisecond, wave: WaveSine},
	},
	core.CueGameOver: {
		{freq: 392, dur: 160 * time.Millisecond, wave: WaveTriangle},
		{freq: 330, dur: 160 * time.Millisecond, wave: WaveTriangle},
		{freq: 262, dur: 320 * time.Millisecond, wave: WaveTriangle},
	},
}

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer that plays freq for the given duration.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear attack and release to a finite stream.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewFade wraps s with attack and release ramps over a stream of length d.
func NewFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.attack > 0 && f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; f.release > 0 && left < f.release {
			vol = math.Max(float64(left)/float64(f.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s by a linear volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CueStreamer builds the sound for a cue. Unknown cues return nil.
func CueStreamer(c core.Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	notes, ok := melodies[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, NewFade(osc, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return withVolume(beep.Seq(parts...), vol)
}
