package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-zoo/internal/core"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not finish")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)
			samples := drain(t, osc)

			if len(samples) != rate.N(100*time.Millisecond) {
				t.Errorf("got %d samples, expected %d", len(samples), rate.N(100*time.Millisecond))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d out of range or unbalanced: %v", i, s)
				}
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(t, osc) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d = %f", i, s[0])
		}
	}
}

func TestFadeEnds(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	f := NewFade(NewOscillator(440, d, WaveSquare, rate), d, 5*time.Millisecond, 10*time.Millisecond, rate)

	samples := drain(t, f)
	if len(samples) == 0 {
		t.Fatal("fade produced no samples")
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample should be silent, got %f", samples[0][0])
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Errorf("last sample should be near silent, got %f", last)
	}
}

func TestCueStreamers(t *testing.T) {
	rate := beep.SampleRate(44100)

	cues := []core.Cue{core.CueMatch, core.CueRemove, core.CueSwap, core.CueReady, core.CueGameOver}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := CueStreamer(c, rate, 0.5)
			if s == nil {
				t.Fatal("expected a streamer")
			}

			var want int
			for _, n := range melodies[c] {
				want += rate.N(n.dur)
			}
			if got := len(drain(t, s)); got != want {
				t.Errorf("got %d samples, expected %d", got, want)
			}
		})
	}

	if CueStreamer(core.Cue(99), rate, 1) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestSilentVolume(t *testing.T) {
	s := CueStreamer(core.CueSwap, beep.SampleRate(44100), 0)
	for i, v := range drain(t, s) {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("sample %d not silent: %v", i, v)
		}
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(2)
	if sm.volume != 1 {
		t.Errorf("volume should clamp to 1, got %f", sm.volume)
	}

	// Without a speaker nothing is queued
	sm.Play(core.CueMatch)
	if sm.Playing() != 0 {
		t.Error("Play before Initialize should be a no-op")
	}
	sm.Cleanup()

	sm.Mute(core.CueRemove)
	if !sm.muted[core.CueRemove] {
		t.Error("Mute should record the cue")
	}
}
