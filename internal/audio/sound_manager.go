// Package audio plays short synthesized cues for board events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-zoo/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes cue sounds onto the speaker.
// It is constructed explicitly and handed to the game as a core.CuePlayer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       map[core.Cue]bool
	initialized bool
}

// NewSoundManager creates a sound manager at the given linear volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  make(map[core.Cue]bool),
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Mute disables a single cue, e.g. the per-tile removal click.
func (sm *SoundManager) Mute(c core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted[c] = true
}

// Play queues the sound for c. No-op until Initialize succeeds.
func (sm *SoundManager) Play(c core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted[c] {
		return
	}

	s := CueStreamer(c, sampleRate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Playing reports how many cues are still in the mixer.
func (sm *SoundManager) Playing() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
