// Package audio plays short synthesized effects for game events.
// Audio is optional: every method is safe to call when the speaker could
// not be opened.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// maxVoices bounds overlapping effects so rapid fire can't pile up.
	maxVoices = 8
)

// SoundManager mixes event effects onto the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize to open the speaker.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayEvent plays the effect for a game event, if it has one.
func (sm *SoundManager) PlayEvent(e core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := Effect(e.Kind, sampleRate)
	if s == nil {
		return
	}

	// The mixer is read by the speaker goroutine
	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}
