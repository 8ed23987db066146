// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/geowars/internal/core"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// Sound names an effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundShot
	SoundExplosion
	SoundHit
	SoundLevelUp
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundExplosion:
		return "explosion"
	case SoundHit:
		return "hit"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// ForEvent maps a game event to its sound.
func ForEvent(k core.EventKind) Sound {
	switch k {
	case core.EventShot:
		return SoundShot
	case core.EventEnemyDestroyed:
		return SoundExplosion
	case core.EventPlayerHit:
		return SoundHit
	case core.EventLevelUp:
		return SoundLevelUp
	case core.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}

// maxVoices caps simultaneous effects so a burst of shots cannot pile up.
const maxVoices = 16

// SoundManager plays effects through the speaker. A manager that was
// never initialized accepts every call and stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a silent manager at the given master volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (sm *SoundManager) Enabled() bool {
	if sm == nil {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues one effect.
func (sm *SoundManager) Play(s Sound) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	st := Effect(s, SampleRate)
	if st == nil {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(newVolume(st, sm.volume))
	}
	speaker.Unlock()
}

// PlayEvents plays the sound of each event, once per kind per frame.
func (sm *SoundManager) PlayEvents(events []core.Event) {
	var seen [8]bool
	for _, ev := range events {
		s := ForEvent(ev.Kind)
		if s == SoundNone || int(s) >= len(seen) || seen[s] {
			continue
		}
		seen[s] = true
		sm.Play(s)
	}
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}
