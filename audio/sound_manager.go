// Package audio plays short synthesized cues for paint actions and imports.
// Audio is optional: an uninitialized or disabled manager ignores requests.
package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrDisabled is returned by Initialize when audio is turned off in config
var ErrDisabled = errors.New("audio disabled")

// SoundManager owns the speaker and a mixer all cues are added to
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool

	speakerReady bool
}

// NewSoundManager creates a manager; call Initialize before playing
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	if !sm.speakerReady {
		rate := beep.SampleRate(sm.cfg.SampleRate)
		if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
			return err
		}
		sm.speakerReady = true
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds. The speaker itself stays open for the process
// lifetime; a later Initialize reuses it.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.initialized = false
}

// Active reports whether cues are actually played
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayPaint plays the cue for a cell changing to palette index v
func (sm *SoundManager) PlayPaint(v int) {
	sm.play(func(cfg Config) beep.Streamer { return CreatePaintSound(v, cfg) })
}

// PlayError plays the rejected-import buzz
func (sm *SoundManager) PlayError() {
	sm.play(CreateErrorSound)
}

// PlayImport plays the successful-import chime
func (sm *SoundManager) PlayImport() {
	sm.play(CreateImportSound)
}

func (sm *SoundManager) play(build func(Config) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build(sm.cfg)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
