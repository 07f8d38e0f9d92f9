package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/cosmic-arcade/constants"
)

// Output is the audio device the manager streams its mixer into
// The device's lock must guard any mixer mutation while it is playing
type Output interface {
	Start(rate beep.SampleRate, bufferSize int, s beep.Streamer) error
	Lock()
	Unlock()
	Close()
}

// SoundManager mixes game cues into a single output stream
// Every method is safe to call when the output is missing or failed to start
type SoundManager struct {
	mu          sync.Mutex
	out         Output
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager for the given output, nil output stays silent
func NewSoundManager(out Output) *SoundManager {
	return &SoundManager{
		out:    out,
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.AudioSampleRate),
		volume: 1.0,
	}
}

// Initialize starts the output, repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.out == nil {
		return fmt.Errorf("failed to start audio: %w", ErrNoOutput)
	}

	if err := sm.out.Start(sm.rate, sm.rate.N(constants.AudioBufferDuration), sm.mixer); err != nil {
		return fmt.Errorf("failed to start audio: %w", err)
	}
	sm.initialized = true
	return nil
}

// Play adds a cue to the mixer; silently dropped when uninitialized or muted
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := NewCueStreamer(c, sm.rate, sm.volume)
	if s == nil {
		return
	}

	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
}

// SetMuted toggles cue playback without tearing down the output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// SetVolume sets linear cue volume, clamped to [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	sm.volume = v
}

// Active returns the number of cues still in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return 0
	}
	sm.out.Lock()
	defer sm.out.Unlock()
	return sm.mixer.Len()
}

// Cleanup stops all sounds and closes the output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()

	sm.out.Close()
	sm.initialized = false
}
