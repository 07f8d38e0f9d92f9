// Package device binds the sound manager to the system speaker
package device

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker is an audio.Output backed by the process-wide beep speaker
type Speaker struct{}

// NewSpeaker returns the speaker output
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Start initializes the speaker and begins streaming s
func (Speaker) Start(rate beep.SampleRate, bufferSize int, s beep.Streamer) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func (Speaker) Lock()   { speaker.Lock() }
func (Speaker) Unlock() { speaker.Unlock() }

// Close clears queued streams and releases the device
func (Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
