package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/cosmic-arcade/constants"
)

// Cue identifies a game sound
type Cue uint8

const (
	CueShoot Cue = iota
	CueEnemyShot
	CueExplosion
	CuePlayerHit
	CuePickup
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueEnemyShot:
		return "enemy-shot"
	case CueExplosion:
		return "explosion"
	case CuePlayerHit:
		return "player-hit"
	case CuePickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// tone is a single oscillator voice
type tone struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

var cueTones = [cueCount]tone{
	CueShoot:     {constants.ShootFreq, constants.ShootDuration, WaveSquare},
	CueEnemyShot: {constants.EnemyShotFreq, constants.EnemyShotDuration, WaveSaw},
	CueExplosion: {constants.ExplosionFreq, constants.ExplosionDuration, WaveSaw},
	CuePlayerHit: {constants.PlayerHitFreq, constants.PlayerHitDuration, WaveSquare},
	CuePickup:    {constants.PickupFreq, constants.PickupDuration, WaveSine},
}

// Duration returns the cue length, zero for unknown cues
func (c Cue) Duration() time.Duration {
	if c >= cueCount {
		return 0
	}
	return cueTones[c].duration
}

// NewCueStreamer synthesizes a cue at the given rate and volume, nil for unknown cues
func NewCueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	if c >= cueCount {
		return nil
	}
	t := cueTones[c]
	osc := NewOscillator(t.freq, t.duration, t.wave, rate)
	shaped := NewDecay(osc, t.duration, constants.CueAttack, constants.CueGain, constants.CueFloorGain, rate)
	return newVolume(shaped, volume)
}
