package constants

import "time"

// Audio Output
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CueGain and CueFloorGain mirror an exponential ramp from 0.1 to 0.01
	CueGain      = 0.1
	CueFloorGain = 0.01
	CueAttack    = 2 * time.Millisecond
)

// Cue Tones
const (
	ShootFreq         = 800.0
	ShootDuration     = 100 * time.Millisecond
	EnemyShotFreq     = 400.0
	EnemyShotDuration = 100 * time.Millisecond
	ExplosionFreq     = 200.0
	ExplosionDuration = 300 * time.Millisecond
	PlayerHitFreq     = 150.0
	PlayerHitDuration = 200 * time.Millisecond
	PickupFreq        = 600.0
	PickupDuration    = 200 * time.Millisecond
)
