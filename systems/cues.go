package systems

import "github.com/lixenwraith/cosmic-arcade/audio"

//go:generate go tool mockgen -destination=mock_cue_player_test.go -package=systems . CuePlayer

// CuePlayer plays game sound cues
// Implementations must not block the tick and must tolerate a missing device
type CuePlayer interface {
	Play(c audio.Cue)
}

// NopCues discards every cue
type NopCues struct{}

func (NopCues) Play(audio.Cue) {}
