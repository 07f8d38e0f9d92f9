package audio

import "errors"

// Sentinel errors
var (
	ErrNoOutput = errors.New("no audio output")
)
