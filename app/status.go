package app

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/cosmic-arcade/systems"
)

// GameStatus formats the session for the status line
func GameStatus(s systems.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, " SCORE %d  LIVES %d  LEVEL %d  HP %.0f/%.0f", s.Score, s.Lives, s.Level, s.PlayerHealth, s.PlayerMaxHealth)

	for _, fx := range []struct {
		on   bool
		name string
	}{
		{s.RapidFire, "RAPID"},
		{s.MultiShot, "MULTI"},
		{s.Shield, "SHIELD"},
	} {
		if fx.on {
			b.WriteString("  [" + fx.name + "]")
		}
	}

	switch {
	case s.GameOver:
		b.WriteString("  GAME OVER - r restart, q quit")
	case s.Paused:
		b.WriteString("  PAUSED - p resume")
	}
	return b.String()
}

// FieldStatus formats the ambient field status line
func FieldStatus(preset systems.Preset, particles, fps int) string {
	return fmt.Sprintf(" %s field  %d particles  %d fps  q quit", preset, particles, fps)
}
