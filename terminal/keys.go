package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cosmic-arcade/engine"
)

// TranslateKey maps a key event to a held control
// Pause is reported as a command, not a control
func TranslateKey(ev *tcell.EventKey) (engine.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.KeyLeft, true
	case tcell.KeyRight:
		return engine.KeyRight, true
	case tcell.KeyUp:
		return engine.KeyUp, true
	case tcell.KeyDown:
		return engine.KeyDown, true
	case tcell.KeyRune:
		k, ok := engine.ParseKey(string(ev.Rune()))
		if !ok || k == engine.KeyPause {
			return 0, false
		}
		return k, true
	}
	return 0, false
}

// TranslateCommand maps a key event to a host command
func TranslateCommand(ev *tcell.EventKey) engine.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.CommandQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return engine.CommandQuit
		case 'r', 'R':
			return engine.CommandReset
		}
		if k, ok := engine.ParseKey(string(ev.Rune())); ok && k == engine.KeyPause {
			return engine.CommandPause
		}
	}
	return engine.CommandNone
}
