package engine

import (
	"strings"
	"sync"
	"time"
)

// Key is a logical game control
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyPause
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyFire:
		return "fire"
	case KeyPause:
		return "pause"
	default:
		return "unknown"
	}
}

// keyNames maps host key identifiers to controls, matched case-insensitively
var keyNames = map[string]Key{
	"arrowleft":  KeyLeft,
	"left":       KeyLeft,
	"a":          KeyLeft,
	"arrowright": KeyRight,
	"right":      KeyRight,
	"d":          KeyRight,
	"arrowup":    KeyUp,
	"up":         KeyUp,
	"w":          KeyUp,
	"arrowdown":  KeyDown,
	"down":       KeyDown,
	"s":          KeyDown,
	" ":          KeyFire,
	"space":      KeyFire,
	"p":          KeyPause,
}

// ParseKey resolves a host key identifier, ok is false for unrecognized keys
func ParseKey(name string) (Key, bool) {
	if name != " " {
		name = strings.ToLower(strings.TrimSpace(name))
	}
	k, ok := keyNames[name]
	return k, ok
}

// InputState is the set of controls held during one tick
type InputState uint8

// Held reports whether k is down
func (s InputState) Held(k Key) bool {
	return k < keyCount && s&(1<<k) != 0
}

// With returns s with k held
func (s InputState) With(k Key) InputState {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// Without returns s with k released
func (s InputState) Without(k Key) InputState {
	if k >= keyCount {
		return s
	}
	return s &^ (1 << k)
}

// NewInputState builds a state from held keys
func NewInputState(keys ...Key) InputState {
	var s InputState
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// InputSource produces the input snapshot for a tick
type InputSource interface {
	State(now time.Time) InputState
}

// InputFunc adapts a function to InputSource
type InputFunc func(now time.Time) InputState

func (f InputFunc) State(now time.Time) InputState { return f(now) }

// KeyLatch derives held-key state from press events alone
// A key counts as held until window passes without a repeat, for hosts that never report key release
type KeyLatch struct {
	mu     sync.Mutex
	window time.Duration
	last   [keyCount]time.Time
}

// NewKeyLatch creates a latch with the given hold window
func NewKeyLatch(window time.Duration) *KeyLatch {
	return &KeyLatch{window: window}
}

// Press records a press or auto-repeat of k
func (l *KeyLatch) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	l.mu.Lock()
	l.last[k] = now
	l.mu.Unlock()
}

// Release drops k immediately
func (l *KeyLatch) Release(k Key) {
	if k >= keyCount {
		return
	}
	l.mu.Lock()
	l.last[k] = time.Time{}
	l.mu.Unlock()
}

// Clear releases every key
func (l *KeyLatch) Clear() {
	l.mu.Lock()
	l.last = [keyCount]time.Time{}
	l.mu.Unlock()
}

// State returns keys pressed within the window before now, later presses are ignored
func (l *KeyLatch) State(now time.Time) InputState {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s InputState
	for k := Key(0); k < keyCount; k++ {
		t := l.last[k]
		if t.IsZero() {
			continue
		}
		if d := now.Sub(t); d >= 0 && d <= l.window {
			s = s.With(k)
		}
	}
	return s
}
