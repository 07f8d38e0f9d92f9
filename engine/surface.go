package engine

import (
	"time"

	"github.com/lixenwraith/cosmic-arcade/render"
)

// Surface is the host drawing target owned by one loop
type Surface interface {
	// Size reports the current logical dimensions, possibly zero during layout
	Size() (w, h int)
	// Context returns the drawing context, nil while unavailable
	Context() render.Canvas
	// OnResize registers fn for dimension changes and returns its detach func
	OnResize(fn func(w, h int)) (detach func())
}

// Simulation advances an entity population by one tick
type Simulation interface {
	Resize(w, h int)
	// Reset discards the population and session and builds a fresh one
	Reset()
	Step(now time.Time, in InputState)
	// Halted reports a paused or terminal state that stops scheduling
	Halted() bool
}

// Renderer draws the current state without mutating it
type Renderer interface {
	Render(c render.Canvas, now time.Time)
}
