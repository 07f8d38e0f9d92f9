package gui

import (
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/render"
)

// keyBindings maps ebiten keys to held controls
var keyBindings = map[ebiten.Key]engine.Key{
	ebiten.KeyArrowLeft:  engine.KeyLeft,
	ebiten.KeyA:          engine.KeyLeft,
	ebiten.KeyArrowRight: engine.KeyRight,
	ebiten.KeyD:          engine.KeyRight,
	ebiten.KeyArrowUp:    engine.KeyUp,
	ebiten.KeyW:          engine.KeyUp,
	ebiten.KeyArrowDown:  engine.KeyDown,
	ebiten.KeyS:          engine.KeyDown,
	ebiten.KeySpace:      engine.KeyFire,
}

var commandBindings = map[ebiten.Key]engine.Command{
	ebiten.KeyP:      engine.CommandPause,
	ebiten.KeyR:      engine.CommandReset,
	ebiten.KeyQ:      engine.CommandQuit,
	ebiten.KeyEscape: engine.CommandQuit,
}

var hudColor = color.NRGBA{R: 226, G: 232, B: 240, A: 255}

// Config fixes the window behavior
type Config struct {
	// Width and Height are the initial logical size
	Width, Height int
	// Fixed keeps the logical size constant and lets ebiten scale it, otherwise it follows the window
	Fixed bool

	// Scheduler must be the loop scheduler, Draw fires it once per frame
	Scheduler *engine.ManualScheduler

	// OnCommand receives host commands from Update, returning true quits
	OnCommand func(engine.Command) bool

	// Status is drawn over the frame when non-nil
	Status func() string
}

// Surface is an engine.Surface, engine.InputSource and ebiten.Game in one
// The loop frame runs inside Draw, so simulation and rendering stay on the ebiten goroutine
type Surface struct {
	cfg   Config
	held  atomic.Uint32
	frame *ebiten.Image

	mu        sync.Mutex
	canvas    *Canvas
	listeners map[int]func(w, h int)
	nextID    int
	w, h      int
	dirty     bool
	closed    bool
}

// NewSurface creates a surface, the frame image is allocated by the first frame
func NewSurface(cfg Config) *Surface {
	return &Surface{
		cfg:       cfg,
		listeners: make(map[int]func(w, h int)),
		w:         max(cfg.Width, 1),
		h:         max(cfg.Height, 1),
		dirty:     true,
	}
}

// Size implements engine.Surface
func (s *Surface) Size() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

// Context implements engine.Surface, nil after Close
func (s *Surface) Context() render.Canvas {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if s.dirty || s.frame == nil {
		if s.frame != nil {
			s.frame.Deallocate()
		}
		s.frame = ebiten.NewImage(s.w, s.h)
		if s.canvas == nil {
			s.canvas = NewCanvas(s.frame)
		} else {
			s.canvas.Retarget(s.frame)
		}
		s.dirty = false
	}
	return s.canvas
}

// OnResize implements engine.Surface
func (s *Surface) OnResize(fn func(w, h int)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// State implements engine.InputSource with the keys sampled by the last Update
func (s *Surface) State(_ time.Time) engine.InputState {
	return engine.InputState(s.held.Load())
}

// Close makes later frames find no context
func (s *Surface) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Update implements ebiten.Game
func (s *Surface) Update() error {
	var in engine.InputState
	for k, key := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			in = in.With(key)
		}
	}
	s.held.Store(uint32(in))

	for k, cmd := range commandBindings {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if cmd == engine.CommandQuit {
			return ebiten.Termination
		}
		if s.cfg.OnCommand != nil && s.cfg.OnCommand(cmd) {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw implements ebiten.Game: one loop frame, then the last frame and status onto the screen
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.cfg.Scheduler != nil {
		s.cfg.Scheduler.Fire()
	}

	s.mu.Lock()
	frame := s.frame
	s.mu.Unlock()
	if frame != nil {
		screen.DrawImage(frame, nil)
	}

	if s.cfg.Status != nil {
		text.Draw(screen, s.cfg.Status(), basicfont.Face7x13, 8, 18, hudColor)
	}
}

// Layout implements ebiten.Game and fans out logical size changes
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if s.cfg.Fixed {
		w, h = s.cfg.Width, s.cfg.Height
	}
	w, h = max(w, 1), max(h, 1)

	s.mu.Lock()
	changed := w != s.w || h != s.h
	var fns []func(w, h int)
	if changed {
		s.w, s.h = w, h
		s.dirty = true
		for _, fn := range s.listeners {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(w, h)
	}
	return w, h
}
