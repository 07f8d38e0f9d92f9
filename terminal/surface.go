package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cosmic-arcade/render"
)

// StatusRows is the number of screen rows below the canvas
const StatusRows = 1

// halfBlock draws the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// SizePolicy maps the pixel grid to the logical size reported to the simulation
type SizePolicy func(cols, pixelRows int) (w, h int)

// FixedSize reports a constant logical size, the grid stretches to fit
func FixedSize(w, h int) SizePolicy {
	return func(_, _ int) (int, int) { return w, h }
}

// ScaledSize makes each pixel scale logical units wide and tall
func ScaledSize(scale int) SizePolicy {
	scale = max(scale, 1)
	return func(cols, rows int) (int, int) { return cols * scale, rows * scale }
}

// Surface is an engine.Surface backed by a tcell screen
// Resize is applied to the pixel buffer at the start of the next frame, so it never races a render
type Surface struct {
	screen tcell.Screen
	policy SizePolicy
	buf    *render.PixelBuffer

	mu        sync.Mutex
	status    func() string
	listeners map[int]func(w, h int)
	nextID    int
	cols      int
	rows      int // pixel rows, two per screen row
	w, h      int
	dirty     bool
	closed    bool
}

// NewSurface sizes a surface to the current screen
func NewSurface(screen tcell.Screen, policy SizePolicy) *Surface {
	s := &Surface{
		screen:    screen,
		policy:    policy,
		listeners: make(map[int]func(w, h int)),
	}
	s.measureLocked()
	s.buf = render.NewPixelBuffer(s.cols, s.rows, float64(s.w), float64(s.h))
	s.buf.OnPresent(s.flush)
	return s
}

// measureLocked reads the screen size and derives grid and logical sizes
func (s *Surface) measureLocked() {
	cols, rows := s.screen.Size()
	s.cols = max(cols, 1)
	s.rows = max(rows-StatusRows, 1) * 2
	s.w, s.h = s.policy(s.cols, s.rows)
	s.dirty = true
}

// SetStatus installs the status line provider, called on every present
func (s *Surface) SetStatus(fn func() string) {
	s.mu.Lock()
	s.status = fn
	s.mu.Unlock()
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
	if s.dirty {
		s.buf.Resize(s.cols, s.rows, float64(s.w), float64(s.h))
		s.dirty = false
	}
	return s.buf
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

// HandleResize re-measures the screen and notifies listeners, call it on *tcell.EventResize
func (s *Surface) HandleResize() {
	s.mu.Lock()
	s.measureLocked()
	w, h := s.w, s.h
	fns := make([]func(w, h int), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	s.screen.Sync()
	for _, fn := range fns {
		fn(w, h)
	}
}

// RefreshStatus redraws only the status line, for state changes while no frames run
func (s *Surface) RefreshStatus() {
	s.drawStatus()
	s.screen.Show()
}

// Close detaches the surface from the screen; later frames find no context
func (s *Surface) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// flush copies the finished frame to the screen
func (s *Surface) flush(b *render.PixelBuffer) {
	cols, rows := b.Size()
	for cy := 0; cy*2 < rows; cy++ {
		for x := 0; x < cols; x++ {
			top := b.At(x, cy*2)
			bottom := top
			if cy*2+1 < rows {
				bottom = b.At(x, cy*2+1)
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			s.screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
	s.drawStatus()
	s.screen.Show()
}

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(226, 232, 240)).
	Background(tcell.NewRGBColor(15, 23, 42))

func (s *Surface) drawStatus() {
	s.mu.Lock()
	status := s.status
	s.mu.Unlock()

	cols, rows := s.screen.Size()
	if rows <= StatusRows || status == nil {
		return
	}
	y := rows - StatusRows
	text := []rune(status())
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		s.screen.SetContent(x, y, r, nil, statusStyle)
	}
}

func tcellColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
