package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/cosmic-arcade/constants"
)

// Sentinel errors
var (
	ErrNoSurface    = errors.New("surface is required")
	ErrNoSimulation = errors.New("simulation is required")
	ErrNoRenderer   = errors.New("renderer is required")
	ErrNoScheduler  = errors.New("scheduler is required")
)

// LoopConfig wires a loop to its host
type LoopConfig struct {
	Surface    Surface
	Simulation Simulation
	Renderer   Renderer
	Scheduler  Scheduler

	// Optional
	Clock  TimeProvider
	Input  InputSource
	Logger *slog.Logger
}

// Loop drives one simulate-then-render tick per scheduled frame
// Ticks never overlap: the next frame is requested only after the current render is presented
type Loop struct {
	mu sync.Mutex

	id     string
	log    *slog.Logger
	surf   Surface
	sim    Simulation
	rend   Renderer
	sched  Scheduler
	clock  TimeProvider
	input  InputSource
	detach func()

	mounted bool
	stalled bool // context was missing, only a remount restarts
	pending FrameID
	gen     uint64 // identifies the frame the loop is waiting on
	frames  uint64
}

// NewLoop validates cfg and returns an unmounted loop
func NewLoop(cfg LoopConfig) (*Loop, error) {
	switch {
	case cfg.Surface == nil:
		return nil, fmt.Errorf("failed to create loop: %w", ErrNoSurface)
	case cfg.Simulation == nil:
		return nil, fmt.Errorf("failed to create loop: %w", ErrNoSimulation)
	case cfg.Renderer == nil:
		return nil, fmt.Errorf("failed to create loop: %w", ErrNoRenderer)
	case cfg.Scheduler == nil:
		return nil, fmt.Errorf("failed to create loop: %w", ErrNoScheduler)
	}

	l := &Loop{
		id:    uuid.NewString(),
		surf:  cfg.Surface,
		sim:   cfg.Simulation,
		rend:  cfg.Renderer,
		sched: cfg.Scheduler,
		clock: cfg.Clock,
		input: cfg.Input,
		log:   cfg.Logger,
	}
	if l.clock == nil {
		l.clock = NewMonotonicTimeProvider()
	}
	if l.input == nil {
		l.input = InputFunc(func(_ time.Time) InputState { return 0 })
	}
	if l.log == nil {
		l.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l.log = l.log.With("loop", l.id)
	return l, nil
}

// ID returns the loop instance id
func (l *Loop) ID() string {
	return l.id
}

// Mount attaches resize handling, sizes and populates the simulation, then schedules the first frame
func (l *Loop) Mount() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mounted {
		return
	}
	l.mounted = true
	l.stalled = false
	l.frames = 0

	l.detach = l.surf.OnResize(l.handleResize)
	l.resizeLocked(l.surf.Size())
	l.sim.Reset()
	l.scheduleLocked()

	l.log.Info("loop mounted")
}

// Unmount cancels the pending frame and detaches resize handling
// No frame runs after Unmount returns
func (l *Loop) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.mounted {
		return
	}
	l.mounted = false
	if l.pending != 0 {
		l.sched.Cancel(l.pending)
		l.pending = 0
	}
	if l.detach != nil {
		l.detach()
		l.detach = nil
	}

	l.log.Info("loop unmounted", "frames", l.frames)
}

// Resume restarts scheduling after the simulation leaves a halted state
func (l *Loop) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scheduleLocked()
}

// Reset rebuilds the simulation before the next frame and resumes scheduling
func (l *Loop) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.mounted {
		return
	}
	l.sim.Reset()
	l.scheduleLocked()
}

// Mounted reports whether the loop is attached to its surface
func (l *Loop) Mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounted
}

// Scheduled reports whether a frame is pending
func (l *Loop) Scheduled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending != 0
}

// Frames returns ticks completed since mount
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func (l *Loop) handleResize(w, h int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mounted {
		return
	}
	l.resizeLocked(w, h)
}

// resizeLocked clamps zero or negative layout sizes to 1x1
func (l *Loop) resizeLocked(w, h int) {
	l.sim.Resize(max(w, constants.MinSurfaceSize), max(h, constants.MinSurfaceSize))
}

func (l *Loop) scheduleLocked() {
	if !l.mounted || l.stalled || l.pending != 0 || l.sim.Halted() {
		return
	}
	l.gen++
	gen := l.gen
	l.pending = l.sched.Request(func() { l.frame(gen) })
}

// frame is a no-op for frames released after unmount or superseded by a later request
func (l *Loop) frame(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.mounted || l.pending == 0 || gen != l.gen {
		return
	}
	l.pending = 0

	canvas := l.surf.Context()
	if canvas == nil {
		l.stalled = true
		l.log.Warn("drawing context unavailable, scheduling stopped")
		return
	}

	now := l.clock.Now()
	l.sim.Step(now, l.input.State(now))
	l.rend.Render(canvas, now)
	canvas.Present()
	l.frames++

	l.scheduleLocked()
}
