// Package app assembles a simulation, its renderer and optional sound and HUD feed from config
// Hosts own the surface and scheduler, then attach the loop they build
package app

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/lixenwraith/cosmic-arcade/audio"
	"github.com/lixenwraith/cosmic-arcade/config"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/hud"
	"github.com/lixenwraith/cosmic-arcade/render/renderers"
	"github.com/lixenwraith/cosmic-arcade/systems"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// Field mode window size for hosts that open one
const (
	FieldWindowWidth  = 1280
	FieldWindowHeight = 720
)

// App is one configured simulation ready to be driven by a loop
type App struct {
	Config   config.Config
	Sim      engine.Simulation
	Renderer engine.Renderer
	Clock    engine.TimeProvider

	// Exactly one of Field and Game is set
	Field *systems.Field
	Game  *systems.Game

	sound *audio.SoundManager
	log   *slog.Logger

	mu   sync.Mutex
	loop *engine.Loop
}

// New builds the simulation for cfg
// out is the audio device, nil or a failing device leaves the game silent
func New(cfg config.Config, out audio.Output, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &App{
		Config: cfg,
		Clock:  engine.NewMonotonicTimeProvider(),
		log:    log,
	}

	var rng vmath.Source = vmath.NewEntropyRand()
	if cfg.Seed != 0 {
		rng = vmath.NewFastRand(cfg.Seed)
	}

	if cfg.Mode == config.ModeField {
		a.Field = systems.NewField(cfg.Preset, rng, cfg.Particles)
		a.Sim = a.Field
		a.Renderer = renderers.NewFieldRenderer(a.Field)
		return a
	}

	var cues systems.CuePlayer = systems.NopCues{}
	if !cfg.Mute && cfg.Variant == systems.VariantEnhanced && out != nil {
		a.sound = audio.NewSoundManager(out)
		if err := a.sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", "error", err)
		}
		cues = a.sound
	}

	a.Game = systems.NewGame(systems.GameConfig{
		Variant: cfg.Variant,
		Level:   cfg.Level,
		Rand:    rng,
		Cues:    cues,
	})
	a.Sim = a.Game
	a.Renderer = renderers.NewGameRenderer(a.Game)
	return a
}

// LogicalSize is the fixed playfield size, ok is false when the simulation follows the surface
func (a *App) LogicalSize() (w, h int, ok bool) {
	if a.Game != nil {
		return constants.GameCanvasWidth, constants.GameCanvasHeight, true
	}
	return 0, 0, false
}

// Attach binds the loop that Command drives
func (a *App) Attach(l *engine.Loop) {
	a.mu.Lock()
	a.loop = l
	a.mu.Unlock()
}

// Status formats the host status line
func (a *App) Status() string {
	if a.Game == nil {
		return FieldStatus(a.Field.Preset(), a.Field.Count(), a.Config.FPS)
	}
	return GameStatus(a.Game.Snapshot())
}

// Command applies a host command and reports whether the host should quit
func (a *App) Command(cmd engine.Command) bool {
	a.mu.Lock()
	loop := a.loop
	a.mu.Unlock()

	switch cmd {
	case engine.CommandQuit:
		return true
	case engine.CommandPause:
		if a.Game == nil {
			return false
		}
		paused := a.Game.TogglePause()
		if loop != nil && !paused {
			loop.Resume()
		}
		a.log.Debug("pause toggled", "paused", paused)
	case engine.CommandReset:
		// Sessions restart from the game over screen only
		if a.Game != nil && !a.Game.Snapshot().GameOver {
			return false
		}
		if loop != nil {
			loop.Reset()
		} else {
			a.Sim.Reset()
		}
		a.log.Debug("session reset")
	}
	return false
}

// Serve runs the HUD feed until ctx ends; without a game or address it just waits
func (a *App) Serve(ctx context.Context) error {
	if a.Game == nil || a.Config.HUDAddr == "" {
		<-ctx.Done()
		return nil
	}
	srv, err := hud.NewServer(hud.Config{
		Source:    a.Game,
		OnCommand: func(c engine.Command) { a.Command(c) },
		Logger:    a.log,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx, a.Config.HUDAddr)
}

// Close releases audio
func (a *App) Close() {
	if a.sound != nil {
		a.sound.Cleanup()
	}
}
