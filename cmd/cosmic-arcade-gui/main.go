// Command cosmic-arcade-gui runs the particle field or the arcade shooter in a window
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cosmic-arcade/app"
	"github.com/lixenwraith/cosmic-arcade/audio/device"
	"github.com/lixenwraith/cosmic-arcade/config"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/gui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "cosmic-arcade-gui: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	a := app.New(cfg, device.NewSpeaker(), logger)
	defer a.Close()

	w, h, fixed := a.LogicalSize()
	if !fixed {
		w, h = app.FieldWindowWidth, app.FieldWindowHeight
	}

	sched := engine.NewManualScheduler()
	surf := gui.NewSurface(gui.Config{
		Width:     w,
		Height:    h,
		Fixed:     fixed,
		Scheduler: sched,
		OnCommand: a.Command,
		Status:    a.Status,
	})
	defer surf.Close()

	loop, err := engine.NewLoop(engine.LoopConfig{
		Surface:    surf,
		Simulation: a.Sim,
		Renderer:   a.Renderer,
		Scheduler:  sched,
		Clock:      a.Clock,
		Input:      surf,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	a.Attach(loop)
	loop.Mount()
	defer loop.Unmount()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Cosmic Arcade")
	if !fixed {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.FPS)

	ctx, cancel := context.WithCancel(context.Background())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Serve(ctx) })

	// ebiten must own the main goroutine
	runErr := ebiten.RunGame(surf)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", runErr)
	}
	return nil
}
