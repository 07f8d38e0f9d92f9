// Command cosmic-arcade runs the particle field or the arcade shooter in the terminal
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cosmic-arcade/app"
	"github.com/lixenwraith/cosmic-arcade/audio/device"
	"github.com/lixenwraith/cosmic-arcade/config"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/terminal"
)

// fieldScale is logical units per half-block pixel in field mode
const fieldScale = 8

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "cosmic-arcade: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	crash := crashHandler(screen)
	defer func() { crash(recover()) }()
	screen.HideCursor()

	a := app.New(cfg, device.NewSpeaker(), logger)
	defer a.Close()

	policy := terminal.ScaledSize(fieldScale)
	if w, h, ok := a.LogicalSize(); ok {
		policy = terminal.FixedSize(w, h)
	}
	surf := terminal.NewSurface(screen, policy)
	surf.SetStatus(a.Status)
	defer surf.Close()

	// Frames run on timer goroutines, their panics need the same cleanup
	sched := engine.NewTimerScheduler(cfg.FPS)
	sched.SetCrashHandler(crash)

	latch := engine.NewKeyLatch(constants.KeyHoldWindow)
	loop, err := engine.NewLoop(engine.LoopConfig{
		Surface:    surf,
		Simulation: a.Sim,
		Renderer:   a.Renderer,
		Scheduler:  sched,
		Clock:      a.Clock,
		Input:      latch,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	a.Attach(loop)
	loop.Mount()
	defer loop.Unmount()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Serve(ctx) })
	g.Go(func() error {
		defer cancel()
		return pumpEvents(ctx, screen, surf, a, latch)
	})
	return g.Wait()
}

// pumpEvents routes terminal events until quit or ctx ends
func pumpEvents(ctx context.Context, screen tcell.Screen, surf *terminal.Surface, a *app.App, latch *engine.KeyLatch) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				surf.HandleResize()
			case *tcell.EventKey:
				if cmd := terminal.TranslateCommand(ev); cmd != engine.CommandNone {
					if a.Command(cmd) {
						return nil
					}
					surf.RefreshStatus()
					continue
				}
				if k, ok := terminal.TranslateKey(ev); ok {
					latch.Press(k, a.Clock.Now())
				}
			}
		}
	}
}
