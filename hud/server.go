// Package hud serves the shooter session over HTTP and websocket
package hud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/systems"
)

// ErrNoSource is returned when no snapshot source is configured
var ErrNoSource = errors.New("snapshot source is required")

// Source yields the most recently published snapshot, never nil
type Source interface {
	Published() *systems.Snapshot
}

// Config wires the feed to a running game
type Config struct {
	Source Source

	// OnCommand receives reset and pause requests from clients
	OnCommand func(engine.Command)

	// Interval is the snapshot poll period, zero uses the frame cadence
	Interval time.Duration

	Logger *slog.Logger
}

// Server is the HUD feed
type Server struct {
	src      Source
	onCmd    func(engine.Command)
	interval time.Duration
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// clientMessage is the only inbound websocket frame
type clientMessage struct {
	Action string `json:"action"`
}

// NewServer validates cfg
func NewServer(cfg Config) (*Server, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("failed to create hud server: %w", ErrNoSource)
	}
	s := &Server{
		src:      cfg.Source,
		onCmd:    cfg.OnCommand,
		interval: cfg.Interval,
		log:      cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	if s.interval <= 0 {
		s.interval = constants.FrameUpdateInterval
	}
	if s.onCmd == nil {
		s.onCmd = func(engine.Command) {}
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s, nil
}

// Handler returns the routed feed
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/state", s.handleState)
	r.Get("/ws", s.handleWebSocket)
	return r
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("hud listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve hud: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop hud: %w", err)
		}
		return nil
	}
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.src.Published()); err != nil {
		s.log.Warn("state encode failed", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	log := s.log.With("client", uuid.NewString())
	log.Info("hud client connected", "remote", r.RemoteAddr)

	done := make(chan struct{})
	go s.push(conn, done, log)

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("hud read ended", "error", err)
			}
			break
		}
		switch cmd := engine.ParseCommand(msg.Action); cmd {
		case engine.CommandPause, engine.CommandReset:
			s.onCmd(cmd)
		default:
			log.Debug("hud action ignored", "action", msg.Action)
		}
	}

	close(done)
	conn.Close()
	log.Info("hud client dropped")
}

// push writes each newly published snapshot until done closes or a write fails
func (s *Server) push(conn *websocket.Conn, done <-chan struct{}, log *slog.Logger) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last *systems.Snapshot
	for {
		if snap := s.src.Published(); snap != last {
			if err := conn.WriteJSON(snap); err != nil {
				log.Debug("hud write failed", "error", err)
				conn.Close()
				return
			}
			last = snap
		}

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}
