package systems

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// Variant selects the shooter feature set
type Variant uint8

const (
	// VariantEnhanced has bosses, power-ups, screen shake and sound cues
	VariantEnhanced Variant = iota
	// VariantBasic is the plain shooter without those extras
	VariantBasic
)

func (v Variant) String() string {
	if v == VariantBasic {
		return "basic"
	}
	return "enhanced"
}

// ParseVariant resolves a variant name
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "enhanced", "":
		return VariantEnhanced, nil
	case "basic":
		return VariantBasic, nil
	default:
		return 0, fmt.Errorf("unknown game variant %q", s)
	}
}

// GameConfig is fixed at construction
type GameConfig struct {
	Variant Variant
	Level   int
	Width   int
	Height  int
	Rand    vmath.Source
	Cues    CuePlayer
}

// Game is the arcade shooter simulation
// All methods are safe for concurrent use; entity slices are mutated only inside Step and Reset
type Game struct {
	mu sync.Mutex

	variant Variant
	level   int
	rng     vmath.Source
	cues    CuePlayer
	w, h    float64

	player       components.Player
	enemies      []components.Enemy
	bullets      []components.Bullet
	enemyBullets []components.Bullet
	powerUps     []components.PowerUp
	bursts       []components.Burst

	session Session
	timers  powerUpTimers
	shake   Shake

	lastShot         time.Time
	lastEnemySpawn   time.Time
	lastPowerUpSpawn time.Time

	tick      uint64
	published atomic.Pointer[Snapshot]
}

// NewGame creates a game with a fresh session
func NewGame(cfg GameConfig) *Game {
	if cfg.Level < 1 {
		cfg.Level = constants.InitialLevel
	}
	if cfg.Width <= 0 {
		cfg.Width = constants.GameCanvasWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = constants.GameCanvasHeight
	}
	if cfg.Rand == nil {
		cfg.Rand = vmath.NewEntropyRand()
	}
	if cfg.Cues == nil || cfg.Variant == VariantBasic {
		cfg.Cues = NopCues{}
	}

	g := &Game{
		variant: cfg.Variant,
		level:   cfg.Level,
		rng:     cfg.Rand,
		cues:    cfg.Cues,
		w:       float64(cfg.Width),
		h:       float64(cfg.Height),
	}
	g.resetLocked()
	return g
}

// Variant returns the configured feature set
func (g *Game) Variant() Variant { return g.variant }

func (g *Game) enhanced() bool { return g.variant == VariantEnhanced }

// Resize changes the playfield bounds, keeping the player inside
func (g *Game) Resize(w, h int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.w = float64(max(w, constants.MinSurfaceSize))
	g.h = float64(max(h, constants.MinSurfaceSize))
	g.clampPlayer()
}

// Reset reinitializes every collection and the session
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *Game) resetLocked() {
	g.session = Session{
		Lives: constants.InitialLives,
		Level: g.level,
	}
	g.timers = powerUpTimers{}
	g.shake = Shake{}

	g.player = components.Player{
		Box: components.Box{
			X:      g.w/2 - constants.PlayerWidth/2,
			Y:      g.h - constants.PlayerBottomGap,
			Width:  constants.PlayerWidth,
			Height: constants.PlayerHeight,
			Active: true,
		},
		Speed:     constants.PlayerSpeed,
		Health:    constants.PlayerHealth,
		MaxHealth: constants.PlayerHealth,
	}
	g.clampPlayer()

	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.powerUps = g.powerUps[:0]
	g.bursts = g.bursts[:0]

	// Zero timestamps make the first tick spawn immediately
	g.lastShot = time.Time{}
	g.lastEnemySpawn = time.Time{}
	g.lastPowerUpSpawn = time.Time{}

	g.publishLocked()
}

// Halted reports paused or game over, either stops frame scheduling
func (g *Game) Halted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Paused || g.session.GameOver
}

// TogglePause flips the paused flag and returns the new value, no-op after game over
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.GameOver {
		return g.session.Paused
	}
	g.session.Paused = !g.session.Paused
	g.publishLocked()
	return g.session.Paused
}

// Step advances the game by one frame
func (g *Game) Step(now time.Time, in engine.InputState) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Paused || g.session.GameOver {
		return
	}

	g.expirePowerUps(now)
	g.shake.update(g.rng)

	g.movePlayer(in)
	g.fire(now, in)
	g.spawn(now)

	g.advanceEnemies(now)
	g.advanceBullets()
	g.advancePowerUps()
	g.advanceBursts()

	g.collide(now)
	g.purge()

	g.tick++
	g.publishLocked()
}

// movePlayer applies held directions, clamped to the canvas
func (g *Game) movePlayer(in engine.InputState) {
	p := &g.player
	if in.Held(engine.KeyLeft) {
		p.X -= p.Speed
	}
	if in.Held(engine.KeyRight) {
		p.X += p.Speed
	}
	if in.Held(engine.KeyUp) {
		p.Y -= p.Speed
	}
	if in.Held(engine.KeyDown) {
		p.Y += p.Speed
	}
	g.clampPlayer()
}

func (g *Game) clampPlayer() {
	p := &g.player
	p.X = vmath.Clamp(p.X, 0, max(g.w-p.Width, 0))
	p.Y = vmath.Clamp(p.Y, 0, max(g.h-p.Height, 0))
}

// View is a read-only window onto the game for drawing
// Slices alias live state and are valid only inside the Read callback
type View struct {
	Width, Height float64
	Variant       Variant
	Player        components.Player
	Enemies       []components.Enemy
	Bullets       []components.Bullet
	EnemyBullets  []components.Bullet
	PowerUps      []components.PowerUp
	Bursts        []components.Burst
	Shake         Shake
	Session       Session
}

// Read calls fn with a consistent view of the current frame
func (g *Game) Read(fn func(v *View)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fn(&View{
		Width:        g.w,
		Height:       g.h,
		Variant:      g.variant,
		Player:       g.player,
		Enemies:      g.enemies,
		Bullets:      g.bullets,
		EnemyBullets: g.enemyBullets,
		PowerUps:     g.powerUps,
		Bursts:       g.bursts,
		Shake:        g.shake,
		Session:      g.session,
	})
}

// purge drops entities deactivated this frame
func (g *Game) purge() {
	g.enemies = compact(g.enemies, func(e *components.Enemy) bool { return e.Active })
	g.bullets = compact(g.bullets, func(b *components.Bullet) bool { return b.Active })
	g.enemyBullets = compact(g.enemyBullets, func(b *components.Bullet) bool { return b.Active })
	g.powerUps = compact(g.powerUps, func(p *components.PowerUp) bool { return p.Active })
	g.bursts = compact(g.bursts, func(b *components.Burst) bool { return b.Active })
}

// compact filters s in place, keeping its backing array
func compact[T any](s []T, keep func(*T) bool) []T {
	n := 0
	for i := range s {
		if keep(&s[i]) {
			s[n] = s[i]
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}
