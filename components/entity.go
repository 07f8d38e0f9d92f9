package components

import (
	"image/color"
	"time"

	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// Box is the shape shared by every game entity
// Inactive boxes are purged at the end of the frame that deactivated them
type Box struct {
	X, Y          float64
	Width, Height float64
	Active        bool
}

// Rect returns the bounding box for collision tests
func (b *Box) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Center returns the box center
func (b *Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Player is the ship; it lives for the whole session and resets health on death
type Player struct {
	Box
	Speed     float64
	Health    float64
	MaxHealth float64
}

// HealthRatio returns health/maxHealth clamped to [0,1]
func (p *Player) HealthRatio() float64 {
	return ratio(p.Health, p.MaxHealth)
}

// Enemy descends from the top of the canvas
type Enemy struct {
	Box
	Speed     float64
	Kind      EnemyKind
	Direction float64 // ±1, lateral sign for zigzag
	LastShot  time.Time
	Health    float64
	MaxHealth float64
}

// HealthRatio returns health/maxHealth clamped to [0,1]
func (e *Enemy) HealthRatio() float64 {
	return ratio(e.Health, e.MaxHealth)
}

// Bullet travels vertically, up for the player and down for enemies
type Bullet struct {
	Box
	Speed  float64
	Owner  Owner
	Damage float64
}

// PowerUp falls toward the player and applies its effect on pickup
type PowerUp struct {
	Box
	Kind PowerUpKind
	// Duration is the effect length for timed kinds, zero for health
	Duration time.Duration
}

// Burst is a short-lived decorative particle emitted by hits and kills
type Burst struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.NRGBA
	Size    float64
	Active  bool
}

// Fade returns life/maxLife, used for alpha and size falloff
func (b *Burst) Fade() float64 {
	return ratio(float64(b.Life), float64(b.MaxLife))
}

func ratio(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return vmath.Clamp(v/limit, 0, 1)
}
