package renderers

import (
	"math"
	"time"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/render"
	"github.com/lixenwraith/cosmic-arcade/systems"
)

// GameRenderer draws the shooter back to front under the current shake offset
type GameRenderer struct {
	game  *systems.Game
	start time.Time
}

// NewGameRenderer creates a renderer over g
func NewGameRenderer(g *systems.Game) *GameRenderer {
	return &GameRenderer{game: g}
}

// Render implements engine.Renderer
func (r *GameRenderer) Render(c render.Canvas, now time.Time) {
	if r.start.IsZero() {
		r.start = now
	}
	ms := float64(now.Sub(r.start)) / float64(time.Millisecond)

	r.game.Read(func(v *systems.View) {
		drawGame(c, v, ms)
	})
}

// drawGame renders one frame; ms drives the starfield animation
func drawGame(c render.Canvas, v *systems.View, ms float64) {
	w, h := c.Bounds()

	c.Clear(render.RGBBlack.NRGBA(1))
	c.Translate(v.Shake.X, v.Shake.Y)
	defer c.Translate(0, 0)

	c.FillLinearGradient(0, 0, w, h, spaceGradient)
	drawStars(c, w, h, ms)

	drawPlayer(c, &v.Player, v.Session.Shield)
	for i := range v.Enemies {
		drawEnemy(c, &v.Enemies[i])
	}
	for i := range v.Bullets {
		b := &v.Bullets[i]
		c.FillRect(b.X, b.Y, b.Width, b.Height, playerBulletColor)
	}
	for i := range v.EnemyBullets {
		b := &v.EnemyBullets[i]
		c.FillRect(b.X, b.Y, b.Width, b.Height, enemyBulletColor)
	}
	for i := range v.PowerUps {
		p := &v.PowerUps[i]
		cx, cy := p.Center()
		c.FillCircle(cx, cy, p.Width/2, powerUpColors[p.Kind])
	}
	for i := range v.Bursts {
		b := &v.Bursts[i]
		fade := b.Fade()
		c.FillCircle(b.X, b.Y, b.Size*fade, withAlpha(b.Color, fade))
	}
}

func drawStars(c render.Canvas, w, h, ms float64) {
	for i := 0; i < constants.GameStarCount; i++ {
		fi := float64(i)
		x := math.Mod(fi*37, w)
		y := math.Mod(fi*17+ms*0.1, h)
		size := math.Sin(ms*0.01+fi)*0.5 + 1
		alpha := math.Sin(ms*0.005+fi)*0.5 + 0.5
		c.FillRect(x, y, size, size, withAlpha(white, alpha))
	}
}

func drawPlayer(c render.Canvas, p *components.Player, shielded bool) {
	x, y, w, h := p.X, p.Y, p.Width, p.Height

	if shielded {
		cx, cy := p.Center()
		c.StrokeCircle(cx, cy, w/2+constants.ShieldRingPadding, 2, shieldColor)
	}

	c.FillPolygon([]render.Point{
		{X: x + w/2, Y: y},
		{X: x, Y: y + h},
		{X: x + w/4, Y: y + h*0.8},
		{X: x + w*0.75, Y: y + h*0.8},
		{X: x + w, Y: y + h},
	}, shipColor)
	c.FillRect(x+w/4, y+h*0.8, w/2, h*0.2, engineColor)
	c.FillCircle(x+w/2, y+h/3, 4, white)

	c.FillRect(x, y-10, w, 4, healthBackColor)
	c.FillRect(x, y-10, p.HealthRatio()*w, 4, healthColor)
}

func drawEnemy(c render.Canvas, e *components.Enemy) {
	x, y, w, h := e.X, e.Y, e.Width, e.Height
	col := enemyColors[e.Kind]

	if e.Kind == components.EnemyBoss {
		c.FillRect(x, y, w, h, col)
		c.FillRect(x+10, y+10, w-20, h-20, white)
		c.FillRect(x+15, y+15, w-30, h-30, col)

		c.FillRect(x, y-15, w, 6, healthBackColor)
		c.FillRect(x, y-15, e.HealthRatio()*w, 6, bossHealthColor)
		return
	}

	c.FillPolygon([]render.Point{
		{X: x + w/2, Y: y + h},
		{X: x, Y: y},
		{X: x + w/4, Y: y + h/3},
		{X: x + w*0.75, Y: y + h/3},
		{X: x + w, Y: y},
	}, col)
	c.FillRect(x+w/3, y+h/4, 4, 4, white)
	c.FillRect(x+w*0.6, y+h/4, 4, 4, white)
}
