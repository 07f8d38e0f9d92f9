package renderers

import (
	"image/color"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/render"
)

// Field palette
var (
	fieldBase = render.Hex("#020617").NRGBA(1)
	linkColor = render.Hex("#8b5cf6")
	starColor = render.RGBWhite

	cosmicGlow = render.NewGradient(
		render.Stop{Offset: 0, Color: render.RGB{R: 147, G: 51, B: 234}.NRGBA(0.15)},
		render.Stop{Offset: 0.5, Color: render.RGB{R: 168, G: 85, B: 247}.NRGBA(0.08)},
		render.Stop{Offset: 1, Color: render.RGB{R: 30, G: 41, B: 59}.NRGBA(0.02)},
	)
	footerGlow = render.NewGradient(
		render.Stop{Offset: 0, Color: render.RGB{R: 30, G: 41, B: 59}.NRGBA(0.1)},
		render.Stop{Offset: 0.5, Color: render.RGB{R: 147, G: 51, B: 234}.NRGBA(0.08)},
		render.Stop{Offset: 1, Color: render.RGB{R: 168, G: 85, B: 247}.NRGBA(0.12)},
	)
)

// Game palette
var (
	spaceGradient = render.NewGradient(
		render.Stop{Offset: 0, Color: render.Hex("#000033").NRGBA(1)},
		render.Stop{Offset: 1, Color: render.Hex("#000011").NRGBA(1)},
	)

	shipColor       = render.Hex("#00ff00").NRGBA(1)
	engineColor     = render.Hex("#0088ff").NRGBA(1)
	shieldColor     = render.Hex("#00ffff").NRGBA(1)
	healthBackColor = render.Hex("#ff0000").NRGBA(1)
	healthColor     = render.Hex("#00ff00").NRGBA(1)
	bossHealthColor = render.Hex("#ffff00").NRGBA(1)
	white           = render.RGBWhite.NRGBA(1)

	playerBulletColor = render.Hex("#00ffff").NRGBA(1)
	enemyBulletColor  = render.Hex("#ffff00").NRGBA(1)

	enemyColors = map[components.EnemyKind]color.NRGBA{
		components.EnemyBasic:  render.Hex("#ff0000").NRGBA(1),
		components.EnemyFast:   render.Hex("#ff8800").NRGBA(1),
		components.EnemyZigzag: render.Hex("#ff00ff").NRGBA(1),
		components.EnemyBoss:   render.Hex("#ff0066").NRGBA(1),
	}

	powerUpColors = map[components.PowerUpKind]color.NRGBA{
		components.PowerUpHealth:    render.Hex("#00ff00").NRGBA(1),
		components.PowerUpRapidFire: render.Hex("#ff8800").NRGBA(1),
		components.PowerUpMultiShot: render.Hex("#8800ff").NRGBA(1),
		components.PowerUpShield:    render.Hex("#00ffff").NRGBA(1),
	}
)

// withAlpha scales the color's alpha by a in [0,1]
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a <= 0 {
		c.A = 0
		return c
	}
	if a >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
