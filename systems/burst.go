package systems

import (
	"image/color"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/render"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// Burst colors
var (
	BurstKillColor      = render.Hex("#ffaa00").NRGBA(1)
	BurstEnemyHitColor  = render.Hex("#ff6600").NRGBA(1)
	BurstPlayerHitColor = render.Hex("#ff0000").NRGBA(1)
)

// emitBurst appends count particles at (x, y) with random spread
func (g *Game) emitBurst(x, y float64, count int, c color.NRGBA) {
	for i := 0; i < count; i++ {
		g.bursts = append(g.bursts, components.Burst{
			X:       x,
			Y:       y,
			VX:      vmath.Centered(g.rng, constants.BurstVelocitySpan),
			VY:      vmath.Centered(g.rng, constants.BurstVelocitySpan),
			Life:    constants.BurstLife,
			MaxLife: constants.BurstLife,
			Color:   c,
			Size:    constants.BurstSizeMin + g.rng.Float64()*constants.BurstSizeSpan,
			Active:  true,
		})
	}
}

// advanceBursts applies damped motion and ages every burst
func (g *Game) advanceBursts() {
	for i := range g.bursts {
		b := &g.bursts[i]
		if !b.Active {
			continue
		}
		b.X += b.VX
		b.Y += b.VY
		b.VX *= constants.BurstDamping
		b.VY *= constants.BurstDamping
		b.Life--
		if b.Life <= 0 {
			b.Active = false
		}
	}
}

// Shake is the screen shake impulse and the offset for the current frame
type Shake struct {
	Intensity float64
	X, Y      float64
}

// kick raises intensity, overlapping impulses keep the stronger one
func (s *Shake) kick(intensity float64) {
	s.Intensity = max(s.Intensity, intensity)
}

// update rolls a new offset and decays intensity, snapping to rest below the epsilon
func (s *Shake) update(rng vmath.Source) {
	if s.Intensity <= 0 {
		return
	}
	s.X = vmath.Centered(rng, s.Intensity)
	s.Y = vmath.Centered(rng, s.Intensity)
	s.Intensity *= constants.ShakeDecay
	if s.Intensity < constants.ShakeEpsilon {
		s.Intensity = 0
		s.X, s.Y = 0, 0
	}
}

func (g *Game) addShake(intensity float64) {
	if g.enhanced() {
		g.shake.kick(intensity)
	}
}
