package systems

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/render"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// Preset selects the ambient field flavor
type Preset uint8

const (
	// PresetCosmic is the page background: violet hues, all-pairs links, time shimmer
	PresetCosmic Preset = iota
	// PresetFooter is the footer strip: two-color palette, finite lifetimes, neighbor links, stars
	PresetFooter
)

func (p Preset) String() string {
	switch p {
	case PresetCosmic:
		return "cosmic"
	case PresetFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// ParsePreset resolves a preset name
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "cosmic", "":
		return PresetCosmic, nil
	case "footer":
		return PresetFooter, nil
	default:
		return 0, fmt.Errorf("unknown field preset %q", s)
	}
}

// Footer palette
var (
	footerViolet  = render.Hex("#8b5cf6")
	footerFuchsia = render.Hex("#d946ef")
)

// fieldParams is the per-preset tuning table
type fieldParams struct {
	count         int
	velocitySpan  float64
	radiusMin     float64
	radiusSpan    float64
	linkDistance  float64
	linkMaxAlpha  float64
	linkNeighbors int // 0 links all pairs
	lifeMin       int // 0 means particles never expire
	lifeSpan      int
	stars         int
}

var presetParams = map[Preset]fieldParams{
	PresetCosmic: {
		count:        constants.FieldParticleCount,
		velocitySpan: constants.FieldVelocitySpan,
		radiusMin:    constants.FieldRadiusMin,
		radiusSpan:   constants.FieldRadiusSpan,
		linkDistance: constants.FieldLinkDistance,
		linkMaxAlpha: constants.FieldLinkMaxAlpha,
	},
	PresetFooter: {
		count:         constants.FooterParticleCount,
		velocitySpan:  constants.FooterVelocitySpan,
		radiusMin:     constants.FooterRadiusMin,
		radiusSpan:    constants.FooterRadiusSpan,
		linkDistance:  constants.FooterLinkDistance,
		linkMaxAlpha:  constants.FooterLinkMaxAlpha,
		linkNeighbors: constants.FooterLinkNeighbors,
		lifeMin:       constants.FooterLifeMin,
		lifeSpan:      constants.FooterLifeSpan,
		stars:         constants.FooterStarCount,
	},
}

// Field is the ambient particle simulation, it never halts
type Field struct {
	preset    Preset
	params    fieldParams
	rng       vmath.Source
	w, h      float64
	particles []components.Particle
	stars     []components.Star
}

// NewField creates an empty field; count <= 0 uses the preset size
func NewField(preset Preset, rng vmath.Source, count int) *Field {
	p, ok := presetParams[preset]
	if !ok {
		preset, p = PresetCosmic, presetParams[PresetCosmic]
	}
	if count > 0 {
		p.count = count
	}
	if rng == nil {
		rng = vmath.NewEntropyRand()
	}
	return &Field{
		preset: preset,
		params: p,
		rng:    rng,
		w:      constants.MinSurfaceSize,
		h:      constants.MinSurfaceSize,
	}
}

// Preset returns the field flavor
func (f *Field) Preset() Preset { return f.preset }

// Count returns the pool size created by Reset
func (f *Field) Count() int { return f.params.count }

// Bounds returns the wrap dimensions
func (f *Field) Bounds() (w, h float64) { return f.w, f.h }

// Particles exposes the pool for drawing, callers must not retain it across ticks
func (f *Field) Particles() []components.Particle { return f.particles }

// Stars exposes the footer starfield
func (f *Field) Stars() []components.Star { return f.stars }

// Resize changes the wrap bounds and folds existing particles back inside
func (f *Field) Resize(w, h int) {
	f.w = float64(max(w, constants.MinSurfaceSize))
	f.h = float64(max(h, constants.MinSurfaceSize))
	for i := range f.particles {
		p := &f.particles[i]
		p.X = vmath.Wrap(p.X, f.w)
		p.Y = vmath.Wrap(p.Y, f.h)
	}
	for i := range f.stars {
		s := &f.stars[i]
		s.X = vmath.Wrap(s.X, f.w)
		s.Y = vmath.Wrap(s.Y, f.h)
	}
}

// Reset discards the pool and creates a fresh one inside the current bounds
func (f *Field) Reset() {
	f.particles = f.particles[:0]
	for i := 0; i < f.params.count; i++ {
		f.particles = append(f.particles, f.createParticle())
	}

	f.stars = f.stars[:0]
	for i := 0; i < f.params.stars; i++ {
		f.stars = append(f.stars, components.Star{
			X:      f.rng.Float64() * f.w,
			Y:      f.rng.Float64() * f.h,
			Radius: vmath.Range(f.rng, constants.FooterStarRadiusMin, constants.FooterStarRadiusMin+constants.FooterStarRadiusSpan),
			Phase:  f.rng.Float64() * 2 * math.Pi,
		})
	}
}

// createParticle draws position, velocity, radius and color for one particle
func (f *Field) createParticle() components.Particle {
	p := components.Particle{
		X:      f.rng.Float64() * f.w,
		Y:      f.rng.Float64() * f.h,
		VX:     vmath.Centered(f.rng, f.params.velocitySpan),
		VY:     vmath.Centered(f.rng, f.params.velocitySpan),
		Radius: f.params.radiusMin + f.rng.Float64()*f.params.radiusSpan,
	}

	switch f.preset {
	case PresetFooter:
		c := footerFuchsia
		if f.rng.Float64() > constants.FooterAltColorChance {
			c = footerViolet
		}
		p.Color = c.NRGBA(1)
		p.MaxLife = f.params.lifeMin + vmath.Intn(f.rng, f.params.lifeSpan)
		p.Life = p.MaxLife
		p.Opacity = constants.FooterMaxOpacity
	default:
		p.Hue = constants.FieldHueMin + f.rng.Float64()*constants.FieldHueSpan
		p.Color = render.HSL(p.Hue, constants.FieldSaturation, constants.FieldLightness).NRGBA(1)
		p.Opacity = constants.FieldShimmerOffset
	}
	return p
}

// Step advances every particle one frame
func (f *Field) Step(now time.Time, _ engine.InputState) {
	ms := float64(now.UnixNano()) / float64(time.Millisecond)

	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.MaxLife > 0 {
			p.Life--
			p.Opacity = LifeOpacity(p.Life, p.MaxLife)
			if p.Life <= 0 {
				p.X = f.rng.Float64() * f.w
				p.Y = f.rng.Float64() * f.h
				p.VX = vmath.Centered(f.rng, f.params.velocitySpan)
				p.VY = vmath.Centered(f.rng, f.params.velocitySpan)
				p.Life = p.MaxLife
			}
		}

		p.X = vmath.Wrap(p.X, f.w)
		p.Y = vmath.Wrap(p.Y, f.h)

		if p.MaxLife == 0 {
			p.Opacity = ShimmerOpacity(ms, p.X)
		}
	}

	for i := range f.stars {
		f.stars[i].Phase += constants.FooterTwinkleStep
	}
}

// Halted is always false, the ambient field never pauses
func (f *Field) Halted() bool { return false }

// Links visits each particle pair closer than the preset link distance
func (f *Field) Links(fn func(a, b *components.Particle, alpha float64)) {
	d := f.params.linkDistance
	for i := range f.particles {
		end := len(f.particles)
		if n := f.params.linkNeighbors; n > 0 {
			end = min(end, i+1+n)
		}
		a := &f.particles[i]
		for j := i + 1; j < end; j++ {
			b := &f.particles[j]
			dist := vmath.Dist(a.X, a.Y, b.X, b.Y)
			if dist < d {
				fn(a, b, (d-dist)/d*f.params.linkMaxAlpha)
			}
		}
	}
}

// ShimmerOpacity is the time and position driven pulse, always in [0,1]
func ShimmerOpacity(ms, x float64) float64 {
	o := math.Sin(ms*constants.FieldShimmerTime+x*constants.FieldShimmerSpace)*constants.FieldShimmerAmp + constants.FieldShimmerOffset
	return vmath.Clamp(o, 0, 1)
}

// LifeOpacity fades a particle out over its lifetime
func LifeOpacity(life, maxLife int) float64 {
	if maxLife <= 0 {
		return 0
	}
	return vmath.Clamp(float64(life)/float64(maxLife)*constants.FooterMaxOpacity, 0, 1)
}

// TwinkleOpacity maps a star phase to opacity; the raw curve dips below zero so it is clamped
func TwinkleOpacity(phase float64) float64 {
	return vmath.Clamp(constants.FooterTwinkleOffset+math.Sin(phase)*constants.FooterTwinkleAmp, 0, 1)
}
