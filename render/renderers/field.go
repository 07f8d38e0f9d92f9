package renderers

import (
	"time"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/render"
	"github.com/lixenwraith/cosmic-arcade/systems"
)

// FieldRenderer draws an ambient field: background glow, stars, particles, links
type FieldRenderer struct {
	field *systems.Field
}

// NewFieldRenderer creates a renderer over f; it never mutates the field
func NewFieldRenderer(f *systems.Field) *FieldRenderer {
	return &FieldRenderer{field: f}
}

// Render implements engine.Renderer
func (r *FieldRenderer) Render(c render.Canvas, _ time.Time) {
	f := r.field
	w, h := c.Bounds()

	c.Clear(fieldBase)
	switch f.Preset() {
	case systems.PresetFooter:
		c.FillLinearGradient(0, 0, w, h, footerGlow)
	default:
		c.FillRadialGradient(w/2, h/2, w*constants.FieldGradientScale, cosmicGlow)
	}

	for _, s := range f.Stars() {
		c.FillCircle(s.X, s.Y, s.Radius, starColor.NRGBA(systems.TwinkleOpacity(s.Phase)))
	}

	particles := f.Particles()
	for i := range particles {
		p := &particles[i]
		c.FillCircle(p.X, p.Y, p.Radius, withAlpha(p.Color, p.Opacity))
	}

	f.Links(func(a, b *components.Particle, alpha float64) {
		c.StrokeLine(a.X, a.Y, b.X, b.Y, constants.FieldLinkWidth, linkColor.NRGBA(alpha))
	})
}
