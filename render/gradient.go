package render

import (
	"image/color"
	"sort"
)

// Stop is a gradient color stop, Offset in [0,1]
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is an ordered set of stops
type Gradient []Stop

// NewGradient sorts stops by offset
func NewGradient(stops ...Stop) Gradient {
	g := append(Gradient(nil), stops...)
	sort.SliceStable(g, func(i, j int) bool { return g[i].Offset < g[j].Offset })
	return g
}

// At samples the gradient, clamping t to the first and last stop
func (g Gradient) At(t float64) color.NRGBA {
	if len(g) == 0 {
		return color.NRGBA{}
	}
	if t <= g[0].Offset {
		return g[0].Color
	}
	last := g[len(g)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(g); i++ {
		b := g[i]
		if t > b.Offset {
			continue
		}
		a := g[i-1]
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, f),
			G: lerp8(a.Color.G, b.Color.G, f),
			B: lerp8(a.Color.B, b.Color.B, f),
			A: lerp8(a.Color.A, b.Color.A, f),
		}
	}
	return last.Color
}

func lerp8(a, b uint8, t float64) uint8 {
	return clamp(float64(a) + t*float64(int(b)-int(a)) + 0.5)
}
