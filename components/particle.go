package components

import "image/color"

// Particle is a single point of the ambient field
// Position is kept inside [0,width)x[0,height) by the field step
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64 // Recomputed every frame
	Hue     float64 // Degrees, fixed at creation
	Color   color.NRGBA

	// Life and MaxLife are frame counters, zero MaxLife means the particle never expires
	Life    int
	MaxLife int
}

// Star is a fixed-position twinkling point drawn behind the field
type Star struct {
	X, Y   float64
	Radius float64
	Phase  float64 // Radians offset into the twinkle cycle
}
