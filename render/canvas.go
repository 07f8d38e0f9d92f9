package render

import "image/color"

// Point is a logical canvas coordinate
type Point struct {
	X, Y float64
}

// Canvas is the immediate-mode 2D drawing context a loop renders into
// Coordinates are logical units in [0,w)x[0,h) as reported by Bounds
// Colors carry straight (non-premultiplied) alpha and composite source-over
type Canvas interface {
	Bounds() (w, h float64)

	// Clear fills the whole surface with c, ignoring translation
	Clear(c color.NRGBA)

	// Translate sets the offset applied to every following draw call
	// Translate(0, 0) restores the identity
	Translate(dx, dy float64)

	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillPolygon(pts []Point, c color.NRGBA)

	// FillLinearGradient fills a rect with a top-to-bottom gradient
	FillLinearGradient(x, y, w, h float64, g Gradient)

	// FillRadialGradient fills the whole surface by distance from (cx, cy), reaching the last stop at r
	FillRadialGradient(cx, cy, r float64, g Gradient)

	// Present hands the finished frame to the display
	Present()
}
