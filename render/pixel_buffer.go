package render

import (
	"image/color"
	"math"
)

// PixelBuffer rasterizes logical canvas draw calls onto a fixed pixel grid
// Shapes cover the pixels whose centers fall inside them; a shape too small to
// cover any center still lights the pixel under its center so sub-pixel
// entities stay visible on coarse grids
type PixelBuffer struct {
	cols, rows int
	lw, lh     float64
	sx, sy     float64 // pixels per logical unit
	ox, oy     float64 // current translation, logical units
	pix        []RGB
	onPresent  func(*PixelBuffer)
	frames     uint64
}

// NewPixelBuffer creates a cols x rows grid showing a lw x lh logical canvas
func NewPixelBuffer(cols, rows int, lw, lh float64) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(cols, rows, lw, lh)
	return b
}

// Resize reallocates the grid and clears it to black
// Non-positive logical sizes map one logical unit to one pixel
func (b *PixelBuffer) Resize(cols, rows int, lw, lh float64) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	if lw <= 0 {
		lw = float64(cols)
	}
	if lh <= 0 {
		lh = float64(rows)
	}

	b.cols, b.rows = cols, rows
	b.lw, b.lh = lw, lh
	b.sx = float64(cols) / lw
	b.sy = float64(rows) / lh
	b.ox, b.oy = 0, 0

	n := cols * rows
	if cap(b.pix) >= n {
		b.pix = b.pix[:n]
	} else {
		b.pix = make([]RGB, n)
	}
	clear(b.pix)
}

// OnPresent registers the callback run by Present
func (b *PixelBuffer) OnPresent(fn func(*PixelBuffer)) {
	b.onPresent = fn
}

// Size returns the pixel grid dimensions
func (b *PixelBuffer) Size() (cols, rows int) {
	return b.cols, b.rows
}

// At returns the pixel color, black when out of range
func (b *PixelBuffer) At(px, py int) RGB {
	if px < 0 || py < 0 || px >= b.cols || py >= b.rows {
		return RGBBlack
	}
	return b.pix[py*b.cols+px]
}

// Frames returns how many frames were presented
func (b *PixelBuffer) Frames() uint64 {
	return b.frames
}

func (b *PixelBuffer) Bounds() (w, h float64) {
	return b.lw, b.lh
}

func (b *PixelBuffer) Clear(c color.NRGBA) {
	fill := Blend(RGBBlack, FromNRGBA(c), float64(c.A)/255)
	for i := range b.pix {
		b.pix[i] = fill
	}
}

func (b *PixelBuffer) Translate(dx, dy float64) {
	b.ox, b.oy = dx, dy
}

func (b *PixelBuffer) Present() {
	b.frames++
	if b.onPresent != nil {
		b.onPresent(b)
	}
}

// devX maps a logical x to device space
func (b *PixelBuffer) devX(x float64) float64 { return (x + b.ox) * b.sx }
func (b *PixelBuffer) devY(y float64) float64 { return (y + b.oy) * b.sy }

// logX maps a pixel column center back to logical space
func (b *PixelBuffer) logX(px int) float64 { return (float64(px)+0.5)/b.sx - b.ox }
func (b *PixelBuffer) logY(py int) float64 { return (float64(py)+0.5)/b.sy - b.oy }

func (b *PixelBuffer) blend(px, py int, c color.NRGBA) {
	if px < 0 || py < 0 || px >= b.cols || py >= b.rows || c.A == 0 {
		return
	}
	i := py*b.cols + px
	b.pix[i] = Blend(b.pix[i], FromNRGBA(c), float64(c.A)/255)
}

// span returns pixel indices whose centers lie in [d0, d1), falling back to the pixel under mid
func span(d0, d1 float64) (lo, hi int) {
	lo = int(math.Ceil(d0 - 0.5))
	hi = int(math.Ceil(d1 - 0.5))
	if hi <= lo {
		lo = int(math.Floor((d0 + d1) / 2))
		hi = lo + 1
	}
	return lo, hi
}

func (b *PixelBuffer) clipX(lo, hi int) (int, int) { return max(lo, 0), min(hi, b.cols) }
func (b *PixelBuffer) clipY(lo, hi int) (int, int) { return max(lo, 0), min(hi, b.rows) }

func (b *PixelBuffer) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := b.clipX(span(b.devX(x), b.devX(x+w)))
	y0, y1 := b.clipY(span(b.devY(y), b.devY(y+h)))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.blend(px, py, c)
		}
	}
}

func (b *PixelBuffer) FillLinearGradient(x, y, w, h float64, g Gradient) {
	if w <= 0 || h <= 0 || len(g) == 0 {
		return
	}
	x0, x1 := b.clipX(span(b.devX(x), b.devX(x+w)))
	y0, y1 := b.clipY(span(b.devY(y), b.devY(y+h)))
	for py := y0; py < y1; py++ {
		c := g.At((b.logY(py) - y) / h)
		for px := x0; px < x1; px++ {
			b.blend(px, py, c)
		}
	}
}

func (b *PixelBuffer) FillRadialGradient(cx, cy, r float64, g Gradient) {
	if len(g) == 0 {
		return
	}
	for py := 0; py < b.rows; py++ {
		dy := b.logY(py) - cy
		for px := 0; px < b.cols; px++ {
			t := 1.0
			if r > 0 {
				t = math.Hypot(b.logX(px)-cx, dy) / r
			}
			b.blend(px, py, g.At(t))
		}
	}
}

func (b *PixelBuffer) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	x0, x1 := b.clipX(int(math.Floor(b.devX(cx-r))), int(math.Ceil(b.devX(cx+r)))+1)
	y0, y1 := b.clipY(int(math.Floor(b.devY(cy-r))), int(math.Ceil(b.devY(cy+r)))+1)

	r2 := r * r
	hit := false
	for py := y0; py < y1; py++ {
		dy := b.logY(py) - cy
		for px := x0; px < x1; px++ {
			dx := b.logX(px) - cx
			if dx*dx+dy*dy <= r2 {
				b.blend(px, py, c)
				hit = true
			}
		}
	}
	if !hit {
		b.blend(int(math.Floor(b.devX(cx))), int(math.Floor(b.devY(cy))), c)
	}
}

func (b *PixelBuffer) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	// Never thinner than half a pixel so the ring stays continuous
	half := max(width/2, 0.5/b.sx, 0.5/b.sy)
	outer := r + half

	x0, x1 := b.clipX(int(math.Floor(b.devX(cx-outer))), int(math.Ceil(b.devX(cx+outer)))+1)
	y0, y1 := b.clipY(int(math.Floor(b.devY(cy-outer))), int(math.Ceil(b.devY(cy+outer)))+1)
	for py := y0; py < y1; py++ {
		dy := b.logY(py) - cy
		for px := x0; px < x1; px++ {
			d := math.Hypot(b.logX(px)-cx, dy)
			if math.Abs(d-r) <= half {
				b.blend(px, py, c)
			}
		}
	}
}

// StrokeLine draws a one-pixel line, width only matters on finer grids than the terminal
func (b *PixelBuffer) StrokeLine(x0, y0, x1, y1, _ float64, c color.NRGBA) {
	dx0, dy0 := b.devX(x0), b.devY(y0)
	dx1, dy1 := b.devX(x1), b.devY(y1)

	steps := int(math.Max(math.Abs(dx1-dx0), math.Abs(dy1-dy0))) + 1
	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor(dx0 + (dx1-dx0)*t))
		py := int(math.Floor(dy0 + (dy1-dy0)*t))
		if px == lastX && py == lastY {
			continue
		}
		b.blend(px, py, c)
		lastX, lastY = px, py
	}
}

func (b *PixelBuffer) FillPolygon(pts []Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	var sumX, sumY float64
	for _, p := range pts {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		sumX += p.X
		sumY += p.Y
	}

	x0, x1 := b.clipX(int(math.Floor(b.devX(minX))), int(math.Ceil(b.devX(maxX)))+1)
	y0, y1 := b.clipY(int(math.Floor(b.devY(minY))), int(math.Ceil(b.devY(maxY)))+1)

	hit := false
	for py := y0; py < y1; py++ {
		ly := b.logY(py)
		for px := x0; px < x1; px++ {
			if insidePolygon(pts, b.logX(px), ly) {
				b.blend(px, py, c)
				hit = true
			}
		}
	}
	if !hit {
		n := float64(len(pts))
		b.blend(int(math.Floor(b.devX(sumX/n))), int(math.Floor(b.devY(sumY/n))), c)
	}
}

// insidePolygon is the even-odd crossing test
func insidePolygon(pts []Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, c := pts[i], pts[j]
		if (a.Y > y) != (c.Y > y) && x < (c.X-a.X)*(y-a.Y)/(c.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}
