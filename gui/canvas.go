package gui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/cosmic-arcade/render"
)

// gradientScale is the downsampling factor for cached gradient images
const gradientScale = 4

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// whiteSubImage avoids sampling the image edge when filling triangles
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

type gradientKey struct {
	radial     bool
	x, y, w, h float64
	first      *render.Stop
}

// Canvas implements render.Canvas on an ebiten image with vector drawing
type Canvas struct {
	dst      *ebiten.Image
	ox, oy   float64
	vertices []ebiten.Vertex
	indices  []uint16

	// Gradients are rasterized once per geometry and reused across frames
	gradients map[gradientKey]*ebiten.Image
}

// NewCanvas creates a canvas drawing into dst
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, gradients: make(map[gradientKey]*ebiten.Image)}
}

// Target returns the image the canvas draws into
func (c *Canvas) Target() *ebiten.Image { return c.dst }

// Retarget switches the destination and drops cached gradients
func (c *Canvas) Retarget(dst *ebiten.Image) {
	c.dst = dst
	for k, img := range c.gradients {
		img.Deallocate()
		delete(c.gradients, k)
	}
}

func (c *Canvas) Bounds() (w, h float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Clear(col color.NRGBA) {
	c.dst.Fill(col)
}

func (c *Canvas) Translate(dx, dy float64) {
	c.ox, c.oy = dx, dy
}

func (c *Canvas) pt(x, y float64) (float32, float32) {
	return float32(x + c.ox), float32(y + c.oy)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	if w <= 0 || h <= 0 || col.A == 0 {
		return
	}
	px, py := c.pt(x, y)
	vector.DrawFilledRect(c.dst, px, py, float32(w), float32(h), col, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 || col.A == 0 {
		return
	}
	px, py := c.pt(cx, cy)
	vector.DrawFilledCircle(c.dst, px, py, float32(r), col, true)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.NRGBA) {
	if r <= 0 || col.A == 0 {
		return
	}
	px, py := c.pt(cx, cy)
	vector.StrokeCircle(c.dst, px, py, float32(r), float32(width), col, true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	ax, ay := c.pt(x0, y0)
	bx, by := c.pt(x1, y1)
	vector.StrokeLine(c.dst, ax, ay, bx, by, float32(width), col, true)
}

func (c *Canvas) FillPolygon(pts []render.Point, col color.NRGBA) {
	if len(pts) < 3 || col.A == 0 {
		return
	}
	var path vector.Path
	for i, p := range pts {
		x, y := c.pt(p.X, p.Y)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.NonZero,
		AntiAlias: true,
	})
}

func (c *Canvas) FillLinearGradient(x, y, w, h float64, g render.Gradient) {
	if w <= 0 || h <= 0 || len(g) == 0 {
		return
	}
	key := gradientKey{x: x, y: y, w: w, h: h, first: &g[0]}
	img, ok := c.gradients[key]
	if !ok {
		rows := max(int(math.Ceil(h/gradientScale)), 1)
		pix := image.NewNRGBA(image.Rect(0, 0, 1, rows))
		for py := 0; py < rows; py++ {
			pix.SetNRGBA(0, py, g.At((float64(py)+0.5)/float64(rows)))
		}
		img = ebiten.NewImageFromImage(pix)
		c.gradients[key] = img
	}
	c.drawStretched(img, x, y, w, h)
}

func (c *Canvas) FillRadialGradient(cx, cy, r float64, g render.Gradient) {
	if len(g) == 0 {
		return
	}
	w, h := c.Bounds()
	key := gradientKey{radial: true, x: cx, y: cy, w: r, h: w*h, first: &g[0]}
	img, ok := c.gradients[key]
	if !ok {
		cols := max(int(math.Ceil(w/gradientScale)), 1)
		rows := max(int(math.Ceil(h/gradientScale)), 1)
		pix := image.NewNRGBA(image.Rect(0, 0, cols, rows))
		for py := 0; py < rows; py++ {
			ly := (float64(py) + 0.5) * h / float64(rows)
			for px := 0; px < cols; px++ {
				lx := (float64(px) + 0.5) * w / float64(cols)
				t := 1.0
				if r > 0 {
					t = math.Hypot(lx-cx, ly-cy) / r
				}
				pix.SetNRGBA(px, py, g.At(t))
			}
		}
		img = ebiten.NewImageFromImage(pix)
		c.gradients[key] = img
	}
	c.drawStretched(img, 0, 0, w, h)
}

func (c *Canvas) drawStretched(img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x+c.ox, y+c.oy)
	c.dst.DrawImage(img, op)
}

// Present is a no-op, ebiten presents the screen after Draw returns
func (c *Canvas) Present() {}
