package renderers

import (
	"image/color"
	"testing"
	"time"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/render"
	"github.com/lixenwraith/cosmic-arcade/systems"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type op struct {
	name       string
	x, y, w, h float64
	c          color.NRGBA
}

// recordingCanvas logs draw calls in order
type recordingCanvas struct {
	w, h float64
	ops  []op
}

func (r *recordingCanvas) add(o op) { r.ops = append(r.ops, o) }

func (r *recordingCanvas) Bounds() (float64, float64) { return r.w, r.h }
func (r *recordingCanvas) Clear(c color.NRGBA) { r.add(op{name: "clear", c: c}) }
func (r *recordingCanvas) Translate(dx, dy float64) { r.add(op{name: "translate", x: dx, y: dy}) }
func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.add(op{name: "rect", x: x, y: y, w: w, h: h, c: c})
}
func (r *recordingCanvas) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.add(op{name: "circle", x: cx, y: cy, w: rad, c: c})
}
func (r *recordingCanvas) StrokeCircle(cx, cy, rad, width float64, c color.NRGBA) {
	r.add(op{name: "ring", x: cx, y: cy, w: rad, h: width, c: c})
}
func (r *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.add(op{name: "line", x: x0, y: y0, w: x1, h: y1, c: c})
}
func (r *recordingCanvas) FillPolygon(pts []render.Point, c color.NRGBA) {
	r.add(op{name: "polygon", x: pts[0].X, y: pts[0].Y, c: c})
}
func (r *recordingCanvas) FillLinearGradient(x, y, w, h float64, _ render.Gradient) {
	r.add(op{name: "linear", x: x, y: y, w: w, h: h})
}
func (r *recordingCanvas) FillRadialGradient(cx, cy, rad float64, _ render.Gradient) {
	r.add(op{name: "radial", x: cx, y: cy, w: rad})
}
func (r *recordingCanvas) Present() { r.add(op{name: "present"}) }

func (r *recordingCanvas) count(name string, c color.NRGBA) int {
	n := 0
	for _, o := range r.ops {
		if o.name == name && o.c == c {
			n++
		}
	}
	return n
}

func (r *recordingCanvas) named(name string) []op {
	var out []op
	for _, o := range r.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

func testView() *systems.View {
	return &systems.View{
		Width:  constants.GameCanvasWidth,
		Height: constants.GameCanvasHeight,
		Player: components.Player{
			Box:       components.Box{X: 430, Y: 620, Width: 40, Height: 40, Active: true},
			Health:    50,
			MaxHealth: 100,
		},
	}
}

func TestShieldRingOnlyWhileShielded(t *testing.T) {
	for _, shielded := range []bool{false, true} {
		v := testView()
		v.Session.Shield = shielded
		c := &recordingCanvas{w: 900, h: 700}
		drawGame(c, v, 0)

		rings := c.named("ring")
		if !shielded {
			if len(rings) != 0 {
				t.Errorf("unshielded frame drew %d rings", len(rings))
			}
			continue
		}
		if len(rings) != 1 {
			t.Fatalf("shielded frame drew %d rings, want 1", len(rings))
		}
		r := rings[0]
		if r.x != 450 || r.y != 640 || r.w != 30 || r.c != shieldColor {
			t.Errorf("ring = %+v", r)
		}
	}
}

func TestPlayerHealthBar(t *testing.T) {
	c := &recordingCanvas{w: 900, h: 700}
	drawGame(c, testView(), 0)

	var back, fill *op
	for i, o := range c.ops {
		if o.name != "rect" || o.y != 610 {
			continue
		}
		switch o.c {
		case healthBackColor:
			back = &c.ops[i]
		case healthColor:
			fill = &c.ops[i]
		}
	}
	if back == nil || fill == nil {
		t.Fatal("health bar not drawn")
	}
	if back.w != 40 || fill.w != 20 || fill.h != 4 {
		t.Errorf("bar back=%v fill=%v, want 40 and 20x4", back.w, fill.w)
	}
}

func TestShakeTranslation(t *testing.T) {
	v := testView()
	v.Shake = systems.Shake{Intensity: 4, X: 1.5, Y: -2}
	c := &recordingCanvas{w: 900, h: 700}
	drawGame(c, v, 0)

	if c.ops[0].name != "clear" {
		t.Fatalf("first op = %s, want clear", c.ops[0].name)
	}
	moves := c.named("translate")
	if len(moves) != 2 {
		t.Fatalf("translate calls = %d, want 2", len(moves))
	}
	if moves[0].x != 1.5 || moves[0].y != -2 {
		t.Errorf("shake offset = (%v, %v)", moves[0].x, moves[0].y)
	}
	if last := c.ops[len(c.ops)-1]; last.name != "translate" || last.x != 0 || last.y != 0 {
		t.Errorf("frame did not restore identity, last op %+v", last)
	}
}

func TestEnemyVisuals(t *testing.T) {
	v := testView()
	v.Enemies = []components.Enemy{
		{Box: components.Box{X: 100, Y: 100, Width: 30, Height: 30, Active: true}, Kind: components.EnemyFast, Health: 15, MaxHealth: 15},
		{Box: components.Box{X: 300, Y: 200, Width: 60, Height: 60, Active: true}, Kind: components.EnemyBoss, Health: 25, MaxHealth: 50},
	}
	c := &recordingCanvas{w: 900, h: 700}
	drawGame(c, v, 0)

	if n := c.count("polygon", enemyColors[components.EnemyFast]); n != 1 {
		t.Errorf("fast enemy polygons = %d, want 1", n)
	}
	boss := enemyColors[components.EnemyBoss]
	if n := c.count("rect", boss); n != 2 {
		t.Errorf("boss rects = %d, want 2", n)
	}
	var bar *op
	for i, o := range c.ops {
		if o.name == "rect" && o.c == bossHealthColor {
			bar = &c.ops[i]
		}
	}
	if bar == nil || bar.y != 185 || bar.w != 30 || bar.h != 6 {
		t.Errorf("boss health bar = %+v", bar)
	}
}

func TestEntityColors(t *testing.T) {
	v := testView()
	v.Bullets = []components.Bullet{{Box: components.Box{X: 1, Y: 2, Width: 6, Height: 12, Active: true}}}
	v.EnemyBullets = []components.Bullet{{Box: components.Box{X: 3, Y: 4, Width: 5, Height: 10, Active: true}}}
	v.PowerUps = []components.PowerUp{{Box: components.Box{X: 10, Y: 10, Width: 20, Height: 20, Active: true}, Kind: components.PowerUpMultiShot}}
	v.Bursts = []components.Burst{{X: 5, Y: 5, Life: 30, MaxLife: 60, Size: 4, Color: systems.BurstKillColor, Active: true}}
	c := &recordingCanvas{w: 900, h: 700}
	drawGame(c, v, 0)

	if c.count("rect", playerBulletColor) != 1 || c.count("rect", enemyBulletColor) != 1 {
		t.Error("bullet colors not applied")
	}
	orbs := 0
	for _, o := range c.named("circle") {
		if o.c == powerUpColors[components.PowerUpMultiShot] && o.x == 20 && o.y == 20 && o.w == 10 {
			orbs++
		}
	}
	if orbs != 1 {
		t.Errorf("power-up orbs = %d, want 1", orbs)
	}
	faded := withAlpha(systems.BurstKillColor, 0.5)
	found := false
	for _, o := range c.named("circle") {
		if o.c == faded && o.w == 2 {
			found = true
		}
	}
	if !found {
		t.Error("burst not drawn at half fade")
	}
}

func TestStarfieldCount(t *testing.T) {
	c := &recordingCanvas{w: 900, h: 700}
	drawStars(c, 900, 700, 1234)
	rects := c.named("rect")
	if len(rects) != constants.GameStarCount {
		t.Fatalf("stars = %d, want %d", len(rects), constants.GameStarCount)
	}
	for _, r := range rects {
		if r.x < 0 || r.x >= 900 || r.y < 0 || r.y >= 700 {
			t.Errorf("star outside canvas at (%v, %v)", r.x, r.y)
		}
		if r.w < 0.5 || r.w > 1.5 {
			t.Errorf("star size %v outside [0.5,1.5]", r.w)
		}
	}
}

func TestGameRendererRasterizes(t *testing.T) {
	g := systems.NewGame(systems.GameConfig{Rand: vmath.NewSequence(0.5)})
	buf := render.NewPixelBuffer(90, 70, 900, 700)

	NewGameRenderer(g).Render(buf, epoch)

	// Engine glow spans x 440..460, y 652..660
	if got, want := buf.At(45, 65), render.Hex("#0088ff"); got != want {
		t.Errorf("engine pixel = %+v, want %+v", got, want)
	}
}

func TestFieldRendererCosmic(t *testing.T) {
	f := systems.NewField(systems.PresetCosmic, vmath.NewCounterRand(7), 20)
	f.Resize(200, 100)
	f.Reset()
	f.Step(epoch, 0)

	links := 0
	f.Links(func(_, _ *components.Particle, _ float64) { links++ })

	c := &recordingCanvas{w: 200, h: 100}
	NewFieldRenderer(f).Render(c, epoch)

	if c.ops[0].name != "clear" || c.ops[1].name != "radial" {
		t.Fatalf("background ops = %s, %s", c.ops[0].name, c.ops[1].name)
	}
	if r := c.ops[1]; r.x != 100 || r.y != 50 || r.w != 200*constants.FieldGradientScale {
		t.Errorf("radial glow = %+v", r)
	}
	if n := len(c.named("circle")); n != 20 {
		t.Errorf("particles drawn = %d, want 20", n)
	}
	if n := len(c.named("line")); n != links {
		t.Errorf("links drawn = %d, want %d", n, links)
	}
}

func TestFieldRendererFooter(t *testing.T) {
	f := systems.NewField(systems.PresetFooter, vmath.NewCounterRand(7), 0)
	f.Resize(300, 80)
	f.Reset()

	c := &recordingCanvas{w: 300, h: 80}
	NewFieldRenderer(f).Render(c, epoch)

	if c.ops[1].name != "linear" {
		t.Errorf("footer background = %s, want linear", c.ops[1].name)
	}
	want := constants.FooterStarCount + constants.FooterParticleCount
	if n := len(c.named("circle")); n != want {
		t.Errorf("circles = %d, want %d", n, want)
	}
	for _, o := range c.named("line") {
		if o.c.R != linkColor.R || o.c.G != linkColor.G || o.c.B != linkColor.B {
			t.Errorf("link color = %+v", o.c)
		}
	}
}
