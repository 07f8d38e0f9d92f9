package systems

import (
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/lixenwraith/cosmic-arcade/audio"
	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// newQuietGame returns a game whose rng never rolls enemy fire and whose spawn timers are primed at now
func newQuietGame(t *testing.T, cues CuePlayer, now time.Time) *Game {
	t.Helper()
	g := NewGame(GameConfig{Rand: vmath.NewSequence(0.5), Cues: cues})
	g.lastEnemySpawn = now
	g.lastPowerUpSpawn = now
	return g
}

func placeEnemy(g *Game, kind components.EnemyKind, x, y float64) *components.Enemy {
	e := NewEnemy(g.rng, kind, g.w)
	e.X, e.Y = x, y
	g.enemies = append(g.enemies, e)
	return &g.enemies[len(g.enemies)-1]
}

func TestNewGameSession(t *testing.T) {
	g := NewGame(GameConfig{})
	s := g.Snapshot()

	if s.Score != 0 || s.Lives != constants.InitialLives || s.Level != constants.InitialLevel {
		t.Errorf("fresh session = %+v", s.Session)
	}
	if s.GameOver || s.Paused || s.RapidFire || s.MultiShot || s.Shield {
		t.Errorf("fresh session has flags set: %+v", s.Session)
	}

	g.Read(func(v *View) {
		p := v.Player
		if p.X != constants.GameCanvasWidth/2-constants.PlayerWidth/2 || p.Y != constants.GameCanvasHeight-constants.PlayerBottomGap {
			t.Errorf("player at (%f, %f)", p.X, p.Y)
		}
		if p.Health != constants.PlayerHealth || v.Width != constants.GameCanvasWidth {
			t.Errorf("unexpected player or canvas: %+v %f", p, v.Width)
		}
	})
}

func TestBasicPlayScenario(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)

	e := placeEnemy(g, components.EnemyBasic, constants.GameCanvasWidth/2-constants.EnemySize/2, 40)
	if e.Health != 20 {
		t.Fatalf("basic enemy health = %f, want 20", e.Health)
	}
	g.bullets = append(g.bullets, newPlayerBullet(e.X+10, e.Y+10))

	g.Step(now.Add(16*time.Millisecond), 0)

	s := g.Snapshot()
	if s.Enemies != 0 {
		t.Errorf("enemies = %d, want 0", s.Enemies)
	}
	if s.Score != 15 {
		t.Errorf("score = %d, want 15", s.Score)
	}
	if s.Bursts != constants.BurstKillCount {
		t.Errorf("bursts = %d, want %d", s.Bursts, constants.BurstKillCount)
	}
	if s.Bullets != 0 {
		t.Errorf("bullet not consumed")
	}
}

func TestEnemyHealthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := components.EnemyKind(rapid.IntRange(0, 3).Draw(t, "kind"))
		health := float64(rapid.IntRange(1, 200).Draw(t, "health"))
		dmg := float64(rapid.IntRange(1, 200).Draw(t, "damage"))

		g := NewGame(GameConfig{Rand: vmath.NewSequence(0.5)})
		e := NewEnemy(g.rng, kind, g.w)
		e.Health, e.MaxHealth = health, health

		g.damageEnemy(&e, dmg)

		if dmg < health {
			if e.Health != health-dmg || !e.Active || g.session.Score != 0 {
				t.Fatalf("survivor: health=%f active=%v score=%d", e.Health, e.Active, g.session.Score)
			}
			if len(g.bursts) != constants.BurstEnemyHitCount {
				t.Fatalf("hit bursts = %d", len(g.bursts))
			}
			return
		}
		if e.Active || g.session.Score != Reward(kind) {
			t.Fatalf("kill: active=%v score=%d want %d", e.Active, g.session.Score, Reward(kind))
		}
	})
}

func TestRewards(t *testing.T) {
	tests := []struct {
		kind components.EnemyKind
		want int
	}{
		{components.EnemyBasic, 15},
		{components.EnemyFast, 20},
		{components.EnemyZigzag, 15},
		{components.EnemyBoss, 100},
		{components.EnemyKind(9), 0},
	}
	for _, tt := range tests {
		if got := Reward(tt.kind); got != tt.want {
			t.Errorf("Reward(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

// lethalShot puts an enemy bullet inside the player box
func lethalShot(g *Game, dmg float64) {
	p := g.player
	b := components.Bullet{
		Box:    components.Box{X: p.X + 10, Y: p.Y + 5, Width: 5, Height: 10, Active: true},
		Speed:  constants.EnemyBulletSpeed,
		Owner:  components.OwnerEnemy,
		Damage: dmg,
	}
	g.enemyBullets = append(g.enemyBullets, b)
}

func TestLastLifeTransition(t *testing.T) {
	tests := []struct {
		name         string
		shield       bool
		wantLives    int
		wantGameOver bool
		wantHealth   float64
	}{
		{"Unshielded hit ends game", false, 0, true, constants.PlayerHealth},
		{"Shield absorbs hit", true, 1, false, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := epoch
			g := newQuietGame(t, nil, now)
			g.session.Lives = 1
			g.player.Health = 10
			if tt.shield {
				g.activate(components.PowerUpShield, now, constants.ShieldDuration)
			}
			lethalShot(g, 10)

			g.Step(now.Add(16*time.Millisecond), 0)

			s := g.Snapshot()
			if s.Lives != tt.wantLives || s.GameOver != tt.wantGameOver {
				t.Errorf("lives=%d gameOver=%v, want %d/%v", s.Lives, s.GameOver, tt.wantLives, tt.wantGameOver)
			}
			if s.PlayerHealth != tt.wantHealth {
				t.Errorf("health = %f, want %f", s.PlayerHealth, tt.wantHealth)
			}
			if s.EnemyBullets != 0 {
				t.Error("enemy bullet not consumed")
			}
			if g.Halted() != tt.wantGameOver {
				t.Errorf("Halted() = %v", g.Halted())
			}
		})
	}
}

func TestPlayerHitKeepsLives(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)
	lethalShot(g, 30)
	g.Step(now.Add(16*time.Millisecond), 0)

	s := g.Snapshot()
	if s.PlayerHealth != 70 || s.Lives != 3 {
		t.Errorf("health=%f lives=%d, want 70/3", s.PlayerHealth, s.Lives)
	}
	if s.Bursts != constants.BurstPlayerHitCount {
		t.Errorf("bursts = %d, want %d", s.Bursts, constants.BurstPlayerHitCount)
	}
	g.Read(func(v *View) {
		if v.Shake.Intensity == 0 {
			t.Error("player hit did not shake the screen")
		}
	})
}

func TestGameOverStopsStepping(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)
	g.session.Lives = 1
	lethalShot(g, 200)
	g.Step(now, 0)

	tick := g.Snapshot().Tick
	g.Step(now.Add(time.Second), engine.NewInputState(engine.KeyFire))
	if g.Snapshot().Tick != tick {
		t.Error("game over state still stepping")
	}
	if g.TogglePause() {
		t.Error("pause toggled after game over")
	}

	g.Reset()
	s := g.Snapshot()
	if s.GameOver || s.Lives != constants.InitialLives || g.Halted() {
		t.Errorf("Reset() left %+v", s.Session)
	}
}

func TestPowerUpExpiry(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)

	p := g.player
	g.powerUps = append(g.powerUps, components.PowerUp{
		Box:      components.Box{X: p.X, Y: p.Y, Width: 20, Height: 20, Active: true},
		Kind:     components.PowerUpRapidFire,
		Duration: constants.RapidFireDuration,
	})
	g.Step(now, 0)
	if !g.Snapshot().RapidFire {
		t.Fatal("rapid fire not enabled on pickup")
	}

	g.Step(now.Add(constants.RapidFireDuration-time.Millisecond), 0)
	if !g.Snapshot().RapidFire {
		t.Fatal("rapid fire expired early")
	}

	g.Step(now.Add(constants.RapidFireDuration), 0)
	if g.Snapshot().RapidFire {
		t.Error("rapid fire still active at T+10s")
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		kind  components.PowerUpKind
		check func(s Snapshot) bool
	}{
		{components.PowerUpHealth, func(s Snapshot) bool { return s.PlayerHealth == 80 }},
		{components.PowerUpRapidFire, func(s Snapshot) bool { return s.RapidFire }},
		{components.PowerUpMultiShot, func(s Snapshot) bool { return s.MultiShot }},
		{components.PowerUpShield, func(s Snapshot) bool { return s.Shield }},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			now := epoch
			g := newQuietGame(t, nil, now)
			g.player.Health = 50
			p := g.player
			g.powerUps = append(g.powerUps, components.PowerUp{
				Box:  components.Box{X: p.X, Y: p.Y, Width: 20, Height: 20, Active: true},
				Kind: tt.kind,
			})
			g.Step(now, 0)

			s := g.Snapshot()
			if !tt.check(s) {
				t.Errorf("effect not applied: %+v", s)
			}
			if s.PowerUps != 0 {
				t.Error("power-up not consumed")
			}
		})
	}
}

func TestHealCapsAtMax(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)
	g.player.Health = 90
	p := g.player
	g.powerUps = append(g.powerUps, components.PowerUp{
		Box:  components.Box{X: p.X, Y: p.Y, Width: 20, Height: 20, Active: true},
		Kind: components.PowerUpHealth,
	})
	g.Step(now, 0)
	if got := g.Snapshot().PlayerHealth; got != constants.PlayerHealth {
		t.Errorf("health = %f, want cap %d", got, constants.PlayerHealth)
	}
}

func TestBossUnlockFrequency(t *testing.T) {
	const samples = 2000
	rng := vmath.NewFastRand(12345)

	bosses := 0
	for i := 0; i < samples; i++ {
		if PickEnemyKind(rng, 600, true) == components.EnemyBoss {
			bosses++
		}
	}
	// 10% of 2000 is 200 with sigma ~13
	if bosses < 140 || bosses > 260 {
		t.Errorf("bosses = %d of %d, want ~10%%", bosses, samples)
	}

	for i := 0; i < samples; i++ {
		if PickEnemyKind(rng, 500, true) == components.EnemyBoss {
			t.Fatal("boss spawned at threshold score")
		}
		if PickEnemyKind(rng, 10000, false) == components.EnemyBoss {
			t.Fatal("boss spawned with bosses disabled")
		}
	}
}

func TestSpawnGeometryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := float64(rapid.IntRange(1, 2000).Draw(t, "width"))
		kind := components.EnemyKind(rapid.IntRange(0, 3).Draw(t, "kind"))
		seed := rapid.Uint64().Draw(t, "seed")

		e := NewEnemy(vmath.NewCounterRand(seed), kind, width)
		if e.Width > width || e.X < 0 || e.X+e.Width > width {
			t.Fatalf("enemy x=%f w=%f outside canvas width %f", e.X, e.Width, width)
		}
		if e.Health != e.MaxHealth || e.Direction == 0 {
			t.Fatalf("bad enemy %+v", e)
		}
	})
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 950 * time.Millisecond},
		{5, 750 * time.Millisecond},
		{14, 300 * time.Millisecond},
		{30, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.level); got != tt.want {
			t.Errorf("SpawnInterval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSpawnTiming(t *testing.T) {
	now := epoch
	g := NewGame(GameConfig{Rand: vmath.NewSequence(0.5)})

	// First tick spawns both kinds immediately
	g.Step(now, 0)
	if s := g.Snapshot(); s.Enemies != 1 || s.PowerUps != 1 {
		t.Fatalf("first tick spawned %d enemies, %d power-ups", s.Enemies, s.PowerUps)
	}

	g.Step(now.Add(SpawnInterval(1)), 0)
	if g.Snapshot().Enemies != 1 {
		t.Error("enemy spawned before interval elapsed")
	}
	g.Step(now.Add(SpawnInterval(1)+time.Millisecond), 0)
	if g.Snapshot().Enemies != 2 {
		t.Error("enemy not spawned after interval")
	}
	if g.Snapshot().PowerUps != 1 {
		t.Error("power-up spawned before 15s")
	}
}

func TestZigzagBounce(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)

	left := placeEnemy(g, components.EnemyZigzag, 1, 0)
	left.Direction = -1
	right := placeEnemy(g, components.EnemyZigzag, constants.GameCanvasWidth-constants.EnemySize-1, 0)
	right.Direction = 1

	g.Step(now, 0)

	g.Read(func(v *View) {
		l, r := v.Enemies[0], v.Enemies[1]
		if l.Direction != 1 || l.X != 0 {
			t.Errorf("left zigzag dir=%f x=%f, want bounce at 0", l.Direction, l.X)
		}
		if r.Direction != -1 || r.X != constants.GameCanvasWidth-constants.EnemySize {
			t.Errorf("right zigzag dir=%f x=%f, want bounce at wall", r.Direction, r.X)
		}
		if l.Y != constants.ZigzagSpeed {
			t.Errorf("zigzag y = %f, want %d", l.Y, constants.ZigzagSpeed)
		}
	})
}

func TestOffscreenPurge(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)

	placeEnemy(g, components.EnemyBasic, 100, constants.GameCanvasHeight+constants.EnemyDespawnMargin-1)
	placeEnemy(g, components.EnemyBasic, 200, 100)
	g.bullets = append(g.bullets, newPlayerBullet(10, -constants.PlayerBulletHeight+1))
	g.enemyBullets = append(g.enemyBullets, components.Bullet{
		Box:   components.Box{X: 10, Y: constants.GameCanvasHeight - 1, Width: 5, Height: 10, Active: true},
		Speed: constants.EnemyBulletSpeed,
	})
	g.bursts = append(g.bursts, components.Burst{Life: 1, MaxLife: 60, Active: true})

	g.Step(now, 0)

	s := g.Snapshot()
	if s.Enemies != 1 || s.Bullets != 0 || s.EnemyBullets != 0 || s.Bursts != 0 {
		t.Errorf("after purge: %+v", s)
	}
}

func TestBurstDamping(t *testing.T) {
	g := NewGame(GameConfig{Rand: vmath.NewSequence(0.75)})
	g.emitBurst(100, 100, 1, BurstKillColor)
	b := g.bursts[0]
	if b.VX != 2.5 || b.VY != 2.5 || b.Life != constants.BurstLife || b.Size != 5 {
		t.Fatalf("burst = %+v", b)
	}

	g.advanceBursts()
	b = g.bursts[0]
	if b.X != 102.5 {
		t.Errorf("x = %f, want 102.5", b.X)
	}
	want := 2.5
	want *= constants.BurstDamping
	if b.VX != want {
		t.Errorf("vx = %f, want %f", b.VX, want)
	}
	if b.Life != constants.BurstLife-1 {
		t.Errorf("life = %d", b.Life)
	}
}

func TestFiring(t *testing.T) {
	fire := engine.NewInputState(engine.KeyFire)

	t.Run("Cooldown", func(t *testing.T) {
		now := epoch
		g := newQuietGame(t, nil, now)
		g.Step(now, fire)
		g.Step(now.Add(100*time.Millisecond), fire)
		if got := len(g.bullets); got != 1 {
			t.Fatalf("bullets = %d, want 1 inside cooldown", got)
		}
		g.Step(now.Add(151*time.Millisecond), fire)
		if got := len(g.bullets); got != 2 {
			t.Errorf("bullets = %d, want 2 after cooldown", got)
		}
	})

	t.Run("RapidFire", func(t *testing.T) {
		now := epoch
		g := newQuietGame(t, nil, now)
		g.activate(components.PowerUpRapidFire, now, constants.RapidFireDuration)
		g.Step(now, fire)
		g.Step(now.Add(81*time.Millisecond), fire)
		if got := len(g.bullets); got != 2 {
			t.Errorf("bullets = %d, want 2 with rapid fire", got)
		}
	})

	t.Run("MultiShot", func(t *testing.T) {
		now := epoch
		g := newQuietGame(t, nil, now)
		g.activate(components.PowerUpMultiShot, now, constants.MultiShotDuration)
		g.Step(now, fire)
		if got := len(g.bullets); got != 3 {
			t.Fatalf("bullets = %d, want 3", got)
		}
		center := g.player.X + g.player.Width/2 - constants.PlayerBulletWidth/2
		for i, want := range []float64{center - 15, center, center + 15} {
			if g.bullets[i].X != want {
				t.Errorf("bullet %d x = %f, want %f", i, g.bullets[i].X, want)
			}
		}
	})
}

func TestPlayerMovementClamped(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)
	left := engine.NewInputState(engine.KeyLeft, engine.KeyDown)

	for i := 0; i < 200; i++ {
		now = now.Add(16 * time.Millisecond)
		g.lastEnemySpawn = now
		g.Step(now, left)
	}
	g.Read(func(v *View) {
		if v.Player.X != 0 {
			t.Errorf("x = %f, want clamp at 0", v.Player.X)
		}
		if v.Player.Y != v.Height-v.Player.Height {
			t.Errorf("y = %f, want clamp at bottom", v.Player.Y)
		}
	})
}

func TestPauseToggle(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)

	if !g.TogglePause() || !g.Halted() {
		t.Fatal("TogglePause() did not pause")
	}
	tick := g.Snapshot().Tick
	g.Step(now, engine.NewInputState(engine.KeyFire))
	if g.Snapshot().Tick != tick || len(g.bullets) != 0 {
		t.Error("paused game stepped")
	}
	if g.TogglePause() || g.Halted() {
		t.Error("second TogglePause() did not resume")
	}
}

func TestPublishedOncePerTick(t *testing.T) {
	now := epoch
	g := newQuietGame(t, nil, now)

	before := g.Published()
	g.Step(now, 0)
	after := g.Published()
	if before == after || after.Tick != before.Tick+1 {
		t.Errorf("tick %d -> %d", before.Tick, after.Tick)
	}

	g.Read(func(v *View) {
		if v.Session != after.Session {
			t.Error("published session differs from live session")
		}
	})

	raw, err := json.Marshal(after)
	if err != nil {
		t.Fatalf("json.Marshal() = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() = %v", err)
	}
	for _, key := range []string{"score", "lives", "level", "gameOver", "paused", "rapidFire", "multiShot", "shield", "tick"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("snapshot JSON missing %q", key)
		}
	}
}

func TestSoundCues(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := NewMockCuePlayer(ctrl)

	now := epoch
	g := newQuietGame(t, cues, now)

	gomock.InOrder(
		cues.EXPECT().Play(audio.CueShoot),
		cues.EXPECT().Play(audio.CueExplosion),
		cues.EXPECT().Play(audio.CuePlayerHit),
		cues.EXPECT().Play(audio.CuePickup),
	)

	e := placeEnemy(g, components.EnemyFast, 400, 40)
	g.bullets = append(g.bullets, newPlayerBullet(e.X+10, e.Y+10))
	lethalShot(g, 10)
	p := g.player
	g.powerUps = append(g.powerUps, components.PowerUp{
		Box:  components.Box{X: p.X, Y: p.Y, Width: 20, Height: 20, Active: true},
		Kind: components.PowerUpShield,
	})

	g.Step(now, engine.NewInputState(engine.KeyFire))

	if s := g.Snapshot(); s.Score != constants.ScoreFast {
		t.Errorf("score = %d, want %d", s.Score, constants.ScoreFast)
	}
}

func TestBasicVariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := NewMockCuePlayer(ctrl) // no expectations: any cue fails the test

	now := epoch
	g := NewGame(GameConfig{Variant: VariantBasic, Rand: vmath.NewSequence(0.05), Cues: cues})
	g.session.Score = 10000

	g.Step(now, engine.NewInputState(engine.KeyFire))
	for i := 1; i <= 20; i++ {
		g.Step(now.Add(time.Duration(i)*time.Second), 0)
	}

	g.Read(func(v *View) {
		if len(v.PowerUps) != 0 {
			t.Error("basic variant spawned power-ups")
		}
		for _, e := range v.Enemies {
			if e.Kind == components.EnemyBoss {
				t.Error("basic variant spawned a boss")
			}
		}
	})

	g.addShake(10)
	if g.shake.Intensity != 0 {
		t.Error("basic variant shook the screen")
	}
	if g.Snapshot().Variant != "basic" {
		t.Errorf("variant = %q", g.Snapshot().Variant)
	}
}

func TestShakeDecay(t *testing.T) {
	var s Shake
	rng := vmath.NewSequence(0.75)
	s.kick(5)
	s.kick(2)
	if s.Intensity != 5 {
		t.Fatalf("kick kept %f, want stronger impulse", s.Intensity)
	}

	s.update(rng)
	want := 5.0
	want *= constants.ShakeDecay
	if s.X != 1.25 || s.Y != 1.25 || s.Intensity != want {
		t.Errorf("first update x=%f y=%f intensity=%f", s.X, s.Y, s.Intensity)
	}
	for i := 0; i < 100 && s.Intensity > 0; i++ {
		s.update(rng)
	}
	if s.Intensity != 0 || s.X != 0 || s.Y != 0 {
		t.Errorf("shake did not settle: %+v", s)
	}
}

func TestResizeClampsPlayer(t *testing.T) {
	g := NewGame(GameConfig{})
	g.Resize(0, 0)
	g.Read(func(v *View) {
		if v.Width != 1 || v.Height != 1 {
			t.Errorf("bounds = %fx%f, want 1x1", v.Width, v.Height)
		}
		if v.Player.X != 0 || v.Player.Y != 0 {
			t.Errorf("player at (%f, %f)", v.Player.X, v.Player.Y)
		}
	})
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]Variant{"": VariantEnhanced, "enhanced": VariantEnhanced, "basic": VariantBasic} {
		got, err := ParseVariant(in)
		if err != nil || got != want {
			t.Errorf("ParseVariant(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseVariant("deluxe"); err == nil {
		t.Error("ParseVariant(deluxe) succeeded")
	}
}
