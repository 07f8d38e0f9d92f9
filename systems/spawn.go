package systems

import (
	"time"

	"github.com/lixenwraith/cosmic-arcade/audio"
	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/engine"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// enemyStats is the fixed per-kind table
type enemyStats struct {
	size   float64
	speed  float64
	health float64
	reward int
}

var enemyTable = [...]enemyStats{
	components.EnemyBasic:  {constants.EnemySize, constants.BasicSpeed, constants.BasicHealth, constants.ScoreBasic},
	components.EnemyFast:   {constants.EnemySize, constants.FastSpeed, constants.FastHealth, constants.ScoreFast},
	components.EnemyZigzag: {constants.EnemySize, constants.ZigzagSpeed, constants.ZigzagHealth, constants.ScoreZigzag},
	components.EnemyBoss:   {constants.BossSize, constants.BossSpeed, constants.BossHealth, constants.ScoreBoss},
}

var regularKinds = [...]components.EnemyKind{components.EnemyBasic, components.EnemyFast, components.EnemyZigzag}

// Reward returns the score for destroying an enemy of kind k
func Reward(k components.EnemyKind) int {
	if int(k) >= len(enemyTable) {
		return 0
	}
	return enemyTable[k].reward
}

// PickEnemyKind draws a kind; bosses appear with a fixed chance once score passes the threshold
func PickEnemyKind(rng vmath.Source, score int, bosses bool) components.EnemyKind {
	if bosses && score > constants.BossScoreThreshold && rng.Float64() < constants.BossChance {
		return components.EnemyBoss
	}
	return regularKinds[vmath.Intn(rng, len(regularKinds))]
}

// NewEnemy builds an enemy of kind k just above the top edge of a canvas width wide
// Widths narrower than the enemy collapse the x range to zero
func NewEnemy(rng vmath.Source, k components.EnemyKind, width float64) components.Enemy {
	st := enemyTable[k]
	size := min(st.size, width)

	dir := -1.0
	if rng.Float64() > 0.5 {
		dir = 1
	}
	return components.Enemy{
		Box: components.Box{
			X:      rng.Float64() * max(width-size, 0),
			Y:      -size,
			Width:  size,
			Height: size,
			Active: true,
		},
		Speed:     st.speed,
		Kind:      k,
		Direction: dir,
		Health:    st.health,
		MaxHealth: st.health,
	}
}

// SpawnInterval is the enemy spawn period for a level, shrinking toward a floor
func SpawnInterval(level int) time.Duration {
	d := constants.EnemySpawnBase - time.Duration(level)*constants.EnemySpawnPerLevel
	return max(d, constants.EnemySpawnFloor)
}

// spawn adds an enemy and a power-up when their intervals have elapsed
func (g *Game) spawn(now time.Time) {
	if now.Sub(g.lastEnemySpawn) > SpawnInterval(g.session.Level) {
		g.lastEnemySpawn = now
		kind := PickEnemyKind(g.rng, g.session.Score, g.enhanced())
		g.enemies = append(g.enemies, NewEnemy(g.rng, kind, g.w))
	}

	if g.enhanced() && now.Sub(g.lastPowerUpSpawn) > constants.PowerUpSpawnInterval {
		g.lastPowerUpSpawn = now
		g.powerUps = append(g.powerUps, g.newPowerUp())
	}
}

func (g *Game) newPowerUp() components.PowerUp {
	kind := components.PowerUpKinds[vmath.Intn(g.rng, len(components.PowerUpKinds))]
	size := min(float64(constants.PowerUpSize), g.w)
	return components.PowerUp{
		Box: components.Box{
			X:      g.rng.Float64() * max(g.w-size, 0),
			Y:      -size,
			Width:  size,
			Height: size,
			Active: true,
		},
		Kind:     kind,
		Duration: powerUpDuration(kind),
	}
}

// fire emits player bullets when fire is held and the cooldown has elapsed
func (g *Game) fire(now time.Time, in engine.InputState) {
	if !in.Held(engine.KeyFire) {
		return
	}
	cooldown := constants.ShotCooldown
	if g.session.RapidFire {
		cooldown = constants.RapidShotCooldown
	}
	if now.Sub(g.lastShot) <= cooldown {
		return
	}
	g.lastShot = now
	g.cues.Play(audio.CueShoot)

	p := &g.player
	x := p.X + p.Width/2 - constants.PlayerBulletWidth/2
	if g.session.MultiShot {
		for i := -1; i <= 1; i++ {
			g.bullets = append(g.bullets, newPlayerBullet(x+float64(i)*constants.MultiShotSpread, p.Y))
		}
		return
	}
	g.bullets = append(g.bullets, newPlayerBullet(x, p.Y))
}

func newPlayerBullet(x, y float64) components.Bullet {
	return components.Bullet{
		Box: components.Box{
			X:      x,
			Y:      y,
			Width:  constants.PlayerBulletWidth,
			Height: constants.PlayerBulletHeight,
			Active: true,
		},
		Speed:  constants.PlayerBulletSpeed,
		Owner:  components.OwnerPlayer,
		Damage: constants.PlayerBulletDamage,
	}
}

func newEnemyBullet(e *components.Enemy) components.Bullet {
	dmg := float64(constants.EnemyBulletDamage)
	if e.Kind == components.EnemyBoss {
		dmg = constants.BossBulletDamage
	}
	return components.Bullet{
		Box: components.Box{
			X:      e.X + e.Width/2 - constants.EnemyBulletWidth/2,
			Y:      e.Y + e.Height,
			Width:  constants.EnemyBulletWidth,
			Height: constants.EnemyBulletHeight,
			Active: true,
		},
		Speed:  constants.EnemyBulletSpeed,
		Owner:  components.OwnerEnemy,
		Damage: dmg,
	}
}

// advanceEnemies moves enemies down, bounces zigzags off the walls and rolls enemy fire
func (g *Game) advanceEnemies(now time.Time) {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		e.Y += e.Speed

		if e.Kind == components.EnemyZigzag {
			e.X += e.Direction * constants.ZigzagStep
			right := max(g.w-e.Width, 0)
			if e.X <= 0 || e.X >= right {
				e.Direction = -e.Direction
				e.X = vmath.Clamp(e.X, 0, right)
			}
		}

		chance := constants.EnemyShotChance
		if e.Kind == components.EnemyBoss {
			chance = constants.BossShotChance
		}
		if g.rng.Float64() < chance && e.Y > constants.EnemyMinFireY {
			e.LastShot = now
			g.enemyBullets = append(g.enemyBullets, newEnemyBullet(e))
			g.cues.Play(audio.CueEnemyShot)
		}

		if e.Y >= g.h+constants.EnemyDespawnMargin {
			e.Active = false
		}
	}
}

// advanceBullets moves bullets and drops those that left the canvas vertically
func (g *Game) advanceBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.Y -= b.Speed
		if b.Y <= -b.Height {
			b.Active = false
		}
	}
	for i := range g.enemyBullets {
		b := &g.enemyBullets[i]
		b.Y += b.Speed
		if b.Y >= g.h {
			b.Active = false
		}
	}
}

// advancePowerUps drops pickups at a fixed speed
func (g *Game) advancePowerUps() {
	for i := range g.powerUps {
		p := &g.powerUps[i]
		p.Y += constants.PowerUpFallSpeed
		if p.Y >= g.h {
			p.Active = false
		}
	}
}
