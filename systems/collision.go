package systems

import (
	"time"

	"github.com/lixenwraith/cosmic-arcade/audio"
	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/vmath"
)

// collide resolves hits in fixed priority: player shots, enemy shots, pickups
func (g *Game) collide(now time.Time) {
	g.collidePlayerBullets()
	g.collideEnemyBullets()
	g.collectPowerUps(now)
}

func (g *Game) collidePlayerBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		for j := range g.enemies {
			e := &g.enemies[j]
			if !b.Active || !e.Active || !vmath.Overlaps(b.Rect(), e.Rect()) {
				continue
			}
			b.Active = false
			g.damageEnemy(e, b.Damage)
		}
	}
}

// damageEnemy applies a hit; a kill awards the kind reward, a survivor only sparks
func (g *Game) damageEnemy(e *components.Enemy, dmg float64) {
	e.Health -= dmg
	cx, cy := e.Center()

	if e.Health > 0 {
		g.emitBurst(cx, cy, constants.BurstEnemyHitCount, BurstEnemyHitColor)
		return
	}

	e.Active = false
	g.session.Score += Reward(e.Kind)
	g.emitBurst(cx, cy, constants.BurstKillCount, BurstKillColor)
	if e.Kind == components.EnemyBoss {
		g.addShake(constants.ShakeBossKill)
	} else {
		g.addShake(constants.ShakeKill)
	}
	g.cues.Play(audio.CueExplosion)
}

func (g *Game) collideEnemyBullets() {
	p := &g.player
	for i := range g.enemyBullets {
		b := &g.enemyBullets[i]
		if !b.Active || !vmath.Overlaps(b.Rect(), p.Rect()) {
			continue
		}
		b.Active = false
		if g.session.Shield {
			continue
		}
		g.damagePlayer(b.Damage)
	}
}

// damagePlayer subtracts health; a lethal hit costs a life and restores full health
func (g *Game) damagePlayer(dmg float64) {
	p := &g.player
	p.Health -= dmg

	cx, cy := p.Center()
	g.emitBurst(cx, cy, constants.BurstPlayerHitCount, BurstPlayerHitColor)
	g.addShake(constants.ShakePlayerHit)
	g.cues.Play(audio.CuePlayerHit)

	if p.Health > 0 {
		return
	}
	p.Health = p.MaxHealth
	if g.session.Lives > 0 {
		g.session.Lives--
	}
	if g.session.Lives <= 0 {
		g.session.GameOver = true
	}
}

func (g *Game) collectPowerUps(now time.Time) {
	p := &g.player
	for i := range g.powerUps {
		pu := &g.powerUps[i]
		if !pu.Active || !vmath.Overlaps(pu.Rect(), p.Rect()) {
			continue
		}
		pu.Active = false
		g.cues.Play(audio.CuePickup)

		if pu.Kind == components.PowerUpHealth {
			p.Health = min(p.MaxHealth, p.Health+constants.HealAmount)
			continue
		}
		d := pu.Duration
		if d <= 0 {
			d = powerUpDuration(pu.Kind)
		}
		g.activate(pu.Kind, now, d)
	}
}
