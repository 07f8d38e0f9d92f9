package systems

import (
	"time"

	"github.com/lixenwraith/cosmic-arcade/components"
	"github.com/lixenwraith/cosmic-arcade/constants"
)

// Session is the authoritative scoreboard, mutated only inside a tick
type Session struct {
	Score     int  `json:"score"`
	Lives     int  `json:"lives"`
	Level     int  `json:"level"`
	GameOver  bool `json:"gameOver"`
	Paused    bool `json:"paused"`
	RapidFire bool `json:"rapidFire"`
	MultiShot bool `json:"multiShot"`
	Shield    bool `json:"shield"`
}

// Snapshot is the per-tick state published to hosts
type Snapshot struct {
	Session
	Tick            uint64  `json:"tick"`
	Variant         string  `json:"variant"`
	PlayerHealth    float64 `json:"playerHealth"`
	PlayerMaxHealth float64 `json:"playerMaxHealth"`
	Enemies         int     `json:"enemies"`
	Bullets         int     `json:"bullets"`
	EnemyBullets    int     `json:"enemyBullets"`
	PowerUps        int     `json:"powerUps"`
	Bursts          int     `json:"bursts"`
}

// powerUpTimers holds expiry deadlines, zero when the effect is off
type powerUpTimers struct {
	rapidFire time.Time
	multiShot time.Time
	shield    time.Time
}

// activate turns a timed effect on until now+d, re-collecting extends the deadline
func (g *Game) activate(kind components.PowerUpKind, now time.Time, d time.Duration) {
	until := now.Add(d)
	switch kind {
	case components.PowerUpRapidFire:
		g.timers.rapidFire = until
		g.session.RapidFire = true
	case components.PowerUpMultiShot:
		g.timers.multiShot = until
		g.session.MultiShot = true
	case components.PowerUpShield:
		g.timers.shield = until
		g.session.Shield = true
	}
}

// expirePowerUps clears effects whose deadline has passed
func (g *Game) expirePowerUps(now time.Time) {
	expire := func(deadline *time.Time, flag *bool) {
		if !deadline.IsZero() && !now.Before(*deadline) {
			*deadline = time.Time{}
			*flag = false
		}
	}
	expire(&g.timers.rapidFire, &g.session.RapidFire)
	expire(&g.timers.multiShot, &g.session.MultiShot)
	expire(&g.timers.shield, &g.session.Shield)
}

// powerUpDuration is the effect length per kind, zero for instant effects
func powerUpDuration(kind components.PowerUpKind) time.Duration {
	switch kind {
	case components.PowerUpRapidFire:
		return constants.RapidFireDuration
	case components.PowerUpMultiShot:
		return constants.MultiShotDuration
	case components.PowerUpShield:
		return constants.ShieldDuration
	default:
		return 0
	}
}

func (g *Game) publishLocked() {
	g.published.Store(&Snapshot{
		Session:         g.session,
		Tick:            g.tick,
		Variant:         g.variant.String(),
		PlayerHealth:    g.player.Health,
		PlayerMaxHealth: g.player.MaxHealth,
		Enemies:         len(g.enemies),
		Bullets:         len(g.bullets),
		EnemyBullets:    len(g.enemyBullets),
		PowerUps:        len(g.powerUps),
		Bursts:          len(g.bursts),
	})
}

// Published returns the snapshot stored at the end of the last tick or host action
// The pointee is never mutated
func (g *Game) Published() *Snapshot {
	return g.published.Load()
}

// Snapshot returns a copy of the last published state
func (g *Game) Snapshot() Snapshot {
	return *g.published.Load()
}
