package constants

import "time"

// Canvas
const (
	GameCanvasWidth  = 900
	GameCanvasHeight = 700
)

// Session
const (
	InitialLives = 3
	InitialLevel = 1
)

// Player
const (
	PlayerWidth     = 40
	PlayerHeight    = 40
	PlayerSpeed     = 6
	PlayerHealth    = 100
	PlayerBottomGap = 80
)

// Player Weapon
const (
	PlayerBulletWidth  = 6
	PlayerBulletHeight = 12
	PlayerBulletSpeed  = 8
	PlayerBulletDamage = 20

	ShotCooldown      = 150 * time.Millisecond
	RapidShotCooldown = 80 * time.Millisecond

	// MultiShotSpread is the horizontal offset between multishot bullets
	MultiShotSpread = 15
)

// Enemy Spawning
const (
	EnemySpawnBase     = 1000 * time.Millisecond
	EnemySpawnPerLevel = 50 * time.Millisecond
	EnemySpawnFloor    = 300 * time.Millisecond

	// BossScoreThreshold must be exceeded before bosses can appear
	BossScoreThreshold = 500
	BossChance         = 0.1
)

// Enemy Stats: speed per frame and health per kind
const (
	BasicSpeed   = 2.5
	BasicHealth  = 20
	FastSpeed    = 4
	FastHealth   = 15
	ZigzagSpeed  = 2
	ZigzagHealth = 20
	BossSpeed    = 1
	BossHealth   = 50
)

// Enemy Behavior
const (
	EnemySize       = 30
	BossSize        = 60
	ZigzagStep      = 3
	EnemyShotChance = 0.008
	BossShotChance  = 0.02

	// EnemyMinFireY keeps freshly spawned enemies from firing off-screen
	EnemyMinFireY = 50

	// EnemyDespawnMargin is how far below the canvas an enemy travels before removal
	EnemyDespawnMargin = 50
)

// Enemy Weapon
const (
	EnemyBulletWidth  = 5
	EnemyBulletHeight = 10
	EnemyBulletSpeed  = 5
	EnemyBulletDamage = 10
	BossBulletDamage  = 30
)

// Score Rewards
const (
	ScoreBasic  = 15
	ScoreFast   = 20
	ScoreZigzag = 15
	ScoreBoss   = 100
)

// Power-ups
const (
	PowerUpSpawnInterval = 15000 * time.Millisecond
	PowerUpSize          = 20
	PowerUpFallSpeed     = 2
	HealAmount           = 30

	RapidFireDuration = 10000 * time.Millisecond
	MultiShotDuration = 8000 * time.Millisecond
	ShieldDuration    = 5000 * time.Millisecond
	ShieldRingPadding = 10
)

// Burst Particles
const (
	BurstVelocitySpan = 10
	BurstLife         = 60
	BurstSizeMin      = 2
	BurstSizeSpan     = 4
	BurstDamping      = 0.98

	BurstKillCount      = 15
	BurstEnemyHitCount  = 5
	BurstPlayerHitCount = 8
)

// Screen Shake
const (
	ShakeKill      = 5
	ShakeBossKill  = 15
	ShakePlayerHit = 8
	ShakeDecay     = 0.9
	ShakeEpsilon   = 0.1
)

// Background Stars
const (
	GameStarCount = 150
)
