package components

// EnemyKind selects enemy speed, health, reward and visuals
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyZigzag
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyZigzag:
		return "zigzag"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Owner identifies who fired a bullet
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// PowerUpKind selects the pickup effect
type PowerUpKind uint8

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpRapidFire
	PowerUpMultiShot
	PowerUpShield
)

// PowerUpKinds lists every kind for uniform selection
var PowerUpKinds = [...]PowerUpKind{PowerUpHealth, PowerUpRapidFire, PowerUpMultiShot, PowerUpShield}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpRapidFire:
		return "rapidFire"
	case PowerUpMultiShot:
		return "multiShot"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}
