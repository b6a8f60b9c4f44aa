package config

// StateID identifies a state of an entity state machine.
type StateID int

const (
	StateNone StateID = iota

	// Player states
	Idle
	Moving
	Hiding
	Falling
	Jumping
	Attacking
	Inhaling
	Dying

	// Enemy states. Dying is shared with the player.
	EnemyNormal
	EnemyStunned
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	Idle:         "idle",
	Moving:       "moving",
	Hiding:       "hiding",
	Falling:      "falling",
	Jumping:      "jumping",
	Attacking:    "attacking",
	Inhaling:     "inhaling",
	Dying:        "dying",
	EnemyNormal:  "normal",
	EnemyStunned: "stunned",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// PlayerStatePriority ranks player states; the highest applicable state wins.
var PlayerStatePriority = map[StateID]int{
	Dying:     8,
	Attacking: 7,
	Inhaling:  7,
	Jumping:   6,
	Falling:   5,
	Hiding:    4,
	Moving:    2,
	Idle:      1,
}

// JumpPhase is the animation sub-phase nested in JUMPING/FALLING.
type JumpPhase int

const (
	JumpPhaseNone JumpPhase = iota
	JumpPhaseStart
	JumpPhaseAir
	JumpPhaseLanding
)

func (p JumpPhase) String() string {
	switch p {
	case JumpPhaseStart:
		return "start"
	case JumpPhaseAir:
		return "air"
	case JumpPhaseLanding:
		return "landing"
	}
	return "none"
}

// EnemyKind is the archetype tag carried by every enemy.
type EnemyKind int

const (
	EnemyPatrol EnemyKind = iota
	EnemyTurret
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyPatrol:
		return "patrol"
	case EnemyTurret:
		return "turret"
	}
	return "unknown"
}

// ParseEnemyKind maps a level object name to an enemy kind.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	switch name {
	case "patrol":
		return EnemyPatrol, true
	case "turret":
		return EnemyTurret, true
	}
	return 0, false
}

// ProjectileKind identifies the three projectile variants.
type ProjectileKind int

const (
	ProjectileBolt ProjectileKind = iota
	ProjectileWave
	ProjectileSpout
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBolt:
		return "bolt"
	case ProjectileWave:
		return "wave"
	case ProjectileSpout:
		return "spout"
	}
	return "unknown"
}
