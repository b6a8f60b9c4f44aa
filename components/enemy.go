package components

import (
	"github.com/automoto/gobble/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EnemyData is the part of an enemy shared by every archetype. ID is assigned
// by the level and survives recreation after a respawn.
type EnemyData struct {
	ID             int
	Kind           config.EnemyKind
	SpawnX, SpawnY float64
	StunTimer      int
	Shrink         *gween.Tween
	Destroyed      bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

type PatrolData struct {
	Direction float64
	Turning   bool
	Turn      *gween.Tween
}

var Patrol = donburi.NewComponentType[PatrolData]()

type TurretData struct {
	FacingX      float64
	InRange      bool
	ActiveBolt   donburi.Entity
	HasBolt      bool
	LastShotTick int
}

var Turret = donburi.NewComponentType[TurretData]()
