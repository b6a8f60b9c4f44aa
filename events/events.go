// Package events is the gameplay notification bus. Every event type is a
// donburi event; Emit delivers synchronously so subscribers observe the same
// tick the event was raised in.
package events

import (
	"github.com/automoto/gobble/components"
	"github.com/automoto/gobble/config"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// LevelReadyEvent is raised once the level has been built.
type LevelReadyEvent struct {
	TotalEnemies int
}

type PlayerFiredWaveEvent struct {
	Player donburi.Entity
	Wave   donburi.Entity
}

type PlayerFiredSpoutEvent struct {
	Player   donburi.Entity
	Spout    donburi.Entity
	Consumed []components.SwallowRecord
}

type TurretFiredProjectileEvent struct {
	Turret donburi.Entity
	Bolt   donburi.Entity
}

// ProjectileDestroyedEvent fires exactly once per projectile.
type ProjectileDestroyedEvent struct {
	Projectile donburi.Entity
	Kind       config.ProjectileKind
	Owner      donburi.Entity
}

type PlayerInhalingEvent struct {
	Player  donburi.Entity
	X, Y    float64 // player center
	FacingX float64
}

type SwallowCountChangedEvent struct {
	Player donburi.Entity
	Count  int
}

type PlayerDiedEvent struct {
	Player donburi.Entity
	Lost   []components.SwallowRecord
}

// EnemyDestroyedEvent fires when an enemy entity leaves play, either after
// its death animation or by being swallowed.
type EnemyDestroyedEvent struct {
	Enemy     donburi.Entity
	ID        int
	Kind      config.EnemyKind
	Swallowed bool
}

// EnemyDefeatedEvent fires when an enemy's death animation completes.
type EnemyDefeatedEvent struct {
	ID   int
	Kind config.EnemyKind
}

type VictoryEvent struct {
	Defeated int
	Total    int
}

var (
	LevelReady            = devents.NewEventType[LevelReadyEvent]()
	PlayerFiredWave       = devents.NewEventType[PlayerFiredWaveEvent]()
	PlayerFiredSpout      = devents.NewEventType[PlayerFiredSpoutEvent]()
	TurretFiredProjectile = devents.NewEventType[TurretFiredProjectileEvent]()
	ProjectileDestroyed   = devents.NewEventType[ProjectileDestroyedEvent]()
	PlayerInhaling        = devents.NewEventType[PlayerInhalingEvent]()
	SwallowCountChanged   = devents.NewEventType[SwallowCountChangedEvent]()
	PlayerDied            = devents.NewEventType[PlayerDiedEvent]()
	EnemyDestroyed        = devents.NewEventType[EnemyDestroyedEvent]()
	EnemyDefeated         = devents.NewEventType[EnemyDefeatedEvent]()
	Victory               = devents.NewEventType[VictoryEvent]()
)

// Emit publishes ev and delivers it to every subscriber before returning.
// A subscriber must not emit the event type it is handling.
func Emit[T any](w donburi.World, t *devents.EventType[T], ev T) {
	t.Publish(w, ev)
	t.ProcessEvents(w)
}
