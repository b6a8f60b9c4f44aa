package factory

import (
	"github.com/automoto/gobble/archetypes"
	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given kind. id identifies the enemy for
// defeat accounting and is reused when a swallowed enemy is recreated.
func CreateEnemy(ecs *ecs.ECS, kind cfg.EnemyKind, id int, x, y float64) *donburi.Entry {
	if kind == cfg.EnemyTurret {
		return CreateTurret(ecs, id, x, y)
	}
	return CreatePatrol(ecs, id, x, y)
}

func CreatePatrol(ecs *ecs.ECS, id int, x, y float64) *donburi.Entry {
	enemy := archetypes.Patrol.Spawn(ecs)
	pc := cfg.Enemy.Patrol

	obj := newBodyObject(enemy, x, y, pc.Width, pc.Height, tags.ResolvEnemy)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:            pc.Gravity,
		AllowGravity:       true,
		MaxSpeedY:          cfg.Player.MaxFallSpeed,
		Enabled:            true,
		CollideWorldBounds: true,
		PrevX:              x,
		PrevY:              y,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:     id,
		Kind:   cfg.EnemyPatrol,
		SpawnX: x,
		SpawnY: y,
	})
	components.Patrol.SetValue(enemy, components.PatrolData{
		Direction: cfg.DirectionLeft,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.EnemyNormal,
		PreviousState: cfg.EnemyNormal,
	})
	components.Display.SetValue(enemy, components.NewDisplay("patrol"))

	addToSpace(ecs, obj)
	return enemy
}

func CreateTurret(ecs *ecs.ECS, id int, x, y float64) *donburi.Entry {
	enemy := archetypes.Turret.Spawn(ecs)
	tc := cfg.Enemy.Turret

	obj := newBodyObject(enemy, x, y, tc.Width, tc.Height, tags.ResolvEnemy)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Physics.SetValue(enemy, components.PhysicsData{
		Enabled:   true,
		Immovable: true,
		PrevX:     x,
		PrevY:     y,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:     id,
		Kind:   cfg.EnemyTurret,
		SpawnX: x,
		SpawnY: y,
	})
	components.Turret.SetValue(enemy, components.TurretData{
		FacingX: cfg.DirectionLeft,
		// A fresh turret may fire as soon as it sees the player.
		LastShotTick: clockNow(ecs) - tc.Cooldown,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.EnemyNormal,
		PreviousState: cfg.EnemyNormal,
	})
	components.Display.SetValue(enemy, components.NewDisplay("turret"))

	addToSpace(ecs, obj)
	return enemy
}

func clockNow(ecs *ecs.ECS) int {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).Tick
	}
	return 0
}
