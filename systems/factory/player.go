package factory

import (
	"github.com/automoto/gobble/archetypes"
	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its spawn point fixed at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newBodyObject(player, x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:            cfg.Player.Gravity,
		AllowGravity:       true,
		MaxSpeedY:          cfg.Player.MaxFallSpeed,
		Enabled:            true,
		CollideWorldBounds: true,
		PrevX:              x,
		PrevY:              y,
	})

	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})

	components.Player.SetValue(player, components.PlayerData{
		SpawnX:  x,
		SpawnY:  y,
		FacingX: cfg.DirectionRight,
		Companion: components.CompanionData{
			X:         x,
			Y:         y,
			AnchorX:   x,
			AnchorY:   y,
			Visible:   true,
			Animating: true,
		},
	})

	components.Display.SetValue(player, components.NewDisplay("player"))

	addToSpace(ecs, obj)
	return player
}
