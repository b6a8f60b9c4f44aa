package archetypes

import (
	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Display,
	)
	Patrol = newArchetype(
		tags.Enemy,
		tags.Patrol,
		components.Enemy,
		components.Patrol,
		components.Object,
		components.Physics,
		components.State,
		components.Display,
	)
	Turret = newArchetype(
		tags.Enemy,
		tags.Turret,
		components.Enemy,
		components.Turret,
		components.Object,
		components.Physics,
		components.State,
		components.Display,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Display,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
