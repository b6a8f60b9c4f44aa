package factory

import (
	"github.com/automoto/gobble/archetypes"
	"github.com/automoto/gobble/components"
	"github.com/automoto/gobble/leveldata"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a static rectangle tagged solid plus its class tag
// (floor, ceiling, wall or one-way).
func CreatePlatform(ecs *ecs.ECS, r leveldata.Rect, class string) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := newBodyObject(platform, r.X, r.Y, r.W, r.H, tags.ResolvSolid, class)
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	addToSpace(ecs, object)

	return platform
}
