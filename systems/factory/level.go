package factory

import (
	"github.com/automoto/gobble/archetypes"
	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the level geometry and its classification.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	platforms := make([]leveldata.Rect, len(level.Platforms))
	copy(platforms, level.Platforms)

	components.Level.SetValue(entry, components.LevelData{
		Name:         level.Name,
		Width:        level.Width,
		Height:       level.Height,
		Platforms:    platforms,
		Geometry:     leveldata.Classify(platforms, level.Width, level.Height, cfg.Level.EdgeTolerance),
		TotalEnemies: len(level.Enemies),
		Defeated:     map[int]bool{},
		Projectiles:  map[donburi.Entity]cfg.ProjectileKind{},
	})

	return entry
}
