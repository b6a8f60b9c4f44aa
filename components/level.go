package components

import (
	"github.com/automoto/gobble/config"
	"github.com/automoto/gobble/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name          string
	Width, Height float64
	Platforms     []leveldata.Rect
	Geometry      leveldata.Classification

	TotalEnemies  int
	Defeated      map[int]bool
	DefeatedCount int
	Victory       bool

	// Live projectiles the level has wired colliders for.
	Projectiles map[donburi.Entity]config.ProjectileKind
}

var Level = donburi.NewComponentType[LevelData]()
