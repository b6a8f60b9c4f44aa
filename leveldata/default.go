package leveldata

import "github.com/automoto/gobble/config"

// Default returns the built-in level used when no TMX file is given.
func Default() *Level {
	return &Level{
		Name:   "default",
		Width:  1280,
		Height: 360,
		Platforms: []Rect{
			{X: 0, Y: 344, W: 1280, H: 16}, // floor
			{X: 0, Y: 0, W: 1280, H: 16},   // ceiling
			{X: 0, Y: 16, W: 16, H: 328},   // left wall
			{X: 1264, Y: 16, W: 16, H: 328},
			{X: 640, Y: 280, W: 16, H: 64}, // pillar
			{X: 200, Y: 260, W: 160, H: 12},
			{X: 440, Y: 200, W: 160, H: 12},
			{X: 760, Y: 260, W: 200, H: 12},
			{X: 1000, Y: 160, W: 160, H: 12},
		},
		PlayerSpawn: Point{X: 48, Y: 320},
		Enemies: []EnemySpawn{
			{Kind: config.EnemyPatrol, X: 320, Y: 324},
			{Kind: config.EnemyPatrol, X: 500, Y: 180},
			{Kind: config.EnemyPatrol, X: 860, Y: 240},
			{Kind: config.EnemyTurret, X: 1100, Y: 136},
			{Kind: config.EnemyTurret, X: 1220, Y: 320},
		},
	}
}
