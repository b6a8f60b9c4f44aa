// Package leveldata describes static level geometry and spawn points. It never
// touches the ECS world or the collision space.
package leveldata

import "github.com/automoto/gobble/config"

// Rect is an axis-aligned rectangle in level pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

type Point struct {
	X, Y float64
}

type EnemySpawn struct {
	Kind config.EnemyKind
	X, Y float64
}

// Level is everything needed to build a playable level.
type Level struct {
	Name        string
	Width       float64
	Height      float64
	Platforms   []Rect
	PlayerSpawn Point
	Enemies     []EnemySpawn
}
