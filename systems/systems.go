package systems

import "github.com/yohamta/donburi/ecs"

// GameplaySystems is the per-tick simulation order. Input and pause handling
// run before these and are not included.
func GameplaySystems() []ecs.System {
	return []ecs.System{
		UpdateClock,
		UpdatePlayer,
		UpdateEnemies,
		UpdatePhysics,
		UpdateProjectiles,
		UpdateCamera,
		UpdateCleanup,
	}
}
