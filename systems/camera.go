package systems

import (
	"math"

	"github.com/automoto/gobble/components"
	"github.com/automoto/gobble/config"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	width, height, ok := levelBounds(e.World)
	if !ok {
		return
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	// Camera bounds: ensure the level always fills the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	targetX = clampAxis(targetX, screenWidth/2, width-screenWidth/2)
	targetY = clampAxis(targetY, screenHeight/2, height-screenHeight/2)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps v in [lo, hi]; a level smaller than the screen is centered.
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
