package systems

import (
	"math"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var patrolBehavior = &EnemyBehavior{
	EnterNormal:   func(entry *donburi.Entry) { components.Display.Get(entry).Texture = "patrol" },
	UpdateNormal:  updatePatrolNormal,
	EnterStunned:  enterPatrolStunned,
	UpdateStunned: func(_ *ecs.ECS, entry *donburi.Entry) { components.Physics.Get(entry).SpeedX = 0 },
	EnterDying:    cancelPatrolTurn,
}

func updatePatrolNormal(e *ecs.ECS, entry *donburi.Entry) {
	patrol := components.Patrol.Get(entry)
	physics := components.Physics.Get(entry)
	display := components.Display.Get(entry)

	if patrol.Turning {
		physics.SpeedX = 0
		angle, done := patrol.Turn.Update(1)
		display.Angle = float64(angle)
		if done {
			patrol.Turning = false
			patrol.Turn = nil
		}
		return
	}

	if patrolShouldTurn(entry, patrol.Direction) {
		startPatrolTurn(patrol, physics, display)
		return
	}

	physics.SpeedX = patrol.Direction * cfg.Enemy.Patrol.Speed
	display.Angle += physics.SpeedX * cfg.Enemy.Patrol.RollFactor
	display.FlipX = patrol.Direction < 0
}

// patrolShouldTurn reports whether the patroller is walking into a wall or
// toward a ledge.
func patrolShouldTurn(entry *donburi.Entry, dir float64) bool {
	physics := components.Physics.Get(entry)
	if (dir < 0 && physics.BlockedLeft) || (dir > 0 && physics.BlockedRight) {
		return true
	}
	// Airborne patrollers keep walking until they land.
	if !physics.OnGround {
		return false
	}

	return !groundAhead(components.Object.Get(entry).Object, dir)
}

var groundTags = []string{tags.ResolvFloor, tags.ResolvWall, tags.ResolvCeiling, tags.ResolvOneWay}

// groundAhead reports whether level geometry lies under the body shifted one
// width ahead and LedgeBelow down. The shifted box starts LedgeAhead past the
// leading edge.
func groundAhead(obj *resolv.Object, dir float64) bool {
	dx := dir * (obj.W + cfg.Enemy.Patrol.LedgeAhead)
	dy := cfg.Enemy.Patrol.LedgeBelow
	check := obj.Check(dx, dy, groundTags...)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(groundTags...) {
		if overlaps(obj, o, dx, dy) {
			return true
		}
	}
	return false
}

// startPatrolTurn reverses direction and plays a quarter rotation during
// which the patroller stands still.
func startPatrolTurn(patrol *components.PatrolData, physics *components.PhysicsData, display *components.DisplayData) {
	patrol.Direction = -patrol.Direction
	patrol.Turning = true
	physics.SpeedX = 0
	from := float32(display.Angle)
	to := from + float32(patrol.Direction*math.Pi/2)
	patrol.Turn = gween.New(from, to, float32(cfg.Enemy.Patrol.TurnFrames), ease.Linear)
}

func enterPatrolStunned(entry *donburi.Entry) {
	components.Physics.Get(entry).SpeedX = 0
	components.Display.Get(entry).Texture = "patrol-stunned"
}

func cancelPatrolTurn(entry *donburi.Entry) {
	patrol := components.Patrol.Get(entry)
	patrol.Turning = false
	patrol.Turn = nil
}
