package systems

import (
	"math"

	"github.com/automoto/gobble/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Penetration below this is treated as touching, not overlapping.
const contactEpsilon = 1e-6

// UpdatePhysics moves every enabled body by its velocity, resolving solid
// colliders one axis at a time, then evaluates overlap colliders.
func UpdatePhysics(ecs *ecs.ECS) {
	w := ecs.World

	var bodies []*donburi.Entry
	components.Physics.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			bodies = append(bodies, e)
		}
	})

	for _, e := range bodies {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		physics.PrevX = obj.X
		physics.PrevY = obj.Y
		physics.BlockedLeft = false
		physics.BlockedRight = false
		physics.BlockedUp = false
		physics.BlockedDown = false
		physics.OnGround = false
	}

	width, height, hasBounds := levelBounds(w)

	for _, e := range bodies {
		if !e.Valid() {
			continue
		}
		physics := components.Physics.Get(e)
		if !physics.Enabled {
			physics.PushX = 0
			continue
		}
		obj := components.Object.Get(e).Object
		solids := collidersFor(w, e.Entity(), components.ColliderSolid)

		// Immovable bodies ignore velocity and gravity; only a push moves them.
		if physics.Immovable {
			push := physics.PushX
			physics.PushX = 0
			moveBody(e, obj, push, 0, solids)
			continue
		}

		if physics.AllowGravity {
			physics.SpeedY += physics.Gravity
		}
		if physics.Drag > 0 {
			physics.SpeedX = approachZero(physics.SpeedX, physics.Drag)
		}
		if physics.MaxSpeedX > 0 {
			physics.SpeedX = math.Max(-physics.MaxSpeedX, math.Min(physics.MaxSpeedX, physics.SpeedX))
		}
		// MaxSpeedY caps falling only; jump impulses may exceed it.
		if physics.MaxSpeedY > 0 && physics.SpeedY > physics.MaxSpeedY {
			physics.SpeedY = physics.MaxSpeedY
		}

		dx := physics.SpeedX + physics.PushX
		physics.PushX = 0

		moveBody(e, obj, dx, 0, solids)

		// A callback may have destroyed or disabled the body.
		if !e.Valid() || !components.Physics.Get(e).Enabled {
			continue
		}
		physics = components.Physics.Get(e)
		moveBody(e, obj, 0, physics.SpeedY, solids)

		if !e.Valid() {
			continue
		}
		physics = components.Physics.Get(e)
		if physics.CollideWorldBounds && hasBounds {
			clampToBounds(obj, physics, width, height)
		}
		obj.Update()
	}

	runOverlaps(w)
}

type contact struct {
	collider *components.Collider
	other    *donburi.Entry
	dist     float64
}

// moveBody moves obj along one axis, stopping at the nearest solid contact.
func moveBody(e *donburi.Entry, obj *resolv.Object, dx, dy float64, solids []*components.Collider) {
	if dx == 0 && dy == 0 {
		return
	}
	horizontal := dx != 0
	delta := dx
	if !horizontal {
		delta = dy
	}

	var hits []contact
	for _, c := range solids {
		if c.Removed {
			continue
		}
		if c.OneWay && (horizontal || dy <= 0) {
			continue
		}
		check := obj.Check(dx, dy, c.Tags...)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(c.Tags...) {
			if o == obj {
				continue
			}
			other := entryOf(o)
			if other == nil || other.Entity() == e.Entity() || !bodyActive(other) {
				continue
			}
			if overlaps(obj, o, 0, 0) || !overlaps(obj, o, dx, dy) {
				continue
			}
			if c.Process != nil && !c.Process(e, other) {
				continue
			}
			// Contact is the move that brings obj flush against o along this axis.
			touch := check.ContactWithObject(o)
			dist := touch.X()
			if !horizontal {
				dist = touch.Y()
			}
			hits = append(hits, contact{collider: c, other: other, dist: dist})
		}
	}

	allowed := delta
	for _, h := range hits {
		if math.Abs(h.dist) < math.Abs(allowed) {
			allowed = h.dist
		}
	}

	if horizontal {
		obj.X += allowed
	} else {
		obj.Y += allowed
	}
	obj.Update()

	if len(hits) == 0 {
		return
	}

	physics := components.Physics.Get(e)
	if horizontal {
		if dx > 0 {
			physics.BlockedRight = true
		} else {
			physics.BlockedLeft = true
		}
		physics.SpeedX = -physics.SpeedX * physics.BounceX
	} else {
		if dy > 0 {
			physics.BlockedDown = true
			physics.OnGround = true
		} else {
			physics.BlockedUp = true
		}
		physics.SpeedY = -physics.SpeedY * physics.BounceY
	}

	for _, h := range hits {
		if h.dist != allowed {
			continue
		}
		if h.collider.Removed || !e.Valid() || !bodyActive(e) {
			return
		}
		if h.collider.Callback != nil {
			h.collider.Callback(e, h.other)
		}
	}
}

// overlaps tests obj offset by (dx, dy) against o. Edges that only touch do
// not count, unlike resolv's Object.Overlaps.
func overlaps(obj, o *resolv.Object, dx, dy float64) bool {
	ax, ay := obj.X+dx, obj.Y+dy
	return ax < o.X+o.W-contactEpsilon &&
		ax+obj.W > o.X+contactEpsilon &&
		ay < o.Y+o.H-contactEpsilon &&
		ay+obj.H > o.Y+contactEpsilon
}

func runOverlaps(w donburi.World) {
	reg := getOrCreateColliders(w)
	// Colliders added by callbacks wait for the next tick.
	n := len(reg.Colliders)
	for i := 0; i < n; i++ {
		c := reg.Colliders[i]
		if c.Removed || c.Kind != components.ColliderOverlap || !w.Valid(c.Body) {
			continue
		}
		body := w.Entry(c.Body)
		if !bodyActive(body) {
			continue
		}
		obj := components.Object.Get(body).Object
		check := obj.Check(0, 0, c.Tags...)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(c.Tags...) {
			if c.Removed || !body.Valid() || !bodyActive(body) {
				break
			}
			other := entryOf(o)
			if other == nil || other.Entity() == body.Entity() || !bodyActive(other) {
				continue
			}
			if !overlaps(obj, o, 0, 0) {
				continue
			}
			if c.Process != nil && !c.Process(body, other) {
				continue
			}
			if c.Callback != nil {
				c.Callback(body, other)
			}
		}
	}
}

func clampToBounds(obj *resolv.Object, physics *components.PhysicsData, width, height float64) {
	if obj.X < 0 {
		obj.X = 0
		physics.BlockedLeft = true
		physics.SpeedX = 0
	} else if obj.X+obj.W > width {
		obj.X = width - obj.W
		physics.BlockedRight = true
		physics.SpeedX = 0
	}
	if obj.Y < 0 {
		obj.Y = 0
		physics.BlockedUp = true
		physics.SpeedY = 0
	} else if obj.Y+obj.H > height {
		obj.Y = height - obj.H
		physics.BlockedDown = true
		physics.OnGround = true
		physics.SpeedY = 0
	}
}

func levelBounds(w donburi.World) (float64, float64, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return 0, 0, false
	}
	level := components.Level.Get(entry)
	return level.Width, level.Height, true
}

// entryOf returns the live entry behind a collision object.
func entryOf(o *resolv.Object) *donburi.Entry {
	e, ok := o.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil
	}
	return e
}

// bodyActive reports whether e takes part in collisions. Static platforms have
// no physics and are always active.
func bodyActive(e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	if !e.HasComponent(components.Physics) {
		return true
	}
	return components.Physics.Get(e).Enabled
}

func approachZero(v, step float64) float64 {
	if v > step {
		return v - step
	}
	if v < -step {
		return v + step
	}
	return 0
}
