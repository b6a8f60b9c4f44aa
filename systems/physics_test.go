package systems

import (
	"math"
	"testing"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/leveldata"
)

func TestImmovableBodyOnlyMovesByPush(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(200)))
	turret := h.enemy(1)
	obj := components.Object.Get(turret)
	physics := components.Physics.Get(turret)

	physics.SpeedX = 5
	h.stepN(3)
	if obj.X != 200 || obj.Y != 20 {
		t.Fatalf("immovable body moved to (%v, %v)", obj.X, obj.Y)
	}

	physics.PushX = -3
	h.step()
	if obj.X != 197 {
		t.Errorf("pushed x = %v, want 197", obj.X)
	}
	if physics.PushX != 0 {
		t.Errorf("push not consumed: %v", physics.PushX)
	}
}

func TestDisabledBodyIsInert(t *testing.T) {
	h := newHarness(t, roomLevel(patrolAt(150, 100)))
	patrol := h.enemy(1)
	physics := components.Physics.Get(patrol)
	physics.Enabled = false
	physics.SpeedX = 4
	physics.PushX = 2

	h.stepN(5)
	obj := components.Object.Get(patrol)
	if obj.X != 150 || obj.Y != 100 {
		t.Errorf("disabled body moved to (%v, %v)", obj.X, obj.Y)
	}
	if physics.PushX != 0 {
		t.Errorf("push kept on a disabled body: %v", physics.PushX)
	}
}

func TestSolidStopsAtContact(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(280)))
	physics := components.Physics.Get(h.player)
	obj := components.Object.Get(h.player)

	h.step()
	physics.PushX = -30
	h.step()
	if obj.X != 16 {
		t.Errorf("x = %v, want flush against the left wall at 16", obj.X)
	}
	if !physics.BlockedLeft {
		t.Error("BlockedLeft not set")
	}
}

func TestOneWayIgnoresSideways(t *testing.T) {
	level := roomLevel(parkedTurret(280))
	level.Platforms = append(level.Platforms, leveldata.Rect{X: 70, Y: 150, W: 60, H: 14})
	h := newHarness(t, level)
	obj := components.Object.Get(h.player)

	h.stepN(30, cfg.ActionMoveRight)
	if obj.X <= 70 {
		t.Errorf("x = %v, want the player to walk through the platform side", obj.X)
	}
}

func TestFallingBodyLandsFlushOnFloor(t *testing.T) {
	level := roomLevel(parkedTurret(280))
	level.PlayerSpawn.Y = 90
	h := newHarness(t, level)
	physics := components.Physics.Get(h.player)
	obj := components.Object.Get(h.player)

	h.stepUntil(60, func() bool { return physics.OnGround })
	if math.Abs(obj.Y+obj.H-164) > 1e-6 {
		t.Errorf("feet at y = %v, want flush on the floor at 164", obj.Y+obj.H)
	}
	if !physics.BlockedDown {
		t.Error("BlockedDown not set")
	}
	if physics.SpeedY != 0 {
		t.Errorf("speed y after landing = %v, want 0", physics.SpeedY)
	}
}
