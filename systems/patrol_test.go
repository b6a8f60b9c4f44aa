package systems

import (
	"math"
	"testing"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/leveldata"
)

// patrolRoom keeps the player well clear of the patrol's path.
func patrolRoom(enemies ...leveldata.EnemySpawn) *leveldata.Level {
	level := roomLevel(enemies...)
	level.PlayerSpawn = leveldata.Point{X: 260, Y: 140}
	return level
}

func TestPatrolTurnsAtWall(t *testing.T) {
	h := newHarness(t, patrolRoom(patrolAt(60, 144)))
	patrol := h.enemy(1)
	data := components.Patrol.Get(patrol)

	if data.Direction != cfg.DirectionLeft {
		t.Fatalf("initial direction = %v, want left", data.Direction)
	}

	h.stepUntil(100, func() bool { return data.Turning })

	if data.Direction != cfg.DirectionRight {
		t.Errorf("direction after turn = %v, want right", data.Direction)
	}
	if got := components.Physics.Get(patrol).SpeedX; got != 0 {
		t.Errorf("speed while turning = %v, want 0", got)
	}
	if x := components.Object.Get(patrol).X; x < 15.9 || x > 20 {
		t.Errorf("turned at x = %v, want against the left wall", x)
	}
}

func TestPatrolTurnCompletesAfterTurnFrames(t *testing.T) {
	h := newHarness(t, patrolRoom(patrolAt(60, 144)))
	cfg.Enemy.Patrol.TurnFrames = 5
	patrol := h.enemy(1)
	data := components.Patrol.Get(patrol)
	display := components.Display.Get(patrol)

	h.stepUntil(100, func() bool { return data.Turning })
	start := display.Angle
	x := components.Object.Get(patrol).X

	h.stepN(4)
	if !data.Turning {
		t.Fatal("turn finished early")
	}
	if got := components.Object.Get(patrol).X; got != x {
		t.Errorf("moved while turning: x = %v, want %v", got, x)
	}

	h.step()
	if data.Turning {
		t.Fatal("still turning after TurnFrames ticks")
	}
	if got := display.Angle - start; math.Abs(got-math.Pi/2) > 1e-3 {
		t.Errorf("turn rotation = %v, want pi/2", got)
	}

	h.step()
	if got := components.Physics.Get(patrol).SpeedX; got != cfg.Enemy.Patrol.Speed {
		t.Errorf("speed after turn = %v, want %v", got, cfg.Enemy.Patrol.Speed)
	}
}

func TestPatrolTurnsAtLedge(t *testing.T) {
	level := patrolRoom(patrolAt(150, 80))
	level.Platforms = append(level.Platforms, leveldata.Rect{X: 100, Y: 100, W: 80, H: 8})
	h := newHarness(t, level)
	patrol := h.enemy(1)
	data := components.Patrol.Get(patrol)

	h.stepUntil(100, func() bool { return data.Turning })

	obj := components.Object.Get(patrol)
	if obj.Y != 80 {
		t.Errorf("patrol left the platform: y = %v, want 80", obj.Y)
	}
	if obj.X < 100 || obj.X > 104 {
		t.Errorf("turned at x = %v, want at the platform's left edge", obj.X)
	}
	if data.Direction != cfg.DirectionRight {
		t.Errorf("direction = %v, want right", data.Direction)
	}
}

func TestStunnedPatrolStandsStill(t *testing.T) {
	h := newHarness(t, patrolRoom(patrolAt(150, 144)))
	patrol := h.enemy(1)

	h.stepN(3)
	StunEnemy(patrol)
	x := components.Object.Get(patrol).X

	h.stepN(10)
	if got := components.Object.Get(patrol).X; got != x {
		t.Errorf("stunned patrol moved from %v to %v", x, got)
	}
	if got := components.Display.Get(patrol).Texture; got != "patrol-stunned" {
		t.Errorf("texture = %q, want patrol-stunned", got)
	}
}

func TestDyingPatrolCancelsTurn(t *testing.T) {
	h := newHarness(t, patrolRoom(patrolAt(60, 144)))
	patrol := h.enemy(1)
	data := components.Patrol.Get(patrol)

	h.stepUntil(100, func() bool { return data.Turning })
	KillEnemy(patrol)

	if data.Turning || data.Turn != nil {
		t.Errorf("turn still running after death: %+v", data)
	}
}
