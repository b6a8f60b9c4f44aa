package systems

import (
	"math"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/events"
	"github.com/automoto/gobble/systems/factory"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var turretBehavior = &EnemyBehavior{
	EnterNormal:  func(entry *donburi.Entry) { components.Display.Get(entry).Texture = "turret" },
	UpdateNormal: updateTurretNormal,
	EnterStunned: enterTurretStunned,
	EnterDying:   destroyTurretBolt,
}

func updateTurretNormal(e *ecs.ECS, entry *donburi.Entry) {
	turret := components.Turret.Get(entry)
	display := components.Display.Get(entry)

	player, ok := tags.Player.First(e.World)
	if !ok {
		turret.InRange = false
		display.Texture = "turret"
		return
	}

	tx, ty := centerOf(entry)
	px, py := centerOf(player)

	turret.InRange = math.Abs(py-ty) <= cfg.Enemy.Turret.RangeY
	if !turret.InRange {
		display.Texture = "turret"
		return
	}

	display.Texture = "turret-tracking"
	if px < tx {
		turret.FacingX = cfg.DirectionLeft
	} else {
		turret.FacingX = cfg.DirectionRight
	}
	display.FlipX = turret.FacingX < 0

	if turretCanFire(e.World, turret) {
		fireBolt(e, entry, turret)
	}
}

// turretCanFire allows one live bolt per turret, and only once the cooldown
// has run since the previous bolt was destroyed.
func turretCanFire(w donburi.World, turret *components.TurretData) bool {
	if turret.HasBolt {
		return false
	}
	return Now(w)-turret.LastShotTick >= cfg.Enemy.Turret.Cooldown
}

func fireBolt(e *ecs.ECS, entry *donburi.Entry, turret *components.TurretData) {
	bolt := factory.CreateBolt(e, entry, turret.FacingX)
	turret.ActiveBolt = bolt.Entity()
	turret.HasBolt = true
	events.Emit(e.World, events.TurretFiredProjectile, events.TurretFiredProjectileEvent{
		Turret: entry.Entity(),
		Bolt:   bolt.Entity(),
	})
}

func enterTurretStunned(entry *donburi.Entry) {
	components.Turret.Get(entry).InRange = false
	components.Display.Get(entry).Texture = "turret-stunned"
}

// destroyTurretBolt force-destroys the turret's live bolt, if any.
func destroyTurretBolt(entry *donburi.Entry) {
	turret := components.Turret.Get(entry)
	if !turret.HasBolt {
		return
	}
	if entry.World.Valid(turret.ActiveBolt) {
		DestroyProjectile(entry.World.Entry(turret.ActiveBolt))
	}
	turret.HasBolt = false
}

// onTurretBoltDestroyed frees the owning turret's bolt slot and starts its
// cooldown from the current tick.
func onTurretBoltDestroyed(w donburi.World, ev events.ProjectileDestroyedEvent) {
	if ev.Kind != cfg.ProjectileBolt || !w.Valid(ev.Owner) {
		return
	}
	owner := w.Entry(ev.Owner)
	if !owner.HasComponent(components.Turret) {
		return
	}
	turret := components.Turret.Get(owner)
	if turret.ActiveBolt != ev.Projectile {
		return
	}
	turret.HasBolt = false
	turret.LastShotTick = Now(w)
}

// centerOf returns the center of the entry's collision box.
func centerOf(entry *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(entry)
	return obj.X + obj.W/2, obj.Y + obj.H/2
}
