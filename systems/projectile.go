package systems

import (
	"math"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/events"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles ages every projectile, expires waves past their lifetime
// or travel distance and drops anything that has left the level. Runs after
// UpdatePhysics so distances reflect this tick's movement.
func UpdateProjectiles(ecs *ecs.ECS) {
	var live []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		live = append(live, e)
	})

	for _, entry := range live {
		if !entry.Valid() {
			continue
		}
		p := components.Projectile.Get(entry)
		if p.Destroyed {
			continue
		}
		p.Age++

		if p.Kind == cfg.ProjectileWave {
			updateWave(entry, p)
			if p.Destroyed {
				continue
			}
		}

		if outOfBounds(ecs.World, entry) {
			DestroyProjectile(entry)
		}
	}
}

func updateWave(entry *donburi.Entry, p *components.ProjectileData) {
	wc := cfg.Projectile.Wave
	display := components.Display.Get(entry)
	display.ScaleY = 1 + wc.WobbleAmp*math.Sin(float64(p.Age)*wc.WobbleFreq)

	obj := components.Object.Get(entry)
	if p.Age > wc.Lifetime || math.Abs(obj.X-p.OriginX) > wc.MaxDistance {
		DestroyProjectile(entry)
	}
}

func outOfBounds(w donburi.World, entry *donburi.Entry) bool {
	width, height, ok := levelBounds(w)
	if !ok {
		return false
	}
	pad := cfg.Physics.OutOfBoundsPad
	obj := components.Object.Get(entry)
	return obj.X+obj.W < -pad || obj.X > width+pad ||
		obj.Y+obj.H < -pad || obj.Y > height+pad
}

// DestroyProjectile takes a projectile out of play and notifies listeners.
// Repeated calls are ignored, so the notification fires exactly once.
func DestroyProjectile(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Projectile) {
		return
	}
	p := components.Projectile.Get(entry)
	if p.Destroyed {
		return
	}
	p.Destroyed = true

	physics := components.Physics.Get(entry)
	physics.Enabled = false
	physics.SpeedX = 0
	physics.SpeedY = 0
	components.Display.Get(entry).Visible = false

	MarkForRemoval(entry)

	events.Emit(entry.World, events.ProjectileDestroyed, events.ProjectileDestroyedEvent{
		Projectile: entry.Entity(),
		Kind:       p.Kind,
		Owner:      p.Owner,
	})
}

// IsProjectileLive reports whether entry is a projectile still in play.
func IsProjectileLive(entry *donburi.Entry) bool {
	return entry != nil && entry.Valid() && entry.HasComponent(components.Projectile) &&
		!components.Projectile.Get(entry).Destroyed
}

// boltHitPlayer kills an exposed player and consumes the bolt.
func boltHitPlayer(bolt, player *donburi.Entry) {
	KillPlayer(player)
	DestroyProjectile(bolt)
}

func boltBlocksPlayer(_, player *donburi.Entry) bool {
	return !IsHiding(player) && PlayerState(player) != cfg.Dying
}

// waveHitEnemy stuns the first enemy the wave touches. Waves are
// single-target.
func waveHitEnemy(wave, enemy *donburi.Entry) {
	StunEnemy(enemy)
	DestroyProjectile(wave)
}

func enemyNotDying(_, enemy *donburi.Entry) bool {
	return EnemyState(enemy) != cfg.Dying && EnemyState(enemy) != cfg.StateNone
}

// spoutHitWall bounces the spout until its limit is used up; the contact
// after that destroys it.
func spoutHitWall(spout, _ *donburi.Entry) {
	p := components.Projectile.Get(spout)
	if p.Bounces >= p.BounceLimit {
		DestroyProjectile(spout)
		return
	}
	p.Bounces++
}

// spoutHitEnemy kills the enemy and keeps going.
func spoutHitEnemy(_, enemy *donburi.Entry) {
	KillEnemy(enemy)
}

func destroyOnContact(projectile, _ *donburi.Entry) {
	DestroyProjectile(projectile)
}
