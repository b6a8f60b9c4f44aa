package factory

import (
	"github.com/automoto/gobble/archetypes"
	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Projectiles start centered on their owner so they never begin inside a wall
// the owner is standing against.
func spawnProjectile(ecs *ecs.ECS, owner *donburi.Entry, kind cfg.ProjectileKind, dirX, w, h float64, texture string) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	ownerObj := components.Object.Get(owner).Object
	x := ownerObj.X + ownerObj.W/2 - w/2
	y := ownerObj.Y + ownerObj.H/2 - h/2

	obj := newBodyObject(p, x, y, w, h, tags.ResolvProjectile)
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	components.Projectile.SetValue(p, components.ProjectileData{
		Kind:    kind,
		Owner:   owner.Entity(),
		DirX:    dirX,
		OriginX: x,
	})

	display := components.NewDisplay(texture)
	display.FlipX = dirX < 0
	components.Display.SetValue(p, display)

	addToSpace(ecs, obj)
	return p
}

// CreateBolt spawns a turret bolt travelling horizontally in dirX.
func CreateBolt(ecs *ecs.ECS, owner *donburi.Entry, dirX float64) *donburi.Entry {
	bc := cfg.Projectile.Bolt
	b := spawnProjectile(ecs, owner, cfg.ProjectileBolt, dirX, bc.Width, bc.Height, "bolt")
	obj := components.Object.Get(b)
	components.Physics.SetValue(b, components.PhysicsData{
		SpeedX:  dirX * bc.Speed,
		Enabled: true,
		PrevX:   obj.X,
		PrevY:   obj.Y,
	})
	return b
}

// CreateWave spawns the player's default attack.
func CreateWave(ecs *ecs.ECS, owner *donburi.Entry, dirX float64) *donburi.Entry {
	wc := cfg.Projectile.Wave
	w := spawnProjectile(ecs, owner, cfg.ProjectileWave, dirX, wc.Width, wc.Height, "wave")
	obj := components.Object.Get(w)
	components.Physics.SetValue(w, components.PhysicsData{
		SpeedX:  dirX * wc.Speed,
		Enabled: true,
		PrevX:   obj.X,
		PrevY:   obj.Y,
	})
	return w
}

// CreateSpout spawns the bouncing attack. bounceLimit is the number of wall
// contacts it survives.
func CreateSpout(ecs *ecs.ECS, owner *donburi.Entry, dirX float64, bounceLimit int) *donburi.Entry {
	sc := cfg.Projectile.Spout
	s := spawnProjectile(ecs, owner, cfg.ProjectileSpout, dirX, sc.Width, sc.Height, "spout")
	obj := components.Object.Get(s)
	components.Physics.SetValue(s, components.PhysicsData{
		SpeedX:       dirX * sc.Speed,
		SpeedY:       sc.LaunchSpeed,
		Gravity:      sc.Gravity,
		AllowGravity: sc.Gravity != 0,
		MaxSpeedY:    sc.MaxFall,
		BounceX:      sc.BounceX,
		BounceY:      sc.BounceY,
		Enabled:      true,
		PrevX:        obj.X,
		PrevY:        obj.Y,
	})
	components.Projectile.Get(s).BounceLimit = bounceLimit
	return s
}
