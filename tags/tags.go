package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Patrol     = donburi.NewTag().SetName("Patrol")
	Turret     = donburi.NewTag().SetName("Turret")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid" // every static rectangle
	ResolvFloor   = "floor"
	ResolvCeiling = "ceiling"
	ResolvWall    = "wall"
	ResolvOneWay  = "oneway"

	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
