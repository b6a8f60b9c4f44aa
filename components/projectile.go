package components

import (
	"github.com/automoto/gobble/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Kind    config.ProjectileKind
	Owner   donburi.Entity
	DirX    float64
	OriginX float64
	Age     int // ticks alive

	// Spout only
	Bounces     int
	BounceLimit int

	Destroyed bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
