package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is the body half of the physics service. The resolv object in
// ObjectData carries position and size.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	AllowGravity bool
	Drag         float64
	MaxSpeedX    float64 // zero means unbounded
	MaxSpeedY    float64 // zero means unbounded
	BounceX      float64
	BounceY      float64

	Enabled            bool
	Immovable          bool
	CollideWorldBounds bool

	// PushX is an extra displacement applied during the next move only.
	PushX float64

	PrevX, PrevY float64

	BlockedLeft  bool
	BlockedRight bool
	BlockedUp    bool
	BlockedDown  bool
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
