package components

import "github.com/yohamta/donburi"

type ColliderKind int

const (
	ColliderSolid ColliderKind = iota
	ColliderOverlap
)

// ColliderProcess decides whether a contact counts. Returning false skips the
// physical response and the callback.
type ColliderProcess func(body, other *donburi.Entry) bool

// ColliderCallback runs after the physical response of a contact.
type ColliderCallback func(body, other *donburi.Entry)

// Collider pairs a body with every object carrying one of Tags.
type Collider struct {
	ID       int
	Kind     ColliderKind
	Body     donburi.Entity
	Tags     []string
	OneWay   bool // solid only against downward motion
	Process  ColliderProcess
	Callback ColliderCallback
	Owner    donburi.Entity
	Removed  bool
}

type ColliderRegistryData struct {
	Colliders []*Collider
	NextID    int
}

var Colliders = donburi.NewComponentType[ColliderRegistryData]()
