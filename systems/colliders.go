package systems

import (
	"github.com/automoto/gobble/components"
	"github.com/yohamta/donburi"
)

// ColliderOptions describes a collider or overlap between a body and every
// object carrying one of Tags.
type ColliderOptions struct {
	Tags     []string
	OneWay   bool
	Process  components.ColliderProcess
	Callback components.ColliderCallback
	// Owner ties the collider's lifetime to an entity. Defaults to the body.
	Owner *donburi.Entry
}

func getOrCreateColliders(w donburi.World) *components.ColliderRegistryData {
	entry, ok := components.Colliders.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Colliders))
	}
	return components.Colliders.Get(entry)
}

func addCollider(body *donburi.Entry, kind components.ColliderKind, opts ColliderOptions) *components.Collider {
	reg := getOrCreateColliders(body.World)
	reg.NextID++

	owner := body
	if opts.Owner != nil {
		owner = opts.Owner
	}

	c := &components.Collider{
		ID:       reg.NextID,
		Kind:     kind,
		Body:     body.Entity(),
		Tags:     opts.Tags,
		OneWay:   opts.OneWay,
		Process:  opts.Process,
		Callback: opts.Callback,
		Owner:    owner.Entity(),
	}
	reg.Colliders = append(reg.Colliders, c)
	return c
}

// AddCollider registers a solid collider: the body is stopped (or bounced)
// by matching objects and the callback runs after the response.
func AddCollider(body *donburi.Entry, opts ColliderOptions) *components.Collider {
	return addCollider(body, components.ColliderSolid, opts)
}

// AddOverlap registers an overlap check with no physical response.
func AddOverlap(body *donburi.Entry, opts ColliderOptions) *components.Collider {
	return addCollider(body, components.ColliderOverlap, opts)
}

// RemoveCollider detaches c immediately. It is dropped from the registry at
// the end of the tick.
func RemoveCollider(c *components.Collider) {
	if c != nil {
		c.Removed = true
	}
}

// RemoveCollidersOwnedBy detaches every collider owned by owner and returns
// how many were still attached.
func RemoveCollidersOwnedBy(w donburi.World, owner donburi.Entity) int {
	n := 0
	for _, c := range getOrCreateColliders(w).Colliders {
		if !c.Removed && c.Owner == owner {
			c.Removed = true
			n++
		}
	}
	return n
}

// RemoveCollidersFor detaches every collider that involves e as body or owner.
func RemoveCollidersFor(w donburi.World, e donburi.Entity) {
	for _, c := range getOrCreateColliders(w).Colliders {
		if c.Body == e || c.Owner == e {
			c.Removed = true
		}
	}
}

// ActiveColliders returns the attached colliders whose body is e.
func ActiveColliders(w donburi.World, e donburi.Entity) []*components.Collider {
	var out []*components.Collider
	for _, c := range getOrCreateColliders(w).Colliders {
		if !c.Removed && c.Body == e {
			out = append(out, c)
		}
	}
	return out
}

func collidersFor(w donburi.World, body donburi.Entity, kind components.ColliderKind) []*components.Collider {
	var out []*components.Collider
	for _, c := range getOrCreateColliders(w).Colliders {
		if !c.Removed && c.Kind == kind && c.Body == body {
			out = append(out, c)
		}
	}
	return out
}

func compactColliders(w donburi.World) {
	reg := getOrCreateColliders(w)
	kept := reg.Colliders[:0]
	for _, c := range reg.Colliders {
		if c.Removed || !w.Valid(c.Body) || !w.Valid(c.Owner) {
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(reg.Colliders); i++ {
		reg.Colliders[i] = nil
	}
	reg.Colliders = kept
}
