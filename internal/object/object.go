// Package object defines the closed set of simulation entities - craft,
// rocks, projectiles and debris bursts - and the generation-tracked store
// that owns them. Behavior shared across variants is expressed through
// small capability interfaces rather than inheritance.
package object

import "github.com/hanzik/asterfield/internal/geom"

// Kind tags an entity variant for dispatch and filtered iteration.
type Kind uint8

const (
	KindCraft Kind = iota
	KindRock
	KindProjectile
	KindDebris

	kindCount

	// KindAny matches every variant in Store.ForEach.
	KindAny Kind = 0xff
)

// Entity is implemented by every simulation object variant.
type Entity interface {
	Kind() Kind
}

// Movable is implemented by entities whose position advances each tick.
// Advance integrates position from velocity and returns true once the
// entity has expired and should be removed from the store.
type Movable interface {
	Entity
	Advance(dt float64, bounds geom.Vec2) (expired bool)
}

// Collidable is implemented by entities that participate in collision
// detection. Center and Radius feed the broad phase; the narrow phase
// works on the concrete outlines.
type Collidable interface {
	Entity
	Center() geom.Vec2
	Radius() float64
}

// Fadeable marks entities that keep animating while the world is frozen
// during an explosion sequence.
type Fadeable interface {
	Entity
	Fading() bool
}
