package sim

import "github.com/hanzik/asterfield/internal/object"

// Listener receives fire-and-forget notifications for the audible moments
// of a session. Implementations must not block; the world never waits on
// a listener.
type Listener interface {
	// ProjectileFired is called once per projectile spawned.
	ProjectileFired()
	// RockDestroyed is called when a projectile destroys a rock.
	RockDestroyed(tier object.Tier)
	// CraftDestroyed is called when the craft is lost to a collision.
	CraftDestroyed()
}

// NopListener discards all notifications.
type NopListener struct{}

func (NopListener) ProjectileFired() {}

func (NopListener) RockDestroyed(object.Tier) {}

func (NopListener) CraftDestroyed() {}

var _ Listener = NopListener{}
