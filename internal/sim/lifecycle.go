package sim

import "github.com/hanzik/asterfield/internal/object"

// craftHit performs the Playing -> Exploding transition for a qualifying
// craft-rock collision. The whole side effect set is applied atomically
// within this call: two debris bursts, both entities removed, the world
// frozen, and a life docked if any remain. A transition attempt in any
// other phase is a defect and is ignored.
func (w *World) craftHit(rockHandle object.Handle, rock *object.Rock) {
	if w.phase != PhasePlaying {
		return
	}
	craft, ok := w.Craft()
	if !ok {
		return
	}

	w.store.Add(object.NewExplosion(w.rng, craft.Pos))
	w.store.Add(object.NewExplosion(w.rng, rock.Pos))

	w.store.Remove(w.craft)
	w.craft = object.Nil
	w.killRock(rockHandle, rock, false)

	// Whether the explosion resolves into a respawn is decided by the
	// lives remaining at the time of the hit, not when the timer fires.
	w.willRespawn = w.lives > 0
	if w.lives > 0 {
		w.lives--
	}

	w.frozen = true
	w.phase = PhaseExploding
	w.explodeTimer = object.ExplosionDuration

	w.events.CraftDestroyed()
}
