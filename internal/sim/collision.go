package sim

import (
	"github.com/hanzik/asterfield/internal/object"
	"github.com/hanzik/asterfield/internal/physics"
)

// resolveCollisions runs the per-tick collision pass: broad phase via the
// spatial grid, narrow phase against the actual outlines. All resulting
// destructions are scheduled and applied after the full pass, never
// mid-iteration, so no pair is skipped and no stale handle is acted on.
func (w *World) resolveCollisions() {
	w.collectCollidables()

	w.grid.Reset()
	for i, r := range w.rockList {
		w.grid.Insert(r.Pos, i)
	}

	w.projectilePass()
	w.craftPass()

	// Apply scheduled destructions.
	for i, hit := range w.projHit {
		if hit {
			w.store.Remove(w.projHandles[i])
		}
	}
	for i, hit := range w.rockHit {
		if hit {
			w.killRock(w.rockHandles[i], w.rockList[i], true)
		}
	}
}

// collectCollidables snapshots rocks and projectiles into reusable
// scratch slices and clears the per-tick hit flags.
func (w *World) collectCollidables() {
	w.rockHandles = w.rockHandles[:0]
	w.rockList = w.rockList[:0]
	w.store.ForEach(object.KindRock, func(h object.Handle, e object.Entity) bool {
		w.rockHandles = append(w.rockHandles, h)
		w.rockList = append(w.rockList, e.(*object.Rock))
		return false
	})

	w.projHandles = w.projHandles[:0]
	w.projList = w.projList[:0]
	w.store.ForEach(object.KindProjectile, func(h object.Handle, e object.Entity) bool {
		w.projHandles = append(w.projHandles, h)
		w.projList = append(w.projList, e.(*object.Projectile))
		return false
	})

	w.rockHit = resetFlags(w.rockHit, len(w.rockList))
	w.projHit = resetFlags(w.projHit, len(w.projList))
}

func resetFlags(flags []bool, n int) []bool {
	if cap(flags) < n {
		return make([]bool, n)
	}
	flags = flags[:n]
	for i := range flags {
		flags[i] = false
	}
	return flags
}

// projectilePass marks projectile-rock overlaps. The projectile dies
// unconditionally; the rock dies and splits if it is not Small tier.
// Each projectile hits at most one rock, and a rock already claimed this
// tick cannot be hit again.
func (w *World) projectilePass() {
	for pi, p := range w.projList {
		hit := -1
		w.grid.Nearby(p.Pos, func(ri int) bool {
			if w.rockHit[ri] {
				return false
			}
			r := w.rockList[ri]
			if !physics.CirclesOverlap(p.Pos, object.ProjectileRadius, r.Pos, r.Radius()) {
				return false
			}
			w.polyA = r.WorldOutline(w.polyA)
			if physics.CirclePolygonOverlap(p.Pos, object.ProjectileRadius, w.polyA) {
				hit = ri
				return true
			}
			return false
		})
		if hit >= 0 {
			w.projHit[pi] = true
			w.rockHit[hit] = true
		}
	}
}

// craftPass checks the craft against rocks not already destroyed this
// tick. Overlaps are ignored entirely while the grace window is active.
// Only the first qualifying pair triggers the death transition; the
// transition itself removes both entities, so later pairs are no-ops.
func (w *World) craftPass() {
	craft, ok := w.Craft()
	if !ok || craft.Invuln > 0 {
		return
	}
	w.polyB = craft.Outline(w.polyB)

	w.grid.Nearby(craft.Pos, func(ri int) bool {
		if w.rockHit[ri] {
			return false
		}
		r := w.rockList[ri]
		if !physics.CirclesOverlap(craft.Pos, craft.Radius(), r.Pos, r.Radius()) {
			return false
		}
		w.polyA = r.WorldOutline(w.polyA)
		if physics.PolygonsOverlap(w.polyB, w.polyA) {
			w.craftHit(w.rockHandles[ri], r)
			return true
		}
		return false
	})
}

// killRock destroys a rock, decrementing the active-rock count exactly
// once per entity; redundant calls are ignored. Projectile kills score,
// notify the listener and split non-Small parents into two children.
func (w *World) killRock(h object.Handle, r *object.Rock, byProjectile bool) {
	if _, ok := w.store.Get(h); !ok {
		return
	}
	w.store.Remove(h)
	w.rocks--
	if w.rocks < 0 {
		w.rocks = 0
	}

	if !byProjectile {
		return
	}
	w.score += tierScore(r.Tier)
	w.events.RockDestroyed(r.Tier)
	for _, child := range r.Split(w.rng) {
		w.addRock(child)
	}
}

// addRock inserts a rock and bumps the active-rock count.
func (w *World) addRock(r *object.Rock) {
	w.store.Add(r)
	w.rocks++
}

func tierScore(t object.Tier) int {
	switch t {
	case object.TierLarge:
		return ScoreLarge
	case object.TierMedium:
		return ScoreMedium
	case object.TierSmall:
		return ScoreSmall
	}
	return 0
}
