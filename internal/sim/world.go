// Package sim implements the simulation core: a single World owning all
// entities, advanced by a fixed-order tick pipeline, with collision
// resolution, wave progression and the life/respawn state machine.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hanzik/asterfield/internal/geom"
	"github.com/hanzik/asterfield/internal/object"
	"github.com/hanzik/asterfield/internal/physics"
)

// Phase is the life/respawn state machine's current state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseExploding
	PhaseRespawning
	PhaseGameOver
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseExploding:
		return "exploding"
	case PhaseRespawning:
		return "respawning"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

const (
	// InitialLives is the default number of spare lives.
	InitialLives = 3

	// GraceInvuln is the invulnerability window granted on every spawn.
	GraceInvuln = 3.0

	// RespawnDelay is the settle time between the end of an explosion
	// and the new craft appearing. Kept as its own countdown so the
	// grace blink is visible from the first frame of the new craft.
	RespawnDelay = 0.1

	// BlinkWindow is the width of the alternating visibility windows
	// used while the craft is invulnerable.
	BlinkWindow = 0.1

	// Broad-phase cell size. Must cover the largest pair distance:
	// a large rock radius plus the craft size, with slack.
	gridCellSize = 64.0
)

// Scores per rock tier destroyed by projectile.
const (
	ScoreLarge  = 20
	ScoreMedium = 50
	ScoreSmall  = 100
)

// Options configures a new World.
type Options struct {
	// Seed for the world's RNG; 0 seeds from the clock.
	Seed int64
	// Lives is the number of spare lives; 0 means InitialLives.
	Lives int
	// Listener receives event notifications; nil means none.
	Listener Listener
}

// World owns every live entity and all session counters. It is not safe
// for concurrent use: one goroutine drives Tick and reads state between
// ticks, matching the single logical thread of the simulation.
type World struct {
	bounds geom.Vec2
	store  *object.Store
	rng    *rand.Rand
	events Listener
	grid   *physics.Grid

	phase  Phase
	level  int
	rocks  int // active-rock count, mirrors the store
	lives  int
	score  int
	frozen bool

	craft        object.Handle
	willRespawn  bool
	explodeTimer float64
	respawnTimer float64

	// Scratch buffers reused across ticks by collision resolution.
	rockHandles []object.Handle
	rockList    []*object.Rock
	projHandles []object.Handle
	projList    []*object.Projectile
	rockHit     []bool
	projHit     []bool
	polyA       []geom.Vec2
	polyB       []geom.Vec2
}

// New creates a world with the given bounds, spawns the craft at the
// center with spawn grace, and starts level 1. Fails fast on
// non-positive bounds or a negative lives count.
func New(width, height float64, opts Options) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sim: world bounds must be positive, got %gx%g", width, height)
	}
	if opts.Lives < 0 {
		return nil, fmt.Errorf("sim: lives must not be negative, got %d", opts.Lives)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lives := opts.Lives
	if lives == 0 {
		lives = InitialLives
	}
	events := opts.Listener
	if events == nil {
		events = NopListener{}
	}

	w := &World{
		bounds: geom.Vec2{X: width, Y: height},
		store:  object.NewStore(),
		rng:    rand.New(rand.NewSource(seed)),
		events: events,
		grid:   physics.NewGrid(geom.Vec2{X: width, Y: height}, gridCellSize),
		phase:  PhasePlaying,
		level:  1,
		lives:  lives,
		craft:  object.Nil,
	}

	craft := object.NewCraft(w.Center())
	craft.Invuln = GraceInvuln
	w.craft = w.store.Add(craft)

	w.startLevel()
	w.store.Flush()
	return w, nil
}

// Tick advances the simulation by dt seconds: intents, integration,
// collision resolution, deferred removals/spawns, timed transitions.
// Nothing in a tick blocks; all waiting is countdown fields.
func (w *World) Tick(dt float64, in Intents) {
	if w.phase == PhaseGameOver {
		return
	}

	w.applyIntents(in)
	w.integrate(dt)
	if w.phase == PhasePlaying && !w.frozen {
		w.resolveCollisions()
	}
	w.store.Flush()
	w.advanceTimers(dt)
	w.store.Flush()
}

// applyIntents forwards the control snapshot to the craft and spawns one
// projectile per discrete fire press. Ignored outside active play.
func (w *World) applyIntents(in Intents) {
	if w.phase != PhasePlaying || w.frozen {
		return
	}
	craft, ok := w.Craft()
	if !ok {
		return
	}
	craft.SetControls(in.TurnLeft, in.TurnRight, in.Thrust)

	if in.Thrust {
		back := craft.Pos.Sub(geom.FromAngle(craft.Heading, object.CraftSize*0.6))
		w.store.Add(object.NewExhaust(w.rng, back, craft.Heading))
	}

	for i := 0; i < in.Fire; i++ {
		w.store.Add(object.NewProjectile(craft.Nose(), craft.Heading, craft.Vel))
		w.events.ProjectileFired()
	}
}

// integrate advances every movable entity. While frozen, only fadeable
// entities (debris) keep animating. Projectiles that left the bounds and
// bursts that ran out are scheduled for removal.
func (w *World) integrate(dt float64) {
	w.store.ForEach(object.KindAny, func(h object.Handle, e object.Entity) bool {
		if w.frozen {
			if _, fades := e.(object.Fadeable); !fades {
				return false
			}
		}
		if m, ok := e.(object.Movable); ok {
			if m.Advance(dt, w.bounds) {
				w.store.Remove(h)
			}
		}
		return false
	})
}

// advanceTimers drives the timed transitions of the life state machine
// and the wave-cleared level advance. The explosion countdown and the
// respawn settle delay are separate fields; only one runs at a time.
func (w *World) advanceTimers(dt float64) {
	switch w.phase {
	case PhaseExploding:
		w.explodeTimer -= dt
		if w.explodeTimer > 0 {
			return
		}
		if w.willRespawn {
			w.phase = PhaseRespawning
			w.respawnTimer = RespawnDelay
		} else {
			w.phase = PhaseGameOver
		}

	case PhaseRespawning:
		w.respawnTimer -= dt
		if w.respawnTimer > 0 {
			return
		}
		craft := object.NewCraft(w.Center())
		craft.Invuln = GraceInvuln
		w.craft = w.store.Add(craft)
		w.frozen = false
		w.phase = PhasePlaying

	case PhasePlaying:
		if w.rocks == 0 {
			w.advanceLevel()
		}
	}
}

// Resize updates the world bounds when the display surface changes. The
// broad-phase grid is rebuilt and a live craft is recentered.
func (w *World) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("sim: world bounds must be positive, got %gx%g", width, height)
	}
	w.bounds = geom.Vec2{X: width, Y: height}
	w.grid = physics.NewGrid(w.bounds, gridCellSize)
	if craft, ok := w.Craft(); ok {
		craft.Pos = w.Center()
	}
	return nil
}

// Center returns the world center point.
func (w *World) Center() geom.Vec2 {
	return geom.Vec2{X: w.bounds.X / 2, Y: w.bounds.Y / 2}
}

// Bounds returns the world dimensions.
func (w *World) Bounds() geom.Vec2 { return w.bounds }

// Level returns the current level number, starting at 1.
func (w *World) Level() int { return w.level }

// Lives returns the spare lives remaining.
func (w *World) Lives() int { return w.lives }

// Score returns the session score.
func (w *World) Score() int { return w.score }

// Phase returns the life state machine's current state.
func (w *World) Phase() Phase { return w.phase }

// RockCount returns the active-rock count.
func (w *World) RockCount() int { return w.rocks }

// GameOver reports whether the session has ended.
func (w *World) GameOver() bool { return w.phase == PhaseGameOver }

// Craft returns the live craft, or false when none exists (during the
// explosion/respawn sequence and after game over).
func (w *World) Craft() (*object.Craft, bool) {
	e, ok := w.store.Get(w.craft)
	if !ok {
		return nil, false
	}
	return e.(*object.Craft), true
}

// CraftVisible reports whether the craft should be drawn this frame.
// While invulnerable it blinks on alternating BlinkWindow-wide windows.
func (w *World) CraftVisible() bool {
	craft, ok := w.Craft()
	if !ok {
		return false
	}
	if craft.Invuln <= 0 {
		return true
	}
	return int(craft.Invuln/BlinkWindow)%2 == 0
}

// Each calls fn for every live entity. Read-only: callers must not
// mutate entities or the store from fn.
func (w *World) Each(fn func(e object.Entity)) {
	w.store.ForEach(object.KindAny, func(_ object.Handle, e object.Entity) bool {
		fn(e)
		return false
	})
}

// EntityCount returns the number of live entities of the given kind.
func (w *World) EntityCount(kind object.Kind) int {
	return w.store.Count(kind)
}
