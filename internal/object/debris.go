package object

import (
	"math"
	"math/rand"

	"github.com/hanzik/asterfield/internal/geom"
)

// Debris tuning.
const (
	// ExplosionDuration is the lifetime of a destruction burst. The
	// explosion freeze in the life state machine is timed to match it.
	ExplosionDuration = 1.0

	explosionParticles = 14
	explosionMinSpeed  = 30.0
	explosionMaxSpeed  = 90.0
	debrisDamping      = 0.92 // velocity retained per 60fps tick

	exhaustDuration = 0.2
	exhaustSpeed    = 50.0
	exhaustSpread   = 0.5
)

var debrisGlyphs = []rune{'#', '@', '*', '%', '+', 'x'}

// debrisParticle is one glowing fragment of a burst.
type debrisParticle struct {
	Off   geom.Vec2 // offset from the burst origin
	Vel   geom.Vec2
	Glyph rune
}

// DebrisBurst is a purely cosmetic, self-removing cloud of particles.
// It still matters to the simulation contract: bursts keep animating
// while everything else is frozen during an explosion sequence, and the
// freeze ends when the burst's duration elapses.
type DebrisBurst struct {
	Origin    geom.Vec2
	Age       float64
	Duration  float64
	particles []debrisParticle
}

// NewExplosion creates a radial burst at pos lasting ExplosionDuration.
func NewExplosion(rng *rand.Rand, pos geom.Vec2) *DebrisBurst {
	b := &DebrisBurst{
		Origin:    pos,
		Duration:  ExplosionDuration,
		particles: make([]debrisParticle, explosionParticles),
	}
	for i := range b.particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := explosionMinSpeed + rng.Float64()*(explosionMaxSpeed-explosionMinSpeed)
		b.particles[i] = debrisParticle{
			Vel:   geom.FromAngle(angle, speed),
			Glyph: debrisGlyphs[rng.Intn(len(debrisGlyphs))],
		}
	}
	return b
}

// NewExhaust creates a short-lived puff behind a thrusting craft.
// Cosmetic only; it never participates in collisions.
func NewExhaust(rng *rand.Rand, pos geom.Vec2, heading float64) *DebrisBurst {
	b := &DebrisBurst{
		Origin:    pos,
		Duration:  exhaustDuration,
		particles: make([]debrisParticle, 1+rng.Intn(2)),
	}
	for i := range b.particles {
		angle := heading + math.Pi + (rng.Float64()-0.5)*exhaustSpread
		speed := exhaustSpeed * (0.7 + rng.Float64()*0.6)
		b.particles[i] = debrisParticle{
			Vel:   geom.FromAngle(angle, speed),
			Glyph: '~',
		}
	}
	return b
}

// Kind implements Entity.
func (b *DebrisBurst) Kind() Kind { return KindDebris }

// Fading implements Fadeable; bursts animate through the freeze.
func (b *DebrisBurst) Fading() bool { return true }

// Advance ages the burst, moving each particle outward with velocity
// decaying by a fixed damping factor per tick. Expires after Duration.
func (b *DebrisBurst) Advance(dt float64, bounds geom.Vec2) bool {
	b.Age += dt
	if b.Age >= b.Duration {
		return true
	}
	damp := math.Pow(debrisDamping, dt*60)
	for i := range b.particles {
		p := &b.particles[i]
		p.Off = p.Off.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(damp)
	}
	return false
}

// EachParticle calls fn with the world position and glyph of every
// particle still worth drawing (bursts dim out in the last quarter).
func (b *DebrisBurst) EachParticle(fn func(pos geom.Vec2, glyph rune)) {
	if b.Duration > 0 && (b.Duration-b.Age)/b.Duration < 0.25 {
		return
	}
	for i := range b.particles {
		fn(b.Origin.Add(b.particles[i].Off), b.particles[i].Glyph)
	}
}
