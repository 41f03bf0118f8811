package object

import (
	"github.com/hanzik/asterfield/internal/geom"
	"github.com/hanzik/asterfield/internal/physics"
)

const (
	// ProjectileSpeed is the fixed muzzle speed. Direction is locked at
	// creation and never changes.
	ProjectileSpeed = 480.0

	// ProjectileRadius is the collision radius; projectiles are modeled
	// as small disks against the rock outlines.
	ProjectileRadius = 2.0
)

// Projectile is a bullet fired from the craft's nose. Unlike craft and
// rocks it never wraps: it is removed the moment any coordinate leaves
// the world bounds, so fast shots cannot loiter at the edges.
type Projectile struct {
	Pos geom.Vec2
	Vel geom.Vec2
}

// NewProjectile creates a projectile at pos traveling at heading. The
// shooter's velocity is added so shots inherit the craft's momentum.
func NewProjectile(pos geom.Vec2, heading float64, shooterVel geom.Vec2) *Projectile {
	return &Projectile{
		Pos: pos,
		Vel: shooterVel.Add(geom.FromAngle(heading, ProjectileSpeed)),
	}
}

// Kind implements Entity.
func (p *Projectile) Kind() Kind { return KindProjectile }

// Center implements Collidable.
func (p *Projectile) Center() geom.Vec2 { return p.Pos }

// Radius implements Collidable.
func (p *Projectile) Radius() float64 { return ProjectileRadius }

// Advance integrates position and expires once out of bounds.
func (p *Projectile) Advance(dt float64, bounds geom.Vec2) bool {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	return !physics.InBounds(p.Pos, bounds)
}
