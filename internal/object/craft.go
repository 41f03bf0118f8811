package object

import (
	"math"

	"github.com/hanzik/asterfield/internal/geom"
	"github.com/hanzik/asterfield/internal/physics"
)

// Craft tuning. Damping is applied per tick normalized to 60 fps, so the
// feel is frame-rate independent.
const (
	CraftThrustAccel = 260.0 // units/sec^2 along the heading
	CraftTurnRate    = 4.0   // radians/sec
	CraftMaxSpeed    = 350.0 // velocity magnitude cap
	CraftDamping     = 0.95  // velocity retained per 60fps tick when coasting
	CraftStopSpeed   = 2.0   // below this, coasting velocity snaps to zero
	CraftSize        = 12.0  // nose distance from center, also collision radius
)

// DefaultHeading points the craft up.
const DefaultHeading = -math.Pi / 2

// Craft is the player-controlled ship. At most one exists at a time; it
// is destroyed on a fatal hit and recreated by the respawn transition.
type Craft struct {
	Pos     geom.Vec2
	Vel     geom.Vec2
	Heading float64

	// Control flags, refreshed from the intent snapshot each tick.
	TurnLeft  bool
	TurnRight bool
	Thrust    bool

	// Invuln is the grace-period time remaining. While positive,
	// craft-rock collisions are ignored.
	Invuln float64
}

// NewCraft creates a craft at rest at the given position, pointing up.
func NewCraft(pos geom.Vec2) *Craft {
	return &Craft{
		Pos:     pos,
		Heading: DefaultHeading,
	}
}

// Kind implements Entity.
func (c *Craft) Kind() Kind { return KindCraft }

// Center implements Collidable.
func (c *Craft) Center() geom.Vec2 { return c.Pos }

// Radius implements Collidable.
func (c *Craft) Radius() float64 { return CraftSize }

// SetControls applies the per-tick intent snapshot.
func (c *Craft) SetControls(left, right, thrust bool) {
	c.TurnLeft = left
	c.TurnRight = right
	c.Thrust = thrust
}

// Advance applies turning, thrust and damping, then integrates position
// with toroidal wrapping. The craft never expires on its own.
func (c *Craft) Advance(dt float64, bounds geom.Vec2) bool {
	if c.TurnLeft {
		c.Heading -= CraftTurnRate * dt
	}
	if c.TurnRight {
		c.Heading += CraftTurnRate * dt
	}
	c.Heading = geom.WrapAngle(c.Heading)

	if c.Thrust {
		c.Vel = c.Vel.Add(geom.FromAngle(c.Heading, CraftThrustAccel*dt))
	} else {
		c.Vel = c.Vel.Scale(math.Pow(CraftDamping, dt*60))
		if c.Vel.LenSq() < CraftStopSpeed*CraftStopSpeed {
			c.Vel = geom.Vec2{}
		}
	}

	if speed := c.Vel.Len(); speed > CraftMaxSpeed {
		c.Vel = c.Vel.Scale(CraftMaxSpeed / speed)
	}

	c.Pos = c.Pos.Add(c.Vel.Scale(dt))
	physics.Wrap(&c.Pos, bounds)

	if c.Invuln > 0 {
		c.Invuln -= dt
		if c.Invuln < 0 {
			c.Invuln = 0
		}
	}
	return false
}

// Nose returns the tip of the ship, where projectiles spawn.
func (c *Craft) Nose() geom.Vec2 {
	return c.Pos.Add(geom.FromAngle(c.Heading, CraftSize))
}

// Outline appends the craft's collision triangle to buf and returns it.
// The triangle matches the rendered silhouette: nose forward, wings swept
// back at about 143 degrees.
func (c *Craft) Outline(buf []geom.Vec2) []geom.Vec2 {
	buf = buf[:0]
	buf = append(buf,
		c.Pos.Add(geom.FromAngle(c.Heading, CraftSize)),
		c.Pos.Add(geom.FromAngle(c.Heading+2.5, CraftSize*0.7)),
		c.Pos.Add(geom.FromAngle(c.Heading-2.5, CraftSize*0.7)),
	)
	return buf
}
