package object

import (
	"math"
	"math/rand"

	"github.com/hanzik/asterfield/internal/geom"
	"github.com/hanzik/asterfield/internal/physics"
)

// Tier is a rock's size category. Only Small rocks never split.
type Tier uint8

const (
	TierSmall Tier = iota + 1
	TierMedium
	TierLarge
)

// String returns the tier name for logging and HUD use.
func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	case TierSmall:
		return "small"
	}
	return "unknown"
}

// Diameters per tier, strictly decreasing.
var tierDiameters = map[Tier]float64{
	TierLarge:  60.0,
	TierMedium: 40.0,
	TierSmall:  24.0,
}

// Outline generation bands.
const (
	OutlineMinVerts     = 10
	OutlineMaxVerts     = 14
	OutlineMinRadFactor = 0.7
	OutlineMaxRadFactor = 1.0
)

// Speed band for split fragments.
const (
	SplitMinSpeed = 40.0
	SplitMaxSpeed = 110.0
)

const rockMaxSpin = 0.8 // radians/sec either direction

// Rock is a drifting obstacle with a constant velocity and an irregular
// polygon outline generated once at creation.
type Rock struct {
	Pos   geom.Vec2
	Vel   geom.Vec2
	Tier  Tier
	Angle float64 // current rotation, cosmetic and part of the silhouette
	Spin  float64 // radians/sec

	// Outline holds the normalized silhouette: unit-circle vertices
	// scaled by their random radius factor. Immutable after creation.
	Outline []geom.Vec2
}

// TierDiameter returns the nominal diameter for a tier.
func TierDiameter(t Tier) float64 {
	return tierDiameters[t]
}

// generateOutline builds an irregular polygon: a vertex count drawn
// uniformly from [OutlineMinVerts, OutlineMaxVerts], vertices at equal
// angular steps, each radius perturbed by a uniform factor in
// [OutlineMinRadFactor, OutlineMaxRadFactor]. This is what produces the
// jagged rock silhouette.
func generateOutline(rng *rand.Rand) []geom.Vec2 {
	n := OutlineMinVerts + rng.Intn(OutlineMaxVerts-OutlineMinVerts+1)
	outline := make([]geom.Vec2, n)
	step := 2 * math.Pi / float64(n)
	for i := range outline {
		factor := OutlineMinRadFactor + rng.Float64()*(OutlineMaxRadFactor-OutlineMinRadFactor)
		outline[i] = geom.FromAngle(float64(i)*step, factor)
	}
	return outline
}

// NewRock creates a rock of the given tier at pos with the given velocity.
func NewRock(rng *rand.Rand, tier Tier, pos, vel geom.Vec2) *Rock {
	return &Rock{
		Pos:     pos,
		Vel:     vel,
		Tier:    tier,
		Angle:   rng.Float64() * 2 * math.Pi,
		Spin:    (rng.Float64() - 0.5) * 2 * rockMaxSpin,
		Outline: generateOutline(rng),
	}
}

// Split emits exactly two child rocks one tier smaller at the parent's
// position, each with an independently random direction and a speed in
// the split band. Splitting a Small rock yields nil.
func (r *Rock) Split(rng *rand.Rand) []*Rock {
	if r.Tier <= TierSmall {
		return nil
	}
	children := make([]*Rock, 2)
	for i := range children {
		angle := rng.Float64() * 2 * math.Pi
		speed := SplitMinSpeed + rng.Float64()*(SplitMaxSpeed-SplitMinSpeed)
		children[i] = NewRock(rng, r.Tier-1, r.Pos, geom.FromAngle(angle, speed))
	}
	return children
}

// Kind implements Entity.
func (r *Rock) Kind() Kind { return KindRock }

// Center implements Collidable.
func (r *Rock) Center() geom.Vec2 { return r.Pos }

// Radius implements Collidable. Returns the outer collision radius.
func (r *Rock) Radius() float64 { return TierDiameter(r.Tier) / 2 }

// Advance integrates position with toroidal wrapping. Rocks drift with
// constant velocity and never expire on their own.
func (r *Rock) Advance(dt float64, bounds geom.Vec2) bool {
	r.Angle += r.Spin * dt
	r.Pos = r.Pos.Add(r.Vel.Scale(dt))
	physics.Wrap(&r.Pos, bounds)
	return false
}

// WorldOutline appends the rock's silhouette in world coordinates to buf
// and returns it, applying the current rotation and tier radius.
func (r *Rock) WorldOutline(buf []geom.Vec2) []geom.Vec2 {
	buf = buf[:0]
	radius := r.Radius()
	sin, cos := math.Sincos(r.Angle)
	for _, v := range r.Outline {
		rotated := geom.Vec2{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
		}
		buf = append(buf, r.Pos.Add(rotated.Scale(radius)))
	}
	return buf
}
