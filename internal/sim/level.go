package sim

import (
	"math"

	"github.com/hanzik/asterfield/internal/geom"
	"github.com/hanzik/asterfield/internal/object"
)

// Ring-formation wave placement.
const (
	ringRadiusFactor = 0.35 // of the smaller world dimension
	ringMinRadius    = 80.0
	ringMaxRadius    = 400.0

	waveMinSpeed = 30.0
	waveMaxSpeed = 80.0
)

// ringRadius derives the wave spawn radius from the current bounds.
func (w *World) ringRadius() float64 {
	return geom.Clamp(ringRadiusFactor*math.Min(w.bounds.X, w.bounds.Y), ringMinRadius, ringMaxRadius)
}

// startLevel spawns the current level's wave: exactly level large rocks
// evenly spaced on a ring around the world center, each moving
// tangentially (perpendicular to its radius vector) at a random speed in
// the wave band. The tangential velocities make the wave rotate and
// disperse instead of clumping.
func (w *World) startLevel() {
	radius := w.ringRadius()
	center := w.Center()

	for i := 0; i < w.level; i++ {
		angle := 2 * math.Pi * float64(i) / float64(w.level)
		pos := center.Add(geom.FromAngle(angle, radius))

		tangent := geom.FromAngle(angle, 1).Perp()
		if w.rng.Intn(2) == 0 {
			tangent = tangent.Scale(-1)
		}
		speed := waveMinSpeed + w.rng.Float64()*(waveMaxSpeed-waveMinSpeed)

		w.addRock(object.NewRock(w.rng, object.TierLarge, pos, tangent.Scale(speed)))
	}
}

// advanceLevel moves to the next level once a wave is cleared: bump the
// counter, park a live craft back at the center, spawn the next wave.
// There is no level cap; waves simply keep growing.
func (w *World) advanceLevel() {
	w.level++
	if craft, ok := w.Craft(); ok {
		craft.Pos = w.Center()
		craft.Vel = geom.Vec2{}
		craft.Heading = object.DefaultHeading
	}
	w.startLevel()
}
