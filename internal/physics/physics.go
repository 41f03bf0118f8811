// Package physics provides the geometric tests used by collision
// resolution: circle, point and polygon overlap checks, plus toroidal
// position wrapping at the world bounds.
package physics

import (
	"math"

	"github.com/hanzik/asterfield/internal/geom"
)

// Wrap shifts p back into [0, bounds) on each axis, Asteroids-style.
// Crossing a bound teleports the position by exactly the bound span;
// it is never clamped or bounced.
func Wrap(p *geom.Vec2, bounds geom.Vec2) {
	if bounds.X > 0 {
		p.X = math.Mod(p.X, bounds.X)
		if p.X < 0 {
			p.X += bounds.X
		}
	}
	if bounds.Y > 0 {
		p.Y = math.Mod(p.Y, bounds.Y)
		if p.Y < 0 {
			p.Y += bounds.Y
		}
	}
}

// InBounds reports whether p lies within [0, bounds] on both axes.
func InBounds(p geom.Vec2, bounds geom.Vec2) bool {
	return p.X >= 0 && p.X <= bounds.X && p.Y >= 0 && p.Y <= bounds.Y
}

// CirclesOverlap reports whether two circles overlap.
func CirclesOverlap(c1 geom.Vec2, r1 float64, c2 geom.Vec2, r2 float64) bool {
	min := r1 + r2
	return c2.Sub(c1).LenSq() < min*min
}

// PointInPolygon reports whether p lies inside the polygon using the
// even-odd ray casting rule. Vertices must be in order (either winding).
func PointInPolygon(p geom.Vec2, poly []geom.Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// SegmentsIntersect reports whether segments a1-a2 and b1-b2 cross.
func SegmentsIntersect(a1, a2, b1, b2 geom.Vec2) bool {
	d1 := b2.Sub(b1).Cross(a1.Sub(b1))
	d2 := b2.Sub(b1).Cross(a2.Sub(b1))
	d3 := a2.Sub(a1).Cross(b1.Sub(a1))
	d4 := a2.Sub(a1).Cross(b2.Sub(a1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// segmentDistSq returns the squared distance from p to segment a-b.
func segmentDistSq(p, a, b geom.Vec2) float64 {
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab)
	den := ab.LenSq()
	if den > 0 {
		t = geom.Clamp(t/den, 0, 1)
	} else {
		t = 0
	}
	return p.Sub(a.Add(ab.Scale(t))).LenSq()
}

// CirclePolygonOverlap reports whether a circle overlaps a polygon: the
// center is inside the outline or some edge passes within the radius.
func CirclePolygonOverlap(c geom.Vec2, r float64, poly []geom.Vec2) bool {
	if len(poly) < 3 {
		return false
	}
	if PointInPolygon(c, poly) {
		return true
	}
	rr := r * r
	n := len(poly)
	for i := 0; i < n; i++ {
		if segmentDistSq(c, poly[i], poly[(i+1)%n]) <= rr {
			return true
		}
	}
	return false
}

// PolygonsOverlap reports whether two polygons overlap, testing edge
// crossings and full containment either way. The test is exact against
// the jagged outlines rather than a bounding-circle approximation.
func PolygonsOverlap(a, b []geom.Vec2) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		a1, a2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			if SegmentsIntersect(a1, a2, b[j], b[(j+1)%nb]) {
				return true
			}
		}
	}
	return PointInPolygon(a[0], b) || PointInPolygon(b[0], a)
}
