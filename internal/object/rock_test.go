package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hanzik/asterfield/internal/geom"
)

func TestGenerateOutlineBands(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		outline := generateOutline(rng)

		n := len(outline)
		if n < OutlineMinVerts || n > OutlineMaxVerts {
			t.Fatalf("seed %d: vertex count %d outside [%d, %d]", seed, n, OutlineMinVerts, OutlineMaxVerts)
		}
		for i, v := range outline {
			r := v.Len()
			if r < OutlineMinRadFactor-1e-9 || r > OutlineMaxRadFactor+1e-9 {
				t.Fatalf("seed %d: vertex %d radius factor %g outside [%g, %g]",
					seed, i, r, OutlineMinRadFactor, OutlineMaxRadFactor)
			}
		}
	}
}

func TestTierDiametersDecrease(t *testing.T) {
	if !(TierDiameter(TierLarge) > TierDiameter(TierMedium) &&
		TierDiameter(TierMedium) > TierDiameter(TierSmall)) {
		t.Fatalf("tier diameters must strictly decrease: %g, %g, %g",
			TierDiameter(TierLarge), TierDiameter(TierMedium), TierDiameter(TierSmall))
	}
}

func TestSplitYieldsTwoSmallerChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pos := geom.Vec2{X: 100, Y: 100}

	for _, tier := range []Tier{TierLarge, TierMedium} {
		parent := NewRock(rng, tier, pos, geom.Vec2{X: 10})
		children := parent.Split(rng)
		if len(children) != 2 {
			t.Fatalf("%v split yielded %d children, want 2", tier, len(children))
		}
		for _, c := range children {
			if c.Tier != tier-1 {
				t.Errorf("%v child tier = %v, want %v", tier, c.Tier, tier-1)
			}
			if c.Pos != pos {
				t.Errorf("child spawned at %+v, want parent position %+v", c.Pos, pos)
			}
			speed := c.Vel.Len()
			if speed < SplitMinSpeed-1e-9 || speed > SplitMaxSpeed+1e-9 {
				t.Errorf("child speed %g outside [%g, %g]", speed, SplitMinSpeed, SplitMaxSpeed)
			}
		}
	}
}

func TestSplitSmallYieldsNothing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := NewRock(rng, TierSmall, geom.Vec2{}, geom.Vec2{})
	if children := r.Split(rng); children != nil {
		t.Fatalf("small rock split yielded %d children, want none", len(children))
	}
}

func TestRockAdvanceWrapsAndNeverExpires(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := geom.Vec2{X: 200, Y: 200}
	r := NewRock(rng, TierLarge, geom.Vec2{X: 195, Y: 100}, geom.Vec2{X: 100, Y: 0})

	for i := 0; i < 120; i++ {
		if expired := r.Advance(1.0/60, bounds); expired {
			t.Fatal("rocks must never expire on their own")
		}
		if r.Pos.X < 0 || r.Pos.X >= bounds.X || r.Pos.Y < 0 || r.Pos.Y >= bounds.Y {
			t.Fatalf("position %+v left the wrapped bounds", r.Pos)
		}
	}
}

func TestWorldOutlineAppliesRotationAndRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	r := NewRock(rng, TierLarge, geom.Vec2{X: 50, Y: 60}, geom.Vec2{})

	world := r.WorldOutline(nil)
	if len(world) != len(r.Outline) {
		t.Fatalf("world outline has %d vertices, want %d", len(world), len(r.Outline))
	}
	radius := r.Radius()
	for i, v := range world {
		d := v.Sub(r.Pos).Len()
		want := r.Outline[i].Len() * radius
		if math.Abs(d-want) > 1e-9 {
			t.Errorf("vertex %d at distance %g from center, want %g", i, d, want)
		}
	}
}

func TestWorldOutlineReusesBuffer(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	r := NewRock(rng, TierMedium, geom.Vec2{}, geom.Vec2{})

	buf := make([]geom.Vec2, 0, 16)
	out := r.WorldOutline(buf)
	if cap(out) != cap(buf) {
		t.Fatal("outline should reuse the provided buffer capacity")
	}
}
