package object

import (
	"math/rand"
	"testing"

	"github.com/hanzik/asterfield/internal/geom"
)

func TestExplosionExpiresAfterDuration(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := NewExplosion(rng, geom.Vec2{X: 100, Y: 100})
	bounds := geom.Vec2{X: 800, Y: 600}

	ticks := 0
	for !b.Advance(0.1, bounds) {
		ticks++
		if ticks > 100 {
			t.Fatal("burst never expired")
		}
	}
	if b.Age < ExplosionDuration {
		t.Fatalf("burst expired at age %g, want at least %g", b.Age, ExplosionDuration)
	}
}

func TestExplosionKeepsAnimating(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := NewExplosion(rng, geom.Vec2{X: 100, Y: 100})
	if !b.Fading() {
		t.Fatal("bursts must report Fading so they animate through the freeze")
	}

	b.Advance(0.1, geom.Vec2{X: 800, Y: 600})
	moved := 0
	b.EachParticle(func(pos geom.Vec2, glyph rune) {
		if pos != b.Origin {
			moved++
		}
	})
	if moved == 0 {
		t.Fatal("particles did not move outward")
	}
}

func TestBurstDimsOutNearEndOfLife(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := NewExplosion(rng, geom.Vec2{})
	b.Age = b.Duration * 0.9

	b.EachParticle(func(geom.Vec2, rune) {
		t.Fatal("particles should not draw in the last quarter of life")
	})
}
