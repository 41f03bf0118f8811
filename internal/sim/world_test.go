package sim

import (
	"math"
	"testing"

	"github.com/hanzik/asterfield/internal/geom"
	"github.com/hanzik/asterfield/internal/object"
)

const dt = 1.0 / 60

// recorder counts listener notifications for assertions.
type recorder struct {
	fired     int
	destroyed map[object.Tier]int
	craftLost int
}

func newRecorder() *recorder {
	return &recorder{destroyed: make(map[object.Tier]int)}
}

func (r *recorder) ProjectileFired() { r.fired++ }

func (r *recorder) RockDestroyed(tier object.Tier) { r.destroyed[tier]++ }

func (r *recorder) CraftDestroyed() { r.craftLost++ }

func mustWorld(t *testing.T, width, height float64, opts Options) *World {
	t.Helper()
	w, err := New(width, height, opts)
	if err != nil {
		t.Fatalf("New(%g, %g): %v", width, height, err)
	}
	return w
}

func firstRock(t *testing.T, w *World) *object.Rock {
	t.Helper()
	var rock *object.Rock
	w.Each(func(e object.Entity) {
		if r, ok := e.(*object.Rock); ok && rock == nil {
			rock = r
		}
	})
	if rock == nil {
		t.Fatal("no rock in world")
	}
	return rock
}

func TestNewWorldValidation(t *testing.T) {
	if _, err := New(0, 600, Options{}); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := New(800, -1, Options{}); err == nil {
		t.Error("negative height should fail")
	}
	if _, err := New(800, 600, Options{Lives: -1}); err == nil {
		t.Error("negative lives should fail")
	}
}

func TestNewWorldInitialState(t *testing.T) {
	w := mustWorld(t, 800, 600, Options{Seed: 1})

	if w.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", w.Phase())
	}
	if w.Level() != 1 {
		t.Errorf("level = %d, want 1", w.Level())
	}
	if w.Lives() != InitialLives {
		t.Errorf("lives = %d, want %d", w.Lives(), InitialLives)
	}
	if w.RockCount() != 1 {
		t.Errorf("rock count = %d, want 1 for level 1", w.RockCount())
	}

	craft, ok := w.Craft()
	if !ok {
		t.Fatal("new world has no craft")
	}
	if craft.Pos != w.Center() {
		t.Errorf("craft at %+v, want center %+v", craft.Pos, w.Center())
	}
	if craft.Invuln <= 0 {
		t.Error("fresh craft should have spawn grace")
	}
}

func TestWaveRingPlacement(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantRadius    float64
	}{
		{"standard", 800, 600, 210}, // 0.35 * 600
		{"tiny clamps up", 150, 150, 80},
		{"huge clamps down", 2000, 1500, 400},
	}
	for _, tt := range tests {
		w := mustWorld(t, tt.width, tt.height, Options{Seed: 3})
		rock := firstRock(t, w)

		radial := rock.Pos.Sub(w.Center())
		if d := radial.Len(); math.Abs(d-tt.wantRadius) > 1e-9 {
			t.Errorf("%s: rock at ring distance %g, want %g", tt.name, d, tt.wantRadius)
		}
		if rock.Tier != object.TierLarge {
			t.Errorf("%s: wave rock tier = %v, want large", tt.name, rock.Tier)
		}
		// Tangential launch: velocity perpendicular to the radius vector.
		if dot := radial.Dot(rock.Vel); math.Abs(dot) > 1e-6 {
			t.Errorf("%s: velocity not tangential, radial dot = %g", tt.name, dot)
		}
		if speed := rock.Vel.Len(); speed < waveMinSpeed-1e-9 || speed > waveMaxSpeed+1e-9 {
			t.Errorf("%s: wave speed %g outside [%g, %g]", tt.name, speed, waveMinSpeed, waveMaxSpeed)
		}
	}
}

func TestStartLevelSpawnsLevelCountRocks(t *testing.T) {
	w := mustWorld(t, 800, 600, Options{Seed: 4})
	w.level = 4
	w.startLevel()
	w.store.Flush()

	// 1 from the initial wave plus 4 from the level-4 wave, all on the
	// same ring.
	if w.RockCount() != 5 {
		t.Fatalf("rock count = %d, want 5", w.RockCount())
	}
	radius := w.ringRadius()
	w.Each(func(e object.Entity) {
		if r, ok := e.(*object.Rock); ok {
			if d := r.Pos.Sub(w.Center()).Len(); math.Abs(d-radius) > 1e-9 {
				t.Errorf("rock at distance %g from center, want ring radius %g", d, radius)
			}
		}
	})
}

func TestFireSpawnsOneProjectilePerPress(t *testing.T) {
	rec := newRecorder()
	w := mustWorld(t, 800, 600, Options{Seed: 1, Listener: rec})

	w.Tick(dt, Intents{Fire: 3})

	if got := w.EntityCount(object.KindProjectile); got != 3 {
		t.Errorf("projectile count = %d, want 3", got)
	}
	if rec.fired != 3 {
		t.Errorf("fired events = %d, want 3", rec.fired)
	}

	w.Tick(dt, Intents{})
	if rec.fired != 3 {
		t.Error("tick without fire intent spawned projectiles")
	}
}

func TestProjectileLeavesWorldWithoutWrapping(t *testing.T) {
	// Craft at center pointing up; the level-1 rock orbits the ring far
	// to the side, so the shot flies straight out the top.
	w := mustWorld(t, 800, 600, Options{Seed: 1})
	w.Tick(dt, Intents{Fire: 1})

	for i := 0; i < 60; i++ {
		w.Tick(dt, Intents{})
		var maxY float64
		w.Each(func(e object.Entity) {
			if p, ok := e.(*object.Projectile); ok && p.Pos.Y > maxY {
				maxY = p.Pos.Y
			}
		})
		if maxY > 300 {
			t.Fatalf("upward projectile observed at Y=%g; it wrapped", maxY)
		}
	}
	if got := w.EntityCount(object.KindProjectile); got != 0 {
		t.Fatalf("projectile count after leaving bounds = %d, want 0", got)
	}
	if got := w.RockCount(); got != 1 {
		t.Fatalf("rock count = %d, want 1 (shot should miss)", got)
	}
}

func TestRockCountMirrorsStore(t *testing.T) {
	w := mustWorld(t, 800, 600, Options{Seed: 9})

	for i := 0; i < 400; i++ {
		in := Intents{Thrust: i%3 == 0}
		if i%5 == 0 {
			in.Fire = 1
		}
		w.Tick(dt, in)

		if w.RockCount() < 0 {
			t.Fatal("rock count went negative")
		}
		if w.RockCount() != w.EntityCount(object.KindRock) {
			t.Fatalf("tick %d: rock count %d != store count %d",
				i, w.RockCount(), w.EntityCount(object.KindRock))
		}
	}
}

func TestResize(t *testing.T) {
	w := mustWorld(t, 800, 600, Options{Seed: 1})

	if err := w.Resize(1000, 900); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if w.Bounds() != (geom.Vec2{X: 1000, Y: 900}) {
		t.Errorf("bounds = %+v, want 1000x900", w.Bounds())
	}
	craft, ok := w.Craft()
	if !ok {
		t.Fatal("craft lost on resize")
	}
	if craft.Pos != (geom.Vec2{X: 500, Y: 450}) {
		t.Errorf("craft at %+v, want new center", craft.Pos)
	}

	if err := w.Resize(0, 900); err == nil {
		t.Error("zero width resize should fail")
	}
}

func TestCraftVisibleBlink(t *testing.T) {
	w := mustWorld(t, 800, 600, Options{Seed: 1})
	craft, _ := w.Craft()

	craft.Invuln = 0
	if !w.CraftVisible() {
		t.Error("craft without grace should always be visible")
	}
	craft.Invuln = 0.25 // window 2, even
	if !w.CraftVisible() {
		t.Error("even blink window should be visible")
	}
	craft.Invuln = 0.15 // window 1, odd
	if w.CraftVisible() {
		t.Error("odd blink window should be hidden")
	}
}

func TestSameSeedIsDeterministic(t *testing.T) {
	a := mustWorld(t, 800, 600, Options{Seed: 77})
	b := mustWorld(t, 800, 600, Options{Seed: 77})

	for i := 0; i < 300; i++ {
		in := Intents{Thrust: i%4 != 0, TurnRight: i%7 == 0}
		if i%6 == 0 {
			in.Fire = 1
		}
		a.Tick(dt, in)
		b.Tick(dt, in)
	}

	if a.Score() != b.Score() || a.Level() != b.Level() || a.RockCount() != b.RockCount() {
		t.Fatalf("worlds diverged: score %d/%d level %d/%d rocks %d/%d",
			a.Score(), b.Score(), a.Level(), b.Level(), a.RockCount(), b.RockCount())
	}
	ca, okA := a.Craft()
	cb, okB := b.Craft()
	if okA != okB {
		t.Fatal("craft presence diverged")
	}
	if okA && ca.Pos != cb.Pos {
		t.Fatalf("craft positions diverged: %+v vs %+v", ca.Pos, cb.Pos)
	}
}
