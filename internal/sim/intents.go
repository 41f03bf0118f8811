package sim

// Intents is the per-tick control snapshot consumed by the world. The
// steering flags are level-triggered (held keys); Fire counts discrete
// presses since the previous tick, so one press yields exactly one
// projectile no matter how many ticks the key stays down.
type Intents struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      int
}
