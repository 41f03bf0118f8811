package audio

import (
	"io"
	"os/exec"
	"sync/atomic"

	"github.com/hanzik/asterfield/internal/object"
	"github.com/hanzik/asterfield/internal/sim"
)

// backend describes a command-line playback tool accepting raw PCM on
// stdin at 44.1kHz s16le stereo.
type backend struct {
	name string
	args []string
}

// Candidate backends, most common first.
var backends = []backend{
	{"pw-cat", []string{"--playback", "--rate", "44100", "--channels", "2", "--format", "s16", "-"}},
	{"paplay", []string{"--raw", "--rate=44100", "--channels=2", "--format=s16le"}},
	{"aplay", []string{"-q", "-t", "raw", "-f", "S16_LE", "-r", "44100", "-c", "2"}},
	{"play", []string{"-q", "-t", "raw", "-r", "44100", "-e", "signed", "-b", "16", "-c", "2", "-"}},
}

// detectBackend returns the first playback tool found on PATH.
func detectBackend() (backend, bool) {
	for _, b := range backends {
		if _, err := exec.LookPath(b.name); err == nil {
			return b, true
		}
	}
	return backend{}, false
}

// Player is the audio sink for a session. It implements sim.Listener:
// the simulation hands it fire-and-forget event notifications and the
// player queues the matching pre-rendered effect for playback. With
// audio disabled or no backend available every call is a cheap no-op.
//
// silent is shared between the game-loop goroutine and the writer
// goroutine, hence the atomic; started is touched only by the owning
// goroutine.
type Player struct {
	queue   chan Effect
	clips   [effectCount][]byte
	silent  atomic.Bool
	started bool
	stdin   io.WriteCloser
	cmd     *exec.Cmd
}

// NewPlayer creates a player, detecting a playback backend and
// pre-rendering the effect clips at the given volume.
func NewPlayer(enabled bool, volume float64) *Player {
	p := &Player{queue: make(chan Effect, 16)}

	b, found := detectBackend()
	if !enabled || !found {
		p.silent.Store(true)
		return p
	}

	cmd := exec.Command(b.name, b.args...)
	stdin, err := cmd.StdinPipe()
	if err != nil || cmd.Start() != nil {
		p.silent.Store(true)
		return p
	}
	p.cmd = cmd
	p.stdin = stdin
	p.started = true

	p.clips[EffectFire] = renderPCM(fireSound(volume))
	p.clips[EffectRockBreak] = renderPCM(rockBreakSound(volume))
	p.clips[EffectCraftLost] = renderPCM(craftLostSound(volume))

	go p.run()
	return p
}

// run writes queued clips to the backend until the queue closes. A dead
// backend silences the player but keeps draining, so Close can still
// shut the queue down cleanly.
func (p *Player) run() {
	for effect := range p.queue {
		if p.silent.Load() {
			continue
		}
		if _, err := p.stdin.Write(p.clips[effect]); err != nil {
			p.silent.Store(true)
		}
	}
	p.stdin.Close()
	p.cmd.Wait()
}

// play queues an effect without ever blocking the simulation.
func (p *Player) play(e Effect) {
	if p.silent.Load() {
		return
	}
	select {
	case p.queue <- e:
	default:
	}
}

// Close stops playback and releases the backend process. Safe to call
// more than once and on a player that never found a backend.
func (p *Player) Close() {
	p.silent.Store(true)
	if !p.started {
		return
	}
	p.started = false
	close(p.queue)
}

// ProjectileFired implements sim.Listener.
func (p *Player) ProjectileFired() { p.play(EffectFire) }

// RockDestroyed implements sim.Listener.
func (p *Player) RockDestroyed(object.Tier) { p.play(EffectRockBreak) }

// CraftDestroyed implements sim.Listener.
func (p *Player) CraftDestroyed() { p.play(EffectCraftLost) }

var _ sim.Listener = (*Player)(nil)
