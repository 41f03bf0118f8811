// Package input turns a raw terminal byte stream into per-tick control
// frames. Steering keys use a short hold window so simultaneous keys
// register together; firing is edge-counted, one shot per press.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as "held" after its last byte.
// Terminals deliver key repeats, not key-up events, so held steering keys
// are reconstructed from repeat timing.
const keyHoldDuration = 30 * time.Millisecond

// Frame is one tick's worth of parsed input.
type Frame struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   int // discrete fire presses since the previous Poll
	Quit   bool
	Start  bool // enter or space on menu screens
}

// keyState tracks the last time each held key was seen.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	thrust time.Time
	start  time.Time
}

// Stream delivers input bytes from a reader goroutine and keeps the key
// hold state between polls.
type Stream struct {
	ch    chan byte
	state keyState
}

// Start spawns a goroutine reading bytes from r into the stream. The
// goroutine exits when r fails (connection closed, stdin EOF).
func Start(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Reset clears all held-key state, e.g. when switching screens.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// Poll drains all pending bytes without blocking and returns the frame
// for this tick.
func (s *Stream) Poll() Frame {
	now := time.Now()
	fire := 0

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return Frame{Quit: true}
			}
			if b == '\x1b' {
				// CSI arrow sequences arrive as ESC [ <code>; consume
				// greedily, treating a bare ESC as quit.
				if !s.parseEscape(now) {
					s.state.quit = now
				}
				continue
			}
			fire += s.applyByte(b, now)
		default:
			return Frame{
				Quit:   now.Sub(s.state.quit) < keyHoldDuration,
				Left:   now.Sub(s.state.left) < keyHoldDuration,
				Right:  now.Sub(s.state.right) < keyHoldDuration,
				Thrust: now.Sub(s.state.thrust) < keyHoldDuration,
				Start:  now.Sub(s.state.start) < keyHoldDuration,
				Fire:   fire,
			}
		}
	}
}

// parseEscape consumes a CSI sequence following an ESC byte. Returns
// false if the pending bytes do not form an arrow key sequence.
func (s *Stream) parseEscape(now time.Time) bool {
	select {
	case b, ok := <-s.ch:
		if !ok || b != '[' {
			return false
		}
	default:
		return false
	}
	select {
	case b, ok := <-s.ch:
		if !ok {
			return false
		}
		switch b {
		case 'A': // up
			s.state.thrust = now
		case 'C': // right
			s.state.right = now
		case 'D': // left
			s.state.left = now
		}
		return true
	default:
		return false
	}
}

// applyByte updates key state for a single byte and returns the number
// of fire presses it represents.
func (s *Stream) applyByte(b byte, now time.Time) int {
	switch b {
	case 'q', 'Q', '\x03':
		s.state.quit = now
	case 'a', 'A', 'j', 'J':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'i', 'I':
		s.state.thrust = now
	case ' ':
		s.state.start = now
		return 1
	case '\n', '\r':
		s.state.start = now
	}
	return 0
}
