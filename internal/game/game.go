// Package game runs one interactive session: it polls input, drives the
// simulation at a fixed tick rate, and renders each frame to a terminal.
// One session owns one world; the SSH front end runs a session per
// connection.
package game

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/hanzik/asterfield/internal/config"
	"github.com/hanzik/asterfield/internal/draw"
	"github.com/hanzik/asterfield/internal/input"
	"github.com/hanzik/asterfield/internal/sim"
)

// screen is the session's presentation state, separate from the
// simulation's life state machine.
type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenOver
)

// Options configures a session.
type Options struct {
	// Config supplies world bounds and game tuning; nil uses defaults.
	Config *config.Config
	// TermSize reports terminal dimensions; nil reads stdout.
	TermSize draw.TermSizeFunc
	// Listener receives simulation events (the audio sink); nil for none.
	Listener sim.Listener
}

// session bundles the state of one running game.
type session struct {
	cfg      config.Config
	stream   *input.Stream
	canvas   *draw.Canvas
	out      *bufio.Writer
	termSize draw.TermSizeFunc
	listener sim.Listener

	screen screen
	world  *sim.World
}

// Run drives a session until the player quits or the input source
// closes. It owns the terminal for its duration.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.StdoutSize
	}

	tw, th, err := termSize()
	if err != nil {
		return fmt.Errorf("game: terminal size: %w", err)
	}

	s := &session{
		cfg:      cfg,
		stream:   input.Start(r),
		canvas:   draw.NewCanvas(tw, th, cfg.World.Width, cfg.World.Height),
		out:      bufio.NewWriterSize(w, 32*1024),
		termSize: termSize,
		listener: opts.Listener,
		screen:   screenTitle,
	}

	draw.HideCursor(s.out)
	defer func() {
		draw.ShowCursor(s.out)
		draw.ClearScreen(s.out)
		s.out.Flush()
	}()

	tickTime := time.Second / time.Duration(cfg.Game.TickRate)
	dt := tickTime.Seconds()

	for {
		frameStart := time.Now()

		frame := s.stream.Poll()
		if frame.Quit {
			return nil
		}

		if tw, th, err := s.termSize(); err == nil {
			s.canvas.Resize(tw, th)
		}

		switch s.screen {
		case screenTitle, screenOver:
			if frame.Start {
				if err := s.startWorld(); err != nil {
					return err
				}
			}
		case screenPlaying:
			s.world.Tick(dt, sim.Intents{
				TurnLeft:  frame.Left,
				TurnRight: frame.Right,
				Thrust:    frame.Thrust,
				Fire:      frame.Fire,
			})
			if s.world.GameOver() {
				s.screen = screenOver
				s.stream.Reset()
			}
		}

		if err := s.drawFrame(); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < tickTime {
			time.Sleep(tickTime - elapsed)
		}
	}
}

// startWorld creates a fresh world and enters play.
func (s *session) startWorld() error {
	world, err := sim.New(s.cfg.World.Width, s.cfg.World.Height, sim.Options{
		Seed:     s.cfg.Game.Seed,
		Lives:    s.cfg.Game.Lives,
		Listener: s.listener,
	})
	if err != nil {
		return fmt.Errorf("game: new world: %w", err)
	}
	s.world = world
	s.screen = screenPlaying
	s.stream.Reset()
	return nil
}
