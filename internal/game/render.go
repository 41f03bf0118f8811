package game

import (
	"fmt"

	"github.com/hanzik/asterfield/internal/draw"
	"github.com/hanzik/asterfield/internal/geom"
	"github.com/hanzik/asterfield/internal/object"
)

// drawFrame renders the current screen and flushes the frame.
func (s *session) drawFrame() error {
	draw.ClearScreen(s.out)

	switch s.screen {
	case screenTitle:
		s.drawTitle()
	case screenPlaying:
		s.drawWorld()
		s.drawHUD()
	case screenOver:
		s.drawGameOver()
	}

	return s.out.Flush()
}

// drawWorld rasterizes every live entity onto the canvas, then overlays
// debris glyphs as text.
func (s *session) drawWorld() {
	s.canvas.Clear()

	var poly []geom.Vec2
	type glyphAt struct {
		col, row int
		glyph    rune
	}
	var glyphs []glyphAt

	craftVisible := s.world.CraftVisible()

	s.world.Each(func(e object.Entity) {
		switch o := e.(type) {
		case *object.Rock:
			poly = o.WorldOutline(poly)
			s.canvas.Polygon(poly, false)
		case *object.Craft:
			if craftVisible {
				poly = o.Outline(poly)
				s.canvas.Polygon(poly, true)
			}
		case *object.Projectile:
			s.canvas.Plot(o.Pos)
		case *object.DebrisBurst:
			o.EachParticle(func(pos geom.Vec2, glyph rune) {
				col, row := s.canvas.CellAt(pos)
				glyphs = append(glyphs, glyphAt{col, row, glyph})
			})
		}
	})

	s.canvas.Render(s.out)

	for _, g := range glyphs {
		draw.WriteAt(s.out, g.col, g.row, string(g.glyph))
	}
}

// drawHUD shows score, level and lives along the top row.
func (s *session) drawHUD() {
	width, _ := s.canvas.Size()
	draw.WriteAt(s.out, 2, 1, fmt.Sprintf("Score: %d", s.world.Score()))
	draw.CenteredAt(s.out, width/2, 1, fmt.Sprintf("Level %d", s.world.Level()))
	lives := fmt.Sprintf("Lives: %d", s.world.Lives())
	draw.WriteAt(s.out, width-len(lives)-1, 1, lives)
}

// drawTitle shows the start screen.
func (s *session) drawTitle() {
	width, height := s.canvas.Size()
	cx, cy := width/2, height/2
	draw.CenteredAt(s.out, cx, cy-2, "A S T E R F I E L D")
	draw.CenteredAt(s.out, cx, cy+1, "Press SPACE to start")
	draw.CenteredAt(s.out, cx, cy+4, "A/D or arrows rotate, W or up thrusts, SPACE fires, Q quits")
}

// drawGameOver shows the terminal screen with the final tally.
func (s *session) drawGameOver() {
	width, height := s.canvas.Size()
	cx, cy := width/2, height/2
	draw.CenteredAt(s.out, cx, cy-2, "GAME OVER")
	draw.CenteredAt(s.out, cx, cy, fmt.Sprintf("Score: %d   Level: %d", s.world.Score(), s.world.Level()))
	draw.CenteredAt(s.out, cx, cy+2, "Press SPACE to play again")
}
