// Package draw renders world-space shapes to a terminal using half-block
// characters for double vertical resolution, scaling logical coordinates
// to whatever size the terminal happens to be.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/hanzik/asterfield/internal/geom"
)

// Half-block characters used for rendering.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a monochrome pixel buffer with 2x vertical resolution.
// Logical (world) coordinates are scaled to terminal pixels on every
// plotting call, so game code never deals with terminal geometry.
type Canvas struct {
	termWidth  int
	termHeight int
	pixHeight  int // termHeight * 2
	pixels     []bool

	logicalW float64
	logicalH float64
	scaleX   float64
	scaleY   float64

	offsetCol int
	offsetRow int

	out   strings.Builder // reused frame output buffer
	xsBuf []float64       // reused scanline intersection buffer
}

// NewCanvas creates a canvas mapping a logical space of the given size
// onto termWidth x termHeight terminal cells.
func NewCanvas(termWidth, termHeight int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{logicalW: logicalW, logicalH: logicalH}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.pixHeight = termHeight * 2
		c.pixels = make([]bool, c.pixHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalW
	c.scaleY = float64(c.pixHeight) / c.logicalH
}

// SetOffset positions the canvas within a larger terminal (0-based cell
// offsets), used to center the play field.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Size returns the terminal cell dimensions of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.termWidth, c.termHeight
}

// Clear wipes the pixel buffer for the next frame.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.pixHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Plot sets the pixel nearest to the logical position p.
func (c *Canvas) Plot(p geom.Vec2) {
	c.setPixel(int(math.Round(p.X*c.scaleX)), int(math.Round(p.Y*c.scaleY)))
}

// Line draws a line between two logical points using Bresenham stepping
// in pixel space.
func (c *Canvas) Line(a, b geom.Vec2) {
	x1 := int(math.Round(a.X * c.scaleX))
	y1 := int(math.Round(a.Y * c.scaleY))
	x2 := int(math.Round(b.X * c.scaleX))
	y2 := int(math.Round(b.Y * c.scaleY))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed outline through the logical points, optionally
// filling the interior with an even-odd scanline pass.
func (c *Canvas) Polygon(points []geom.Vec2, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.Line(points[i], points[(i+1)%n])
	}
}

// fill rasterizes the polygon interior scanline by scanline.
func (c *Canvas) fill(points []geom.Vec2) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		y := p.Y * c.scaleY
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	n := len(points)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.xsBuf[:0]
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			y1 := p1.Y * c.scaleY
			y2 := p2.Y * c.scaleY
			if (y1 <= scanY && y2 > scanY) || (y2 <= scanY && y1 > scanY) {
				t := (scanY - y1) / (y2 - y1)
				xs = append(xs, (p1.X+t*(p2.X-p1.X))*c.scaleX)
			}
		}
		c.xsBuf = xs
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// CellAt converts a logical position to 1-based terminal coordinates,
// for placing text glyphs over canvas content.
func (c *Canvas) CellAt(p geom.Vec2) (col, row int) {
	px := int(math.Round(p.X * c.scaleX))
	py := int(math.Round(p.Y * c.scaleY))
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

// Render writes the frame as ANSI positioning sequences plus half-block
// glyphs, skipping empty cells.
func (c *Canvas) Render(w io.Writer) error {
	c.out.Reset()
	c.out.Grow(c.termWidth * c.termHeight / 2)

	for row := 0; row < c.termHeight; row++ {
		topOff := (row * 2) * c.termWidth
		botOff := (row*2 + 1) * c.termWidth
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOff+col]
			bottom := c.pixels[botOff+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.out, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	_, err := io.WriteString(w, c.out.String())
	return err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
