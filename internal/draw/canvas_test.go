package draw

import (
	"strings"
	"testing"

	"github.com/hanzik/asterfield/internal/geom"
)

func TestCanvasPlotAndRender(t *testing.T) {
	c := NewCanvas(10, 10, 100, 100)
	c.Plot(geom.Vec2{X: 50, Y: 50})

	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if out == "" {
		t.Fatal("render produced no output for a plotted pixel")
	}
	if !strings.ContainsAny(out, string(BlockFull)+string(BlockUpperHalf)+string(BlockLowerHalf)) {
		t.Fatalf("render output %q contains no block glyph", out)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 10, 100, 100)
	c.Plot(geom.Vec2{X: 50, Y: 50})
	c.Clear()

	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.Len() != 0 {
		t.Fatalf("render after Clear produced %q, want empty", sb.String())
	}
}

func TestCanvasHalfBlocks(t *testing.T) {
	// Two terminal rows, four pixel rows. A pixel in the top half of a
	// cell must render the upper half block, the bottom half the lower.
	c := NewCanvas(4, 2, 4, 4)
	c.setPixel(0, 0) // top half of row 0
	c.setPixel(1, 1) // bottom half of row 0
	c.setPixel(2, 0)
	c.setPixel(2, 1) // full cell

	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []rune{BlockUpperHalf, BlockLowerHalf, BlockFull} {
		if !strings.ContainsRune(out, want) {
			t.Errorf("output %q missing %c", out, want)
		}
	}
}

func TestCanvasLineConnectsEndpoints(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	c.Line(geom.Vec2{X: 2, Y: 10}, geom.Vec2{X: 18, Y: 10})

	// Every column along the span must have a lit pixel.
	for x := 2; x <= 18; x++ {
		lit := false
		for y := 0; y < c.pixHeight; y++ {
			if c.pixels[y*c.termWidth+x] {
				lit = true
				break
			}
		}
		if !lit {
			t.Fatalf("column %d has no lit pixel along the line", x)
		}
	}
}

func TestCanvasPolygonFill(t *testing.T) {
	c := NewCanvas(20, 20, 20, 20)
	sq := []geom.Vec2{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}
	c.Polygon(sq, true)

	// A point well inside the square must be lit.
	if !c.pixels[20*c.termWidth+10] {
		t.Fatal("interior pixel not filled")
	}
	// A point well outside must stay dark.
	if c.pixels[2*c.termWidth+2] {
		t.Fatal("exterior pixel filled")
	}
}

func TestCanvasResizeRescales(t *testing.T) {
	c := NewCanvas(10, 10, 100, 100)
	c.Resize(20, 20)
	if w, h := c.Size(); w != 20 || h != 20 {
		t.Fatalf("size = %dx%d, want 20x20", w, h)
	}

	c.Plot(geom.Vec2{X: 50, Y: 50})
	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.Len() == 0 {
		t.Fatal("plot after resize produced no output")
	}
}

func TestCellAtIsOneBased(t *testing.T) {
	c := NewCanvas(10, 10, 100, 100)
	col, row := c.CellAt(geom.Vec2{X: 0, Y: 0})
	if col != 1 || row != 1 {
		t.Fatalf("CellAt(origin) = (%d, %d), want (1, 1)", col, row)
	}

	c.SetOffset(5, 3)
	col, row = c.CellAt(geom.Vec2{X: 0, Y: 0})
	if col != 6 || row != 4 {
		t.Fatalf("CellAt with offset = (%d, %d), want (6, 4)", col, row)
	}
}
