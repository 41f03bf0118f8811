package physics

import (
	"math"

	"github.com/hanzik/asterfield/internal/geom"
)

// Grid is a uniform spatial hash for broad-phase collision detection in a
// wrapping world. Items are inserted by position and index each tick, then
// nearby candidates are found with a 3x3 neighborhood lookup.
//
// The cell size must be at least the largest interaction distance between
// any two colliding items, or pairs near cell borders can be missed.
type Grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
}

// NewGrid creates a grid covering a world of the given bounds.
func NewGrid(bounds geom.Vec2, cellSize float64) *Grid {
	cols := int(math.Ceil(bounds.X / cellSize))
	rows := int(math.Ceil(bounds.Y / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

// Reset empties every cell, keeping the backing arrays for reuse.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item index at the given world position.
func (g *Grid) Insert(p geom.Vec2, index int) {
	col, row := g.cellAt(p)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], index)
}

// Nearby calls fn for every item index in the 3x3 neighborhood around p,
// wrapping at the world edges. Iteration stops early if fn returns true.
func (g *Grid) Nearby(p geom.Vec2, fn func(index int) bool) {
	col, row := g.cellAt(p)
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 {
			r += g.rows
		} else if r >= g.rows {
			r -= g.rows
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 {
				c += g.cols
			} else if c >= g.cols {
				c -= g.cols
			}
			for _, idx := range g.cells[r*g.cols+c] {
				if fn(idx) {
					return
				}
			}
		}
	}
}

// cellAt converts a world position to clamped cell coordinates.
func (g *Grid) cellAt(p geom.Vec2) (col, row int) {
	col = int(p.X / g.cellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	row = int(p.Y / g.cellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
