// Package grid provides the tile grid model and its obstacle set.
// It is UI-agnostic: cells are plain (column, row) pairs with no notion of
// screen coordinates or tile size.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("grid: width and height must be positive")

	// ErrOutOfBounds is returned when a cell lies outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Cell identifies a single grid square by column (X) and row (Y), 0-indexed.
// Cells are comparable and used directly as map keys.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Less orders cells lexicographically by column, then row.
func (c Cell) Less(other Cell) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// offsets4 lists orthogonal moves in left, right, up, down order.
// Search tie-breaking depends on this order.
var offsets4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a fixed-size rectangular grid of W columns and H rows.
type Grid struct {
	W int
	H int
}

// New creates a grid with the given dimensions.
func New(w, h int) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return Grid{W: w, H: h}, nil
}

// InBounds returns true if the cell is within the grid boundaries.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Neighbors4 returns the in-bounds orthogonal neighbors of c,
// in left, right, up, down order.
func (g Grid) Neighbors4(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range offsets4 {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.W * g.H
}

// Index converts a cell to its row-major key.
func (g Grid) Index(c Cell) int {
	return c.Y*g.W + c.X
}

// Cells returns every cell of the grid in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cells = append(cells, C(x, y))
		}
	}
	return cells
}
