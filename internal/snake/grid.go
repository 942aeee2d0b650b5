// Package snake implements the Snake game core: the grid, the snake body,
// food placement and the per-tick session state machine. It performs no I/O
// and is deterministic for a given seed.
package snake

// Display and grid dimensions. The grid is the display area divided by the
// cell size, truncating any remainder.
const (
	DisplayWidth  = 600
	DisplayHeight = 400
	CellSize      = 20

	GridWidth  = DisplayWidth / CellSize
	GridHeight = DisplayHeight / CellSize
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away from c in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether c lies on the grid.
func InBounds(c Cell) bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// Center returns the middle cell of the grid.
func Center() Cell {
	return Cell{X: GridWidth / 2, Y: GridHeight / 2}
}

// CellSet is a set of occupied cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from cells.
func NewCellSet(cells ...Cell) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}
