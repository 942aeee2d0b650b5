package snake

// InitialLength is the number of cells of a freshly spawned snake.
const InitialLength = 3

// Body is the snake entity: its cells, head first, and its heading.
type Body struct {
	cells   []Cell
	heading Direction
}

// Spawn creates a snake with its head at center and the rest of the body
// extending to the left, heading right.
func Spawn(center Cell) *Body {
	cells := make([]Cell, InitialLength)
	for i := range cells {
		cells[i] = Cell{X: center.X - i, Y: center.Y}
	}
	return &Body{cells: cells, heading: DirRight}
}

// Head returns the head cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Heading returns the current direction of travel.
func (b *Body) Heading() Direction {
	return b.heading
}

// Turn applies a requested heading, ignoring a reversal.
func (b *Body) Turn(requested Direction) {
	b.heading = ProposeDirection(b.heading, requested)
}

// Cells returns a copy of the cells, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Occupied returns the set of cells covered by the body.
func (b *Body) Occupied() CellSet {
	return NewCellSet(b.cells...)
}

// Step returns the cell the head moves to in direction d. The result may be
// off the grid; callers check bounds.
func (b *Body) Step(d Direction) Cell {
	return b.Head().Add(d)
}

// Push inserts newHead in front of the body, growing it by one.
func (b *Body) Push(newHead Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = newHead
}

// TrimTail removes the last cell. A single-cell body is left untouched.
func (b *Body) TrimTail() {
	if len(b.cells) > 1 {
		b.cells = b.cells[:len(b.cells)-1]
	}
}

// Advance pushes newHead and, unless the snake grew, drops the tail.
func (b *Body) Advance(newHead Cell, grew bool) {
	b.Push(newHead)
	if !grew {
		b.TrimTail()
	}
}

// CollidesWithSelf reports whether the head shares a cell with any other
// segment.
func (b *Body) CollidesWithSelf() bool {
	head := b.cells[0]
	for _, seg := range b.cells[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
