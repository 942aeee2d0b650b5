package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Each grid cell is drawn two columns wide so cells look roughly square.
const cellCols = 2

// Board size including its border, and the minimum screen that fits the
// board plus the HUD row above it.
const (
	boardW    = snake.GridWidth*cellCols + 2
	boardH    = snake.GridHeight + 2
	minWidth  = boardW
	minHeight = boardH + 1
)

// MinTermWidth and MinTermHeight are the smallest terminal that fits the
// board, the HUD and the help line.
const (
	MinTermWidth  = minWidth
	MinTermHeight = minHeight + 1
)

// Start button size.
const (
	buttonW = 20
	buttonH = 3
)

// Layout positions the screen elements for a given screen size.
type Layout struct {
	Width, Height int
	HUD           core.Rect
	Board         core.Rect
	StartButton   core.Rect
}

// NewLayout centers the board and the start button on a width x height screen.
func NewLayout(width, height int) Layout {
	top := core.Clamp((height-minHeight)/2, 0, height)
	left := core.Clamp((width-boardW)/2, 0, width)

	return Layout{
		Width:       width,
		Height:      height,
		HUD:         core.NewRect(left, top, boardW, 1),
		Board:       core.NewRect(left, top+1, boardW, boardH),
		StartButton: core.NewRect((width-buttonW)/2, height/2+1, buttonW, buttonH),
	}
}

// TooSmall reports whether the board does not fit.
func (l Layout) TooSmall() bool {
	return l.Width < minWidth || l.Height < minHeight
}

// CellOrigin returns the screen position of the left column of grid cell c.
func (l Layout) CellOrigin(c snake.Cell) (int, int) {
	return l.Board.X + 1 + c.X*cellCols, l.Board.Y + 1 + c.Y
}
