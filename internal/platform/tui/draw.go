package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Glyphs of the board. Each is cellCols wide.
const (
	glyphSegment = "██"
	glyphFood    = "██"
	glyphGrid    = " ·"
)

// drawStart draws the title, the start button and the quit hint.
func drawStart(dst *core.Screen, l Layout, keys KeyMap, hovered bool) {
	dst.DrawTextCentered(l.Height/3, "Snake Game", core.ColorTitle)

	color := core.ColorButton
	if hovered {
		color = core.ColorButtonHover
		dst.DrawRect(l.StartButton, ' ', color)
	}
	dst.DrawBox(l.StartButton, color)
	dst.DrawTextIn(l.StartButton, "Start Game", color)

	dst.DrawTextCentered(l.Height-2, fmt.Sprintf("Press %s to Quit", PrimaryKey(keys.Quit)), core.ColorMuted)
}

// drawSession draws the HUD, the board, the food and the snake, plus the
// pause overlay when paused.
func drawSession(dst *core.Screen, l Layout, snap snake.Snapshot, keys KeyMap, showGrid bool) {
	dst.DrawText(l.HUD.X, l.HUD.Y, fmt.Sprintf("Score: %d", snap.Score), core.ColorText)
	speed := fmt.Sprintf("Speed: %d", snap.Speed)
	dst.DrawText(l.HUD.Right()-len(speed), l.HUD.Y, speed, core.ColorMuted)

	dst.DrawBox(l.Board, core.ColorBorder)

	if showGrid {
		for y := 0; y < snake.GridHeight; y++ {
			for x := 0; x < snake.GridWidth; x++ {
				drawCell(dst, l, snake.Cell{X: x, Y: y}, glyphGrid, core.ColorGrid)
			}
		}
	}

	drawCell(dst, l, snap.Food, glyphFood, core.ColorFood)

	// Body first so the head stays visible on a self collision.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := core.ColorSnakeBody
		if i == 0 {
			color = core.ColorSnakeHead
		}
		drawCell(dst, l, snap.Snake[i], glyphSegment, color)
	}

	if snap.Phase == snake.PhasePaused {
		drawOverlay(dst, l.Board, "PAUSED", fmt.Sprintf("Press %s to Resume", PrimaryKey(keys.Pause)))
	}
}

// drawCell draws a glyph on a grid cell. Cells off the grid are skipped.
func drawCell(dst *core.Screen, l Layout, c snake.Cell, glyph string, color core.Color) {
	if !snake.InBounds(c) {
		return
	}
	x, y := l.CellOrigin(c)
	dst.DrawText(x, y, glyph, color)
}

// drawGameOver draws the final score and the restart hint.
func drawGameOver(dst *core.Screen, l Layout, score int, keys KeyMap) {
	dst.DrawTextCentered(l.Height/3, "Game Over!", core.ColorAlert)
	dst.DrawTextCentered(l.Height/2, fmt.Sprintf("Final Score: %d", score), core.ColorText)
	dst.DrawTextCentered(l.Height*2/3+1,
		fmt.Sprintf("Press %s to Restart, %s to Quit", PrimaryKey(keys.Restart), PrimaryKey(keys.Quit)),
		core.ColorText)
}

// drawTooSmall replaces the board when the terminal cannot fit it.
func drawTooSmall(dst *core.Screen) {
	drawOverlay(dst, dst.Bounds(), "Window too small",
		fmt.Sprintf("Resize to at least %dx%d", MinTermWidth, MinTermHeight))
}

// drawOverlay draws a boxed two-line message centered in area.
func drawOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	cx, cy := area.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	dst.DrawText(box.X+(w-len(line1))/2, box.Y+1, line1, core.ColorTitle)
	dst.DrawText(box.X+(w-len(line2))/2, box.Y+3, line2, core.ColorText)
}
