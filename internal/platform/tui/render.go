package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer turns a Screen buffer into styled terminal output.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds a style per color role from the theme.
func NewRenderer(theme config.ThemeConfig) *Renderer {
	r := &Renderer{styles: make(map[core.Color]lipgloss.Style)}
	for _, role := range core.Colors() {
		style := lipgloss.NewStyle()
		if c := theme.Color(role); c != "" {
			style = style.Foreground(lipgloss.Color(c))
		}
		switch role {
		case core.ColorTitle, core.ColorAlert, core.ColorButtonHover:
			style = style.Bold(true)
		}
		r.styles[role] = style
	}
	return r
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := r.styles[startColor]
			if !ok {
				style = r.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
