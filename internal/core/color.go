package core

// Color is a semantic color role for a screen cell.
// The platform maps each role to a concrete terminal color from the theme.
type Color uint8

// Color roles used by the snake screens.
const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorGrid
	ColorBorder
	ColorTitle
	ColorText
	ColorMuted
	ColorAlert
	ColorButton
	ColorButtonHover
)

// String returns the role name as used in theme configuration.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSnakeHead:
		return "snake_head"
	case ColorSnakeBody:
		return "snake_body"
	case ColorFood:
		return "food"
	case ColorGrid:
		return "grid"
	case ColorBorder:
		return "border"
	case ColorTitle:
		return "title"
	case ColorText:
		return "text"
	case ColorMuted:
		return "muted"
	case ColorAlert:
		return "alert"
	case ColorButton:
		return "button"
	case ColorButtonHover:
		return "button_hover"
	default:
		return "unknown"
	}
}

// Colors returns every color role in declaration order.
func Colors() []Color {
	return []Color{
		ColorDefault, ColorSnakeHead, ColorSnakeBody, ColorFood, ColorGrid, ColorBorder,
		ColorTitle, ColorText, ColorMuted, ColorAlert, ColorButton, ColorButtonHover,
	}
}
