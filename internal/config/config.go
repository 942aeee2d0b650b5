// Package config provides YAML-based configuration for the snake terminal
// front end: theme colors, key bindings, grid display and logging.
// Gameplay constants are not configurable and live in package snake.
package config

import "github.com/vovakirdan/tui-snake/internal/core"

// Config is the complete configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Theme   ThemeConfig   `yaml:"theme"`
	Keys    KeysConfig    `yaml:"keys"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls optional board decorations.
type DisplayConfig struct {
	ShowGrid bool `yaml:"show_grid"` // Draw a dot in every empty cell
}

// ThemeConfig maps color roles to terminal colors (ANSI numbers or #rrggbb).
type ThemeConfig struct {
	SnakeHead   string `yaml:"snake_head"`
	SnakeBody   string `yaml:"snake_body"`
	Food        string `yaml:"food"`
	Grid        string `yaml:"grid"`
	Border      string `yaml:"border"`
	Title       string `yaml:"title"`
	Text        string `yaml:"text"`
	Muted       string `yaml:"muted"`
	Alert       string `yaml:"alert"`
	Button      string `yaml:"button"`
	ButtonHover string `yaml:"button_hover"`
}

// Color returns the configured color for a role, or "" for the terminal default.
func (t ThemeConfig) Color(role core.Color) string {
	switch role {
	case core.ColorSnakeHead:
		return t.SnakeHead
	case core.ColorSnakeBody:
		return t.SnakeBody
	case core.ColorFood:
		return t.Food
	case core.ColorGrid:
		return t.Grid
	case core.ColorBorder:
		return t.Border
	case core.ColorTitle:
		return t.Title
	case core.ColorText:
		return t.Text
	case core.ColorMuted:
		return t.Muted
	case core.ColorAlert:
		return t.Alert
	case core.ColorButton:
		return t.Button
	case core.ColorButtonHover:
		return t.ButtonHover
	default:
		return ""
	}
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key names
// ("up", "w", "ctrl+c", " " for space).
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Quit    []string `yaml:"quit"`
	Start   []string `yaml:"start"`
	Restart []string `yaml:"restart"`
	Help    []string `yaml:"help"`
}

// LogConfig controls the log file. An empty File discards log output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
