package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			ShowGrid: false,
		},
		Theme: ThemeConfig{
			SnakeHead:   "28",
			SnakeBody:   "10",
			Food:        "9",
			Grid:        "240",
			Border:      "15",
			Title:       "10",
			Text:        "15",
			Muted:       "245",
			Alert:       "9",
			Button:      "28",
			ButtonHover: "34",
		},
		Keys: KeysConfig{
			Up:      []string{"up", "w"},
			Down:    []string{"down", "s"},
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Pause:   []string{"p", "esc"},
			Quit:    []string{"q", "ctrl+c"},
			Start:   []string{"enter", " "},
			Restart: []string{"r"},
			Help:    []string{"?"},
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
