package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Source names returned by Load when no file is found.
const (
	SourceEmbedded = "embedded default"
	SourceBuiltin  = "built-in default"
)

// Load loads the configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// It returns the config, a description of where it came from and, only for an
// explicitly given path, any read or parse error. Values missing from a file
// keep their defaults.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, customPath, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that every action has at least one key, that no key is
// bound twice, that theme colors are ANSI numbers or #rrggbb and that the
// log level is known.
func (c Config) Validate() error {
	var errs []error

	for _, role := range core.Colors() {
		if color := c.Theme.Color(role); !validColor(color) {
			errs = append(errs, fmt.Errorf("theme.%s: invalid color %q", role, color))
		}
	}

	seen := make(map[string]string)
	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: no keys bound", b.action))
		}
		for _, k := range b.keys {
			if prev, dup := seen[k]; dup {
				errs = append(errs, fmt.Errorf("keys.%s: %q already bound to %s", b.action, k, prev))
				continue
			}
			seen[k] = b.action
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// validColor accepts an ANSI color number, a #rrggbb hex color or "" for the
// terminal default.
func validColor(s string) bool {
	if s == "" {
		return true
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return false
		}
		_, err := strconv.ParseUint(s[1:], 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

type binding struct {
	action string
	keys   []string
}

func (k KeysConfig) bindings() []binding {
	return []binding{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"pause", k.Pause},
		{"quit", k.Quit},
		{"start", k.Start},
		{"restart", k.Restart},
		{"help", k.Help},
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
