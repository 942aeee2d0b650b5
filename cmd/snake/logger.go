package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// newLogger opens the configured log file. The terminal belongs to the game
// while it runs, so logs never go to stdout or stderr. An empty path, or a
// file that cannot be opened, yields a logger that discards everything.
// The returned close func is always safe to call, more than once too.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	noop := func() {}

	path, err := config.ExpandHome(cfg.Log.File)
	if err != nil {
		return log.New(io.Discard), noop, err
	}
	if path == "" {
		return log.New(io.Discard), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), noop, fmt.Errorf("log: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), noop, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           cfg.LogLevel(),
	})

	closed := false
	return logger, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}
