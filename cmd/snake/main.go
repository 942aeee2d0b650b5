// snake is a classic single-player Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play the game
//	snake config             - Print the effective configuration as YAML
//	snake sim --moves RRU..  - Run a headless session from scripted moves
//
// Global flags:
//
//	--config <path>     - Path to a config YAML (default: ~/.snake/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <level> - Override the configured log level
//	--log-file <path>   - Override the configured log file ("" discards logs)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/flow"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Guide the snake around the board, eat food to grow and score,
and avoid the walls and your own tail. The snake speeds up every
5 points.

Controls:
  Arrows/WASD  - Turn
  P/Esc        - Pause
  Enter/Space  - Start (or click the Start Game button)
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snake
  snake --seed 42
  snake --config ./my-snake.yaml --log-level debug
  snake sim --moves "RRRRDDDD" --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source := mustLoadConfig(cmd)

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	// Get terminal size early so the first frame is laid out correctly
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = resolveSeed(flagSeed)

	if rc.ScreenW < tui.MinTermWidth || rc.ScreenH < tui.MinTermHeight {
		logger.Warn("terminal smaller than the board",
			"width", rc.ScreenW, "height", rc.ScreenH,
			"min_width", tui.MinTermWidth, "min_height", tui.MinTermHeight)
	}

	ctrl := flow.NewController(rc.Seed, logger)
	opts := tui.Options{Width: rc.ScreenW, Height: rc.ScreenH, Logger: logger}

	if err := tui.Run(ctrl, cfg, opts); err != nil {
		logger.Error("terminal program failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// mustLoadConfig loads the configuration and applies the logging flags.
// A config file given explicitly that cannot be loaded is fatal.
func mustLoadConfig(cmd *cobra.Command) (config.Config, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, source
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
