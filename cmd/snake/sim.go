package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/flow"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagMoves string
	flagTrace bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session from scripted moves",
	Long: `Run a session without a terminal UI. Every character of --moves is
one tick:

  U D L R  - Turn up, down, left or right, then move
  P        - Toggle pause
  .        - Move without input

The session stops early when the snake dies. Food placement follows
--seed exactly as in the first session of "snake --seed", so the same
seed and moves always give the same result.

Examples:
  snake sim --moves "RRRR....DDDD" --seed 7
  snake sim --moves "..............." --trace`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted moves, one character per tick")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the state after every tick")
}

func runSim(cmd *cobra.Command, args []string) {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed(flagSeed)
	fmt.Printf("seed: %d\n", seed)
	simulate(os.Stdout, seed, moves, flagTrace)
}

// parseMoves turns a move script into one event per tick. core.EventNone
// marks a tick without input.
func parseMoves(script string) ([]core.Event, error) {
	moves := make([]core.Event, 0, len(script))
	for i, r := range strings.ToUpper(script) {
		switch r {
		case 'U':
			moves = append(moves, core.EventMoveUp)
		case 'D':
			moves = append(moves, core.EventMoveDown)
		case 'L':
			moves = append(moves, core.EventMoveLeft)
		case 'R':
			moves = append(moves, core.EventMoveRight)
		case 'P':
			moves = append(moves, core.EventTogglePause)
		case '.':
			moves = append(moves, core.EventNone)
		case ' ', '\t', '\n':
			// Allow scripts split into readable groups
		default:
			return nil, fmt.Errorf("sim: unknown move %q at position %d", r, i)
		}
	}
	return moves, nil
}

// simulate plays moves on the first session of a controller seeded like the
// interactive game, so the same --seed places the same food, and writes the
// outcome to w.
func simulate(w io.Writer, seed int64, moves []core.Event, trace bool) snake.Snapshot {
	ctrl := flow.NewController(seed, nil)
	ctrl.Update([]core.Event{core.EventStartConfirm})
	snap := ctrl.Snapshot()

	for _, ev := range moves {
		var events []core.Event
		if ev != core.EventNone {
			events = []core.Event{ev}
		}
		ctrl.Update(events)
		snap = ctrl.Snapshot()

		if trace {
			writeSnapshot(w, snap)
		}
		if snap.Phase == snake.PhaseOver {
			break
		}
	}

	if !trace {
		writeSnapshot(w, snap)
	}
	if snap.Phase == snake.PhaseOver {
		fmt.Fprintf(w, "game over: %s, final score %d\n", snap.Cause, snap.Score)
	}
	return snap
}

func writeSnapshot(w io.Writer, snap snake.Snapshot) {
	head := snap.Head()
	fmt.Fprintf(w, "tick %-4d head (%2d,%2d) %-5s len %-3d food (%2d,%2d) score %-3d speed %-2d %s\n",
		snap.Tick, head.X, head.Y, snap.Heading, len(snap.Snake),
		snap.Food.X, snap.Food.Y, snap.Score, snap.Speed, snap.Phase)
}
