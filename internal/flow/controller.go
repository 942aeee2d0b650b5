// Package flow sequences the screens of the game: a start screen shown once
// per program run, then sessions alternating with a game-over screen until
// the player quits.
package flow

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Screen identifies which screen is active.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Idle redraw rates of the modal screens, in ticks per second.
const (
	StartTickRate    = 15
	GameOverTickRate = 5
)

// Result is returned by Controller.Update.
type Result struct {
	Quit bool // The player asked to leave the program
}

// Controller drives the screen flow. It owns the current session.
type Controller struct {
	screen     Screen
	rng        *rand.Rand
	logger     *log.Logger
	session    *snake.Session
	last       snake.Snapshot
	finalScore int
	sessions   int
	quit       bool
}

// NewController creates a controller on the start screen. seed drives the
// seeds of every session it starts. A nil logger discards output.
func NewController(seed int64, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		screen: ScreenStart,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Screen returns the active screen.
func (c *Controller) Screen() Screen {
	return c.screen
}

// Snapshot returns the latest snapshot of the current or last session.
func (c *Controller) Snapshot() snake.Snapshot {
	return c.last
}

// FinalScore returns the score of the last finished session.
func (c *Controller) FinalScore() int {
	return c.finalScore
}

// Sessions returns how many sessions have been started.
func (c *Controller) Sessions() int {
	return c.sessions
}

// Quitting reports whether a quit event has been handled.
func (c *Controller) Quitting() bool {
	return c.quit
}

// TickRate returns how many times per second Update should be called for the
// active screen.
func (c *Controller) TickRate() int {
	switch c.screen {
	case ScreenPlaying:
		return c.session.Speed()
	case ScreenGameOver:
		return GameOverTickRate
	default:
		return StartTickRate
	}
}

// Update consumes the events collected since the previous tick.
func (c *Controller) Update(events []core.Event) Result {
	if c.quit {
		return Result{Quit: true}
	}

	switch c.screen {
	case ScreenStart:
		c.updateModal(events, core.EventStartConfirm)
	case ScreenPlaying:
		c.updatePlaying(events)
	case ScreenGameOver:
		c.updateModal(events, core.EventRestart)
	}
	return Result{Quit: c.quit}
}

// updateModal waits on the start or game-over screen for the one event that
// leaves it. Quit anywhere in the batch wins; anything else is ignored.
func (c *Controller) updateModal(events []core.Event, proceed core.Event) {
	if slices.Contains(events, core.EventQuit) {
		c.handleQuit()
		return
	}
	if !slices.Contains(events, proceed) {
		return
	}
	if c.screen == ScreenGameOver {
		c.logger.Info("restart", "previous_score", c.finalScore)
	}
	c.startSession()
}

// updatePlaying ticks the session. The tick that ends it stays on the
// playing screen so the final board is drawn once; the next update moves on
// to the game-over screen.
func (c *Controller) updatePlaying(events []core.Event) {
	if c.session.Over() {
		if slices.Contains(events, core.EventQuit) {
			c.handleQuit()
			return
		}
		c.screen = ScreenGameOver
		return
	}

	res := c.session.Tick(events)
	c.last = res.Snapshot

	if res.Quit {
		c.handleQuit()
		return
	}
	if res.SpedUp {
		c.logger.Debug("speed up", "score", res.Snapshot.Score, "speed", res.Snapshot.Speed)
	}
	if c.session.Over() {
		c.finalScore = res.Snapshot.Score
		c.logger.Info("session over",
			"session", c.sessions,
			"score", res.Snapshot.Score,
			"cause", res.Snapshot.Cause,
			"ticks", res.Snapshot.Tick,
		)
	}
}

func (c *Controller) startSession() {
	seed := c.rng.Int63()
	c.session = snake.NewSession(seed)
	c.last = c.session.Snapshot()
	c.sessions++
	c.screen = ScreenPlaying
	c.logger.Info("session started", "session", c.sessions, "seed", seed)
}

func (c *Controller) handleQuit() {
	c.quit = true
	c.logger.Info("quit", "screen", c.screen, "sessions", c.sessions)
}
