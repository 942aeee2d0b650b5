package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Session is one game from spawn to game over. It owns the snake, the food,
// the score and the speed; nothing else mutates them.
type Session struct {
	rng    *rand.Rand
	placer *FoodPlacer
	body   *Body
	food   Cell
	score  int
	speed  int
	phase  Phase
	cause  Cause
	tick   uint64
}

// TickResult is returned by Session.Tick.
type TickResult struct {
	Snapshot Snapshot
	Quit     bool // A quit event was seen; the caller should terminate the program
	Ate      bool // Food was eaten this tick
	SpedUp   bool // The speed ramp fired this tick
}

// NewSession starts a running session with a fresh snake at the grid center.
func NewSession(seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		rng:    rng,
		placer: NewFoodPlacer(rng),
		body:   Spawn(Center()),
		speed:  BaseSpeed,
		phase:  PhaseRunning,
	}
	s.food = s.placer.Spawn(s.body.Occupied())
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the number of food items eaten.
func (s *Session) Score() int {
	return s.score
}

// Speed returns the current tick rate in ticks per second.
func (s *Session) Speed() int {
	return s.speed
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.phase == PhaseOver
}

// Tick consumes the events collected since the previous tick, in arrival
// order, then advances the snake by one cell unless the session is paused or
// over. A quit event stops processing immediately.
func (s *Session) Tick(events []core.Event) TickResult {
	var res TickResult

	for _, ev := range events {
		if ev == core.EventQuit {
			res.Quit = true
			res.Snapshot = s.Snapshot()
			return res
		}
		s.handleEvent(ev)
	}

	if s.phase == PhaseRunning {
		s.tick++
		res.Ate, res.SpedUp = s.move()
	}

	res.Snapshot = s.Snapshot()
	return res
}

func (s *Session) handleEvent(ev core.Event) {
	switch ev {
	case core.EventTogglePause:
		switch s.phase {
		case PhaseRunning:
			s.phase = PhasePaused
		case PhasePaused:
			s.phase = PhaseRunning
		}
	case core.EventMoveUp, core.EventMoveDown, core.EventMoveLeft, core.EventMoveRight:
		if s.phase == PhaseRunning {
			s.body.Turn(eventDirection(ev))
		}
	}
}

// move performs one movement step. The new head is inserted before any
// collision check, so both checks see the body at its grown length; the tail
// is dropped afterwards unless food was eaten.
func (s *Session) move() (ate, spedUp bool) {
	newHead := s.body.Step(s.body.Heading())
	s.body.Push(newHead)

	hitWall := !InBounds(newHead)
	hitSelf := s.body.CollidesWithSelf()

	full := false
	if newHead == s.food {
		ate = true
		s.score++
		if s.body.Len() < GridWidth*GridHeight {
			s.food = s.placer.Spawn(s.body.Occupied())
		} else {
			full = true
		}
		if next := Ramp(s.score, s.speed); next != s.speed {
			s.speed = next
			spedUp = true
		}
	} else {
		s.body.TrimTail()
	}

	switch {
	case hitWall:
		s.phase = PhaseOver
		s.cause = CauseWallCollision
	case hitSelf:
		s.phase = PhaseOver
		s.cause = CauseSelfCollision
	case full:
		s.phase = PhaseOver
		s.cause = CauseBoardFull
	}
	return ate, spedUp
}

func eventDirection(ev core.Event) Direction {
	switch ev {
	case core.EventMoveUp:
		return DirUp
	case core.EventMoveDown:
		return DirDown
	case core.EventMoveLeft:
		return DirLeft
	default:
		return DirRight
	}
}
