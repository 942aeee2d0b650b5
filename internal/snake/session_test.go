package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// newTestSession returns a running session with the given body and food.
func newTestSession(cells []Cell, heading Direction, food Cell) *Session {
	s := NewSession(1)
	s.body = &Body{cells: append([]Cell(nil), cells...), heading: heading}
	s.food = food
	return s
}

func TestNewSession(t *testing.T) {
	s := NewSession(12345)

	snap := s.Snapshot()
	if snap.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected running", snap.Phase)
	}
	if snap.Score != 0 || snap.Speed != BaseSpeed {
		t.Errorf("Score/Speed = %d/%d, expected 0/%d", snap.Score, snap.Speed, BaseSpeed)
	}
	if len(snap.Snake) != InitialLength || snap.Heading != DirRight {
		t.Errorf("snake = %v heading %v, expected 3 cells heading right", snap.Snake, snap.Heading)
	}
	if NewCellSet(snap.Snake...).Has(snap.Food) {
		t.Errorf("food %v spawned on the snake", snap.Food)
	}
}

func TestEatFood(t *testing.T) {
	s := newTestSession([]Cell{{15, 10}, {14, 10}, {13, 10}}, DirRight, Cell{16, 10})

	res := s.Tick(nil)

	if !res.Ate {
		t.Error("Ate should be set")
	}
	snap := res.Snapshot
	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
	if len(snap.Snake) != 4 {
		t.Errorf("snake length = %d, expected 4", len(snap.Snake))
	}
	if snap.Head() != (Cell{16, 10}) {
		t.Errorf("head = %v, expected (16,10)", snap.Head())
	}
	if snap.Food == (Cell{16, 10}) || NewCellSet(snap.Snake...).Has(snap.Food) {
		t.Errorf("new food %v should be elsewhere and off the snake", snap.Food)
	}
	if snap.Speed != BaseSpeed || res.SpedUp {
		t.Errorf("Speed = %d, expected unchanged %d", snap.Speed, BaseSpeed)
	}
	if snap.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected running", snap.Phase)
	}
}

func TestMoveWithoutFoodKeepsLength(t *testing.T) {
	s := newTestSession([]Cell{{15, 10}, {14, 10}, {13, 10}}, DirRight, Cell{0, 0})

	snap := s.Tick(nil).Snapshot
	want := []Cell{{16, 10}, {15, 10}, {14, 10}}
	if len(snap.Snake) != len(want) {
		t.Fatalf("snake = %v, expected %v", snap.Snake, want)
	}
	for i := range want {
		if snap.Snake[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, snap.Snake[i], want[i])
		}
	}
}

func TestWallCollision(t *testing.T) {
	s := newTestSession([]Cell{{GridWidth - 1, 4}, {GridWidth - 2, 4}, {GridWidth - 3, 4}}, DirRight, Cell{0, 0})
	s.score = 3

	snap := s.Tick(nil).Snapshot

	if snap.Phase != PhaseOver {
		t.Fatalf("Phase = %v, expected over", snap.Phase)
	}
	if snap.Cause != CauseWallCollision {
		t.Errorf("Cause = %q, expected wall collision", snap.Cause)
	}
	if snap.Score != 3 {
		t.Errorf("Score = %d, expected score before the fatal step (3)", snap.Score)
	}
}

func TestSelfCollisionAfterTurns(t *testing.T) {
	s := newTestSession([]Cell{{5, 5}, {4, 5}, {3, 5}, {2, 5}, {1, 5}}, DirRight, Cell{20, 15})

	steps := []core.Event{core.EventMoveUp, core.EventMoveLeft, core.EventMoveDown}
	for i, ev := range steps {
		snap := s.Tick([]core.Event{ev}).Snapshot
		if i < len(steps)-1 && snap.Phase != PhaseRunning {
			t.Fatalf("step %d: phase = %v, expected running", i, snap.Phase)
		}
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseOver {
		t.Fatalf("Phase = %v, expected over after turning into the body", snap.Phase)
	}
	if snap.Cause != CauseSelfCollision {
		t.Errorf("Cause = %q, expected self collision", snap.Cause)
	}
}

func TestCollisionWithVacatingTail(t *testing.T) {
	// Head at (5,5) came up from (5,6); turning left enters the tail cell.
	s := newTestSession([]Cell{{5, 5}, {5, 6}, {4, 6}, {4, 5}}, DirUp, Cell{20, 15})

	snap := s.Tick([]core.Event{core.EventMoveLeft}).Snapshot
	if snap.Phase != PhaseOver {
		t.Errorf("Phase = %v, moving onto the tail cell ends the session", snap.Phase)
	}
}

func TestBoardFullEndsSession(t *testing.T) {
	// Walk the grid row by row, alternating direction. The snake covers all
	// but the last cell of the walk and the food sits on that cell.
	var path []Cell
	for y := 0; y < GridHeight; y++ {
		for i := 0; i < GridWidth; i++ {
			x := i
			if y%2 == 1 {
				x = GridWidth - 1 - i
			}
			path = append(path, Cell{x, y})
		}
	}
	last := path[len(path)-1]
	cells := make([]Cell, 0, len(path)-1)
	for i := len(path) - 2; i >= 0; i-- {
		cells = append(cells, path[i])
	}

	s := newTestSession(cells, DirLeft, last)
	res := s.Tick(nil)

	if !res.Ate {
		t.Error("Ate should be set")
	}
	snap := res.Snapshot
	if snap.Phase != PhaseOver || snap.Cause != CauseBoardFull {
		t.Fatalf("Phase/Cause = %v/%q, expected over/%q", snap.Phase, snap.Cause, CauseBoardFull)
	}
	if len(snap.Snake) != GridWidth*GridHeight {
		t.Errorf("snake length = %d, expected %d", len(snap.Snake), GridWidth*GridHeight)
	}
	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
}

func TestReversalIgnored(t *testing.T) {
	s := newTestSession([]Cell{{10, 10}, {9, 10}, {8, 10}}, DirRight, Cell{0, 0})

	snap := s.Tick([]core.Event{core.EventMoveLeft}).Snapshot
	if snap.Heading != DirRight || snap.Head() != (Cell{11, 10}) {
		t.Errorf("reversal should be ignored: heading %v head %v", snap.Heading, snap.Head())
	}
	if snap.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected running", snap.Phase)
	}
}

func TestEventsAppliedInOrder(t *testing.T) {
	s := newTestSession([]Cell{{10, 10}, {9, 10}, {8, 10}}, DirRight, Cell{0, 0})

	// Up is accepted first, so Left is no longer a reversal.
	snap := s.Tick([]core.Event{core.EventMoveUp, core.EventMoveLeft}).Snapshot
	if snap.Heading != DirLeft {
		t.Errorf("Heading = %v, expected left", snap.Heading)
	}
}

func TestPauseToggle(t *testing.T) {
	s := newTestSession([]Cell{{10, 10}, {9, 10}, {8, 10}}, DirRight, Cell{0, 0})
	want := []Phase{PhasePaused, PhaseRunning, PhasePaused, PhaseRunning, PhasePaused}

	for i, phase := range want {
		s.Tick([]core.Event{core.EventTogglePause})
		if s.Phase() != phase {
			t.Fatalf("toggle %d: phase = %v, expected %v", i+1, s.Phase(), phase)
		}
	}
}

func TestPausedSessionDoesNotMove(t *testing.T) {
	s := newTestSession([]Cell{{10, 10}, {9, 10}, {8, 10}}, DirRight, Cell{0, 0})
	s.Tick([]core.Event{core.EventTogglePause})
	before := s.Snapshot()

	snap := s.Tick([]core.Event{core.EventMoveUp}).Snapshot
	if snap.Head() != before.Head() {
		t.Errorf("paused snake moved from %v to %v", before.Head(), snap.Head())
	}
	if snap.Heading != DirRight {
		t.Errorf("direction input while paused should be ignored, heading = %v", snap.Heading)
	}
	if snap.Tick != before.Tick {
		t.Errorf("tick advanced while paused: %d -> %d", before.Tick, snap.Tick)
	}
}

func TestOverIsTerminal(t *testing.T) {
	s := newTestSession([]Cell{{GridWidth - 1, 4}, {GridWidth - 2, 4}, {GridWidth - 3, 4}}, DirRight, Cell{0, 0})
	s.Tick(nil)
	if !s.Over() {
		t.Fatal("session should be over")
	}
	final := s.Snapshot()

	for i := 0; i < 5; i++ {
		snap := s.Tick([]core.Event{core.EventTogglePause, core.EventMoveUp}).Snapshot
		if snap.Phase != PhaseOver {
			t.Fatalf("toggle %d moved phase away from over: %v", i, snap.Phase)
		}
		if snap.Head() != final.Head() || snap.Score != final.Score {
			t.Fatalf("over session mutated: %+v", snap)
		}
	}
}

func TestQuitStopsProcessing(t *testing.T) {
	s := newTestSession([]Cell{{10, 10}, {9, 10}, {8, 10}}, DirRight, Cell{0, 0})

	res := s.Tick([]core.Event{core.EventTogglePause, core.EventQuit, core.EventTogglePause})
	if !res.Quit {
		t.Fatal("Quit should be reported")
	}
	if s.Phase() != PhasePaused {
		t.Errorf("events after quit should be dropped, phase = %v", s.Phase())
	}
	if res.Snapshot.Head() != (Cell{10, 10}) {
		t.Errorf("snake should not move on a quit tick, head = %v", res.Snapshot.Head())
	}
}

func TestUnknownEventsIgnored(t *testing.T) {
	s := newTestSession([]Cell{{10, 10}, {9, 10}, {8, 10}}, DirRight, Cell{0, 0})

	snap := s.Tick([]core.Event{core.Event(42), core.EventRestart, core.EventStartConfirm}).Snapshot
	if snap.Phase != PhaseRunning || snap.Head() != (Cell{11, 10}) {
		t.Errorf("unexpected state after unknown events: %+v", snap)
	}
}

func TestSpeedRampInSession(t *testing.T) {
	s := newTestSession([]Cell{{10, 10}, {9, 10}, {8, 10}}, DirRight, Cell{11, 10})
	s.score = RampEvery - 1

	res := s.Tick(nil)
	if !res.SpedUp {
		t.Error("SpedUp should be set when the score reaches a multiple of 5")
	}
	if res.Snapshot.Speed != BaseSpeed+1 {
		t.Errorf("Speed = %d, expected %d", res.Snapshot.Speed, BaseSpeed+1)
	}

	// Moving without eating never changes the speed.
	s.food = Cell{0, 0}
	if res := s.Tick(nil); res.SpedUp || res.Snapshot.Speed != BaseSpeed+1 {
		t.Errorf("speed changed without food: %d", res.Snapshot.Speed)
	}
}

func TestRamp(t *testing.T) {
	tests := []struct {
		score, speed, want int
	}{
		{0, BaseSpeed, BaseSpeed},
		{1, BaseSpeed, BaseSpeed},
		{4, BaseSpeed, BaseSpeed},
		{5, BaseSpeed, BaseSpeed + 1},
		{10, BaseSpeed + 1, BaseSpeed + 2},
		{95, MaxSpeed - 1, MaxSpeed},
		{100, MaxSpeed, MaxSpeed},
	}

	for _, tc := range tests {
		if got := Ramp(tc.score, tc.speed); got != tc.want {
			t.Errorf("Ramp(%d, %d) = %d, expected %d", tc.score, tc.speed, got, tc.want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := NewSession(777)
	g2 := NewSession(777)

	inputs := map[int]core.Event{3: core.EventMoveDown, 6: core.EventMoveLeft, 9: core.EventMoveUp}
	for i := 0; i < 12; i++ {
		var events []core.Event
		if ev, ok := inputs[i]; ok {
			events = []core.Event{ev}
		}
		s1 := g1.Tick(events).Snapshot
		s2 := g2.Tick(events).Snapshot

		if s1.Head() != s2.Head() || s1.Food != s2.Food || s1.Score != s2.Score || s1.Phase != s2.Phase {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, s1, s2)
		}
	}
}
