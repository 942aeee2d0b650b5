package snake

// Phase is the coarse state of a session.
type Phase string

const (
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseOver    Phase = "over"
)

// Cause describes why a session ended.
type Cause string

const (
	CauseNone          Cause = ""
	CauseWallCollision Cause = "wall-collision"
	CauseSelfCollision Cause = "self-collision"
	CauseBoardFull     Cause = "board-full" // No free cell left for food
)

// Snapshot is the read-only view of a session handed to the presentation
// layer once per tick.
type Snapshot struct {
	Tick    uint64
	Snake   []Cell // Head first
	Heading Direction
	Food    Cell
	Score   int
	Speed   int
	Phase   Phase
	Cause   Cause
}

// Head returns the head cell of the snake, or the zero cell for an empty
// snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Snake:   s.body.Cells(),
		Heading: s.body.Heading(),
		Food:    s.food,
		Score:   s.score,
		Speed:   s.speed,
		Phase:   s.phase,
		Cause:   s.cause,
	}
}
