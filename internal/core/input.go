package core

// Event represents a discrete input intent, abstracted from physical key presses.
// The platform translates keys and mouse clicks into events; the game consumes them.
type Event int

const (
	EventNone         Event = iota
	EventMoveUp             // Up arrow, W
	EventMoveDown           // Down arrow, S
	EventMoveLeft           // Left arrow, A
	EventMoveRight          // Right arrow, D
	EventTogglePause        // P
	EventQuit               // Q, Ctrl+C
	EventStartConfirm       // Enter, Space, click on the start button (start screen only)
	EventRestart            // R (game-over screen only)
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventMoveUp:
		return "MoveUp"
	case EventMoveDown:
		return "MoveDown"
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventTogglePause:
		return "TogglePause"
	case EventQuit:
		return "Quit"
	case EventStartConfirm:
		return "StartConfirm"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// EventQueue collects events between two ticks, preserving arrival order.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue. EventNone is dropped.
func (q *EventQueue) Push(e Event) {
	if e == EventNone {
		return
	}
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Contains reports whether e is among the pending events.
func (q *EventQueue) Contains(e Event) bool {
	for _, pending := range q.events {
		if pending == e {
			return true
		}
	}
	return false
}
