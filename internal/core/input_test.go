package core

import "testing"

func TestEventQueueOrder(t *testing.T) {
	var q EventQueue
	q.Push(EventMoveUp)
	q.Push(EventNone)
	q.Push(EventTogglePause)
	q.Push(EventMoveLeft)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (EventNone dropped)", q.Len())
	}
	if !q.Contains(EventTogglePause) {
		t.Error("Contains(TogglePause) should be true")
	}

	got := q.Drain()
	want := []Event{EventMoveUp, EventTogglePause, EventMoveLeft}
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Drain()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue should be empty after Drain")
	}
}

func TestEventString(t *testing.T) {
	if EventStartConfirm.String() != "StartConfirm" {
		t.Errorf("String() = %q", EventStartConfirm.String())
	}
	if Event(99).String() != "Unknown" {
		t.Errorf("unknown event should stringify as Unknown")
	}
}
