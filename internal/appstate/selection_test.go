package appstate

import (
	"testing"

	"github.com/llehouerou/ripple/internal/models"
)

func activeSelection(t *testing.T, context SelectionContext) *SelectionState {
	t.Helper()
	s := &SelectionState{}
	if _, changed := s.SetMode(&context); !changed {
		t.Fatal("enabling selection mode on a fresh state must transition")
	}
	return s
}

func TestSelection_SetMode(t *testing.T) {
	queue := SelectionContextQueue
	playlist := SelectionContextPlaylist

	t.Run("enable from inactive", func(t *testing.T) {
		s := &SelectionState{}
		active, changed := s.SetMode(&queue)
		if !changed || !active {
			t.Errorf("SetMode(queue) = (%v, %v), want (true, true)", active, changed)
		}
	})

	t.Run("enable same context twice", func(t *testing.T) {
		s := activeSelection(t, queue)
		if _, changed := s.SetMode(&queue); changed {
			t.Error("re-enabling the active context must be a no-op")
		}
	})

	t.Run("switch context", func(t *testing.T) {
		s := activeSelection(t, queue)
		s.UpdateWith(Select{Song: testSong("a", "A")})
		active, changed := s.SetMode(&playlist)
		if !changed || !active {
			t.Errorf("SetMode(playlist) = (%v, %v), want (true, true)", active, changed)
		}
		if s.Count() != 0 {
			t.Error("switching context must empty the buffer")
		}
		if s.Context() != playlist {
			t.Errorf("context = %v, want playlist", s.Context())
		}
	})

	t.Run("cancel", func(t *testing.T) {
		s := activeSelection(t, queue)
		active, changed := s.SetMode(nil)
		if !changed || active {
			t.Errorf("SetMode(nil) = (%v, %v), want (false, true)", active, changed)
		}
	})

	t.Run("cancel while inactive", func(t *testing.T) {
		s := &SelectionState{}
		if _, changed := s.SetMode(nil); changed {
			t.Error("cancelling while inactive must be a no-op")
		}
	})
}

func TestSelection_SelectDeselect(t *testing.T) {
	s := activeSelection(t, SelectionContextQueue)
	a, b := testSong("a", "A"), testSong("b", "B")

	if events := s.UpdateWith(Select{Song: a}); len(events) != 1 {
		t.Fatalf("Select emitted %d events, want 1", len(events))
	}
	if events := s.UpdateWith(Select{Song: a}); len(events) != 0 {
		t.Error("selecting an already selected song must be a no-op")
	}
	s.UpdateWith(Select{Song: b})

	if !s.IsSelected("a") || !s.IsSelected("b") || s.Count() != 2 {
		t.Fatalf("selection state wrong: count=%d", s.Count())
	}

	if events := s.UpdateWith(Deselect{ID: "a"}); len(events) != 1 {
		t.Error("deselecting a selected song must emit")
	}
	if events := s.UpdateWith(Deselect{ID: "a"}); len(events) != 0 {
		t.Error("deselecting an absent song must be a no-op")
	}
	if s.Count() != 1 || s.IsSelected("a") {
		t.Error("deselect did not remove the song")
	}
}

func TestSelection_SelectWhileInactive(t *testing.T) {
	s := &SelectionState{}
	if events := s.UpdateWith(Select{Song: testSong("a", "A")}); len(events) != 0 {
		t.Error("selecting outside selection mode must be ignored")
	}
}

func TestSelection_DrainDeactivates(t *testing.T) {
	s := activeSelection(t, SelectionContextQueue)
	a, b := testSong("a", "A"), testSong("b", "B")
	s.UpdateWith(Select{Song: a})
	s.UpdateWith(Select{Song: b})

	drained := s.Drain()
	if ids := models.SongIDs(drained); len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("Drain() = %v, want [a b] in pick order", ids)
	}
	if s.Active() || s.Count() != 0 {
		t.Error("Drain must empty the buffer and leave selection mode")
	}
}

func TestSelection_PeekDoesNotMutate(t *testing.T) {
	s := activeSelection(t, SelectionContextQueue)
	s.UpdateWith(Select{Song: testSong("a", "A")})

	first := s.Peek()
	second := s.Peek()
	if len(first) != 1 || len(second) != 1 {
		t.Fatal("Peek must return the full buffer every time")
	}
	if !s.Active() || s.Count() != 1 {
		t.Error("Peek must not mutate the selection")
	}
}

func TestSelection_ClearKeepsMode(t *testing.T) {
	s := activeSelection(t, SelectionContextQueue)
	s.UpdateWith(Select{Song: testSong("a", "A")})

	if events := s.UpdateWith(ClearSelection{}); len(events) != 1 {
		t.Error("clearing a non-empty buffer must emit")
	}
	if !s.Active() {
		t.Error("Clear must keep selection mode active")
	}
	if events := s.UpdateWith(ClearSelection{}); len(events) != 0 {
		t.Error("clearing an empty buffer must be a no-op")
	}
}
