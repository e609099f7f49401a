package history

import (
	"fmt"
	"slices"
	"testing"

	"github.com/dshills/kiln/internal/engine/core"
)

func insertAt(x int) core.Event {
	return core.Insert{At: core.Loc{X: x}, Cell: "x"}
}

func TestUndoReturnsReversedEvents(t *testing.T) {
	s := New(0)
	evs := []core.Event{insertAt(0), insertAt(1), insertAt(2)}
	for _, ev := range evs {
		s.Exe(ev)
	}
	s.Commit()

	got := s.Undo()
	want := []core.Event{insertAt(2), insertAt(1), insertAt(0)}
	if !slices.Equal(got, want) {
		t.Errorf("Undo() = %v, want %v", got, want)
	}
}

func TestRedoReturnsForwardEvents(t *testing.T) {
	s := New(0)
	evs := []core.Event{insertAt(0), insertAt(1)}
	for _, ev := range evs {
		s.Exe(ev)
	}
	s.Commit()
	s.Undo()

	if got := s.Redo(); !slices.Equal(got, evs) {
		t.Errorf("Redo() = %v, want %v", got, evs)
	}
	// The patch is back on the done side and can be undone again.
	if !s.CanUndo() {
		t.Error("CanUndo() = false after Redo")
	}
}

func TestUndoCommitsOpenPatch(t *testing.T) {
	s := New(0)
	s.Exe(insertAt(0))
	// No explicit Commit; Undo must close the open patch itself.
	if got := s.Undo(); len(got) != 1 {
		t.Errorf("Undo() returned %d events, want 1", len(got))
	}
}

func TestEmptyStack(t *testing.T) {
	s := New(0)
	if got := s.Undo(); got != nil {
		t.Errorf("Undo() on empty stack = %v, want nil", got)
	}
	if got := s.Redo(); got != nil {
		t.Errorf("Redo() on empty stack = %v, want nil", got)
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("empty stack reports undo or redo available")
	}
}

func TestCommitEmptyPatchIsNoOp(t *testing.T) {
	s := New(0)
	s.Commit()
	s.Commit()
	if got := s.UndoCount(); got != 0 {
		t.Errorf("UndoCount() = %d, want 0", got)
	}
}

func TestExeInvalidatesRedo(t *testing.T) {
	s := New(0)
	s.Exe(insertAt(0))
	s.Commit()
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("CanRedo() = false after Undo")
	}

	// A fresh edit forks history; the undone branch is gone.
	s.Exe(insertAt(9))
	if s.CanRedo() {
		t.Error("CanRedo() = true after new edit")
	}
	if got := s.Redo(); got != nil {
		t.Errorf("Redo() = %v, want nil", got)
	}
}

func TestCanUndoCountsOpenPatch(t *testing.T) {
	s := New(0)
	if s.CanUndo() {
		t.Fatal("CanUndo() = true on fresh stack")
	}
	s.Exe(insertAt(0))
	if !s.CanUndo() {
		t.Error("CanUndo() = false with open patch")
	}
	if got := s.UndoCount(); got != 0 {
		t.Errorf("UndoCount() = %d before commit, want 0", got)
	}
}

func TestPatchGrouping(t *testing.T) {
	s := New(0)
	s.Exe(insertAt(0))
	s.Exe(insertAt(1))
	s.Commit()
	s.Exe(insertAt(2))
	s.Commit()

	if got := s.UndoCount(); got != 2 {
		t.Fatalf("UndoCount() = %d, want 2", got)
	}
	if got := s.Undo(); len(got) != 1 {
		t.Errorf("first Undo() returned %d events, want 1", len(got))
	}
	if got := s.Undo(); len(got) != 2 {
		t.Errorf("second Undo() returned %d events, want 2", len(got))
	}
	if got := s.RedoCount(); got != 2 {
		t.Errorf("RedoCount() = %d, want 2", got)
	}
}

func TestMaxPatchesTrimsOldest(t *testing.T) {
	s := New(2)
	for i := 0; i < 5; i++ {
		s.Exe(insertAt(i))
		s.Commit()
	}
	if got := s.UndoCount(); got != 2 {
		t.Fatalf("UndoCount() = %d, want 2", got)
	}
	// The survivors are the two most recent patches.
	if got := s.Undo(); !slices.Equal(got, []core.Event{insertAt(4)}) {
		t.Errorf("first Undo() = %v, want [%v]", got, insertAt(4))
	}
	if got := s.Undo(); !slices.Equal(got, []core.Event{insertAt(3)}) {
		t.Errorf("second Undo() = %v, want [%v]", got, insertAt(3))
	}
	if s.CanUndo() {
		t.Error("CanUndo() = true past the retention limit")
	}
}

func TestPatchIDsAssigned(t *testing.T) {
	s := New(0)
	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		s.Exe(insertAt(i))
		s.Commit()
	}
	for s.CanUndo() {
		s.Undo()
	}
	for _, p := range s.undone {
		id := fmt.Sprint(p.ID)
		if seen[id] {
			t.Errorf("duplicate patch ID %s", id)
		}
		seen[id] = true
	}
	if len(seen) != 3 {
		t.Errorf("saw %d patch IDs, want 3", len(seen))
	}
}
