package history

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/kiln/internal/engine/core"
)

// DefaultMaxPatches bounds the committed-patch stack when no limit is
// configured.
const DefaultMaxPatches = 1000

// Patch is an ordered group of atomic events treated as one undo/redo
// unit. Events are stored in original application order.
type Patch struct {
	ID     uuid.UUID
	Events []core.Event
}

// EditStack journals executed events into caller-delimited patches and
// replays them for undo and redo. All methods are safe for concurrent
// use, though the engine serializes access per document anyway.
type EditStack struct {
	mu sync.Mutex

	// The currently-accumulating, not-yet-committed events.
	patch []core.Event

	// Committed patches, most recent last.
	done []*Patch

	// Undone patches available for redo, most recent last.
	undone []*Patch

	maxPatches int
}

// New creates an edit stack keeping at most maxPatches committed
// patches. Non-positive values fall back to DefaultMaxPatches.
func New(maxPatches int) *EditStack {
	if maxPatches <= 0 {
		maxPatches = DefaultMaxPatches
	}
	return &EditStack{maxPatches: maxPatches}
}

// Exe records an executed event into the open patch. Any pending redo
// history is invalidated.
func (s *EditStack) Exe(ev core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patch = append(s.patch, ev)
	s.undone = nil
}

// Commit closes the open patch and pushes it onto the done stack as a
// single undo unit. Committing an empty patch is a no-op.
func (s *EditStack) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked()
}

// commitLocked closes the open patch without acquiring the lock.
func (s *EditStack) commitLocked() {
	if len(s.patch) == 0 {
		return
	}
	s.done = append(s.done, &Patch{ID: uuid.New(), Events: s.patch})
	s.patch = nil
	if len(s.done) > s.maxPatches {
		excess := len(s.done) - s.maxPatches
		s.done = s.done[excess:]
	}
}

// Undo commits any open patch, pops the most recent committed patch,
// and returns its events in reverse order for the caller to replay
// through each event's inverse. The patch moves to the redo side.
// Returns nil when there is nothing to undo; that is not an error.
func (s *EditStack) Undo() []core.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked()
	if len(s.done) == 0 {
		return nil
	}
	p := s.done[len(s.done)-1]
	s.done = s.done[:len(s.done)-1]
	s.undone = append(s.undone, p)
	return reversed(p.Events)
}

// Redo pops the most recently undone patch and returns its events in
// original order for forward replay. The patch moves back to the done
// stack. Returns nil when there is nothing to redo; not an error.
func (s *EditStack) Redo() []core.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.undone) == 0 {
		return nil
	}
	p := s.undone[len(s.undone)-1]
	s.undone = s.undone[:len(s.undone)-1]
	s.done = append(s.done, p)
	out := make([]core.Event, len(p.Events))
	copy(out, p.Events)
	return out
}

// CanUndo returns true if an undo step is available, counting the open
// patch.
func (s *EditStack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.patch) > 0 || len(s.done) > 0
}

// CanRedo returns true if a redo step is available.
func (s *EditStack) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undone) > 0
}

// UndoCount returns the number of committed patches available to undo.
func (s *EditStack) UndoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.done)
}

// RedoCount returns the number of patches available to redo.
func (s *EditStack) RedoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undone)
}

func reversed(evs []core.Event) []core.Event {
	out := make([]core.Event, len(evs))
	for i, ev := range evs {
		out[len(evs)-1-i] = ev
	}
	return out
}
