package engine

import (
	"sync"

	"github.com/dshills/kiln/internal/engine/core"
	"github.com/dshills/kiln/internal/engine/document"
	"github.com/dshills/kiln/internal/engine/history"
)

// Engine owns a document and its edit stack and keeps them consistent:
// every mutating event flows through Execute, so the journal always
// reflects what the document actually did.
type Engine struct {
	mu      sync.Mutex
	doc     *document.Document
	stack   *history.EditStack
	policy  CommitPolicy
	maxUndo int
}

// New creates an engine with an empty document sized to the given
// viewport.
func New(size core.Size, opts ...Option) *Engine {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Engine{
		doc:     document.New(size, s.docOptions()...),
		stack:   history.New(s.maxUndo),
		policy:  s.policy,
		maxUndo: s.maxUndo,
	}
}

// Document returns the underlying document for read access and cursor
// movement. Mutations should go through Execute so they are journaled.
func (e *Engine) Document() *document.Document {
	return e.doc
}

// Open loads a file into the document. Undo history from previous
// content is discarded, since its events no longer address this text.
func (e *Engine) Open(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.doc.Open(path); err != nil {
		return err
	}
	e.stack = history.New(e.maxUndo)
	return nil
}

// Save writes the document to its associated path.
func (e *Engine) Save() error {
	return e.doc.Save()
}

// SaveAs writes the document to path without changing its associated
// path or modified flag.
func (e *Engine) SaveAs(path string) error {
	return e.doc.SaveAs(path)
}

// Execute applies an event to the document and records it. Events that
// refused to mutate (backspace at column zero, splice on the first
// row) are not recorded. When the commit policy fires for the event,
// the open patch is committed as one undo unit.
func (e *Engine) Execute(ev core.Event) (core.Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ev = e.enrich(ev)
	st, err := e.doc.Execute(ev)
	if err != nil {
		return st, err
	}
	if !mutated(ev, st) {
		return st, nil
	}
	e.stack.Exe(ev)
	if e.policy != nil && e.policy(ev) {
		e.stack.Commit()
	}
	return st, nil
}

// Commit closes the open patch so the next undo stops here.
func (e *Engine) Commit() {
	e.stack.Commit()
}

// Undo reverts the most recent patch by replaying each of its events
// through its inverse, most recent first. A no-op when there is
// nothing to undo.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ev := range e.stack.Undo() {
		if _, err := e.doc.Execute(ev.Inverse()); err != nil {
			return err
		}
	}
	return nil
}

// Redo re-applies the most recently undone patch in forward order. A
// no-op when there is nothing to redo.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ev := range e.stack.Redo() {
		if _, err := e.doc.Execute(ev); err != nil {
			return err
		}
	}
	return nil
}

// CanUndo returns true if an undo step is available.
func (e *Engine) CanUndo() bool {
	return e.stack.CanUndo()
}

// CanRedo returns true if a redo step is available.
func (e *Engine) CanRedo() bool {
	return e.stack.CanRedo()
}

// enrich fills in the payloads an event's inverse needs but clients
// need not supply: the removed cell, the removed row's text, and the
// upper row length a splice merges at.
func (e *Engine) enrich(ev core.Event) core.Event {
	switch v := ev.(type) {
	case core.Remove:
		if v.Cell == "" && v.At.X > 0 {
			if r, err := e.doc.Row(v.At.Y); err == nil {
				v.Cell = r.Cell(v.At.X - 1)
			}
		}
		return v
	case core.RemoveRow:
		if v.Text == "" {
			if r, err := e.doc.Row(v.Row); err == nil {
				v.Text = r.RenderRaw()
			}
		}
		return v
	case core.SpliceUp:
		if v.At.Y > 0 {
			if r, err := e.doc.Row(v.At.Y - 1); err == nil {
				v.Boundary = r.Len()
			}
		}
		return v
	default:
		return ev
	}
}

// mutated reports whether the event changed the document, given the
// status its execution returned.
func mutated(ev core.Event, st core.Status) bool {
	switch ev.(type) {
	case core.Remove:
		return st != core.StatusStartOfRow
	case core.SpliceUp:
		return st != core.StatusStartOfDocument
	default:
		return true
	}
}
