package core

import "errors"

// Errors surfaced by engine operations. I/O failures are wrapped with
// their file context at the call site via fmt.Errorf and %w, so they
// remain matchable with errors.Is against the underlying OS error.
var (
	// ErrOutOfRange is returned when a character or row index is
	// outside the current bounds of a row or document.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNoFileName is returned when saving a document that has no
	// associated file path.
	ErrNoFileName = errors.New("no file name for this document")
)
