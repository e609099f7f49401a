package core

import "fmt"

// Loc is a two-dimensional position. X is horizontal (a character index
// or display column depending on context) and Y is a row index.
type Loc struct {
	X int
	Y int
}

// String returns a human-readable representation of the location.
func (l Loc) String() string {
	return fmt.Sprintf("(%d:%d)", l.X, l.Y)
}

// Compare returns -1 if l < other, 0 if l == other, 1 if l > other,
// ordering by row first and column second.
func (l Loc) Compare(other Loc) int {
	if l.Y < other.Y {
		return -1
	}
	if l.Y > other.Y {
		return 1
	}
	if l.X < other.X {
		return -1
	}
	if l.X > other.X {
		return 1
	}
	return 0
}

// Before returns true if l comes before other in document order.
func (l Loc) Before(other Loc) bool {
	return l.Compare(other) < 0
}

// After returns true if l comes after other in document order.
func (l Loc) After(other Loc) bool {
	return l.Compare(other) > 0
}

// Add returns the component-wise sum of two locations. Adding a cursor
// position to a scroll offset yields the absolute display position.
func (l Loc) Add(other Loc) Loc {
	return Loc{X: l.X + other.X, Y: l.Y + other.Y}
}

// Size is a viewport size in display columns (W) and rows (H).
type Size struct {
	W int
	H int
}

// String returns a human-readable representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Status describes where the cursor ended up after a movement or edit
// operation. Statuses are advisory control-flow signals for the client,
// not errors: a client typically reacts to StatusEndOfRow by wrapping to the
// next row, or ignores the signal entirely.
type Status uint8

const (
	// StatusNone indicates ordinary success.
	StatusNone Status = iota
	// StatusStartOfRow indicates the cursor is at the start of a row.
	StatusStartOfRow
	// StatusEndOfRow indicates the cursor is at the end of a row.
	StatusEndOfRow
	// StatusStartOfDocument indicates the cursor is on the first row.
	StatusStartOfDocument
	// StatusEndOfDocument indicates the cursor is on the last row.
	StatusEndOfDocument
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusStartOfRow:
		return "start of row"
	case StatusEndOfRow:
		return "end of row"
	case StatusStartOfDocument:
		return "start of document"
	case StatusEndOfDocument:
		return "end of document"
	default:
		return "unknown"
	}
}
