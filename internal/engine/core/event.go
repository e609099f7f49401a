package core

import "fmt"

// Event is an atomic edit applied to a document. Each event carries
// enough payload to reconstruct its inverse, so a journal of executed
// events can be replayed backwards for undo: Insert pairs with Remove,
// InsertRow with RemoveRow, and SplitDown with SpliceUp.
//
// Events constructed by clients may leave reconstruction-only payloads
// (the removed cell or row text, the splice boundary) empty; the engine
// fills them in from the document before execution.
type Event interface {
	// Inverse returns the event that exactly reverses this one.
	Inverse() Event

	fmt.Stringer

	isEvent()
}

// Insert inserts a single cell at a (character index, row index)
// location. The cursor ends just after the inserted cell.
type Insert struct {
	At   Loc
	Cell string
}

// Inverse returns the Remove that deletes the inserted cell. The
// location is shifted right by one because Remove is backspace-shaped:
// it deletes the cell before its location.
func (e Insert) Inverse() Event {
	return Remove{At: Loc{X: e.At.X + 1, Y: e.At.Y}, Cell: e.Cell}
}

func (e Insert) String() string { return fmt.Sprintf("insert %q at %s", e.Cell, e.At) }
func (e Insert) isEvent()       {}

// Remove deletes the cell immediately before a (character index, row
// index) location, i.e. backspace semantics. Removal at column zero is
// refused; joining rows goes through SpliceUp instead. Cell carries the
// removed cell purely so the inverse Insert can be reconstructed.
type Remove struct {
	At   Loc
	Cell string
}

// Inverse returns the Insert that restores the removed cell.
func (e Remove) Inverse() Event {
	return Insert{At: Loc{X: e.At.X - 1, Y: e.At.Y}, Cell: e.Cell}
}

func (e Remove) String() string { return fmt.Sprintf("remove %q at %s", e.Cell, e.At) }
func (e Remove) isEvent()       {}

// InsertRow inserts a new row built from Text at row index Row.
type InsertRow struct {
	Row  int
	Text string
}

// Inverse returns the RemoveRow that deletes the inserted row.
func (e InsertRow) Inverse() Event {
	return RemoveRow{Row: e.Row, Text: e.Text}
}

func (e InsertRow) String() string { return fmt.Sprintf("insert row %d %q", e.Row, e.Text) }
func (e InsertRow) isEvent()       {}

// RemoveRow deletes the row at index Row. Text carries the removed
// row's raw text so the inverse InsertRow can be reconstructed.
type RemoveRow struct {
	Row  int
	Text string
}

// Inverse returns the InsertRow that restores the removed row.
func (e RemoveRow) Inverse() Event {
	return InsertRow{Row: e.Row, Text: e.Text}
}

func (e RemoveRow) String() string { return fmt.Sprintf("remove row %d %q", e.Row, e.Text) }
func (e RemoveRow) isEvent()       {}

// SplitDown splits the row at At.Y at character index At.X, keeping the
// left half in place and inserting the right half directly below. The
// cursor ends at the start of the new lower row.
type SplitDown struct {
	At Loc
}

// Inverse returns the SpliceUp that re-joins the two halves.
func (e SplitDown) Inverse() Event {
	return SpliceUp{At: Loc{X: 0, Y: e.At.Y + 1}, Boundary: e.At.X}
}

func (e SplitDown) String() string { return fmt.Sprintf("split down at %s", e.At) }
func (e SplitDown) isEvent()       {}

// SpliceUp merges the row at At.Y onto the end of the row above it.
// Splicing the first row is refused. Boundary carries the character
// length of the upper row before the merge; like Remove.Cell it exists
// only so the inverse SplitDown can be reconstructed.
type SpliceUp struct {
	At       Loc
	Boundary int
}

// Inverse returns the SplitDown that separates the merged rows again.
func (e SpliceUp) Inverse() Event {
	return SplitDown{At: Loc{X: e.Boundary, Y: e.At.Y - 1}}
}

func (e SpliceUp) String() string { return fmt.Sprintf("splice up at %s", e.At) }
func (e SpliceUp) isEvent()       {}
