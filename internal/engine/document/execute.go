package document

import (
	"slices"

	"github.com/dshills/kiln/internal/engine/core"
	"github.com/dshills/kiln/internal/engine/row"
)

// Execute applies an atomic edit event to the document. It moves the
// cursor to the affected location, delegates to the affected rows,
// sets the modified flag on any content or structural change, and
// returns the advisory Status of the final cursor movement.
//
// Two events refuse politely instead of mutating: Remove at column zero
// returns StatusStartOfRow (cross-row deletion goes through SpliceUp), and
// SpliceUp on the first row returns StatusStartOfDocument.
func (d *Document) Execute(ev core.Event) (core.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch e := ev.(type) {
	case core.Insert:
		return d.execInsert(e)
	case core.Remove:
		return d.execRemove(e)
	case core.InsertRow:
		return d.execInsertRow(e)
	case core.RemoveRow:
		return d.execRemoveRow(e)
	case core.SplitDown:
		return d.execSplitDown(e)
	case core.SpliceUp:
		return d.execSpliceUp(e)
	default:
		return core.StatusNone, core.ErrOutOfRange
	}
}

func (d *Document) execInsert(e core.Insert) (core.Status, error) {
	if err := d.gotoLoc(e.At); err != nil {
		return core.StatusNone, err
	}
	r, err := d.row(e.At.Y)
	if err != nil {
		return core.StatusNone, err
	}
	if err := r.Insert(e.At.X, e.Cell, d.info.TabWidth); err != nil {
		return core.StatusNone, err
	}
	d.modified = true
	// Land just after the inserted cell.
	return d.moveRight()
}

func (d *Document) execRemove(e core.Remove) (core.Status, error) {
	if e.At.X == 0 {
		return core.StatusStartOfRow, nil
	}
	if err := d.gotoLoc(e.At); err != nil {
		return core.StatusNone, err
	}
	r, err := d.row(e.At.Y)
	if err != nil {
		return core.StatusNone, err
	}
	// Step back over the doomed cell while its width is still in the
	// index table, then drop it; the prefix of the table is untouched,
	// so the landed-on boundary stays valid.
	st, err := d.moveLeft()
	if err != nil {
		return st, err
	}
	if err := r.Remove(row.NewRange(e.At.X-1, e.At.X)); err != nil {
		return core.StatusNone, err
	}
	d.modified = true
	return st, nil
}

func (d *Document) execInsertRow(e core.InsertRow) (core.Status, error) {
	if e.Row < 0 || e.Row > len(d.rows) {
		return core.StatusNone, core.ErrOutOfRange
	}
	d.rows = slices.Insert(d.rows, e.Row, row.New(e.Text, d.info.TabWidth))
	d.modified = true
	if err := d.gotoY(e.Row); err != nil {
		return core.StatusNone, err
	}
	return core.StatusNone, nil
}

func (d *Document) execRemoveRow(e core.RemoveRow) (core.Status, error) {
	if e.Row < 0 || e.Row >= len(d.rows) {
		return core.StatusNone, core.ErrOutOfRange
	}
	target := e.Row
	if target > 0 {
		target--
	}
	if err := d.gotoY(target); err != nil {
		return core.StatusNone, err
	}
	d.rows = slices.Delete(d.rows, e.Row, e.Row+1)
	d.modified = true
	return core.StatusNone, nil
}

func (d *Document) execSplitDown(e core.SplitDown) (core.Status, error) {
	r, err := d.row(e.At.Y)
	if err != nil {
		return core.StatusNone, err
	}
	left, right, err := r.Split(e.At.X, d.info.TabWidth)
	if err != nil {
		return core.StatusNone, err
	}
	d.rows[e.At.Y] = left
	d.rows = slices.Insert(d.rows, e.At.Y+1, right)
	d.modified = true
	if err := d.gotoLoc(core.Loc{X: 0, Y: e.At.Y + 1}); err != nil {
		return core.StatusNone, err
	}
	return core.StatusNone, nil
}

func (d *Document) execSpliceUp(e core.SpliceUp) (core.Status, error) {
	if e.At.Y == 0 {
		return core.StatusStartOfDocument, nil
	}
	upper, err := d.row(e.At.Y - 1)
	if err != nil {
		return core.StatusNone, err
	}
	lower, err := d.row(e.At.Y)
	if err != nil {
		return core.StatusNone, err
	}
	boundary := upper.Len()
	d.rows[e.At.Y-1] = upper.Splice(lower)
	d.rows = slices.Delete(d.rows, e.At.Y, e.At.Y+1)
	d.modified = true
	if err := d.gotoLoc(core.Loc{X: boundary, Y: e.At.Y - 1}); err != nil {
		return core.StatusNone, err
	}
	return core.StatusNone, nil
}
